package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Procedure is a procedure definition: a name, the count of formal
// parameters and the body lines, recorded between BeginFunc and EndFunc.
type Procedure struct {
	Name  string
	Arity int
	Body  []string
	Scope *ProcScope // scope the procedure has been defined in
}

// NewProcedure creates a procedure with an empty body.
func NewProcedure(nm string, arity int) *Procedure {
	return &Procedure{Name: nm, Arity: arity}
}

// Append adds a line to the body.
func (p *Procedure) Append(line string) {
	p.Body = append(p.Body, line)
}

func (p *Procedure) String() string {
	return fmt.Sprintf("<proc %s/%d (%d lines)>", p.Name, p.Arity, len(p.Body))
}

// === Procedure Scopes ======================================================

// ProcScope is a named table of procedure definitions. Scopes link back to a
// parent scope, forming a tree.
type ProcScope struct {
	Name   string
	Parent *ProcScope
	procs  map[string]*Procedure
}

// NewProcScope creates a new scope.
func NewProcScope(nm string, parent *ProcScope) *ProcScope {
	return &ProcScope{
		Name:   nm,
		Parent: parent,
		procs:  make(map[string]*Procedure),
	}
}

// Prettyfied Stringer.
func (s *ProcScope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Define defines a procedure in the scope. Returns the previously
// stored procedure under this name, if any. Redefinition shadows the old one.
//
func (s *ProcScope) Define(p *Procedure) *Procedure {
	old := s.procs[p.Name]
	p.Scope = s
	s.procs[p.Name] = p
	if old != nil {
		T().Debugf("procedure %s redefined in %s", p.Name, s)
	}
	return old
}

// Resolve finds a procedure. Returns the procedure (or nil) and the scope
// (of a scope-tree-path) it was found in.
//
func (s *ProcScope) Resolve(name string) (*Procedure, *ProcScope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if p := sc.procs[name]; p != nil {
			return p, sc
		}
	}
	return nil, nil
}

// Size counts the procedures defined in this scope (not counting parents).
func (s *ProcScope) Size() int {
	return len(s.procs)
}

// Names returns the names of procedures defined in this scope, sorted.
func (s *ProcScope) Names() []string {
	set := treeset.NewWith(utils.StringComparator)
	for k := range s.procs {
		set.Add(k)
	}
	names := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		names = append(names, k.(string))
	}
	return names
}
