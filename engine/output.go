package engine

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/threeac/runtime"
)

// OutputRecord is the output of a print instruction (explicit or implicit).
// Line is 1-based and relative to the program or procedure body given by Proc.
type OutputRecord struct {
	Value runtime.Value
	Line  int
	Proc  string
}

// OutputLog is the sequence of output records of a run, in execution order.
type OutputLog []OutputRecord

// Values returns the printed values as strings.
func (log OutputLog) Values() []string {
	vals := make([]string, len(log))
	for i, rec := range log {
		vals[i] = rec.Value.String()
	}
	return vals
}

// Fingerprint returns a digest of the log. Two runs producing the same
// output records have the same fingerprint.
func (log OutputLog) Fingerprint() string {
	type record struct {
		Value string
		Kind  string
		Line  int
		Proc  string
	}
	recs := make([]record, len(log))
	for i, rec := range log {
		recs[i] = record{
			Value: rec.Value.String(),
			Kind:  rec.Value.Kind().String(),
			Line:  rec.Line,
			Proc:  rec.Proc,
		}
	}
	hash, err := structhash.Hash(struct{ Records []record }{recs}, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint output log: %v", err)
		return ""
	}
	return hash
}
