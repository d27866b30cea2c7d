package runtime

import (
	"github.com/emirpasic/gods/utils"
)

// LabelTable maps label names to program positions.
type LabelTable struct {
	pos map[string]int
}

// NewLabelTable creates an empty label table.
func NewLabelTable() *LabelTable {
	return &LabelTable{pos: make(map[string]int)}
}

// Define sets the position of a label. A label defined twice points to its
// last definition.
func (lt *LabelTable) Define(label string, pc int) {
	if label == "" {
		return
	}
	if old, ok := lt.pos[label]; ok && old != pc {
		T().Debugf("label %s redefined at %d, was %d", label, pc, old)
	}
	lt.pos[label] = pc
}

// Lookup returns the position of a label.
func (lt *LabelTable) Lookup(label string) (int, bool) {
	pc, ok := lt.pos[label]
	return pc, ok
}

// Size counts the labels.
func (lt *LabelTable) Size() int {
	return len(lt.pos)
}

// Labels returns the label names in program order.
func (lt *LabelTable) Labels() []string {
	values := make([]interface{}, 0, len(lt.pos))
	for l := range lt.pos {
		values = append(values, l)
	}
	utils.Sort(values, func(a, b interface{}) int {
		if c := utils.IntComparator(lt.pos[a.(string)], lt.pos[b.(string)]); c != 0 {
			return c
		}
		return utils.StringComparator(a, b)
	})
	labels := make([]string, len(values))
	for i, l := range values {
		labels[i] = l.(string)
	}
	return labels
}
