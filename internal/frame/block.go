package frame

import (
	"fmt"

	"github.com/hexfield/evmplay/internal/parser"
)

// Entry is one block of the playground: a user-editable label and the most
// recent parse result for the block's input. Entries are created in order
// and never removed, so Index doubles as the entry's position in
// State.Blocks for its entire lifetime.
type Entry struct {
	Index  int
	Label  string
	Result parser.Result
}

// NewEntry returns an entry with the default label for the given index.
func NewEntry(index int) Entry {
	return Entry{Index: index, Label: fmt.Sprintf("block%d", index)}
}

// SetResult replaces the stored parse result wholesale. Bounds checks are
// the transition function's job; callers pass entries already validated.
func (e *Entry) SetResult(result parser.Result) {
	e.Result = result
}

// SetLabel replaces the label.
func (e *Entry) SetLabel(label string) {
	e.Label = label
}
