// Package frame holds the playground frame state machine: an append-only,
// ordered list of input blocks plus the focus, toggle, and render-time
// bookkeeping that governs them. All mutation flows through Transition,
// a pure function over a closed event set; rendering layers only read
// snapshots and send events.
package frame

import "github.com/hexfield/evmplay/internal/parser"

// Event is the closed set of messages the frame accepts. Widgets and the
// host describe what happened; the transition function decides everything
// else, including whether focus should move on the next render.
type Event interface{ frameEvent() }

type (
	// AddBlock appends a new entry and moves focus to it.
	AddBlock struct{}

	// FocusBlock returns focus to the newest entry, regardless of which
	// block raised it.
	FocusBlock struct{}

	// ToggleDisplay flips the global word-display mode.
	ToggleDisplay struct{}

	// UpdateResult stores a completed parse for the entry at Index.
	UpdateResult struct {
		Index  int
		Result parser.Result
	}

	// Rename replaces the label of the entry at Index.
	Rename struct {
		Index int
		Label string
	}

	// InvokeSearch asks the host to open its search overlay. It never
	// mutates frame state.
	InvokeSearch struct{}

	// SetSearchActive reports a change in the host's search-overlay mode.
	SetSearchActive struct{ Active bool }
)

func (AddBlock) frameEvent()        {}
func (FocusBlock) frameEvent()      {}
func (ToggleDisplay) frameEvent()   {}
func (UpdateResult) frameEvent()    {}
func (Rename) frameEvent()          {}
func (InvokeSearch) frameEvent()    {}
func (SetSearchActive) frameEvent() {}

// Effect is a side effect the transition wants the caller to perform.
// Transitions themselves stay pure.
type Effect int

const (
	EffectNone Effect = iota
	// EffectNotifySearch fires the host's search callback, exactly once
	// per InvokeSearch event.
	EffectNotifySearch
)

// State is the complete frame state. Blocks is append-only and seeded with
// a single entry, so LastBlock always addresses the newest entry.
// FocusOnRender is a one-shot instruction for the post-render focus step;
// every transition prescribes its next value rather than accumulating it.
// LabelEpoch is a parity signal flipped on renames and result updates so
// children can re-derive cached label text.
type State struct {
	Blocks        []Entry
	Focus         int
	Toggle        bool
	FocusOnRender bool
	LabelEpoch    bool
}

// NewState seeds the frame with one block that owns focus.
func NewState() State {
	return State{
		Blocks:        []Entry{NewEntry(0)},
		Focus:         0,
		FocusOnRender: true,
	}
}

// NumBlocks returns the number of entries.
func (s State) NumBlocks() int { return len(s.Blocks) }

// LastBlock returns the index of the newest entry.
func (s State) LastBlock() int { return len(s.Blocks) - 1 }

// InRange reports whether index addresses an existing entry.
func (s State) InRange(index int) bool { return index >= 0 && index < len(s.Blocks) }

// DisplayOrder returns entry indices in presentation order: newest first.
// Stored indices stay in creation order; the reversal is display-only.
func (s State) DisplayOrder() []int {
	order := make([]int, len(s.Blocks))
	for i := range order {
		order[i] = len(s.Blocks) - 1 - i
	}
	return order
}

// Transition applies one event and returns the next state. It is total:
// every event is accepted, and index misses degrade to the per-event no-op
// policy. UpdateResult still records focus bookkeeping on a miss, while
// Rename ignores a miss entirely; the asymmetry is part of the contract.
func Transition(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case AddBlock:
		s.Blocks = append(cloneBlocks(s.Blocks), NewEntry(len(s.Blocks)))
		s.Focus = s.LastBlock()
		s.FocusOnRender = true
	case FocusBlock:
		s.Focus = s.LastBlock()
		s.FocusOnRender = true
	case ToggleDisplay:
		s.Toggle = !s.Toggle
		s.FocusOnRender = true
	case UpdateResult:
		if s.InRange(ev.Index) {
			s.Blocks = cloneBlocks(s.Blocks)
			s.Blocks[ev.Index].SetResult(ev.Result)
		}
		s.Focus = ev.Index
		s.FocusOnRender = false
		s.LabelEpoch = !s.LabelEpoch
	case Rename:
		if !s.InRange(ev.Index) {
			return s, EffectNone
		}
		s.Blocks = cloneBlocks(s.Blocks)
		s.Blocks[ev.Index].SetLabel(ev.Label)
		s.FocusOnRender = false
		s.LabelEpoch = !s.LabelEpoch
	case InvokeSearch:
		return s, EffectNotifySearch
	case SetSearchActive:
		s.FocusOnRender = ev.Active
	}
	return s, EffectNone
}

// cloneBlocks keeps Transition pure: callers holding the previous State
// never observe the new event's writes.
func cloneBlocks(blocks []Entry) []Entry {
	out := make([]Entry, len(blocks))
	copy(out, blocks)
	return out
}
