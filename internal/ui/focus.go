package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusHandle is the capability for owning keyboard focus. The model hands
// a live handle to exactly one widget per render — the one at the frame's
// focus index — and the inert zero value to everything else, so at most one
// widget can ever be focused by the post-render step.
type focusHandle struct {
	target *textinput.Model
}

func (h focusHandle) live() bool {
	return h.target != nil
}

func (h focusHandle) acquire() tea.Cmd {
	if h.target == nil {
		return nil
	}
	return h.target.Focus()
}

// handleFor returns the focus handle for the given block index: live only
// when the index is the frame's focus index and addresses an existing
// widget pair. The active column picks between the label and the input.
func (m *Model) handleFor(index int) focusHandle {
	if index != m.state.Focus || index < 0 || index >= len(m.inputs) {
		return focusHandle{}
	}
	if m.column == columnLabel {
		return focusHandle{target: &m.labels[index]}
	}
	return focusHandle{target: &m.inputs[index]}
}

// blurAll withdraws focus from every block widget.
func (m *Model) blurAll() {
	for i := range m.labels {
		m.labels[i].Blur()
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
