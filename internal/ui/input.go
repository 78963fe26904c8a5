package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexfield/evmplay/internal/frame"
	"github.com/hexfield/evmplay/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.searchActive {
		return m.handleSearchKey(key)
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+k":
		return m.dispatch(frame.InvokeSearch{})
	case "ctrl+t":
		return m.dispatch(frame.ToggleDisplay{})
	case "ctrl+y":
		return m.copyFocused()
	}
	switch key.Type {
	case tea.KeyEnter:
		return m.handleAdvance()
	case tea.KeyTab:
		return m.switchColumn()
	}
	return m.forwardKey(key)
}

// focusedWidget returns the index and column of the widget that currently
// owns keyboard focus, or -1 when none does. Keystrokes are attributed to
// the widget that raised them, which can differ from the frame's focus
// index: result updates track focus without moving it.
func (m *Model) focusedWidget() (int, column) {
	for i := range m.inputs {
		if m.inputs[i].Focused() {
			return i, columnInput
		}
	}
	for i := range m.labels {
		if m.labels[i].Focused() {
			return i, columnLabel
		}
	}
	return -1, columnInput
}

// handleAdvance maps the advance keystroke: on the newest block it appends,
// anywhere else it returns focus to the newest block. A label commits its
// rename first, then advances.
func (m *Model) handleAdvance() tea.Cmd {
	index, col := m.focusedWidget()
	if index < 0 {
		return nil
	}
	if col == columnLabel {
		cmds := make([]tea.Cmd, 0, 2)
		cmds = append(cmds, m.dispatch(frame.Rename{Index: index, Label: m.labels[index].Value()}))
		m.column = columnInput
		cmds = append(cmds, m.dispatch(frame.FocusBlock{}))
		return m.finishUpdate(cmds)
	}
	m.column = columnInput
	if index == m.state.LastBlock() {
		return m.dispatch(frame.AddBlock{})
	}
	return m.dispatch(frame.FocusBlock{})
}

// switchColumn moves focus between a block's label and its input. This
// stays inside the block, so it bypasses the frame's focus policy and
// wires the widget directly.
func (m *Model) switchColumn() tea.Cmd {
	index, col := m.focusedWidget()
	if index < 0 {
		return nil
	}
	m.blurAll()
	if col == columnInput {
		m.column = columnLabel
		return m.labels[index].Focus()
	}
	m.column = columnInput
	return m.inputs[index].Focus()
}

// forwardKey hands the keystroke to the focused widget. Edits to a calldata
// input queue an asynchronous reparse through the command bus.
func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	index, col := m.focusedWidget()
	if index < 0 {
		return nil
	}
	if col == columnLabel {
		var cmd tea.Cmd
		m.labels[index], cmd = m.labels[index].Update(msg)
		return cmd
	}
	before := m.inputs[index].Value()
	var cmd tea.Cmd
	m.inputs[index], cmd = m.inputs[index].Update(msg)
	cmds := []tea.Cmd{cmd}
	if after := m.inputs[index].Value(); after != before {
		cmds = append(cmds, m.bus.Parse(command.Request{Index: index, Raw: after}))
	}
	return m.finishUpdate(cmds)
}
