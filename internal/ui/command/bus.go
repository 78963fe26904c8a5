package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexfield/evmplay/internal/logging/events"
	"github.com/hexfield/evmplay/internal/parser"
)

// Request describes one asynchronous parse invocation.
type Request struct {
	Index int
	Raw   string
}

// Done is delivered to the UI when a parse completes. Results arrive in
// completion order and are applied last-writer-wins per block; there is no
// cancellation of stale requests.
type Done struct {
	Index  int
	Result parser.Result
}

// Bus turns parse requests into Bubble Tea commands while emitting trace logs.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Parse wraps a parser invocation into a Bubble Tea command.
func (b *Bus) Parse(req Request) tea.Cmd {
	events.Command.Queue(req.Index, req.Raw)
	return func() tea.Msg {
		result := parser.Parse(req.Raw)
		events.Command.Result(req.Index, len(result.Words), result.Err)
		return Done{Index: req.Index, Result: result}
	}
}
