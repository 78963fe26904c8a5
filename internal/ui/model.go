package ui

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexfield/evmplay/internal/clip"
	"github.com/hexfield/evmplay/internal/frame"
	"github.com/hexfield/evmplay/internal/logging/events"
	"github.com/hexfield/evmplay/internal/theme"
	"github.com/hexfield/evmplay/internal/ui/command"
)

const labelWidth = 12

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// column selects which widget of the focused block owns the live focus
// handle: its calldata input or its label.
type column int

const (
	columnInput column = iota
	columnLabel
)

// Options configures the UI model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	FullWords  bool
	// OnSearch overrides the search notification callback. The default
	// opens the built-in command-reference overlay.
	OnSearch func()
}

// Model implements the Bubble Tea model for the playground frame. It owns
// the frame state exclusively; widgets communicate through events and the
// frame's transition function decides every mutation.
type Model struct {
	state frame.State

	labels []textinput.Model
	inputs []textinput.Model
	column column

	search       *overlay
	searchActive bool
	onSearch     func()

	bus *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	rendered    bool
	lastEpoch   bool
	errMsg      string
	statusMsg   string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with a single seeded block owning focus.
func NewModel(opts Options) *Model {
	state := frame.NewState()
	state.Toggle = opts.FullWords
	m := &Model{
		state:      state,
		search:     newOverlay(),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.onSearch = opts.OnSearch
	if m.onSearch == nil {
		m.onSearch = m.openSearch
	}
	m.syncWidgets()
	m.inputs[0].Focus()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Done{}):      m.handleParseDone,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatch routes one frame event through the transition function, keeps
// the widget arena in sync, performs any requested effect, and runs the
// post-render focus step.
func (m *Model) dispatch(ev frame.Event) tea.Cmd {
	next, effect := frame.Transition(m.state, ev)
	m.state = next
	m.traceEvent(ev)
	m.syncWidgets()
	if effect == frame.EffectNotifySearch && m.onSearch != nil {
		m.onSearch()
	}
	return m.applyFocus()
}

// applyFocus is the single place widget focus actually moves. Transitions
// only record intent; this step consumes it once the state is in its
// post-event shape. It skips the very first render and any render while
// the search overlay is up.
func (m *Model) applyFocus() tea.Cmd {
	if !m.rendered || !m.state.FocusOnRender || m.searchActive {
		return nil
	}
	handle := m.handleFor(m.state.Focus)
	if !handle.live() {
		return nil
	}
	m.blurAll()
	events.Frame.FocusApplied(m.state.Focus)
	return handle.acquire()
}

// syncWidgets grows the widget arena to match the block list and, when the
// label epoch flips, re-derives label text from state for every widget not
// currently being edited.
func (m *Model) syncWidgets() {
	for i := len(m.inputs); i < m.state.NumBlocks(); i++ {
		m.labels = append(m.labels, newLabelInput(m.state.Blocks[i].Label))
		m.inputs = append(m.inputs, newBlockInput())
	}
	if m.lastEpoch != m.state.LabelEpoch {
		m.lastEpoch = m.state.LabelEpoch
		for i := range m.labels {
			if i < m.state.NumBlocks() && !m.labels[i].Focused() {
				m.labels[i].SetValue(m.state.Blocks[i].Label)
			}
		}
	}
}

func (m *Model) traceEvent(ev frame.Event) {
	switch ev := ev.(type) {
	case frame.AddBlock:
		events.Frame.BlockAdded(m.state.LastBlock())
	case frame.FocusBlock:
		events.Frame.BlockFocused(m.state.Focus)
	case frame.ToggleDisplay:
		events.Frame.Toggle(m.state.Toggle)
	case frame.Rename:
		events.Frame.Rename(ev.Index, ev.Label)
	case frame.UpdateResult:
		events.Frame.Result(ev.Index, len(ev.Result.Words), ev.Result.Err)
	}
}

func (m *Model) handleParseDone(msg tea.Msg) tea.Cmd {
	done, ok := msg.(command.Done)
	if !ok {
		return nil
	}
	return m.dispatch(frame.UpdateResult{Index: done.Index, Result: done.Result})
}

func (m *Model) copyFocused() tea.Cmd {
	focus := m.state.Focus
	if !m.state.InRange(focus) {
		return nil
	}
	copied, err := clip.Copy(m.state.Blocks[focus])
	if err != nil {
		m.errMsg = fmt.Sprintf("clipboard: %v", err)
		return nil
	}
	m.errMsg = ""
	if copied && m.verbose {
		m.statusMsg = fmt.Sprintf("copied %s", m.state.Blocks[focus].Label)
	}
	return nil
}

func newLabelInput(text string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = labelWidth
	ti.SetValue(text)
	return ti
}

func newBlockInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "calldata…"
	return ti
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	filtered := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			filtered = append(filtered, cmd)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return tea.Batch(filtered...)
}

// State exposes a snapshot of the frame state for tests.
func (m *Model) State() frame.State {
	return m.state
}
