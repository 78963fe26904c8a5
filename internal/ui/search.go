package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hexfield/evmplay/internal/frame"
	"github.com/hexfield/evmplay/internal/logging/events"
)

// referenceEntry is one row of the command-reference overlay.
type referenceEntry struct {
	Key  string
	Text string
}

func referenceEntries() []referenceEntry {
	return []referenceEntry{
		{"enter", "append a new block, or jump back to the newest one"},
		{"tab", "switch between a block's label and its calldata input"},
		{"ctrl+t", "toggle full 32-byte word display"},
		{"ctrl+y", "copy the focused block's decoded words"},
		{"ctrl+k", "open this command reference"},
		{"esc", "close the command reference"},
		{"ctrl+c", "quit"},
	}
}

// overlay holds the command-reference search state while search mode is
// active. The frame underneath is dimmed and receives no input.
type overlay struct {
	input   textinput.Model
	full    []referenceEntry
	matches []referenceEntry
}

func newOverlay() *overlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter commands"
	ti.CharLimit = 64
	entries := referenceEntries()
	return &overlay{input: ti, full: entries, matches: entries}
}

func (o *overlay) reset() {
	o.input.SetValue("")
	o.matches = o.full
}

func (o *overlay) refilter() {
	o.matches = filterEntries(o.full, o.input.Value())
}

// filterEntries narrows the reference list: fuzzy ranking first, plain
// substring matching as a fallback when the fuzzy pass drops everything.
func filterEntries(entries []referenceEntry, query string) []referenceEntry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return entries
	}
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Key + " " + entry.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, texts)
	if len(ranks) > 0 {
		keep := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			keep[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]referenceEntry, 0, len(keep))
		for i, entry := range entries {
			if _, ok := keep[i]; ok {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]referenceEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Key), lower) ||
			strings.Contains(strings.ToLower(entry.Text), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// openSearch is the host side of the search contract: it raises the
// overlay, records the property change, and feeds the dedicated
// search-mode transition into the frame.
func (m *Model) openSearch() {
	if m.searchActive {
		return
	}
	m.searchActive = true
	m.search.reset()
	m.blurAll()
	m.search.input.Focus()
	events.Search.Opened()
	m.state, _ = frame.Transition(m.state, frame.SetSearchActive{Active: true})
	events.Frame.SearchMode(true)
}

func (m *Model) closeSearch() {
	if !m.searchActive {
		return
	}
	m.searchActive = false
	m.search.input.Blur()
	events.Search.Closed()
	m.state, _ = frame.Transition(m.state, frame.SetSearchActive{Active: false})
	events.Frame.SearchMode(false)
	// Leaving search mode prescribes no focus reapplication, but the block
	// widget was blurred when the overlay opened; hand its focus back
	// directly so typing resumes where it left off.
	if handle := m.handleFor(m.state.Focus); handle.live() {
		handle.acquire()
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "ctrl+k", "enter":
		m.closeSearch()
		return nil
	}
	before := m.search.input.Value()
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if after := m.search.input.Value(); after != before {
		m.search.refilter()
		events.Search.Filter(after, len(m.search.matches))
	}
	return cmd
}
