package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReferenceEntriesCoverEveryBinding(t *testing.T) {
	keys := make(map[string]bool)
	for _, entry := range referenceEntries() {
		keys[entry.Key] = true
	}
	for _, want := range []string{"enter", "tab", "ctrl+t", "ctrl+y", "ctrl+k", "esc", "ctrl+c"} {
		if !keys[want] {
			t.Fatalf("missing reference entry for %q", want)
		}
	}
}

func TestFilterEntriesEmptyQueryReturnsAll(t *testing.T) {
	entries := referenceEntries()
	if got := filterEntries(entries, ""); len(got) != len(entries) {
		t.Fatalf("expected all %d entries, got %d", len(entries), len(got))
	}
	if got := filterEntries(entries, "   "); len(got) != len(entries) {
		t.Fatalf("whitespace query must behave like an empty one, got %d entries", len(got))
	}
}

func TestFilterEntriesNarrowsToSingleMatch(t *testing.T) {
	cases := []struct {
		query string
		key   string
	}{
		{"quit", "ctrl+c"},
		{"toggle", "ctrl+t"},
		{"TOGGLE", "ctrl+t"},
	}
	for _, tc := range cases {
		got := filterEntries(referenceEntries(), tc.query)
		if len(got) != 1 || got[0].Key != tc.key {
			t.Fatalf("query %q: expected single match %q, got %v", tc.query, tc.key, got)
		}
	}
}

func TestFilterEntriesNoMatches(t *testing.T) {
	if got := filterEntries(referenceEntries(), "zzzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterEntriesPreservesOrder(t *testing.T) {
	entries := referenceEntries()
	got := filterEntries(entries, "ctrl")
	last := -1
	for _, match := range got {
		pos := -1
		for i, entry := range entries {
			if entry.Key == match.Key {
				pos = i
				break
			}
		}
		if pos <= last {
			t.Fatalf("matches out of reference order: %v", got)
		}
		last = pos
	}
}

func TestOverlayResetRestoresFullList(t *testing.T) {
	o := newOverlay()
	o.input.SetValue("quit")
	o.refilter()
	if len(o.matches) == len(o.full) {
		t.Fatalf("expected refilter to narrow matches")
	}
	o.reset()
	if o.input.Value() != "" {
		t.Fatalf("expected reset to clear the query, got %q", o.input.Value())
	}
	if len(o.matches) != len(o.full) {
		t.Fatalf("expected reset to restore all entries, got %d", len(o.matches))
	}
}

func TestSearchTypingFiltersOverlay(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.Type("quit")
	m := h.Model()
	if len(m.search.matches) != 1 || m.search.matches[0].Key != "ctrl+c" {
		t.Fatalf("expected overlay narrowed to the quit binding, got %v", m.search.matches)
	}
}

func TestSearchReopensWithFreshQuery(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.Type("quit")
	h.SendKey(tea.KeyEsc)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	m := h.Model()
	if m.search.input.Value() != "" {
		t.Fatalf("expected a fresh query on reopen, got %q", m.search.input.Value())
	}
	if len(m.search.matches) != len(m.search.full) {
		t.Fatalf("expected the full reference list on reopen, got %d entries", len(m.search.matches))
	}
}

func TestCtrlKClosesOpenOverlay(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	if h.Model().searchActive {
		t.Fatalf("expected a second ctrl+k to close the overlay")
	}
	if !h.Model().inputs[0].Focused() {
		t.Fatalf("expected block focus restored after close")
	}
}
