package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hexfield/evmplay/internal/testutil"
)

func TestViewShowsNewestBlockFirst(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey(tea.KeyEnter)
	lines := testutil.Lines(h.View())
	newest := testutil.LineIndex(lines, "block1")
	oldest := testutil.LineIndex(lines, "block0")
	if newest < 0 || oldest < 0 {
		t.Fatalf("expected both block labels in view:\n%s", strings.Join(lines, "\n"))
	}
	if newest > oldest {
		t.Fatalf("expected newest block above oldest, got lines %d and %d", newest, oldest)
	}
}

func TestViewRendersSelectorAndShortWords(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("a9059cbb" + strings.Repeat("0", 64))
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, "selector 0xa9059cbb") {
		t.Fatalf("expected selector line in view:\n%s", view)
	}
	if !strings.Contains(view, "0x00000000…00000000") {
		t.Fatalf("expected abbreviated word in view:\n%s", view)
	}
	if strings.Contains(view, "0x"+strings.Repeat("0", 64)) {
		t.Fatalf("full word must stay hidden while the toggle is off:\n%s", view)
	}
}

func TestViewToggleExpandsWords(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("a9059cbb" + strings.Repeat("0", 64))
	if view := testutil.StripANSI(h.View()); !strings.Contains(view, "[ ] full EVM words") {
		t.Fatalf("expected unchecked toggle marker:\n%s", view)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlT})
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, "[x] full EVM words") {
		t.Fatalf("expected checked toggle marker:\n%s", view)
	}
	if !strings.Contains(view, "0x"+strings.Repeat("0", 64)) {
		t.Fatalf("expected full word in view:\n%s", view)
	}
}

func TestViewMarksPaddedWords(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("ff")
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, "(padded)") {
		t.Fatalf("expected padded annotation in view:\n%s", view)
	}
}

func TestViewShowsParseError(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("zz")
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, "parse error:") {
		t.Fatalf("expected parse error line in view:\n%s", view)
	}
}

func TestViewOverlayCoversDimmedFrame(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	lines := testutil.Lines(h.View())
	title := testutil.LineIndex(lines, "Command reference")
	entry := testutil.LineIndex(lines, "toggle full 32-byte word display")
	block := testutil.LineIndex(lines, "block0")
	if title < 0 || entry < 0 {
		t.Fatalf("expected overlay content in view:\n%s", strings.Join(lines, "\n"))
	}
	if block < 0 || block < entry {
		t.Fatalf("expected dimmed frame rendered beneath the overlay, got block line %d", block)
	}
}

func TestViewOverlayNoMatchesMessage(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.Type("zzzz")
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, `No matches for "zzzz"`) {
		t.Fatalf("expected no-match message in view:\n%s", view)
	}
}

func TestViewFooterOnlyWhenEnabled(t *testing.T) {
	withFooter := NewHarness(NewModel(Options{Width: 100, Height: 50, ShowFooter: true}))
	if view := testutil.StripANSI(withFooter.View()); !strings.Contains(view, "ctrl+c quit") {
		t.Fatalf("expected footer in view:\n%s", view)
	}
	without := NewHarness(newTestModel())
	if view := testutil.StripANSI(without.View()); strings.Contains(view, "ctrl+c quit") {
		t.Fatalf("expected no footer in view:\n%s", view)
	}
}

func TestViewHonorsFixedHeight(t *testing.T) {
	h := NewHarness(NewModel(Options{Width: 100, Height: 5}))
	lines := testutil.Lines(h.View())
	if len(lines) != 5 {
		t.Fatalf("expected 5 rendered lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
}

func TestViewResizeTracksWindowWhenNotFixed(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(tea.WindowSizeMsg{Width: 24, Height: 40})
	for _, line := range testutil.Lines(h.View()) {
		if n := len([]rune(line)); n > 24 {
			t.Fatalf("expected lines capped at 24 columns, got %d: %q", n, line)
		}
	}
}
