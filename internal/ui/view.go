package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/hexfield/evmplay/internal/format/table"
	"github.com/hexfield/evmplay/internal/frame"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. Blocks render in reverse creation order: the
// newest block sits at the top.
func (m *Model) View() string {
	var lines []styledLine
	if m.searchActive {
		lines = append(lines, m.overlayLines()...)
		lines = append(lines, styledLine{})
		lines = append(lines, m.frameLines(true)...)
	} else {
		lines = m.frameLines(false)
	}
	bottom := m.bottomLines()
	if m.height > 0 {
		lines = limitHeight(lines, m.height-len(bottom), m.width)
	}
	lines = applyWidth(lines, m.width)
	bottom = applyWidth(bottom, m.width)
	out := renderLines(append(lines, bottom...))
	m.rendered = true
	return out
}

func (m *Model) frameLines(dim bool) []styledLine {
	lines := make([]styledLine, 0, 4*m.state.NumBlocks()+3)
	lines = append(lines, styledLine{text: "evmplay · calldata playground", style: styles.Title})
	lines = append(lines, styledLine{text: m.headerLine(), style: styles.Header})
	lines = append(lines, styledLine{})
	for _, index := range m.state.DisplayOrder() {
		lines = append(lines, m.blockLines(index, dim)...)
	}
	return lines
}

func (m *Model) headerLine() string {
	mark := " "
	if m.state.Toggle {
		mark = "x"
	}
	return fmt.Sprintf("[%s] full EVM words   ctrl+k command reference", mark)
}

func (m *Model) blockLines(index int, dim bool) []styledLine {
	entry := m.state.Blocks[index]
	lines := make([]styledLine, 0, 4)
	if dim {
		text := padLabel(entry.Label) + "   " + m.inputs[index].Value()
		lines = append(lines, styledLine{text: "  " + text, style: styles.Dim})
	} else {
		indicator := " "
		if index == m.state.Focus {
			indicator = "▌"
		}
		row := indicator + " " + m.labels[index].View() + " " + m.inputs[index].View()
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, m.resultLines(entry, dim)...)
	lines = append(lines, styledLine{})
	return lines
}

func (m *Model) resultLines(entry frame.Entry, dim bool) []styledLine {
	result := entry.Result
	if result.Err != "" {
		style := styles.Error
		if dim {
			style = styles.Dim
		}
		return []styledLine{{text: "    parse error: " + result.Err, style: style}}
	}
	if result.Empty() {
		return nil
	}
	lines := make([]styledLine, 0, len(result.Words)+1)
	if sel := result.DisplaySelector(); sel != "" {
		style := styles.Selector
		if dim {
			style = styles.Dim
		}
		lines = append(lines, styledLine{text: "    selector " + sel, style: style})
	}
	if len(result.Words) > 0 {
		rows := make([][]string, len(result.Words))
		for i, word := range result.Words {
			note := ""
			if word.Padded {
				note = "(padded)"
			}
			rows[i] = []string{fmt.Sprintf("%d", word.Offset), word.Display(m.state.Toggle), note}
		}
		style := styles.Word
		if dim {
			style = styles.Dim
		}
		for _, row := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}) {
			lines = append(lines, styledLine{text: "    " + row, style: style})
		}
	}
	return lines
}

func (m *Model) overlayLines() []styledLine {
	lines := make([]styledLine, 0, len(m.search.matches)+3)
	lines = append(lines, styledLine{text: "Command reference", style: styles.OverlayTitle})
	lines = append(lines, styledLine{text: m.search.input.View(), raw: true})
	lines = append(lines, styledLine{})
	if len(m.search.matches) == 0 {
		lines = append(lines, styledLine{
			text:  fmt.Sprintf("No matches for %q", strings.TrimSpace(m.search.input.Value())),
			style: styles.Info,
		})
		return lines
	}
	keyWidth := 0
	rows := make([][]string, len(m.search.matches))
	for i, entry := range m.search.matches {
		rows[i] = []string{entry.Key, entry.Text}
		if w := len([]rune(entry.Key)); w > keyWidth {
			keyWidth = w
		}
	}
	for _, row := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		lines = append(lines, styledLine{
			text:          row,
			style:         styles.OverlayEntry,
			prefixStyle:   styles.OverlayKey,
			highlightFrom: keyWidth,
		})
	}
	return lines
}

func (m *Model) bottomLines() []styledLine {
	var statusLine styledLine
	switch {
	case m.errMsg != "":
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.statusMsg != "":
		statusLine = styledLine{text: m.statusMsg, style: styles.Info}
	}
	lines := []styledLine{statusLine}
	if m.showFooter {
		lines = append(lines, styledLine{
			text:  "enter block  tab label  ctrl+t words  ctrl+y copy  ctrl+k reference  ctrl+c quit",
			style: styles.Footer,
		})
	}
	return lines
}

func padLabel(label string) string {
	runes := []rune(label)
	if len(runes) >= labelWidth {
		return string(runes[:labelWidth])
	}
	return label + strings.Repeat(" ", labelWidth-len(runes))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
