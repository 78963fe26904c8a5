// Package clip copies a block's decoded result to the system clipboard.
package clip

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hexfield/evmplay/internal/frame"
)

// Format renders an entry's decoded result as plain text: one line for the
// selector when present, then one full word per line. Display shortening
// never applies here; clipboard content always carries full words.
func Format(entry frame.Entry) string {
	result := entry.Result
	if result.Err != "" {
		return ""
	}
	lines := make([]string, 0, len(result.Words)+1)
	if sel := result.DisplaySelector(); sel != "" {
		lines = append(lines, sel)
	}
	for _, word := range result.Words {
		lines = append(lines, word.Display(true))
	}
	return strings.Join(lines, "\n")
}

// Copy places the entry's decoded result on the system clipboard. Entries
// with nothing decoded are skipped without touching the clipboard.
func Copy(entry frame.Entry) (bool, error) {
	text := Format(entry)
	if text == "" {
		return false, nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return false, err
	}
	return true, nil
}
