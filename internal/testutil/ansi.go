// Package testutil holds small helpers shared by UI tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so tests can assert on visible text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits rendered output into ANSI-stripped lines.
func Lines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
