// Package parser decodes raw calldata text into function selectors and
// 32-byte EVM words. The rest of the application treats a Result as inert
// data: it is stored, rendered, and copied, never interpreted further.
package parser

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	selectorBytes = 4
	wordBytes     = 32
	wordHexChars  = wordBytes * 2
)

// Word is one 32-byte slot of the decoded payload.
type Word struct {
	Offset int    // byte offset within the payload, after any selector
	Hex    string // exactly 64 hex characters, zero-padded on the right
	Padded bool   // input supplied fewer than 32 bytes for this slot
}

// Result is the outcome of parsing one block's input. A zero Result means
// the input was empty. Err is set for malformed input; Selector and Words
// are only populated on success.
type Result struct {
	Raw      string
	Selector string // 8 hex characters when the input carries a selector
	Words    []Word
	Err      string
}

// Empty reports whether the result carries nothing worth displaying.
func (r Result) Empty() bool {
	return r.Selector == "" && len(r.Words) == 0 && r.Err == ""
}

// Parse decodes raw calldata text. Whitespace and an optional 0x prefix are
// tolerated. When the byte count is congruent to 4 modulo 32 the leading
// four bytes are treated as a function selector; otherwise the whole input
// is chunked into words. A trailing partial word is zero-padded and marked.
func Parse(raw string) Result {
	result := Result{Raw: raw}
	cleaned := strings.Join(strings.Fields(raw), "")
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
	if cleaned == "" {
		return result
	}
	for i, r := range cleaned {
		if !isHexDigit(r) {
			result.Err = fmt.Sprintf("invalid hex digit %q at position %d", r, i)
			return result
		}
	}
	if len(cleaned)%2 != 0 {
		result.Err = fmt.Sprintf("odd number of hex digits (%d)", len(cleaned))
		return result
	}
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	payload := data
	if len(data) >= selectorBytes && len(data)%wordBytes == selectorBytes {
		result.Selector = hex.EncodeToString(data[:selectorBytes])
		payload = data[selectorBytes:]
	}
	for offset := 0; offset < len(payload); offset += wordBytes {
		end := offset + wordBytes
		padded := false
		if end > len(payload) {
			end = len(payload)
			padded = true
		}
		encoded := hex.EncodeToString(payload[offset:end])
		if padded {
			encoded += strings.Repeat("0", wordHexChars-len(encoded))
		}
		result.Words = append(result.Words, Word{Offset: offset, Hex: encoded, Padded: padded})
	}
	return result
}

// Display renders the word for the UI. The full form is the entire
// 0x-prefixed word; the short form keeps the first and last four bytes.
func (w Word) Display(full bool) string {
	if full || len(w.Hex) <= 16 {
		return "0x" + w.Hex
	}
	return "0x" + w.Hex[:8] + "…" + w.Hex[len(w.Hex)-8:]
}

// DisplaySelector renders the selector with its 0x prefix, or an empty
// string when no selector is present.
func (r Result) DisplaySelector() string {
	if r.Selector == "" {
		return ""
	}
	return "0x" + r.Selector
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
