package frame

import (
	"reflect"
	"testing"

	"github.com/hexfield/evmplay/internal/parser"
)

func TestNewEntryDefaults(t *testing.T) {
	e := NewEntry(3)
	if e.Index != 3 {
		t.Fatalf("expected index 3, got %d", e.Index)
	}
	if e.Label != "block3" {
		t.Fatalf("expected default label block3, got %q", e.Label)
	}
	if !e.Result.Empty() {
		t.Fatalf("expected empty result on a fresh entry")
	}
}

func TestEntrySettersReplaceWholesale(t *testing.T) {
	e := NewEntry(0)
	first := parser.Parse("0xdeadbeef")
	second := parser.Parse("0x00")
	e.SetResult(first)
	e.SetResult(second)
	if !reflect.DeepEqual(e.Result, second) {
		t.Fatalf("expected last write to win, got %#v", e.Result)
	}
	e.SetLabel("calldata")
	if e.Label != "calldata" {
		t.Fatalf("expected relabel, got %q", e.Label)
	}
}
