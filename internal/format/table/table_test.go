package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"0", "0xab…cd", "padded"},
		{"32", "0xdeadbeef…cafef00d", ""},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		" 0  0xab…cd              padded",
		"32  0xdeadbeef…cafef00d",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %q", got)
	}
}

func TestFormatSingleColumn(t *testing.T) {
	got := Format([][]string{{"one"}, {"three"}}, nil)
	want := []string{"one", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}
