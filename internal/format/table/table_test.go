package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "ls", "list"},
		{"10", "git status", "tree"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		" 1  ls          list",
		"10  git status  tree",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	rows := [][]string{
		{"🥢", styled},
		{"x", "abc"},
	}
	got := FormatWithGap(rows, nil, " ")
	if CellWidth(got[0]) != CellWidth(got[1])-1 {
		t.Fatalf("expected first row one cell shorter, got %d and %d", CellWidth(got[0]), CellWidth(got[1]))
	}
	if CellWidth("🥢") != 2 {
		t.Fatalf("expected wide rune to occupy 2 cells, got %d", CellWidth("🥢"))
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for no rows, got %v", out)
	}
}
