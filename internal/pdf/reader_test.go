package pdf

import (
	"testing"

	"github.com/a3tai/pdf-outliner/internal/outline"
	"github.com/ledongthuc/pdf"
)

func TestBuildBlocks_MergesRunsOnSameLine(t *testing.T) {
	// Three runs on one baseline with a word gap between the second and
	// third: one span with a space inserted at the gap.
	texts := []pdf.Text{
		{S: "Hel", Font: "Helvetica", FontSize: 12, X: 100, Y: 700, W: 20},
		{S: "lo", Font: "Helvetica", FontSize: 12, X: 120, Y: 700, W: 12},
		{S: "world", Font: "Helvetica", FontSize: 12, X: 140, Y: 700, W: 30},
	}

	blocks := buildBlocks(texts, 792)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	lines := blocks[0].Lines
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	span := lines[0].Spans[0]
	if span.Text != "Hello world" {
		t.Errorf("expected merged text with word space, got %q", span.Text)
	}
	if span.FontName != "Helvetica" {
		t.Errorf("unexpected font name: %s", span.FontName)
	}
}

func TestBuildBlocks_SplitsOnFontChange(t *testing.T) {
	texts := []pdf.Text{
		{S: "Title", Font: "Helvetica-Bold", FontSize: 24, X: 100, Y: 700, W: 60},
		{S: "body", Font: "Helvetica", FontSize: 12, X: 100, Y: 650, W: 30},
	}

	blocks := buildBlocks(texts, 792)
	if len(blocks[0].Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(blocks[0].Lines))
	}
}

func TestBuildBlocks_SplitsOnBaselineChange(t *testing.T) {
	texts := []pdf.Text{
		{S: "first", Font: "Helvetica", FontSize: 12, X: 100, Y: 700, W: 30},
		{S: "second", Font: "Helvetica", FontSize: 12, X: 100, Y: 686, W: 40},
	}

	blocks := buildBlocks(texts, 792)
	if len(blocks[0].Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(blocks[0].Lines))
	}
}

func TestBuildBlocks_TopEdgeCoordinates(t *testing.T) {
	// Baseline y=700 from the bottom of a 792pt page with a 12pt font:
	// top edge sits at 792 - 700 - 12 = 80 from the top.
	texts := []pdf.Text{
		{S: "header", Font: "Helvetica", FontSize: 12, X: 100, Y: 700, W: 40},
	}

	blocks := buildBlocks(texts, 792)
	span := blocks[0].Lines[0].Spans[0]
	if span.BBox[1] != 80 {
		t.Errorf("expected top edge 80, got %f", span.BBox[1])
	}
}

func TestBuildBlocks_Empty(t *testing.T) {
	if blocks := buildBlocks(nil, 792); blocks != nil {
		t.Errorf("expected nil blocks for empty input, got %v", blocks)
	}

	// Runs with empty text contribute nothing.
	texts := []pdf.Text{{S: "", Font: "Helvetica", FontSize: 12, X: 0, Y: 0, W: 0}}
	blocks := buildBlocks(texts, 792)
	if len(blocks[0].Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(blocks[0].Lines))
	}
}

func TestStyleFlags(t *testing.T) {
	tests := []struct {
		font string
		want int
	}{
		{"Helvetica", 0},
		{"Helvetica-Bold", outline.StyleBold},
		{"Times-Italic", outline.StyleItalic},
		{"Times-BoldItalic", outline.StyleBold | outline.StyleItalic},
		{"ABCDEF+NotoSans-Black", outline.StyleBold},
		{"Courier-Oblique", outline.StyleItalic},
	}

	for _, tt := range tests {
		if got := styleFlags(tt.font); got != tt.want {
			t.Errorf("styleFlags(%s) = %d, want %d", tt.font, got, tt.want)
		}
	}
}

func TestReader_LoadPagesErrors(t *testing.T) {
	reader := NewReader(1024 * 1024)

	if _, err := reader.LoadPages(""); err == nil {
		t.Error("expected error for empty path")
	}

	if _, err := reader.LoadPages("/non/existent.pdf"); err == nil {
		t.Error("expected error for non-existent file")
	}
}
