package position

import (
	"strings"
	"testing"
)

func TestPositionString(t *testing.T) {
	p := Position{Filename: "/tmp/decls.txt", Line: 3, Column: 7, Offset: 20}
	if got := p.String(); got != "decls.txt:3:7" {
		t.Fatalf("unexpected: %q", got)
	}
	p.Filename = ""
	if got := p.String(); got != "3:7" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestSpanValidityAndLength(t *testing.T) {
	s := Span{
		Start: Position{Line: 1, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 4, Offset: 3},
	}
	if !s.IsValid() {
		t.Fatal("expected valid span")
	}
	if s.Length() != 3 {
		t.Fatalf("expected length 3, got %d", s.Length())
	}
	if s.String() != "1:1-4" {
		t.Fatalf("unexpected span string %q", s.String())
	}

	bad := Span{Start: s.End, End: s.Start}
	if bad.IsValid() || bad.Length() != 0 {
		t.Fatal("reversed span must be invalid with zero length")
	}
}

func TestSourceFilePositionFromOffset(t *testing.T) {
	sf := NewSourceFile("a.txt", "int x;\nchar c;")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{7, 2, 1},
		{12, 2, 6},
	}

	for i, tt := range tests {
		pos := sf.PositionFromOffset(tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Fatalf("tests[%d] - offset %d: got %d:%d, expected %d:%d",
				i, tt.offset, pos.Line, pos.Column, tt.line, tt.column)
		}
	}

	if sf.PositionFromOffset(-1).IsValid() {
		t.Fatal("negative offset must yield invalid position")
	}
	if sf.GetLine(2) != "char c;" || sf.GetLine(3) != "" {
		t.Fatal("GetLine mismatch")
	}
}

func TestHighlight(t *testing.T) {
	sf := NewSourceFile("", "int x # 5;")
	span := Span{
		Start: Position{Line: 1, Column: 7, Offset: 6},
		End:   Position{Line: 1, Column: 8, Offset: 7},
	}
	out := Highlight(sf, span)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "   1 | int x # 5;" {
		t.Fatalf("unexpected source line %q", lines[0])
	}
	if lines[1] != "     |       ^" {
		t.Fatalf("unexpected marker line %q", lines[1])
	}
}

func TestHighlightEmptySpanAtEnd(t *testing.T) {
	sf := NewSourceFile("", "int x")
	p := Position{Line: 1, Column: 6, Offset: 5}
	out := Highlight(sf, Span{Start: p, End: p})
	if !strings.HasSuffix(out, "     |      ^\n") {
		t.Fatalf("unexpected highlight %q", out)
	}
	if Highlight(nil, Span{Start: p, End: p}) != "" {
		t.Fatal("nil file must render nothing")
	}
}
