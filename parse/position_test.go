package parse

import "testing"

func TestPositionAddString(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		line   int
		column int
	}{
		{"", 0, 1, 1},
		{"abc", 3, 1, 4},
		{"a\nb", 3, 2, 2},
		{"\n\n", 2, 3, 1},
		{"one\ntwo\n", 8, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := StartPosition().AddString(tt.input)
			if got.Offset != tt.offset || got.Line != tt.line || got.Column != tt.column {
				t.Errorf("AddString(%q) = %d %d:%d, want %d %d:%d",
					tt.input, got.Offset, got.Line, got.Column, tt.offset, tt.line, tt.column)
			}
		})
	}
}

func TestSpanEmpty(t *testing.T) {
	start := StartPosition()
	if !(Span{Start: start, End: start}).Empty() {
		t.Error("span with equal offsets should be empty")
	}
	end := start.AddString("x")
	if (Span{Start: start, End: end}).Empty() {
		t.Error("span covering one character should not be empty")
	}
}

func TestDiagnosticString(t *testing.T) {
	plain := Errorf("Unexpected token x.")
	if got := plain.String(); got != "error: Unexpected token x." {
		t.Errorf("String() = %q", got)
	}

	pos := StartPosition().AddString("ab\nc")
	spanned := Diagnostic{
		Severity: Warning,
		Text:     "odd spacing",
		Span:     Span{Start: pos, End: pos.AddString("x")},
	}
	if got := spanned.String(); got != "2:2: warning: odd spacing" {
		t.Errorf("String() = %q", got)
	}
}
