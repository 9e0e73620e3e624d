package calc

import (
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1", 1},
		{"42", 42},
		{"3.5", 3.5},
		{"1+2", 3},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2-1-1", 0},
		{"8/2/2", 2},
		{"10/4", 2.5},
		{"-5", -5},
		{"-(2+3)", -5},
		{"--4", 4},
		{" 1 +\n2 ", 3},
		{"2*-3", -6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string // substring of the error
	}{
		{"", "Unexpected end of input."},
		{"1+", "Unexpected token +."},
		{"1 2", "Unexpected token 2."},
		{"(1+2", "Unexpected end of input."},
		{"1/0", "Division by zero."},
		{"1 ? 2", "Unexpected token ?."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Eval(tt.input)
			if err == nil {
				t.Fatalf("Eval(%q) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Eval(%q) error = %q, want substring %q", tt.input, err.Error(), tt.want)
			}
		})
	}
}

func TestDiagnosticsCarryPositions(t *testing.T) {
	// The suffix starting at the first "+" fails because its operand is the
	// second "+", and is backtracked, so the parse stops after "1" and the
	// diagnostics point at the first "+".
	input := "1 +\n+ 2"
	r := Parse(input)
	if r.Ok() {
		t.Fatal("parse should fail")
	}

	diags := Diagnostics(input, r)
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}
	for _, d := range diags {
		if d.Span.Start.Line != 1 || d.Span.Start.Column != 3 {
			t.Errorf("diagnostic %q at %s, want 1:3", d.Text, d.Span.Start)
		}
	}
}

func TestDiagnosticsAtEndOfInput(t *testing.T) {
	input := "("
	r := Parse(input)
	if r.Ok() {
		t.Fatal("parse should fail")
	}

	diags := Diagnostics(input, r)
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}
	last := diags[len(diags)-1]
	if last.Span.Start.Offset != len(input) {
		t.Errorf("diagnostic pinned at offset %d, want %d", last.Span.Start.Offset, len(input))
	}
}

func TestDivisionByZeroStillParses(t *testing.T) {
	r := Parse("1/0")
	if !r.Ok() {
		t.Fatal("1/0 should parse; the error is a diagnostic, not a failure")
	}
	found := false
	for _, m := range r.Messages() {
		if m.Text == "Division by zero." {
			found = true
			if m.Span.Start.Column != 2 {
				t.Errorf("division diagnostic at %s, want column 2", m.Span.Start)
			}
		}
	}
	if !found {
		t.Error("expected a Division by zero. message")
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens("(1 + 2.5) * x")
	want := []string{"lparen", "number", "plus", "number", "rparen", "star", "ERROR"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("tokens[%d].Kind = %s, want %s", i, tokens[i].Kind, k)
		}
	}
}
