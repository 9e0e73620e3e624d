package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/kombi/lex"
	"github.com/dhamidi/kombi/parse"
)

func sampleReport() *Report {
	start := parse.StartPosition()
	after := start.AddString("12")
	return &Report{
		Name:  "sample",
		OK:    true,
		Value: 12.0,
		Tokens: []lex.Token{
			{Kind: "number", Text: "12", Span: parse.Span{Start: start, End: after}},
		},
		Diagnostics: []parse.Diagnostic{
			{Severity: parse.Warning, Text: "odd spacing", Span: parse.Span{Start: after, End: after}},
		},
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(sampleReport()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded struct {
		Name   string `json:"name"`
		OK     bool   `json:"ok"`
		Value  any    `json:"value"`
		Tokens []struct {
			Kind   string `json:"kind"`
			Text   string `json:"text"`
			Line   int    `json:"line"`
			Column int    `json:"column"`
		} `json:"tokens"`
		Diagnostics []struct {
			Severity string `json:"severity"`
			Text     string `json:"text"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if decoded.Name != "sample" || !decoded.OK {
		t.Errorf("name/ok = %q/%v", decoded.Name, decoded.OK)
	}
	if len(decoded.Tokens) != 1 || decoded.Tokens[0].Kind != "number" || decoded.Tokens[0].Line != 1 {
		t.Errorf("tokens = %+v", decoded.Tokens)
	}
	if len(decoded.Diagnostics) != 1 || decoded.Diagnostics[0].Severity != "warning" {
		t.Errorf("diagnostics = %+v", decoded.Diagnostics)
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(sampleReport()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"token\tnumber\t12\t1:1",
		"diag\twarning\t1:3\todd spacing",
		"value\t12",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
