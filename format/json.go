package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kombi/parse"
)

type JSONEncoder struct {
	w      io.Writer
	report *Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildReportData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonReport struct {
	Name        string           `json:"name,omitempty"`
	OK          bool             `json:"ok"`
	Value       any              `json:"value,omitempty"`
	Tokens      []jsonToken      `json:"tokens,omitempty"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

func (e *JSONEncoder) buildReportData() jsonReport {
	r := e.report
	data := jsonReport{
		Name:  r.Name,
		OK:    r.OK,
		Value: r.Value,
	}

	for _, tok := range r.Tokens {
		data.Tokens = append(data.Tokens, jsonToken{
			Kind:   tok.Kind,
			Text:   tok.Text,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
		})
	}

	for _, d := range r.Diagnostics {
		data.Diagnostics = append(data.Diagnostics, buildDiagnosticData(d))
	}

	return data
}

func buildDiagnosticData(d parse.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		Severity: d.Severity.String(),
		Text:     d.Text,
		Line:     d.Span.Start.Line,
		Column:   d.Span.Start.Column,
	}
}
