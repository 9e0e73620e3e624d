package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder writes one tab-separated line per token and diagnostic,
// suitable for grep and awk.
type LineEncoder struct {
	w      io.Writer
	report *Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	for _, tok := range r.Tokens {
		fmt.Fprintf(&sb, "token\t%s\t%s\t%d:%d\n",
			tok.Kind,
			tok.Text,
			tok.Span.Start.Line,
			tok.Span.Start.Column,
		)
	}

	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "diag\t%s\t%d:%d\t%s\n",
			d.Severity,
			d.Span.Start.Line,
			d.Span.Start.Column,
			d.Text,
		)
	}

	if r.OK && r.Value != nil {
		fmt.Fprintf(&sb, "value\t%v\n", r.Value)
	}

	return []byte(sb.String()), nil
}
