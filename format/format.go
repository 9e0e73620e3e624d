package format

import (
	"encoding"

	"github.com/dhamidi/kombi/lex"
	"github.com/dhamidi/kombi/parse"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// Report is what the CLI prints about one input: the tokens it scanned,
// the value it parsed when there is one, and the diagnostics.
type Report struct {
	Name        string
	OK          bool
	Value       any
	Tokens      []lex.Token
	Diagnostics []parse.Diagnostic
}
