// Package calc implements a small arithmetic expression language on top of
// the parse combinators and the lex scanner. It exists to exercise the
// whole pipeline: lexing, combinator-built grammar, diagnostics, and the
// LSP surface.
package calc

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dhamidi/kombi/lex"
	"github.com/dhamidi/kombi/parse"
)

// Rules returns the lexical rules of the expression language.
func Rules() []lex.Rule {
	return []lex.Rule{
		lex.Skip("space", `[ \t\r\n]+`),
		lex.MustRule("number", `[0-9]+(\.[0-9]+)?`),
		lex.MustRule("plus", `\+`),
		lex.MustRule("minus", `-`),
		lex.MustRule("star", `\*`),
		lex.MustRule("slash", `/`),
		lex.MustRule("lparen", `\(`),
		lex.MustRule("rparen", `\)`),
	}
}

// Tokens scans input with the calc rules.
func Tokens(input string) []lex.Token {
	return lex.Tokenize(Rules(), input)
}

// Parser returns the full expression parser: an expression followed by the
// end of input.
func Parser() parse.Parser[lex.Token, float64] {
	return parse.ThenDiscard(parse.Parser[lex.Token, float64](expression), parse.End[lex.Token]())
}

// Parse evaluates input as an arithmetic expression.
func Parse(input string) parse.Result[lex.Token, float64] {
	return Parser()(lex.Stream(Rules(), input))
}

// Eval is Parse with the diagnostics flattened into an error. A parse
// that succeeds but carries Error-severity messages, such as a division
// by zero, also reports as an error.
func Eval(input string) (float64, error) {
	r := Parse(input)
	diags := Diagnostics(input, r)
	if r.Ok() && !hasErrors(diags) {
		return r.Value(), nil
	}
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.String())
	}
	return 0, errors.New(strings.Join(lines, "\n"))
}

func hasErrors(diags []parse.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == parse.Error {
			return true
		}
	}
	return false
}

// Diagnostics renders a result for display: messages without a span are
// pinned to the failure position, and a failure with expectations gains a
// trailing "Expected ..." summary.
func Diagnostics(input string, r parse.Result[lex.Token, float64]) []parse.Diagnostic {
	if r.Ok() {
		return r.Messages()
	}

	var span parse.Span
	if rem := r.Remainder(); rem != nil && !rem.AtEnd() {
		span = rem.Current().Span
	} else {
		end := parse.StartPosition().AddString(input)
		span = parse.Span{Start: end, End: end}
	}

	var out []parse.Diagnostic
	for _, m := range r.Messages() {
		if m.Span.Empty() && m.Span.Start.Line == 0 {
			m.Span = span
		}
		out = append(out, m)
	}
	if es := r.Expectations(); len(es) > 0 {
		out = append(out, parse.Diagnostic{
			Severity: parse.Error,
			Text:     "Expected " + strings.Join(es, ", ") + ".",
			Span:     span,
		})
	}
	if len(out) == 0 {
		out = append(out, parse.Diagnostic{Severity: parse.Error, Text: "Parse failed.", Span: span})
	}
	return out
}

// suffix is one "+ term" or "* factor" style continuation of a left
// associative chain.
type suffix struct {
	op    string
	value float64
}

func fold(first float64, rest []suffix) float64 {
	acc := first
	for _, s := range rest {
		switch s.op {
		case "plus":
			acc += s.value
		case "minus":
			acc -= s.value
		case "star":
			acc *= s.value
		case "slash":
			acc /= s.value
		}
	}
	return acc
}

func kind(k string) parse.Parser[lex.Token, lex.Token] {
	return parse.Named(parse.Token(func(t lex.Token) bool { return t.Kind == k }), k)
}

func number() parse.Parser[lex.Token, float64] {
	return parse.Select(kind("number"), func(t lex.Token) float64 {
		v, _ := strconv.ParseFloat(t.Text, 64)
		return v
	})
}

// expression := term (("+" | "-") term)*
func expression(input parse.TokenStream[lex.Token]) parse.Result[lex.Token, float64] {
	p := parse.Then(parse.Parser[lex.Token, float64](term), func(first float64) parse.Parser[lex.Token, float64] {
		return parse.Select(parse.Many(addSuffix()), func(rest []suffix) float64 {
			return fold(first, rest)
		})
	})
	return p(input)
}

func addSuffix() parse.Parser[lex.Token, suffix] {
	return parse.SelectMany(
		parse.Otherwise(kind("plus"), kind("minus")),
		func(lex.Token) parse.Parser[lex.Token, float64] {
			return parse.Parser[lex.Token, float64](term)
		},
		func(op lex.Token, v float64) suffix {
			return suffix{op: op.Kind, value: v}
		},
	)
}

// term := factor (("*" | "/") factor)*
func term(input parse.TokenStream[lex.Token]) parse.Result[lex.Token, float64] {
	p := parse.Then(parse.Parser[lex.Token, float64](factor), func(first float64) parse.Parser[lex.Token, float64] {
		return parse.Select(parse.Many(mulSuffix()), func(rest []suffix) float64 {
			return fold(first, rest)
		})
	})
	return p(input)
}

func mulSuffix() parse.Parser[lex.Token, suffix] {
	return parse.Then(parse.Otherwise(kind("star"), kind("slash")), func(op lex.Token) parse.Parser[lex.Token, suffix] {
		return parse.Then(parse.Parser[lex.Token, float64](factor), func(v float64) parse.Parser[lex.Token, suffix] {
			next := parse.Succeed[lex.Token](suffix{op: op.Kind, value: v})
			if op.Kind == "slash" && v == 0 {
				// The parse goes through; the message makes Eval and the
				// LSP surface report it.
				return parse.WithMessage(next, parse.Diagnostic{
					Severity: parse.Error,
					Text:     "Division by zero.",
					Span:     op.Span,
				})
			}
			return next
		})
	})
}

// factor := number | "(" expression ")" | "-" factor
func factor(input parse.TokenStream[lex.Token]) parse.Result[lex.Token, float64] {
	p := parse.Otherwise(number(), parse.Otherwise(group(), negation()))
	return p(input)
}

func group() parse.Parser[lex.Token, float64] {
	return parse.Then(kind("lparen"), func(lex.Token) parse.Parser[lex.Token, float64] {
		return parse.ThenDiscard(parse.Parser[lex.Token, float64](expression), kind("rparen"))
	})
}

func negation() parse.Parser[lex.Token, float64] {
	return parse.Then(kind("minus"), func(lex.Token) parse.Parser[lex.Token, float64] {
		return parse.Select(parse.Parser[lex.Token, float64](factor), func(v float64) float64 {
			return -v
		})
	})
}
