// Package lex provides regex-driven lexical scanning for the parse
// combinators. A Lexer matches a fixed set of rules against the input,
// longest match first, and produces tokens carrying their source span.
package lex

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/dhamidi/kombi/parse"
)

// ErrorKind is the kind of tokens emitted for input no rule matches.
const ErrorKind = "ERROR"

// Token is a piece of matched input: the rule kind, the matched text, and
// where it sits in the source.
type Token struct {
	Kind string
	Text string
	Span parse.Span
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind
	}
	return t.Text
}

// Rule matches one kind of token. Patterns are anchored to the current
// scan position. Matches of a Skip rule are dropped by Tokenize, typically
// whitespace and comments.
type Rule struct {
	Kind    string
	Pattern *regexp.Regexp
	Skip    bool
}

// NewRule compiles pattern into a rule for kind. The pattern is anchored
// at the start of the remaining input.
func NewRule(kind, pattern string) (Rule, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %s: %w", kind, err)
	}
	return Rule{Kind: kind, Pattern: re}, nil
}

// MustRule is NewRule for patterns known at compile time; it panics on an
// invalid pattern.
func MustRule(kind, pattern string) Rule {
	r, err := NewRule(kind, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Skip builds a rule whose matches Tokenize drops.
func Skip(kind, pattern string) Rule {
	r := MustRule(kind, pattern)
	r.Skip = true
	return r
}

// Lexer tokenizes input using a fixed rule set.
type Lexer struct {
	rules []Rule
	input string
	pos   parse.Position
}

// NewLexer creates a lexer over input.
func NewLexer(rules []Rule, input string) *Lexer {
	return &Lexer{
		rules: rules,
		input: input,
		pos:   parse.StartPosition(),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() parse.Position {
	return l.pos
}

// NextToken returns the next token and the rule that produced it. All
// rules are tried at the current position and the longest match wins; rule
// order breaks ties. Input no rule matches is emitted one character at a
// time as ErrorKind tokens. At the end of input the error is io.EOF.
func (l *Lexer) NextToken() (Token, *Rule, error) {
	if l.pos.Offset >= len(l.input) {
		return Token{Kind: "EOF", Span: parse.Span{Start: l.pos, End: l.pos}}, nil, io.EOF
	}

	rest := l.input[l.pos.Offset:]

	var best *Rule
	bestLen := -1
	for i := range l.rules {
		loc := l.rules[i].Pattern.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}
		if loc[1] > bestLen {
			bestLen = loc[1]
			best = &l.rules[i]
		}
	}

	start := l.pos
	if best == nil || bestLen == 0 {
		_, size := utf8.DecodeRuneInString(rest)
		text := rest[:size]
		l.pos = l.pos.AddString(text)
		return Token{
			Kind: ErrorKind,
			Text: text,
			Span: parse.Span{Start: start, End: l.pos},
		}, nil, nil
	}

	text := rest[:bestLen]
	l.pos = l.pos.AddString(text)
	return Token{
		Kind: best.Kind,
		Text: text,
		Span: parse.Span{Start: start, End: l.pos},
	}, best, nil
}

// Tokenize reads the whole input, dropping the matches of skip rules.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, rule, err := l.NextToken()
		if err == io.EOF {
			return tokens
		}
		if rule != nil && rule.Skip {
			continue
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize scans input with rules and returns the non-skipped tokens.
func Tokenize(rules []Rule, input string) []Token {
	return NewLexer(rules, input).Tokenize()
}

// Stream scans input and wraps the tokens in a parse.TokenStream.
func Stream(rules []Rule, input string) parse.TokenStream[Token] {
	return parse.NewStream(Tokenize(rules, input))
}
