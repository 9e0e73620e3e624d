// Package parse provides a parser-combinator core over finite token
// streams. A parser is a plain function from a TokenStream to a Result;
// combinators build larger parsers out of smaller ones without any shared
// state, so parser values are safe to reuse and to call from multiple
// goroutines.
//
// Parse failures are values, never errors or panics: a failing Result
// carries the messages and expectations gathered on the way, and every
// combinator can recover from a child's failure. Panics are reserved for
// contract violations, such as handing a parser a nil stream or a
// combinator a nil parser.
//
// The token type is parametric. The only thing the core asks of a token is
// that it renders to something readable with the fmt package, for use in
// messages like "Unexpected token x.".
package parse

// Parser consumes tokens from a stream and produces a Result. Parsers
// never mutate their input stream.
type Parser[T, V any] func(input TokenStream[T]) Result[T, V]

func requireInput[T any](input TokenStream[T]) {
	if input == nil {
		panic("parse: nil token stream")
	}
}

func requireParser[T, V any](p Parser[T, V], combinator string) {
	if p == nil {
		panic("parse: " + combinator + ": nil parser")
	}
}

// Succeed returns a parser that consumes nothing and always produces
// value.
func Succeed[T, V any](value V) Parser[T, V] {
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		return Success[T](value, input)
	}
}

// Fail returns a parser that consumes nothing and always fails, with no
// diagnostics attached. Combine with WithMessage to describe the failure.
func Fail[T, V any]() Parser[T, V] {
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		return Failure[T, V](input)
	}
}

// Token returns a parser for a single token satisfying pred. At the end of
// input it fails without consuming; on a non-matching token it fails with
// the offending token in the message.
func Token[T any](pred func(T) bool) Parser[T, T] {
	if pred == nil {
		panic("parse: Token: nil predicate")
	}
	return func(input TokenStream[T]) Result[T, T] {
		requireInput(input)
		if input.AtEnd() {
			return Failure[T, T](input).WithMessage(Errorf("Unexpected end of input."))
		}
		tok := input.Current()
		if pred(tok) {
			return Success[T](tok, input.Advance())
		}
		return Failure[T, T](input).WithMessage(Errorf("Unexpected token %v.", tok))
	}
}

// End returns a parser that succeeds exactly at the end of input. It never
// consumes anything.
func End[T any]() Parser[T, struct{}] {
	return func(input TokenStream[T]) Result[T, struct{}] {
		requireInput(input)
		if input.AtEnd() {
			return Success[T](struct{}{}, input).WithExpectation("end of input")
		}
		return Failure[T, struct{}](input).
			WithMessage(Errorf("Unexpected token %v.", input.Current())).
			WithExpectation("end of input")
	}
}
