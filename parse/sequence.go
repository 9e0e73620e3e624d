package parse

// Then runs p and, when it succeeds, feeds its value to f and runs the
// returned parser against the remainder. The messages of p precede those
// of the continuation; expectations are unioned. A failure of p passes
// through.
func Then[T, U, V any](p Parser[T, U], f func(U) Parser[T, V]) Parser[T, V] {
	requireParser(p, "Then")
	if f == nil {
		panic("parse: Then: nil continuation")
	}
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		first := p(input)
		if !first.Ok() {
			return failureAs[T, U, V](first)
		}
		next := f(first.Value())
		requireParser(next, "Then")
		return And(first, next(first.Remainder()))
	}
}

// ThenDiscard runs p then q and keeps p's value, discarding q's. The
// diagnostics of both are kept; the remainder is where q stopped.
func ThenDiscard[T, U, V any](p Parser[T, U], q Parser[T, V]) Parser[T, U] {
	requireParser(p, "ThenDiscard")
	requireParser(q, "ThenDiscard")
	return func(input TokenStream[T]) Result[T, U] {
		requireInput(input)
		first := p(input)
		if !first.Ok() {
			return first
		}
		second := q(first.Remainder())
		combined := And(first, second)
		out := Result[T, U]{
			ok:           combined.ok,
			remainder:    combined.remainder,
			messages:     combined.messages,
			expectations: combined.expectations,
		}
		if combined.ok {
			out.value = first.Value()
		}
		return out
	}
}

// Select maps a parser's value through f.
func Select[T, U, V any](p Parser[T, U], f func(U) V) Parser[T, V] {
	requireParser(p, "Select")
	if f == nil {
		panic("parse: Select: nil selector")
	}
	return Then(p, func(v U) Parser[T, V] {
		return Succeed[T](f(v))
	})
}

// SelectMany binds p through f and projects both values through g. It is
// the query-style composition operator: for each u parsed by p, f(u)
// parses a v, and g(u, v) builds the final value.
func SelectMany[T, U, V, W any](p Parser[T, U], f func(U) Parser[T, V], g func(U, V) W) Parser[T, W] {
	requireParser(p, "SelectMany")
	if f == nil {
		panic("parse: SelectMany: nil binder")
	}
	if g == nil {
		panic("parse: SelectMany: nil projector")
	}
	return Then(p, func(u U) Parser[T, W] {
		return Select(f(u), func(v V) W {
			return g(u, v)
		})
	})
}

// Where runs p and then checks its value against pred. When the predicate
// rejects the value, the consumption is cancelled: the failure is reported
// at the original input, not at p's remainder.
func Where[T, V any](p Parser[T, V], pred func(V) bool) Parser[T, V] {
	requireParser(p, "Where")
	if pred == nil {
		panic("parse: Where: nil predicate")
	}
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		r := p(input)
		if !r.Ok() || pred(r.Value()) {
			return r
		}
		out := Failure[T, V](input).
			WithMessages(r.Messages()).
			WithExpectations(r.Expectations())
		joined := joinExpectations(r.Expectations())
		if joined == "" {
			joined = "token"
		}
		return out.WithMessage(Errorf("Unexpected %s", joined))
	}
}

// Named attaches name to the expectations of whatever p produces, success
// or failure.
func Named[T, V any](p Parser[T, V], name string) Parser[T, V] {
	requireParser(p, "Named")
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		return p(input).WithExpectation(name)
	}
}

// WithMessage appends m to the messages of whatever p produces, success or
// failure.
func WithMessage[T, V any](p Parser[T, V], m Diagnostic) Parser[T, V] {
	requireParser(p, "WithMessage")
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		return p(input).WithMessage(m)
	}
}
