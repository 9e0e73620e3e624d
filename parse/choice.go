package parse

// Otherwise tries first and falls back to second against the same input.
// When both fail, the failure that consumed more input wins; an even tie
// merges the diagnostics of both (see Result.Or).
func Otherwise[T, V any](first, second Parser[T, V]) Parser[T, V] {
	requireParser(first, "Otherwise")
	requireParser(second, "Otherwise")
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		a := first(input)
		if a.Ok() {
			return a
		}
		return a.Or(second(input))
	}
}

// Not inverts p without consuming input: it succeeds with a unit value
// when p fails, and fails when p succeeds. Either way the remainder is the
// original input.
func Not[T, V any](p Parser[T, V]) Parser[T, struct{}] {
	requireParser(p, "Not")
	return func(input TokenStream[T]) Result[T, struct{}] {
		requireInput(input)
		r := p(input)
		if !r.Ok() {
			return Success[T](struct{}{}, input)
		}
		text := "Unexpected token."
		if joined := joinExpectations(r.Expectations()); joined != "" {
			text = "Unexpected " + joined + "."
		}
		return Failure[T, struct{}](input).WithMessage(Errorf("%s", text))
	}
}

// Except runs p only where excluded does not match. When excluded succeeds
// at the current input the whole parser fails without consuming; otherwise
// p runs against the original input.
func Except[T, V, U any](p Parser[T, V], excluded Parser[T, U]) Parser[T, V] {
	requireParser(p, "Except")
	requireParser(excluded, "Except")
	return func(input TokenStream[T]) Result[T, V] {
		requireInput(input)
		if e := excluded(input); e.Ok() {
			return Failure[T, V](input).WithMessage(Errorf("Parser should not have succeeded."))
		}
		return p(input)
	}
}
