package parse

import "fmt"

// Once wraps p's value in a single-element slice.
func Once[T, V any](p Parser[T, V]) Parser[T, []V] {
	requireParser(p, "Once")
	return Select(p, func(v V) []V {
		return []V{v}
	})
}

// Maybe tries p and succeeds either way: with a one-element slice when p
// matched, with an empty slice when it did not. The diagnostics of a
// failed attempt are dropped, because the absence is legitimate.
func Maybe[T, V any](p Parser[T, V]) Parser[T, []V] {
	requireParser(p, "Maybe")
	return Otherwise(Once(p), Succeed[T]([]V{}))
}

// Many applies p as often as it matches, collecting the values. It always
// succeeds; the remainder is where the last successful application
// stopped, or the original input if there was none. Messages of the
// successful applications are kept in order, the diagnostics of the final
// failed attempt are discarded.
//
// An application that succeeds without consuming anything is collected
// once and then the loop stops, so Many terminates even over
// zero-consumption parsers.
func Many[T, V any](p Parser[T, V]) Parser[T, []V] {
	requireParser(p, "Many")
	return func(input TokenStream[T]) Result[T, []V] {
		requireInput(input)
		var (
			values       []V
			messages     []Diagnostic
			expectations []string
		)
		remainder := input
		for {
			r := p(remainder)
			if !r.Ok() {
				break
			}
			values = append(values, r.Value())
			messages = mergeMessages(messages, r.Messages())
			expectations = mergeExpectations(expectations, r.Expectations())
			stalled := r.Remainder().Remaining() == remainder.Remaining()
			remainder = r.Remainder()
			if stalled {
				break
			}
		}
		return Result[T, []V]{
			ok:           true,
			value:        values,
			remainder:    remainder,
			messages:     messages,
			expectations: expectations,
		}
	}
}

// AtLeastOnce is Many with a mandatory first match. It fails exactly when
// the first application of p fails, keeping that failure's diagnostics.
func AtLeastOnce[T, V any](p Parser[T, V]) Parser[T, []V] {
	requireParser(p, "AtLeastOnce")
	return Then(Once(p), func(first []V) Parser[T, []V] {
		return Select(Many(p), func(rest []V) []V {
			return concatValues(first, rest)
		})
	})
}

// Until applies p until stop matches, then consumes stop and returns the
// values collected from p. It fails when stop never matches before the
// input runs out.
func Until[T, V, U any](p Parser[T, V], stop Parser[T, U]) Parser[T, []V] {
	requireParser(p, "Until")
	requireParser(stop, "Until")
	return ThenDiscard(Many(Except(p, stop)), stop)
}

// Take applies p exactly n times. It fails as soon as one application
// fails, reporting that failure's messages under a derived expectation;
// n = 0 succeeds immediately with an empty slice. A negative n is a
// contract violation.
func Take[T, V any](p Parser[T, V], n int) Parser[T, []V] {
	requireParser(p, "Take")
	if n < 0 {
		panic(fmt.Sprintf("parse: Take: negative count %d", n))
	}
	return func(input TokenStream[T]) Result[T, []V] {
		requireInput(input)
		var (
			values       []V
			messages     []Diagnostic
			expectations []string
		)
		remainder := input
		for i := 0; i < n; i++ {
			r := p(remainder)
			if !r.Ok() {
				expect := fmt.Sprintf("%d repetitions", n)
				if joined := joinExpectations(r.Expectations()); joined != "" {
					expect = fmt.Sprintf("%d repetitions of %s", n, joined)
				}
				return Result[T, []V]{
					remainder:    r.Remainder(),
					messages:     mergeMessages(messages, r.Messages()),
					expectations: []string{expect},
				}
			}
			values = append(values, r.Value())
			messages = mergeMessages(messages, r.Messages())
			expectations = mergeExpectations(expectations, r.Expectations())
			remainder = r.Remainder()
		}
		return Result[T, []V]{
			ok:           true,
			value:        values,
			remainder:    remainder,
			messages:     messages,
			expectations: expectations,
		}
	}
}

// Concat runs a then b and joins their slices.
func Concat[T, V any](a, b Parser[T, []V]) Parser[T, []V] {
	requireParser(a, "Concat")
	requireParser(b, "Concat")
	return Then(a, func(xs []V) Parser[T, []V] {
		return Select(b, func(ys []V) []V {
			return concatValues(xs, ys)
		})
	})
}

func concatValues[V any](xs, ys []V) []V {
	if len(ys) == 0 {
		return xs
	}
	out := make([]V, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}
