package parse

import "strings"

// Result is the outcome of applying a parser to a token stream. It carries
// four independent pieces of information: whether the parse succeeded, the
// produced value, the remainder of the input, and the diagnostics gathered
// along the way. Messages keep the order they were attached in;
// expectations are a de-duplicated, insertion-ordered set of names.
//
// A Result is a value: every With* operation returns a new Result and
// leaves the receiver untouched.
type Result[T, V any] struct {
	ok           bool
	value        V
	remainder    TokenStream[T]
	messages     []Diagnostic
	expectations []string
}

// Success returns a successful result holding value, positioned at
// remainder.
func Success[T, V any](value V, remainder TokenStream[T]) Result[T, V] {
	return Result[T, V]{ok: true, value: value, remainder: remainder}
}

// Failure returns a failing result positioned at remainder, with no
// diagnostics attached yet.
func Failure[T, V any](remainder TokenStream[T]) Result[T, V] {
	return Result[T, V]{remainder: remainder}
}

// Ok reports whether the parse succeeded.
func (r Result[T, V]) Ok() bool {
	return r.ok
}

// Value returns the parsed value. It is only meaningful when Ok is true.
func (r Result[T, V]) Value() V {
	return r.value
}

// Remainder returns the position the parser reached, whether it succeeded
// or failed.
func (r Result[T, V]) Remainder() TokenStream[T] {
	return r.remainder
}

// Messages returns the diagnostics attached to the result, in order.
func (r Result[T, V]) Messages() []Diagnostic {
	return r.messages
}

// Expectations returns the names of what the parser wanted to see, without
// duplicates, in the order they were first attached.
func (r Result[T, V]) Expectations() []string {
	return r.expectations
}

// WithMessage returns a copy of r with m appended to the message list. A
// diagnostic with empty text is ignored.
func (r Result[T, V]) WithMessage(m Diagnostic) Result[T, V] {
	if m.Text == "" {
		return r
	}
	r.messages = appendMessages(r.messages, m)
	return r
}

// WithMessages appends each diagnostic in ms, skipping empty ones.
func (r Result[T, V]) WithMessages(ms []Diagnostic) Result[T, V] {
	for _, m := range ms {
		r = r.WithMessage(m)
	}
	return r
}

// WithExpectation returns a copy of r with name added to the expectation
// set. Empty and already-present names are ignored.
func (r Result[T, V]) WithExpectation(name string) Result[T, V] {
	r.expectations = addExpectation(r.expectations, name)
	return r
}

// WithExpectations adds each name in names, skipping empty and duplicate
// entries.
func (r Result[T, V]) WithExpectations(names []string) Result[T, V] {
	for _, name := range names {
		r = r.WithExpectation(name)
	}
	return r
}

// Or combines two attempts at the same input. A success wins outright,
// first before second. When both failed, the attempt that consumed more
// input wins, on the grounds that it is the better witness of what went
// wrong; when both consumed equally, the failure carries the diagnostics
// of both.
func (r Result[T, V]) Or(second Result[T, V]) Result[T, V] {
	if r.ok {
		return r
	}
	if second.ok {
		return second
	}
	switch {
	case r.remainder.Remaining() < second.remainder.Remaining():
		return r
	case second.remainder.Remaining() < r.remainder.Remaining():
		return second
	default:
		merged := r
		merged.messages = mergeMessages(r.messages, second.messages)
		merged.expectations = mergeExpectations(r.expectations, second.expectations)
		return merged
	}
}

// And combines two stages run in sequence: first, then second against
// first's remainder. The diagnostics of both stages are kept either way;
// the value and remainder come from the later stage. If either stage
// failed the combination is a failure.
func And[T, V, U any](first Result[T, V], second Result[T, U]) Result[T, U] {
	out := second
	out.messages = mergeMessages(first.messages, second.messages)
	out.expectations = mergeExpectations(first.expectations, second.expectations)
	if !first.ok {
		out.ok = false
		var zero U
		out.value = zero
	}
	return out
}

// OnSuccess replaces a successful result with f(r). A failure passes
// through unchanged apart from the value type.
func OnSuccess[T, V, U any](r Result[T, V], f func(Result[T, V]) Result[T, U]) Result[T, U] {
	if r.ok {
		return f(r)
	}
	return failureAs[T, V, U](r)
}

// failureAs re-types a failing result, keeping remainder and diagnostics.
func failureAs[T, V, U any](r Result[T, V]) Result[T, U] {
	return Result[T, U]{
		remainder:    r.remainder,
		messages:     r.messages,
		expectations: r.expectations,
	}
}

func appendMessages(ms []Diagnostic, extra ...Diagnostic) []Diagnostic {
	if len(extra) == 0 {
		return ms
	}
	out := make([]Diagnostic, len(ms), len(ms)+len(extra))
	copy(out, ms)
	return append(out, extra...)
}

func mergeMessages(first, second []Diagnostic) []Diagnostic {
	if len(second) == 0 {
		return first
	}
	if len(first) == 0 {
		return second
	}
	return appendMessages(first, second...)
}

func addExpectation(es []string, name string) []string {
	if name == "" {
		return es
	}
	for _, e := range es {
		if e == name {
			return es
		}
	}
	out := make([]string, len(es), len(es)+1)
	copy(out, es)
	return append(out, name)
}

func mergeExpectations(first, second []string) []string {
	if len(second) == 0 {
		return first
	}
	out := first
	for _, name := range second {
		out = addExpectation(out, name)
	}
	return out
}

// joinExpectations renders an expectation set for use in messages.
func joinExpectations(es []string) string {
	return strings.Join(es, ", ")
}
