package parse

import (
	"iter"

	"github.com/dhamidi/pcomb/stream"
)

// Iter is the lazy, single-pass sequence of outputs a repetition hands to
// its fold function. It is only valid while the fold function runs, except
// when it comes from IterMany.
//
// Iteration stops at the first inner failure. If that failure consumed
// input, the whole repetition fails once the fold returns, whatever the fold
// produced.
//
// When the inner parser is pure, a success that consumed nothing is yielded
// and then ends the iteration: invoked again at the same position it would
// succeed the same way forever. A stateful parser may legitimately produce
// outputs without consuming, so it is invoked until it fails.
type Iter[C stream.Cursor, O any] struct {
	c     *C
	first func(*C) (O, bool)
	rest  func(*C) (O, bool)
	pure  bool

	pending    O
	hasPending bool

	started bool
	done    bool
	aborted bool
}

// Next parses the next output.
func (it *Iter[C, O]) Next() (O, bool) {
	if it.hasPending {
		out := it.pending
		var zero O
		it.pending, it.hasPending = zero, false
		return out, true
	}
	if it.done {
		return fail[O]()
	}

	step := it.rest
	if !it.started {
		step, it.started = it.first, true
	}

	out, ok, consumed := checkConsumed(step, it.c)
	switch {
	case !ok:
		it.done = true
		it.aborted = consumed
		return fail[O]()
	case !consumed && it.pure:
		it.done = true
	}
	return out, true
}

// All returns the remaining outputs for use with range.
func (it *Iter[C, O]) All() iter.Seq[O] {
	return func(yield func(O) bool) {
		for {
			out, ok := it.Next()
			if !ok || !yield(out) {
				return
			}
		}
	}
}

// Aborted reports whether iteration stopped at a failure that consumed
// input.
func (it *Iter[C, O]) Aborted() bool {
	return it.aborted
}

// drain consumes the remaining outputs without keeping them.
func (it *Iter[C, O]) drain() {
	for {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}

// release drops the iterator's handles on the cursor and the inner parser.
func (it *Iter[C, O]) release() {
	var zero O
	it.c, it.first, it.rest = nil, nil, nil
	it.pending, it.hasPending = zero, false
	it.done = true
}

// repeat is the engine behind Many, Many1 and SepBy. first reads the first
// element, rest every following one. The iteration state lives only for the
// duration of this call and holds the only handle on the inner steps.
func repeat[C stream.Cursor, A, B any](
	c *C,
	first, rest func(*C) (A, bool),
	pure, atLeastOne bool,
	fold func(*Iter[C, A]) (B, bool),
) (B, bool) {
	it := &Iter[C, A]{c: c, first: first, rest: rest, pure: pure}
	defer it.release()

	if atLeastOne {
		out, ok := it.Next()
		if !ok {
			return fail[B]()
		}
		it.pending, it.hasPending = out, true
	}

	result, ok := fold(it)
	if it.aborted || !ok {
		return fail[B]()
	}
	return result, true
}

func collect[C stream.Cursor, O any](it *Iter[C, O]) ([]O, bool) {
	var out []O
	for o := range it.All() {
		out = append(out, o)
	}
	return out, true
}

func skip[C stream.Cursor, O any](it *Iter[C, O]) (Unit, bool) {
	it.drain()
	return Unit{}, true
}

// IterMany returns an iterator over the outputs of repeated invocations of
// p on c. Range over its All method; iteration stops at the first failure
// and advances c as outputs are consumed. Afterwards Aborted reports whether
// that failure consumed input. The iterator can be ranged over once.
func IterMany[C stream.Cursor, O any](p ParserMut[C, O], c *C) *Iter[C, O] {
	return &Iter[C, O]{c: c, first: p.ParseMut, rest: p.ParseMut}
}
