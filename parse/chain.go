package parse

import (
	"github.com/dhamidi/pcomb/stream"
)

// Tuple3 is the output of Chain3.
type Tuple3[A, B, D any] struct {
	First  A
	Second B
	Third  D
}

// Tuple4 is the output of Chain4.
type Tuple4[A, B, D, E any] struct {
	First  A
	Second B
	Third  D
	Fourth E
}

// Tuple5 is the output of Chain5.
type Tuple5[A, B, D, E, F any] struct {
	First  A
	Second B
	Third  D
	Fourth E
	Fifth  F
}

// Chain3 runs three parsers in sequence. Like FollowedBy, which it is built
// from, it is not atomic.
func Chain3[C, A, B, D any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D]) Func[C, Tuple3[A, B, D]] {
	return Map(FollowedBy(p1, FollowedBy(p2, p3)), func(p Pair[A, Pair[B, D]]) Tuple3[A, B, D] {
		return Tuple3[A, B, D]{p.First, p.Second.First, p.Second.Second}
	})
}

// Chain4 runs four parsers in sequence.
func Chain4[C, A, B, D, E any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E]) Func[C, Tuple4[A, B, D, E]] {
	return Map(FollowedBy(p1, Chain3(p2, p3, p4)), func(p Pair[A, Tuple3[B, D, E]]) Tuple4[A, B, D, E] {
		return Tuple4[A, B, D, E]{p.First, p.Second.First, p.Second.Second, p.Second.Third}
	})
}

// Chain5 runs five parsers in sequence.
func Chain5[C, A, B, D, E, F any](p1 Parser[C, A], p2 Parser[C, B], p3 Parser[C, D], p4 Parser[C, E], p5 Parser[C, F]) Func[C, Tuple5[A, B, D, E, F]] {
	return Map(FollowedBy(p1, Chain4(p2, p3, p4, p5)), func(p Pair[A, Tuple4[B, D, E, F]]) Tuple5[A, B, D, E, F] {
		return Tuple5[A, B, D, E, F]{p.First, p.Second.First, p.Second.Second, p.Second.Third, p.Second.Fourth}
	})
}

// Seq runs any number of parsers with the same output type in sequence and
// collects their outputs.
func Seq[C, O any](ps ...Parser[C, O]) Func[C, []O] {
	return func(c *C) ([]O, bool) {
		out := make([]O, 0, len(ps))
		for _, p := range ps {
			o, ok := p.Parse(c)
			if !ok {
				return nil, false
			}
			out = append(out, o)
		}
		return out, true
	}
}

// Choice is Or over any number of alternatives: each is tried in order as
// long as the previous ones failed without consuming input.
func Choice[C stream.Cursor, O any](ps ...Parser[C, O]) Func[C, O] {
	steps := make([]func(*C) (O, bool), len(ps))
	for i, p := range ps {
		steps[i] = p.Parse
	}
	return choiceStep(steps)
}

// ChoiceMut is Choice for stateful parsers.
func ChoiceMut[C stream.Cursor, O any](ps ...ParserMut[C, O]) MutFunc[C, O] {
	steps := make([]func(*C) (O, bool), len(ps))
	for i, p := range ps {
		steps[i] = p.ParseMut
	}
	return MutFunc[C, O](choiceStep(steps))
}

func choiceStep[C stream.Cursor, O any](steps []func(*C) (O, bool)) Func[C, O] {
	return func(c *C) (O, bool) {
		for _, step := range steps {
			out, ok, consumed := checkConsumed(step, c)
			if ok || consumed {
				return out, ok
			}
		}
		return fail[O]()
	}
}
