package parse

import (
	"fmt"

	"github.com/dhamidi/pcomb/stream"
)

// Pair is the output of FollowedBy.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the output of Optional.
type Maybe[O any] struct {
	Value O
	Ok    bool
}

// Map transforms the output of p with f.
func Map[C, A, B any](p Parser[C, A], f func(A) B) Func[C, B] {
	return mapStep(p.Parse, f)
}

// MapMut is Map for stateful parsers.
func MapMut[C, A, B any](p ParserMut[C, A], f func(A) B) MutFunc[C, B] {
	return MutFunc[C, B](mapStep(p.ParseMut, f))
}

// MapOnce is Map for single-use parsers.
func MapOnce[C, A, B any](p ParserOnce[C, A], f func(A) B) *OnceFunc[C, B] {
	return FromFnOnce(mapStep(p.ParseOnce, f))
}

func mapStep[C, A, B any](step func(*C) (A, bool), f func(A) B) Func[C, B] {
	return func(c *C) (B, bool) {
		a, ok := step(c)
		if !ok {
			return fail[B]()
		}
		return f(a), true
	}
}

// AndThen transforms the output of p with f, which may reject it. Input
// consumed by p stays consumed when f rejects.
func AndThen[C, A, B any](p Parser[C, A], f func(A) (B, bool)) Func[C, B] {
	return andThenStep(p.Parse, f)
}

// AndThenMut is AndThen for stateful parsers.
func AndThenMut[C, A, B any](p ParserMut[C, A], f func(A) (B, bool)) MutFunc[C, B] {
	return MutFunc[C, B](andThenStep(p.ParseMut, f))
}

// AndThenOnce is AndThen for single-use parsers.
func AndThenOnce[C, A, B any](p ParserOnce[C, A], f func(A) (B, bool)) *OnceFunc[C, B] {
	return FromFnOnce(andThenStep(p.ParseOnce, f))
}

func andThenStep[C, A, B any](step func(*C) (A, bool), f func(A) (B, bool)) Func[C, B] {
	return func(c *C) (B, bool) {
		a, ok := step(c)
		if !ok {
			return fail[B]()
		}
		return f(a)
	}
}

// FlatMap runs p, builds the next parser from its output and runs that
// parser once from where p stopped.
func FlatMap[C, A, B any](p Parser[C, A], f func(A) ParserOnce[C, B]) Func[C, B] {
	return flatMapStep(p.Parse, f)
}

// FlatMapMut is FlatMap for stateful parsers.
func FlatMapMut[C, A, B any](p ParserMut[C, A], f func(A) ParserOnce[C, B]) MutFunc[C, B] {
	return MutFunc[C, B](flatMapStep(p.ParseMut, f))
}

// FlatMapOnce is FlatMap for single-use parsers.
func FlatMapOnce[C, A, B any](p ParserOnce[C, A], f func(A) ParserOnce[C, B]) *OnceFunc[C, B] {
	return FromFnOnce(flatMapStep(p.ParseOnce, f))
}

func flatMapStep[C, A, B any](step func(*C) (A, bool), f func(A) ParserOnce[C, B]) Func[C, B] {
	return func(c *C) (B, bool) {
		a, ok := step(c)
		if !ok {
			return fail[B]()
		}
		return f(a).ParseOnce(c)
	}
}

// FollowedBy runs p then q and pairs their outputs. It is not atomic: if q
// fails the cursor stays where q left it.
func FollowedBy[C, A, B any](p Parser[C, A], q Parser[C, B]) Func[C, Pair[A, B]] {
	return followedByStep(p.Parse, q.Parse)
}

// FollowedByMut is FollowedBy for stateful parsers.
func FollowedByMut[C, A, B any](p ParserMut[C, A], q ParserMut[C, B]) MutFunc[C, Pair[A, B]] {
	return MutFunc[C, Pair[A, B]](followedByStep(p.ParseMut, q.ParseMut))
}

// FollowedByOnce is FollowedBy for single-use parsers.
func FollowedByOnce[C, A, B any](p ParserOnce[C, A], q ParserOnce[C, B]) *OnceFunc[C, Pair[A, B]] {
	return FromFnOnce(followedByStep(p.ParseOnce, q.ParseOnce))
}

func followedByStep[C, A, B any](first func(*C) (A, bool), second func(*C) (B, bool)) Func[C, Pair[A, B]] {
	return func(c *C) (Pair[A, B], bool) {
		a, ok := first(c)
		if !ok {
			return fail[Pair[A, B]]()
		}
		b, ok := second(c)
		if !ok {
			return fail[Pair[A, B]]()
		}
		return Pair[A, B]{First: a, Second: b}, true
	}
}

// Left runs p then q and keeps the output of p.
func Left[C, A, B any](p Parser[C, A], q Parser[C, B]) Func[C, A] {
	return Map(FollowedBy(p, q), func(pair Pair[A, B]) A { return pair.First })
}

// Right runs p then q and keeps the output of q.
func Right[C, A, B any](p Parser[C, A], q Parser[C, B]) Func[C, B] {
	return Map(FollowedBy(p, q), func(pair Pair[A, B]) B { return pair.Second })
}

// Or tries p and, if p failed without consuming input, q from the same
// position. A failure of p after consuming input is final.
func Or[C stream.Cursor, O any](p, q Parser[C, O]) Func[C, O] {
	return orStep(p.Parse, q.Parse)
}

// OrMut is Or for stateful parsers.
func OrMut[C stream.Cursor, O any](p, q ParserMut[C, O]) MutFunc[C, O] {
	return MutFunc[C, O](orStep(p.ParseMut, q.ParseMut))
}

// OrOnce is Or for single-use parsers.
func OrOnce[C stream.Cursor, O any](p, q ParserOnce[C, O]) *OnceFunc[C, O] {
	return FromFnOnce(orStep(p.ParseOnce, q.ParseOnce))
}

func orStep[C stream.Cursor, O any](first, second func(*C) (O, bool)) Func[C, O] {
	return func(c *C) (O, bool) {
		out, ok, consumed := checkConsumed(first, c)
		if ok || consumed {
			return out, ok
		}
		return second(c)
	}
}

// Attempt runs p and restores the cursor if p fails, however much p
// consumed.
func Attempt[C, O any](p Parser[C, O]) Func[C, O] {
	return attemptStep(p.Parse)
}

// AttemptMut is Attempt for stateful parsers.
func AttemptMut[C, O any](p ParserMut[C, O]) MutFunc[C, O] {
	return MutFunc[C, O](attemptStep(p.ParseMut))
}

// AttemptOnce is Attempt for single-use parsers.
func AttemptOnce[C, O any](p ParserOnce[C, O]) *OnceFunc[C, O] {
	return FromFnOnce(attemptStep(p.ParseOnce))
}

func attemptStep[C, O any](step func(*C) (O, bool)) Func[C, O] {
	return func(c *C) (O, bool) {
		saved := *c
		out, ok := step(c)
		if !ok {
			*c = saved
		}
		return out, ok
	}
}

// Optional runs p. If p fails without consuming input the result is absent
// and the cursor untouched; if p fails after consuming, Optional fails too.
func Optional[C stream.Cursor, O any](p Parser[C, O]) Func[C, Maybe[O]] {
	return optionalStep(p.Parse)
}

// OptionalMut is Optional for stateful parsers.
func OptionalMut[C stream.Cursor, O any](p ParserMut[C, O]) MutFunc[C, Maybe[O]] {
	return MutFunc[C, Maybe[O]](optionalStep(p.ParseMut))
}

// OptionalOnce is Optional for single-use parsers.
func OptionalOnce[C stream.Cursor, O any](p ParserOnce[C, O]) *OnceFunc[C, Maybe[O]] {
	return FromFnOnce(optionalStep(p.ParseOnce))
}

func optionalStep[C stream.Cursor, O any](step func(*C) (O, bool)) Func[C, Maybe[O]] {
	return func(c *C) (Maybe[O], bool) {
		out, ok, consumed := checkConsumed(step, c)
		switch {
		case ok:
			return Maybe[O]{Value: out, Ok: true}, true
		case consumed:
			return fail[Maybe[O]]()
		default:
			return Maybe[O]{}, true
		}
	}
}

// Recognize runs p and returns the span of input p consumed instead of its
// output. The span shares memory with the input.
func Recognize[C stream.Ranger[C], O any](p Parser[C, O]) Func[C, C] {
	return recognizeStep(p.Parse)
}

// RecognizeMut is Recognize for stateful parsers.
func RecognizeMut[C stream.Ranger[C], O any](p ParserMut[C, O]) MutFunc[C, C] {
	return MutFunc[C, C](recognizeStep(p.ParseMut))
}

// RecognizeOnce is Recognize for single-use parsers.
func RecognizeOnce[C stream.Ranger[C], O any](p ParserOnce[C, O]) *OnceFunc[C, C] {
	return FromFnOnce(recognizeStep(p.ParseOnce))
}

func recognizeStep[C stream.Ranger[C], O any](step func(*C) (O, bool)) Func[C, C] {
	return func(c *C) (C, bool) {
		start := (*c).Position()
		if _, ok := step(c); !ok {
			return fail[C]()
		}
		return (*c).Between(start, (*c).Position()), true
	}
}

// FromStr converts the text produced by p with conv, typically one of the
// strconv functions. A conversion error is a failure, but whatever p
// consumed stays consumed.
func FromStr[C any, S fmt.Stringer, O any](p Parser[C, S], conv func(string) (O, error)) Func[C, O] {
	return fromStrStep(p.Parse, conv)
}

// FromStrMut is FromStr for stateful parsers.
func FromStrMut[C any, S fmt.Stringer, O any](p ParserMut[C, S], conv func(string) (O, error)) MutFunc[C, O] {
	return MutFunc[C, O](fromStrStep(p.ParseMut, conv))
}

// FromStrOnce is FromStr for single-use parsers.
func FromStrOnce[C any, S fmt.Stringer, O any](p ParserOnce[C, S], conv func(string) (O, error)) *OnceFunc[C, O] {
	return FromFnOnce(fromStrStep(p.ParseOnce, conv))
}

func fromStrStep[C any, S fmt.Stringer, O any](step func(*C) (S, bool), conv func(string) (O, error)) Func[C, O] {
	return andThenStep(step, func(s S) (O, bool) {
		out, err := conv(s.String())
		if err != nil {
			return fail[O]()
		}
		return out, true
	})
}

// Between runs left, p and right in sequence and keeps the output of p. Like
// FollowedBy it is not atomic.
func Between[C, O, L, R any](p Parser[C, O], left Parser[C, L], right Parser[C, R]) Func[C, O] {
	return betweenStep(p.Parse, left.Parse, right.Parse)
}

// BetweenMut is Between for stateful parsers.
func BetweenMut[C, O, L, R any](p ParserMut[C, O], left ParserMut[C, L], right ParserMut[C, R]) MutFunc[C, O] {
	return MutFunc[C, O](betweenStep(p.ParseMut, left.ParseMut, right.ParseMut))
}

// BetweenOnce is Between for single-use parsers.
func BetweenOnce[C, O, L, R any](p ParserOnce[C, O], left ParserOnce[C, L], right ParserOnce[C, R]) *OnceFunc[C, O] {
	return FromFnOnce(betweenStep(p.ParseOnce, left.ParseOnce, right.ParseOnce))
}

func betweenStep[C, O, L, R any](step func(*C) (O, bool), left func(*C) (L, bool), right func(*C) (R, bool)) Func[C, O] {
	inner := followedByStep(left, followedByStep(step, right))
	return mapStep(inner, func(p Pair[L, Pair[O, R]]) O {
		return p.Second.First
	})
}
