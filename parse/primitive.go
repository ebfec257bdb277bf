package parse

import (
	"github.com/dhamidi/pcomb/stream"
)

// SatisfyMap consumes one item if f maps it to a value.
func SatisfyMap[C stream.Stream[C, T], T, O any](f func(T) (O, bool)) Func[C, O] {
	return func(c *C) (O, bool) {
		return stream.ConsumeIf(c, f)
	}
}

// SatisfyMapMut is SatisfyMap for a mapping function with state.
func SatisfyMapMut[C stream.Stream[C, T], T, O any](f func(T) (O, bool)) MutFunc[C, O] {
	return func(c *C) (O, bool) {
		return stream.ConsumeIf(c, f)
	}
}

// SatisfyMapOnce is SatisfyMap for a mapping function that may run once.
func SatisfyMapOnce[C stream.Stream[C, T], T, O any](f func(T) (O, bool)) *OnceFunc[C, O] {
	return FromFnOnce(func(c *C) (O, bool) {
		return stream.ConsumeIf(c, f)
	})
}

// Satisfy consumes one item for which pred holds and returns it.
func Satisfy[C stream.Stream[C, T], T any](pred func(T) bool) Func[C, T] {
	return SatisfyMap[C](func(item T) (T, bool) {
		return item, pred(item)
	})
}

// Token consumes one item equal to want.
func Token[C stream.Stream[C, T], T comparable](want T) Func[C, T] {
	return Satisfy[C](func(item T) bool {
		return item == want
	})
}

// Any consumes any one item.
func Any[C stream.Stream[C, T], T any]() Func[C, T] {
	return SatisfyMap[C](func(item T) (T, bool) {
		return item, true
	})
}

// Tokens matches the items of want in order. The match is atomic: on a
// mismatch nothing is consumed, even if a prefix of want matched.
func Tokens[C stream.Stream[C, T], T comparable](want []T) Func[C, Unit] {
	return func(c *C) (Unit, bool) {
		next := *c
		for _, w := range want {
			item, rest, ok := next.Uncons()
			if !ok || item != w {
				return Unit{}, false
			}
			next = rest
		}
		*c = next
		return Unit{}, true
	}
}

// String matches the literal s.
func String(s string) Func[stream.Text, Unit] {
	return Tokens[stream.Text]([]rune(s))
}

// EOF succeeds without consuming when no input remains.
func EOF[C stream.Cursor]() Func[C, Unit] {
	return func(c *C) (Unit, bool) {
		return Unit{}, (*c).IsEmpty()
	}
}

// Value always succeeds with v and consumes nothing.
func Value[C, O any](v O) Func[C, O] {
	return func(*C) (O, bool) {
		return v, true
	}
}
