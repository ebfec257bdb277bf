package parse

import (
	"github.com/dhamidi/pcomb/stream"
)

// SepBy parses elements separated by sep and passes the elements to fold.
// A separator and the element after it are matched as one unit: if either
// fails the unit is rolled back and the list ends, so a trailing separator
// is left unconsumed. An empty list is accepted when the first element fails
// without consuming input.
func SepBy[C stream.Cursor, A, S, B any](p Parser[C, A], sep Parser[C, S], fold func(*Iter[C, A]) (B, bool)) Func[C, B] {
	next := sepThen(sep.Parse, p.Parse)
	return func(c *C) (B, bool) {
		return repeat(c, p.Parse, next, true, false, fold)
	}
}

// SepByMut is SepBy for stateful parsers.
func SepByMut[C stream.Cursor, A, S, B any](p ParserMut[C, A], sep ParserMut[C, S], fold func(*Iter[C, A]) (B, bool)) MutFunc[C, B] {
	next := sepThen(sep.ParseMut, p.ParseMut)
	return func(c *C) (B, bool) {
		return repeat(c, p.ParseMut, next, false, false, fold)
	}
}

// CollectSepBy parses separated elements and collects them.
func CollectSepBy[C stream.Cursor, A, S any](p Parser[C, A], sep Parser[C, S]) Func[C, []A] {
	return SepBy(p, sep, collect[C, A])
}

// CollectSepByMut is CollectSepBy for stateful parsers.
func CollectSepByMut[C stream.Cursor, A, S any](p ParserMut[C, A], sep ParserMut[C, S]) MutFunc[C, []A] {
	return SepByMut(p, sep, collect[C, A])
}

// SkipSepBy parses separated elements and discards them.
func SkipSepBy[C stream.Cursor, A, S any](p Parser[C, A], sep Parser[C, S]) Func[C, Unit] {
	return SepBy(p, sep, skip[C, A])
}

// SkipSepByMut is SkipSepBy for stateful parsers.
func SkipSepByMut[C stream.Cursor, A, S any](p ParserMut[C, A], sep ParserMut[C, S]) MutFunc[C, Unit] {
	return SepByMut(p, sep, skip[C, A])
}

func sepThen[C any, S, A any](sep func(*C) (S, bool), elem func(*C) (A, bool)) func(*C) (A, bool) {
	return attemptStep(mapStep(followedByStep(sep, elem), func(p Pair[S, A]) A {
		return p.Second
	}))
}
