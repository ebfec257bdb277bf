package parse

import (
	"github.com/dhamidi/pcomb/stream"
)

// Many invokes p zero or more times and passes the outputs to fold as a
// lazy sequence. Repetition stops when p fails without consuming input; a
// failure after consuming input makes Many fail.
func Many[C stream.Cursor, A, B any](p Parser[C, A], fold func(*Iter[C, A]) (B, bool)) Func[C, B] {
	return func(c *C) (B, bool) {
		return repeat(c, p.Parse, p.Parse, true, false, fold)
	}
}

// ManyMut is Many for stateful parsers. A stateful parser may produce
// outputs without consuming input, so ManyMut keeps invoking p until it
// fails; p must eventually fail.
func ManyMut[C stream.Cursor, A, B any](p ParserMut[C, A], fold func(*Iter[C, A]) (B, bool)) MutFunc[C, B] {
	return func(c *C) (B, bool) {
		return repeat(c, p.ParseMut, p.ParseMut, false, false, fold)
	}
}

// CollectMany invokes p zero or more times and collects the outputs.
func CollectMany[C stream.Cursor, O any](p Parser[C, O]) Func[C, []O] {
	return Many(p, collect[C, O])
}

// CollectManyMut is CollectMany for stateful parsers.
func CollectManyMut[C stream.Cursor, O any](p ParserMut[C, O]) MutFunc[C, []O] {
	return ManyMut(p, collect[C, O])
}

// SkipMany invokes p zero or more times and discards the outputs.
func SkipMany[C stream.Cursor, O any](p Parser[C, O]) Func[C, Unit] {
	return Many(p, skip[C, O])
}

// SkipManyMut is SkipMany for stateful parsers.
func SkipManyMut[C stream.Cursor, O any](p ParserMut[C, O]) MutFunc[C, Unit] {
	return ManyMut(p, skip[C, O])
}

// Many1 is Many but fails unless p succeeds at least once.
func Many1[C stream.Cursor, A, B any](p Parser[C, A], fold func(*Iter[C, A]) (B, bool)) Func[C, B] {
	return func(c *C) (B, bool) {
		return repeat(c, p.Parse, p.Parse, true, true, fold)
	}
}

// Many1Mut is Many1 for stateful parsers.
func Many1Mut[C stream.Cursor, A, B any](p ParserMut[C, A], fold func(*Iter[C, A]) (B, bool)) MutFunc[C, B] {
	return func(c *C) (B, bool) {
		return repeat(c, p.ParseMut, p.ParseMut, false, true, fold)
	}
}

// CollectMany1 invokes p one or more times and collects the outputs.
func CollectMany1[C stream.Cursor, O any](p Parser[C, O]) Func[C, []O] {
	return Many1(p, collect[C, O])
}

// CollectMany1Mut is CollectMany1 for stateful parsers.
func CollectMany1Mut[C stream.Cursor, O any](p ParserMut[C, O]) MutFunc[C, []O] {
	return Many1Mut(p, collect[C, O])
}

// SkipMany1 invokes p one or more times and discards the outputs.
func SkipMany1[C stream.Cursor, O any](p Parser[C, O]) Func[C, Unit] {
	return Many1(p, skip[C, O])
}

// SkipMany1Mut is SkipMany1 for stateful parsers.
func SkipMany1Mut[C stream.Cursor, O any](p ParserMut[C, O]) MutFunc[C, Unit] {
	return Many1Mut(p, skip[C, O])
}
