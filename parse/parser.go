package parse

import (
	"github.com/dhamidi/pcomb/stream"
)

// Unit is the output of parsers that only report whether they matched.
type Unit = struct{}

// ParserOnce is a parser that may be invoked at most once.
type ParserOnce[C, O any] interface {
	ParseOnce(c *C) (O, bool)
}

// ParserMut is a parser that may be invoked repeatedly through one exclusive
// handle. Invocations may update private state, so a ParserMut must not be
// used from two places at the same time.
type ParserMut[C, O any] interface {
	ParserOnce[C, O]
	ParseMut(c *C) (O, bool)
}

// Parser is a parser that may be invoked any number of times, concurrently,
// from independent cursors.
type Parser[C, O any] interface {
	ParserMut[C, O]
	Parse(c *C) (O, bool)
}

// Func adapts a function without side effects to Parser.
type Func[C, O any] func(c *C) (O, bool)

func (f Func[C, O]) Parse(c *C) (O, bool)     { return f(c) }
func (f Func[C, O]) ParseMut(c *C) (O, bool)  { return f(c) }
func (f Func[C, O]) ParseOnce(c *C) (O, bool) { return f(c) }

// MutFunc adapts a function that may update captured state to ParserMut.
type MutFunc[C, O any] func(c *C) (O, bool)

func (f MutFunc[C, O]) ParseMut(c *C) (O, bool)  { return f(c) }
func (f MutFunc[C, O]) ParseOnce(c *C) (O, bool) { return f(c) }

// OnceFunc is a single-use parser. Invoking it a second time panics.
type OnceFunc[C, O any] struct {
	f func(c *C) (O, bool)
}

func (p *OnceFunc[C, O]) ParseOnce(c *C) (O, bool) {
	f := p.f
	if f == nil {
		panic("parse: single-use parser invoked twice")
	}
	p.f = nil
	return f(c)
}

// FromFn returns a pure parser running f.
func FromFn[C, O any](f func(c *C) (O, bool)) Func[C, O] {
	return f
}

// FromFnMut returns a stateful parser running f.
func FromFnMut[C, O any](f func(c *C) (O, bool)) MutFunc[C, O] {
	return f
}

// FromFnOnce returns a parser that runs f exactly once.
func FromFnOnce[C, O any](f func(c *C) (O, bool)) *OnceFunc[C, O] {
	return &OnceFunc[C, O]{f: f}
}

// ParsePartial runs p on a copy of c and ignores what remains.
func ParsePartial[C, O any](p ParserOnce[C, O], c C) (O, bool) {
	return p.ParseOnce(&c)
}

// ParseToEnd runs p on a copy of c and succeeds only if p consumed all of it.
func ParseToEnd[C stream.Cursor, O any](p ParserOnce[C, O], c C) (O, bool) {
	out, ok := p.ParseOnce(&c)
	if !ok || !c.IsEmpty() {
		var zero O
		return zero, false
	}
	return out, true
}

// checkConsumed runs step and reports whether it moved the cursor.
func checkConsumed[C stream.Cursor, O any](step func(*C) (O, bool), c *C) (O, bool, bool) {
	start := (*c).Position()
	out, ok := step(c)
	return out, ok, (*c).Position() != start
}

func fail[O any]() (O, bool) {
	var zero O
	return zero, false
}
