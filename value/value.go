// Package value parses a small JSON-like language: integers, double-quoted
// strings without escapes, arrays and objects, with optional whitespace
// between tokens.
package value

import (
	"unicode"

	"github.com/dhamidi/pcomb/num"
	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
)

// Value is one of Number, String, Array or Object.
type Value interface {
	isValue()
}

type Number int64

type String string

type Array []Value

// Object keeps its members in source order.
type Object []Member

type Member struct {
	Key   string
	Value Value
}

func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Parse parses a complete document.
func Parse(input string) (Value, bool) {
	return parse.ParseToEnd(Document(), stream.NewText(input))
}

// Document parses leading whitespace followed by one value.
func Document() parse.Parser[stream.Text, Value] {
	return parse.Right(spaces(), Grammar())
}

// Grammar parses one value and the whitespace after it. The returned parser
// is pure and may be shared between goroutines.
func Grammar() parse.Parser[stream.Text, Value] {
	return parse.Choice(
		parse.Map(lexeme(num.Int64()), func(n int64) Value { return Number(n) }),
		parse.Map(lexeme(quoted()), func(s string) Value { return String(s) }),
		parse.Map(array(), func(a Array) Value { return a }),
		parse.Map(object(), func(o Object) Value { return o }),
	)
}

func spaces() parse.Func[stream.Text, parse.Unit] {
	return parse.SkipMany(parse.Satisfy[stream.Text](unicode.IsSpace))
}

func lexeme[O any](p parse.Parser[stream.Text, O]) parse.Func[stream.Text, O] {
	return parse.Left(p, spaces())
}

func symbol(r rune) parse.Func[stream.Text, rune] {
	return lexeme(parse.Token[stream.Text](r))
}

func quoted() parse.Func[stream.Text, string] {
	body := parse.Recognize(parse.SkipMany(parse.Satisfy[stream.Text](func(r rune) bool {
		return r != '"'
	})))
	quote := parse.Token[stream.Text]('"')
	return parse.Map(parse.Between(body, quote, quote), stream.Text.String)
}

func array() parse.Func[stream.Text, Array] {
	elements := parse.CollectSepBy(parse.Lazy(Grammar), symbol(','))
	return parse.Map(parse.Between(elements, symbol('['), symbol(']')), func(vs []Value) Array {
		return Array(vs)
	})
}

func object() parse.Func[stream.Text, Object] {
	member := parse.Map(
		parse.Chain3(lexeme(quoted()), symbol(':'), parse.Lazy(Grammar)),
		func(t parse.Tuple3[string, rune, Value]) Member {
			return Member{Key: t.First, Value: t.Third}
		},
	)
	members := parse.CollectSepBy(member, symbol(','))
	return parse.Map(parse.Between(members, symbol('{'), symbol('}')), func(ms []Member) Object {
		return Object(ms)
	})
}
