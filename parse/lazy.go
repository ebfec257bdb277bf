package parse

// Lazy defers building a parser until it is invoked. build runs on every
// invocation, which lets a grammar rule refer to itself:
//
//	func value() parse.Parser[stream.Text, Value] {
//		return parse.Choice(number(), parse.Lazy(array))
//	}
//
// where array calls value again. Without Lazy, building value would recurse
// forever before any input is read.
func Lazy[C, O any](build func() Parser[C, O]) Func[C, O] {
	return func(c *C) (O, bool) {
		return build().Parse(c)
	}
}
