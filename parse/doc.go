// Package parse is a parser-combinator library.
//
// Parsers are ordinary Go values built by composing small primitives
// (match one item, match a predicate, match a literal) into larger ones
// (sequence, alternative, repetition, separated list). There is no grammar
// compilation step: a grammar is the value you build.
//
// # Invocation
//
// A parser is invoked with a pointer to a cursor from package stream. On
// success it returns its output and true, and the cursor has moved past the
// consumed input. On failure it returns the zero value and false. A failure
// carries no diagnostics; combinators only distinguish a failure that left
// the cursor where it was from one that consumed input first.
//
// Pass a pointer to your own cursor to commit to what a parser consumes, or
// pass a pointer to a copy to parse tentatively:
//
//	c := stream.NewText("123abc")
//	n, ok := num.Uint32().Parse(&c) // n == 123, c.String() == "abc"
//
// # Capability tiers
//
// Every parser belongs to one of three tiers, each extending the one below:
//
//	ParserOnce  may be invoked once; invoking consumes it
//	ParserMut   may be invoked repeatedly through one exclusive handle and may
//	            update private state on each call
//	Parser      may be invoked repeatedly from anywhere, concurrently too,
//	            because invoking it changes nothing observable
//
// Combinators come in one variant per tier: X takes pure parsers and returns
// a Func, XMut takes stateful ones and returns a MutFunc, XOnce takes
// single-use ones and returns a *OnceFunc. A higher tier parser can always
// be passed where a lower one is expected.
//
// # Backtracking
//
// Sequencing is not atomic: when the second half of FollowedBy fails, the
// cursor stays wherever it stopped. Or and Optional only fall back when the
// failed side did not consume. Attempt is the one combinator that always
// restores the cursor on failure. Literal matches (Tokens, String) are
// atomic and never consume on mismatch.
//
// # Repetition
//
// Many, Many1 and SepBy hand their outputs to a fold function as a lazy
// Iter; CollectX and SkipX are the common folds. Repetition ends at the
// first failure that consumed nothing. A failure that consumed input fails
// the whole repetition. A pure parser that succeeds without consuming is
// yielded once and ends the repetition, since it would repeat forever; the
// Mut variants keep calling their parser until it fails.
//
// # Recursion
//
// Grammars that refer to themselves are built with Lazy, which calls a
// builder on every invocation instead of constructing a cyclic value.
// Recursion depth is bounded only by the Go stack.
package parse
