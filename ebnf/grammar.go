// Package ebnf builds parsers from grammars written in the EBNF dialect of
// golang.org/x/exp/ebnf.
//
// Compiled grammars are parsing expression grammars: alternatives are tried
// in order and the first match wins, repetitions are greedy, and every
// alternative, option and repetition body backtracks as a unit.
//
// As in the Go specification, productions whose name starts with an
// upper-case letter are syntactic and all others are lexical. Whitespace is
// skipped before the tokens of syntactic productions and before the lexical
// productions they refer to, but never inside a lexical production. A match
// of a lexical production is a leaf of the parse tree.
package ebnf

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	xebnf "golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
)

var (
	ErrUnknownProduction = errors.New("unknown production")
	ErrLeftRecursion     = errors.New("left recursion")
	ErrNoMatch           = errors.New("input does not match")
	ErrTrailingInput     = errors.New("unexpected input after match")
)

const defaultWhitespace = " \t\r\n"

func logger() commonlog.Logger {
	return commonlog.GetLogger("pcomb.ebnf")
}

// Position represents a location in matched input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func positionAt(filename, input string, offset int) Position {
	pos := Position{Filename: filename, Offset: offset, Line: 1, Column: 1}
	for _, r := range input[:offset] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// MatchError reports where matching stopped.
type MatchError struct {
	Position Position
	Err      error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Position, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

type Option func(*compiler)

// WithWhitespace sets the characters skipped between tokens of syntactic
// productions. An empty set disables skipping.
func WithWhitespace(chars string) Option {
	return func(c *compiler) {
		c.whitespace = chars
	}
}

// WithTrace logs every production invocation at debug level.
func WithTrace() Option {
	return func(c *compiler) {
		c.trace = true
	}
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (xebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := xebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return grammar, nil
}

// Grammar is a compiled grammar. Its parsers are pure and may be shared
// between goroutines.
type Grammar struct {
	start  string
	source xebnf.Grammar
	opts   []Option
	rules  map[string]parse.Parser[stream.Text, *Node]
	ws     parse.Parser[stream.Text, parse.Unit]
}

// Compile verifies src for the start production and builds a parser for
// every production.
func Compile(src xebnf.Grammar, start string, opts ...Option) (*Grammar, error) {
	if _, ok := src[start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduction, start)
	}
	if err := xebnf.Verify(src, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	if err := checkLeftRecursion(src); err != nil {
		return nil, err
	}

	g, err := build(src, start, opts, nil)
	if err != nil {
		return nil, err
	}
	logger().Debugf("compiled %d productions, start %s", len(g.rules), start)
	return g, nil
}

// build compiles every production of a verified grammar. When furthest is
// not nil the token and range parsers record in it the furthest position at
// which one of them failed.
func build(src xebnf.Grammar, start string, opts []Option, furthest *stream.Pos) (*Grammar, error) {
	c := &compiler{
		source:     src,
		whitespace: defaultWhitespace,
		furthest:   furthest,
		rules:      make(map[string]parse.Parser[stream.Text, *Node], len(src)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if furthest != nil {
		c.trace = false
	}
	if c.whitespace != "" {
		c.ws = parse.SkipMany(parse.Satisfy[stream.Text](func(r rune) bool {
			return strings.ContainsRune(c.whitespace, r)
		}))
	}

	log := logger()
	for _, name := range slices.Sorted(maps.Keys(src)) {
		p, err := c.production(name, src[name])
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		c.rules[name] = p
		if furthest == nil {
			log.Debugf("compiled production %s (lexical %t)", name, isLexical(name))
		}
	}

	return &Grammar{start: start, source: src, opts: opts, rules: c.rules, ws: c.ws}, nil
}

// Start returns the name of the start production.
func (g *Grammar) Start() string {
	return g.start
}

// Productions returns the sorted production names.
func (g *Grammar) Productions() []string {
	return slices.Sorted(maps.Keys(g.rules))
}

// Production returns the parser for the named production.
func (g *Grammar) Production(name string) (parse.Parser[stream.Text, *Node], bool) {
	p, ok := g.rules[name]
	return p, ok
}

// Parser returns the parser for the start production. It matches a prefix
// of its input.
func (g *Grammar) Parser() parse.Parser[stream.Text, *Node] {
	return g.rules[g.start]
}

// Match matches all of input against the start production. Whitespace
// around the match is allowed unless skipping is disabled. filename is
// only used in errors.
//
// A failed match is reported at the furthest position where a token or
// character range failed to match, which is usually where the input stops
// making sense. If no token failed beyond the point where matching stopped,
// the error reports ErrTrailingInput or ErrNoMatch at that point.
func (g *Grammar) Match(filename, input string) (*Node, error) {
	c := stream.NewText(input)
	n, ok := g.match(&c)
	if ok && c.IsEmpty() {
		return n, nil
	}

	stopped := c.Position()
	err := ErrTrailingInput
	if !ok {
		err = ErrNoMatch
	}
	if far := g.furthestFailure(input); far > stopped {
		stopped, err = far, ErrNoMatch
	}
	return nil, &MatchError{Position: positionAt(filename, input, int(stopped)), Err: err}
}

func (g *Grammar) match(c *stream.Text) (*Node, bool) {
	var trailing parse.Parser[stream.Text, parse.Unit] = parse.Value[stream.Text](parse.Unit{})
	if g.ws != nil {
		trailing = g.ws
	}
	return parse.Left(g.Parser(), trailing).Parse(c)
}

// furthestFailure matches input again with a copy of g whose token parsers
// record where they failed. The copy is private to this call, so g stays
// safe to share.
func (g *Grammar) furthestFailure(input string) stream.Pos {
	furthest := stream.Pos(-1)
	tracking, err := build(g.source, g.start, g.opts, &furthest)
	if err != nil {
		return furthest
	}
	c := stream.NewText(input)
	tracking.match(&c)
	return furthest
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
