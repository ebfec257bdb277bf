package ebnf

import (
	"fmt"

	xebnf "golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
)

type nodesParser = parse.Parser[stream.Text, []*Node]

type compiler struct {
	source     xebnf.Grammar
	whitespace string
	trace      bool
	furthest   *stream.Pos
	ws         parse.Parser[stream.Text, parse.Unit]
	rules      map[string]parse.Parser[stream.Text, *Node]
}

func (c *compiler) production(name string, prod *xebnf.Production) (parse.Parser[stream.Text, *Node], error) {
	lexical := isLexical(name)
	body, err := c.expr(prod.Expr, lexical)
	if err != nil {
		return nil, err
	}

	skip := c.ws
	if lexical {
		skip = nil
	}
	var p parse.Parser[stream.Text, *Node] = parse.FromFn(func(cur *stream.Text) (*Node, bool) {
		if skip != nil {
			skip.Parse(cur)
		}
		start := cur.Position()
		children, ok := body.Parse(cur)
		if !ok {
			return nil, false
		}
		return &Node{Name: name, Text: cur.Between(start, cur.Position()), Children: children}, true
	})
	if c.trace {
		p = parse.Trace(name, p)
	}
	return p, nil
}

func (c *compiler) expr(e xebnf.Expression, lexical bool) (nodesParser, error) {
	switch e := e.(type) {
	case nil:
		return parse.Value[stream.Text, []*Node](nil), nil

	case *xebnf.Token:
		return c.track(c.skipBefore(leaf(parse.String(e.String)), lexical)), nil

	case *xebnf.Range:
		lo, hi, err := bounds(e)
		if err != nil {
			return nil, err
		}
		in := parse.Satisfy[stream.Text](func(r rune) bool {
			return lo <= r && r <= hi
		})
		return c.track(c.skipBefore(leaf(in), lexical)), nil

	case xebnf.Sequence:
		items := make([]nodesParser, 0, len(e))
		for _, item := range e {
			p, err := c.expr(item, lexical)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
		return parse.Map(parse.Seq(items...), flatten), nil

	case xebnf.Alternative:
		alts := make([]parse.Parser[stream.Text, []*Node], 0, len(e))
		for _, alt := range e {
			p, err := c.expr(alt, lexical)
			if err != nil {
				return nil, err
			}
			alts = append(alts, parse.Attempt(p))
		}
		return parse.Choice(alts...), nil

	case *xebnf.Group:
		return c.expr(e.Body, lexical)

	case *xebnf.Option:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parse.Map(parse.Optional(parse.Attempt(body)), func(m parse.Maybe[[]*Node]) []*Node {
			return m.Value
		}), nil

	case *xebnf.Repetition:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parse.Many(parse.Attempt(body), func(it *parse.Iter[stream.Text, []*Node]) ([]*Node, bool) {
			var out []*Node
			for children := range it.All() {
				out = append(out, children...)
			}
			return out, true
		}), nil

	case *xebnf.Name:
		return c.reference(e.String, lexical), nil

	default:
		return nil, fmt.Errorf("unsupported expression %T", e)
	}
}

// reference resolves name when the parser runs, so productions may refer to
// themselves. Inside a lexical production references only match: the
// production's text is a single leaf. Syntactic productions skip their own
// leading whitespace; lexical ones are skipped up to here.
func (c *compiler) reference(name string, lexical bool) nodesParser {
	ref := parse.Lazy(func() parse.Parser[stream.Text, *Node] {
		return c.rules[name]
	})
	if lexical {
		return leaf(ref)
	}
	child := parse.Map(ref, func(n *Node) []*Node {
		return []*Node{n}
	})
	if isLexical(name) {
		return c.skipBefore(child, false)
	}
	return child
}

func (c *compiler) skipBefore(p nodesParser, lexical bool) nodesParser {
	if lexical || c.ws == nil {
		return p
	}
	return parse.Right(c.ws, p)
}

// track records the position at which p fails, if the compiler tracks
// failures.
func (c *compiler) track(p nodesParser) nodesParser {
	furthest := c.furthest
	if furthest == nil {
		return p
	}
	return parse.FromFn(func(cur *stream.Text) ([]*Node, bool) {
		out, ok := p.Parse(cur)
		if !ok && cur.Position() > *furthest {
			*furthest = cur.Position()
		}
		return out, ok
	})
}

func leaf[O any](p parse.Parser[stream.Text, O]) nodesParser {
	return parse.Map(p, func(O) []*Node { return nil })
}

func flatten(groups [][]*Node) []*Node {
	var out []*Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func bounds(r *xebnf.Range) (rune, rune, error) {
	lo, hi := []rune(r.Begin.String), []rune(r.End.String)
	if len(lo) != 1 || len(hi) != 1 {
		return 0, 0, fmt.Errorf("range %q…%q: bounds must be single characters", r.Begin.String, r.End.String)
	}
	return lo[0], hi[0], nil
}
