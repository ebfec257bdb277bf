package ebnf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/pcomb/stream"
)

// Node is a match of one production. Text is the matched span of the input;
// Children are the matches of the productions it referred to. Lexical
// productions have no children.
type Node struct {
	Name     string
	Text     stream.Text
	Children []*Node
}

// Find returns the first node named name in depth-first order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node named name in depth-first order.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	n.walk(func(m *Node) {
		if m.Name == name {
			out = append(out, m)
		}
	})
	return out
}

func (n *Node) walk(f func(*Node)) {
	f(n)
	for _, child := range n.Children {
		child.walk(f)
	}
}

// Dump writes the tree rooted at n, one node per line, indented by depth.
func (n *Node) Dump(w io.Writer) error {
	return n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), n.Name, strconv.Quote(n.Text.String())); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.dump(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
