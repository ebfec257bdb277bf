package ebnf

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	xebnf "golang.org/x/exp/ebnf"
)

// checkLeftRecursion rejects productions that can reach themselves without
// consuming input. A compiled parser for such a production would recurse
// forever.
func checkLeftRecursion(g xebnf.Grammar) error {
	nullable := nullableProductions(g)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			i := slices.Index(path, name)
			cycle := append(slices.Clone(path[i:]), name)
			return fmt.Errorf("%w: %s", ErrLeftRecursion, strings.Join(cycle, " -> "))
		case done:
			return nil
		}
		prod, ok := g[name]
		if !ok {
			return nil
		}

		state[name] = visiting
		path = append(path, name)
		for _, next := range leftNames(prod.Expr, nullable) {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(g)) {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// nullableProductions computes which productions can match the empty input.
func nullableProductions(g xebnf.Grammar) map[string]bool {
	nullable := make(map[string]bool, len(g))
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && matchesEmpty(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func matchesEmpty(e xebnf.Expression, nullable map[string]bool) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *xebnf.Token:
		return e.String == ""
	case *xebnf.Range:
		return false
	case xebnf.Sequence:
		for _, item := range e {
			if !matchesEmpty(item, nullable) {
				return false
			}
		}
		return true
	case xebnf.Alternative:
		for _, alt := range e {
			if matchesEmpty(alt, nullable) {
				return true
			}
		}
		return false
	case *xebnf.Group:
		return matchesEmpty(e.Body, nullable)
	case *xebnf.Option, *xebnf.Repetition:
		return true
	case *xebnf.Name:
		return nullable[e.String]
	}
	return false
}

// leftNames returns the productions e may invoke before consuming input.
func leftNames(e xebnf.Expression, nullable map[string]bool) []string {
	switch e := e.(type) {
	case xebnf.Sequence:
		var names []string
		for _, item := range e {
			names = append(names, leftNames(item, nullable)...)
			if !matchesEmpty(item, nullable) {
				break
			}
		}
		return names
	case xebnf.Alternative:
		var names []string
		for _, alt := range e {
			names = append(names, leftNames(alt, nullable)...)
		}
		return names
	case *xebnf.Group:
		return leftNames(e.Body, nullable)
	case *xebnf.Option:
		return leftNames(e.Body, nullable)
	case *xebnf.Repetition:
		return leftNames(e.Body, nullable)
	case *xebnf.Name:
		return []string{e.String}
	}
	return nil
}
