// SPDX-License-Identifier: MIT
// Package: keypick/labeltree
//
// validate.go — structural invariants and read-only views over a tree.
//
// Validate is the gate a selection engine passes a tree through before taking
// ownership; Paths, Leaves and Depths back the property tests.

package labeltree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypick/alphabet"
)

// Validate checks the invariants every consumer relies on:
//   - every node in the arena is reachable from the root list exactly once;
//   - every branch has at least one child;
//   - sibling symbols belong to the alphabet, are distinct and in alphabet order;
//   - leaves carry no children.
//
// Returns nil or an error wrapping ErrInvariant together with the specific cause.
// Complexity: O(nodes).
func Validate[T any](t *Tree[T]) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.alpha.Len() < alphabet.MinSize {
		return fmt.Errorf("%w: %w", ErrInvariant, ErrAlphabetTooSmall)
	}
	if err := validateSiblings(t, t.root); err != nil {
		return fmt.Errorf("%w: root: %w", ErrInvariant, err)
	}

	seen := make([]int, len(t.nodes))
	stack := append([]NodeID(nil), t.RootIDs()...)
	var id NodeID
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !t.valid(id) {
			return fmt.Errorf("%w: %w: %d", ErrInvariant, ErrNodeNotFound, id)
		}
		seen[id]++
		if seen[id] > 1 {
			return fmt.Errorf("%w: node %d reachable more than once", ErrInvariant, id)
		}

		n := t.nodes[id]
		switch n.Kind {
		case KindLeaf:
			if len(n.Children) != 0 {
				return fmt.Errorf("%w: leaf %d has children", ErrInvariant, id)
			}
		case KindBranch:
			if len(n.Children) == 0 {
				return fmt.Errorf("%w: %w: node %d", ErrInvariant, ErrEmptyBranch, id)
			}
			if err := validateSiblings(t, n.Children); err != nil {
				return fmt.Errorf("%w: node %d: %w", ErrInvariant, id, err)
			}
			for _, e := range n.Children {
				stack = append(stack, e.Node)
			}
		default:
			return fmt.Errorf("%w: node %d has unknown kind %d", ErrInvariant, id, n.Kind)
		}
	}

	for i, count := range seen {
		if count == 0 {
			return fmt.Errorf("%w: node %d is not reachable from the root", ErrInvariant, i)
		}
	}

	return nil
}

func validateSiblings[T any](t *Tree[T], entries []Entry) error {
	prev := -1
	for i, e := range entries {
		idx, ok := t.alpha.Index(e.Symbol)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSymbol, e.Symbol.String())
		}
		if idx <= prev {
			return fmt.Errorf("%w: %q at entry %d", ErrSymbolOrder, e.Symbol.String(), i)
		}
		prev = idx
	}

	return nil
}

// Paths lists every leaf with its full key sequence, in pre-order
// (which for Build output is the input items order).
func Paths[T any](t *Tree[T]) []Path[T] {
	var out []Path[T]
	var keys []rune

	var visit func(entries []Entry)
	visit = func(entries []Entry) {
		for _, e := range entries {
			keys = append(keys, rune(e.Symbol))
			n := t.nodes[e.Node]
			if n.Kind == KindLeaf {
				out = append(out, Path[T]{Keys: string(keys), Node: e.Node, Item: n.Item, Depth: len(keys)})
			} else {
				visit(n.Children)
			}
			keys = keys[:len(keys)-1]
		}
	}
	visit(t.root)

	return out
}

// Leaves returns the leaf items in pre-order.
func Leaves[T any](t *Tree[T]) []T {
	paths := Paths(t)
	out := make([]T, len(paths))
	for i, p := range paths {
		out[i] = p.Item
	}

	return out
}

// Depths returns the shallowest and deepest leaf depths in keystrokes.
// An empty tree reports (0, 0).
func Depths[T any](t *Tree[T]) (shallowest, deepest int) {
	paths := Paths(t)
	if len(paths) == 0 {
		return 0, 0
	}
	shallowest = paths[0].Depth
	for _, p := range paths {
		shallowest = min(shallowest, p.Depth)
		deepest = max(deepest, p.Depth)
	}

	return shallowest, deepest
}

// String renders the tree as nested braces, e.g. {a:{a:A b:B} b:C c:D}.
// Items are formatted with %v.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.writeEntries(&sb, t.root)

	return sb.String()
}

func (t *Tree[T]) writeEntries(sb *strings.Builder, entries []Entry) {
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(rune(e.Symbol))
		sb.WriteByte(':')
		n := t.nodes[e.Node]
		if n.Kind == KindLeaf {
			fmt.Fprintf(sb, "%v", n.Item)
		} else {
			t.writeEntries(sb, n.Children)
		}
	}
	sb.WriteByte('}')
}
