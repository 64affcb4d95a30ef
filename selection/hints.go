package selection

import "github.com/katalvlaran/keypick/labeltree"

// Hints lists every live item with the keys that select it from the current
// state, in tree order. Levels with a single child add no key because
// collapse enters them for free. Returns nil unless Active.
//
// This is what an embedding paints over each candidate: "a", "sd", "sf", ...
func (e *Engine[T]) Hints() []Hint[T] {
	if e.state != Active {
		return nil
	}

	var out []Hint[T]
	var walk func(keys []rune, id labeltree.NodeID)
	walk = func(keys []rune, id labeltree.NodeID) {
		n, _ := e.tree.Node(id)
		switch {
		case n.IsLeaf():
			out = append(out, Hint[T]{Keys: string(keys), Node: id, Item: n.Item})
		case len(n.Children) == 1:
			walk(keys, n.Children[0].Node)
		default:
			for _, c := range n.Children {
				walk(append(keys[:len(keys):len(keys)], rune(c.Symbol)), c.Node)
			}
		}
	}
	for _, entry := range e.visible {
		walk([]rune{rune(entry.Symbol)}, entry.Node)
	}

	return out
}
