package labeltree

import (
	"fmt"

	"github.com/katalvlaran/keypick/alphabet"
)

// New returns an empty tree over a, ready for manual construction.
// Build is the usual entry point; New serves custom groupings and tests.
//
// Returns ErrAlphabetTooSmall (wrapping alphabet.ErrTooFewSymbols) if a.Len() < 2.
func New[T any](a alphabet.Alphabet) (*Tree[T], error) {
	if a.Len() < alphabet.MinSize {
		return nil, fmt.Errorf("%w: %w (got %d)", ErrAlphabetTooSmall, alphabet.ErrTooFewSymbols, a.Len())
	}

	return &Tree[T]{alpha: a}, nil
}

// AddLeaf stores a detached leaf for item and returns its ID.
// Complexity: amortized O(1).
func (t *Tree[T]) AddLeaf(item T) NodeID {
	return t.add(Node[T]{Kind: KindLeaf, Item: item})
}

// AddBranch stores a branch over children and returns its ID.
//
// Validation: children non-empty (ErrEmptyBranch); each child exists
// (ErrNodeNotFound) and is detached (ErrNodeAttached); symbols belong to the
// alphabet (ErrUnknownSymbol) and strictly ascend in alphabet order (ErrSymbolOrder).
// On error the tree is unchanged.
func (t *Tree[T]) AddBranch(children ...Entry) (NodeID, error) {
	if len(children) == 0 {
		return NoNode, ErrEmptyBranch
	}
	if err := t.checkEntries(children); err != nil {
		return NoNode, err
	}

	own := make([]Entry, len(children))
	copy(own, children)
	id := t.add(Node[T]{Kind: KindBranch, Children: own})
	t.attach(id, own)

	return id, nil
}

// SetRoot installs entries as the top-level list. An empty list is valid and
// describes a tree with nothing to select. Entries from a previous SetRoot
// call are detached first.
//
// Validation is the same as AddBranch, minus the non-empty requirement.
func (t *Tree[T]) SetRoot(entries ...Entry) error {
	for _, e := range t.root {
		t.placed[e.Node] = false
	}
	if err := t.checkEntries(entries); err != nil {
		// restore the previous root on failure
		t.attach(NoNode, t.root)

		return err
	}

	t.root = make([]Entry, len(entries))
	copy(t.root, entries)
	t.attach(NoNode, t.root)

	return nil
}

// Alphabet returns the alphabet the tree was created with.
func (t *Tree[T]) Alphabet() alphabet.Alphabet {
	return t.alpha
}

// Root returns a copy of the top-level entry list.
func (t *Tree[T]) Root() []Entry {
	out := make([]Entry, len(t.root))
	copy(out, t.root)

	return out
}

// RootIDs returns the node IDs of the top-level entries, in order.
func (t *Tree[T]) RootIDs() []NodeID {
	return entryIDs(t.root)
}

// Node returns a copy of the node with the given ID.
func (t *Tree[T]) Node(id NodeID) (Node[T], bool) {
	if !t.valid(id) {
		return Node[T]{}, false
	}
	n := t.nodes[id]
	if n.Children != nil {
		n.Children = append([]Entry(nil), n.Children...)
	}

	return n, true
}

// Parent returns the parent branch of id, or NoNode for root entries and detached nodes.
func (t *Tree[T]) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}

	return t.parent[id]
}

// Len returns the number of nodes in the arena, attached or not.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

func (t *Tree[T]) add(n Node[T]) NodeID {
	id := NodeID(len(t.nodes))
	n.ID = id
	t.nodes = append(t.nodes, n)
	t.parent = append(t.parent, NoNode)
	t.placed = append(t.placed, false)

	return id
}

func (t *Tree[T]) attach(parent NodeID, entries []Entry) {
	for _, e := range entries {
		t.parent[e.Node] = parent
		t.placed[e.Node] = true
	}
}

func (t *Tree[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// checkEntries verifies a sibling list against the arena and the alphabet.
func (t *Tree[T]) checkEntries(entries []Entry) error {
	prev := -1
	seen := make(map[NodeID]struct{}, len(entries))
	for i, e := range entries {
		if !t.valid(e.Node) {
			return fmt.Errorf("%w: entry %d refers to %d", ErrNodeNotFound, i, e.Node)
		}
		if _, dup := seen[e.Node]; dup || t.placed[e.Node] {
			return fmt.Errorf("%w: node %d", ErrNodeAttached, e.Node)
		}
		seen[e.Node] = struct{}{}

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

func entryIDs(entries []Entry) []NodeID {
	ids := make([]NodeID, len(entries))
	for i, e := range entries {
		ids[i] = e.Node
	}

	return ids
}
