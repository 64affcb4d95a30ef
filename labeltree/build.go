package labeltree

import (
	"math"

	"github.com/katalvlaran/keypick/alphabet"
)

// Build partitions items into a balanced label tree over a.
//
// Algorithm Outline:
//  1. N = 0 → empty root list; the caller treats this as an immediate no-match.
//  2. N = 1 → root list {a[0]: leaf(items[0])}.
//  3. N ≥ 2 → split items into at most K contiguous groups, sizes as even as
//     possible (the first N mod K groups get one extra item), assign the i-th
//     group the i-th symbol, turn singleton groups into leaves and recurse on
//     the others.
//
// Depth is allocated from N, not N−1: with N = K^D items the deepest leaf sits
// at exactly D keystrokes and no group ever exceeds the alphabet's capacity.
//
// Build never inspects items beyond their position in the slice.
//
// Errors:
//   - ErrAlphabetTooSmall if a.Len() < 2.
//
// Complexity: O(N) time, O(N) space.
func Build[T any](items []T, a alphabet.Alphabet) (*Tree[T], error) {
	t, err := New[T](a)
	if err != nil {
		return nil, err
	}

	n := len(items)
	// a K-ary tree with N leaves and no unary nodes has fewer than 2N nodes
	t.nodes = make([]Node[T], 0, 2*n)
	t.parent = make([]NodeID, 0, 2*n)
	t.placed = make([]bool, 0, 2*n)

	switch n {
	case 0:
		t.root = []Entry{}
	case 1:
		leaf := t.AddLeaf(items[0])
		t.root = []Entry{{Symbol: a.At(0), Node: leaf}}
	default:
		t.root = t.partition(items)
	}
	t.attach(NoNode, t.root)

	return t, nil
}

// partition splits items (len ≥ 2) into the entries of one tree level.
func (t *Tree[T]) partition(items []T) []Entry {
	k := t.alpha.Len()
	n := len(items)
	base, remainder := n/k, n%k

	entries := make([]Entry, 0, min(n, k))
	start := 0
	var i, size int
	for i = 0; i < k; i++ {
		size = base
		if i < remainder {
			size++
		}
		if size == 0 {
			// groups after the remainder are empty too when N < K
			break
		}
		group := items[start : start+size]
		start += size

		var id NodeID
		if size == 1 {
			id = t.AddLeaf(group[0])
		} else {
			children := t.partition(group)
			id = t.add(Node[T]{Kind: KindBranch, Children: children})
			t.attach(id, children)
		}
		entries = append(entries, Entry{Symbol: t.alpha.At(i), Node: id})
	}

	return entries
}

// MinDepth returns the number of keystrokes that reaches the deepest leaf of
// Build(items, a) when len(items) = n and a.Len() = k, before any collapse:
//
//	n ≤ 0 → 0
//	n = 1 → 1
//	n ≥ 2 → smallest D with k^D ≥ n
//
// It returns -1 when k < 2 and n ≥ 2, since no depth suffices.
// Integer arithmetic only; k^D saturates at math.MaxInt.
func MinDepth(n, k int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 1
	case k < alphabet.MinSize:
		return -1
	}

	depth, capacity := 0, 1
	for capacity < n {
		if capacity > math.MaxInt/k {
			capacity = math.MaxInt
		} else {
			capacity *= k
		}
		depth++
	}

	return depth
}
