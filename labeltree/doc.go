// Package labeltree builds and inspects K-ary label trees: the structure that
// maps short key sequences to items.
//
// What:
//
//   - Build: partitions N items into a balanced tree over an alphabet of K
//     symbols so that every item gets a unique, shortest possible key sequence.
//   - Manual construction (New, AddLeaf, AddBranch, SetRoot) for arbitrary shapes.
//   - Walk: depth-first traversal with pre-order and post-order hooks.
//   - Invariant helpers: Validate, Paths, Leaves, Depths.
//
// Representation:
//
//	Nodes live in an arena owned by Tree and are addressed by NodeID. A node is
//	either a leaf (carrying an item) or a branch (carrying an ordered list of
//	(symbol, child) entries). The root is not a node: it is a top-level entry
//	list, conceptually a branch without a rendered container.
//
//	  root: a ──► branch ── a ──► leaf(A)
//	        │             └ b ──► leaf(B)
//	        b ──► leaf(C)
//	        c ──► leaf(D)
//
// Build policy:
//
//   - N = 0: empty root list.
//   - N = 1: root list {alphabet[0]: leaf}.
//   - N ≥ 2: D = smallest integer with K^D ≥ N (see MinDepth). Items are split
//     into at most K contiguous groups as evenly as possible: the first N mod K
//     groups receive ⌊N/K⌋+1 items, the rest ⌊N/K⌋, empty groups are dropped.
//     A group of one item becomes a leaf directly; larger groups recurse with D−1.
//
// Guarantees:
//
//   - every input item appears as exactly one leaf;
//   - leaf depths (keystrokes from the root list) are D or D−1;
//   - key sequences are prefix-free;
//   - Build is deterministic for a given items order and alphabet order.
//
// Complexity:
//
//   - Build: O(N) time, O(N) space (the arena holds fewer than 2N nodes).
//   - Walk, Validate, Paths: O(nodes).
//
// Errors:
//
//   - ErrAlphabetTooSmall  alphabet has fewer than two symbols.
//   - ErrEmptyBranch       a branch with no children.
//   - ErrUnknownSymbol     an entry symbol outside the alphabet.
//   - ErrSymbolOrder       entry symbols repeat or break alphabet order.
//   - ErrNodeNotFound      an entry points at a NodeID outside the arena.
//   - ErrNodeAttached      a node is given a second parent.
//   - ErrInvariant         Validate found a structural violation.
package labeltree
