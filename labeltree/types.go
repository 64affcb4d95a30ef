// SPDX-License-Identifier: MIT
// Package: keypick/labeltree
//
// types.go — node model, tree arena and sentinel errors.

package labeltree

import (
	"errors"

	"github.com/katalvlaran/keypick/alphabet"
)

// Sentinel errors for tree construction and validation.
var (
	// ErrAlphabetTooSmall indicates that Build or New received an alphabet with fewer than two symbols.
	ErrAlphabetTooSmall = errors.New("labeltree: alphabet too small")

	// ErrEmptyBranch indicates a branch without children.
	ErrEmptyBranch = errors.New("labeltree: branch has no children")

	// ErrUnknownSymbol indicates an entry symbol that is not part of the tree's alphabet.
	ErrUnknownSymbol = errors.New("labeltree: symbol not in alphabet")

	// ErrSymbolOrder indicates sibling symbols that repeat or are not in alphabet order.
	ErrSymbolOrder = errors.New("labeltree: sibling symbols out of alphabet order")

	// ErrNodeNotFound indicates an entry referring to a NodeID outside the arena.
	ErrNodeNotFound = errors.New("labeltree: node not found")

	// ErrNodeAttached indicates an attempt to give a node a second parent.
	ErrNodeAttached = errors.New("labeltree: node already attached")

	// ErrInvariant indicates a structural violation found by Validate.
	ErrInvariant = errors.New("labeltree: invariant violated")
)

// NodeID addresses a node inside its Tree's arena.
type NodeID int

// NoNode is the NodeID of "no node", used for the parent of root entries.
const NoNode NodeID = -1

// Kind tags a Node as a leaf or a branch.
type Kind uint8

const (
	// KindLeaf marks a terminal node that carries an item.
	KindLeaf Kind = iota

	// KindBranch marks an interior node with one or more children.
	KindBranch
)

// String returns "leaf" or "branch".
func (k Kind) String() string {
	if k == KindBranch {
		return "branch"
	}

	return "leaf"
}

// Entry pairs a symbol with the node it selects.
type Entry struct {
	Symbol alphabet.Symbol
	Node   NodeID
}

// Node is one arena slot.
//
// For KindLeaf, Item is the selected value and Children is nil.
// For KindBranch, Children is non-empty, in alphabet order, and Item is the zero value.
type Node[T any] struct {
	ID       NodeID
	Kind     Kind
	Item     T
	Children []Entry
}

// IsLeaf reports whether n is a leaf.
func (n Node[T]) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// Tree is a label tree: an arena of nodes plus the top-level entry list.
//
// A Tree is not safe for concurrent mutation. Once built it is only read,
// and ownership typically passes to a selection engine.
type Tree[T any] struct {
	alpha  alphabet.Alphabet
	nodes  []Node[T]
	parent []NodeID // NoNode for root entries and detached nodes
	placed []bool   // node has been attached to the root list or a branch
	root   []Entry
}

// Path describes one leaf and the full key sequence that reaches it.
type Path[T any] struct {
	Keys  string
	Node  NodeID
	Item  T
	Depth int
}
