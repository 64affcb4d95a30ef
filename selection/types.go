package selection

import (
	"errors"

	"github.com/katalvlaran/keypick/alphabet"
	"github.com/katalvlaran/keypick/labeltree"
)

// Sentinel errors for engine misuse and internal consistency faults.
var (
	// ErrNilTree indicates that New received a nil tree.
	ErrNilTree = errors.New("selection: tree is nil")

	// ErrNotStarted indicates Feed was called before Collapse.
	ErrNotStarted = errors.New("selection: engine not started, call Collapse first")

	// ErrTerminal indicates Feed was called after a terminal outcome.
	ErrTerminal = errors.New("selection: engine already reached a terminal outcome")

	// ErrInvariant indicates a broken tree or a broken release discipline.
	ErrInvariant = errors.New("selection: invariant violated")
)

// State is the engine's position in the selection state machine.
type State uint8

const (
	// Pending: created, Collapse not yet called.
	Pending State = iota

	// Active: two or more visible choices, waiting for a key.
	Active

	// Selected: terminal, exactly one item chosen.
	Selected

	// NoMatch: terminal, the typed keys match nothing (or selection was abandoned).
	NoMatch
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Selected:
		return "selected"
	case NoMatch:
		return "no-match"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is Selected or NoMatch.
func (s State) Terminal() bool {
	return s == Selected || s == NoMatch
}

// Label describes one visible choice.
type Label[T any] struct {
	// Symbol is the key that picks this entry now.
	Symbol alphabet.Symbol

	// Path is the keys typed so far followed by Symbol. Levels entered by
	// auto-collapse add no key, so on trees with singleton branches Path is
	// shorter than the entry's key sequence in labeltree.Paths.
	Path string

	// Node is the entry's node in the tree.
	Node labeltree.NodeID

	// Leaf reports whether the entry selects an item directly.
	// When false, the entry is a group and Item is the zero value.
	Leaf bool

	// Item is the selected value for leaf entries.
	Item T

	// Size counts the items reachable through this entry.
	Size int
}

// Hint pairs a live item with the keys still to type to select it from the
// current state. Singleton levels are skipped since collapse enters them.
type Hint[T any] struct {
	Keys string
	Node labeltree.NodeID
	Item T
}

// Outcome is the result of Collapse, Feed or Abandon.
type Outcome[T any] struct {
	State State

	// Item and Node identify the winner when State == Selected.
	Item T
	Node labeltree.NodeID

	// Path lists the winning path from the root list down to the leaf,
	// including singleton branches entered by collapse. These nodes are not
	// released; their resources belong to the caller.
	Path []labeltree.NodeID

	// Labels holds the visible choices when State == Active.
	Labels []Label[T]
}

// Collaborator receives the engine's notifications.
type Collaborator[T any] interface {
	// OnRender is called after every transition that leaves two or more visible choices.
	OnRender(labels []Label[T])

	// OnRelease is called once per node removed from the live tree, before the
	// engine forgets it.
	OnRelease(id labeltree.NodeID, node labeltree.Node[T])

	// OnSelected is called once when an item is selected.
	OnSelected(item T)

	// OnNoMatch is called once when the selection ends without an item.
	OnNoMatch()
}

// Hooks adapts optional functions into a Collaborator. Nil fields are no-ops.
type Hooks[T any] struct {
	Render   func(labels []Label[T])
	Release  func(id labeltree.NodeID, node labeltree.Node[T])
	Selected func(item T)
	NoMatch  func()
}

// OnRender calls h.Render if set.
func (h Hooks[T]) OnRender(labels []Label[T]) {
	if h.Render != nil {
		h.Render(labels)
	}
}

// OnRelease calls h.Release if set.
func (h Hooks[T]) OnRelease(id labeltree.NodeID, node labeltree.Node[T]) {
	if h.Release != nil {
		h.Release(id, node)
	}
}

// OnSelected calls h.Selected if set.
func (h Hooks[T]) OnSelected(item T) {
	if h.Selected != nil {
		h.Selected(item)
	}
}

// OnNoMatch calls h.NoMatch if set.
func (h Hooks[T]) OnNoMatch() {
	if h.NoMatch != nil {
		h.NoMatch()
	}
}
