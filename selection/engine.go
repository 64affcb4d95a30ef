package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/keypick/alphabet"
	"github.com/katalvlaran/keypick/labeltree"
)

// Engine is the selection state machine over one label tree.
//
// The engine takes exclusive ownership of the tree: callers must not mutate
// it afterwards. An Engine is not safe for concurrent use.
type Engine[T any] struct {
	tree   *labeltree.Tree[T]
	collab Collaborator[T]
	log    *zap.Logger

	state   State
	visible []labeltree.Entry  // live choices while Active
	path    []labeltree.NodeID // nodes entered so far, root list first
	typed   []rune
	winner  labeltree.NodeID

	released []bool
	size     []int // items reachable through each node
}

// New wraps tree in a Pending engine. Call Collapse to reach the first stable state.
//
// A nil collaborator disables notifications.
//
// Errors:
//   - ErrNilTree if tree is nil.
//   - ErrInvariant (wrapping labeltree.ErrInvariant) if the tree fails labeltree.Validate.
func New[T any](tree *labeltree.Tree[T], c Collaborator[T], opts ...Option) (*Engine[T], error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if err := labeltree.Validate(tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if cfg.name != "" {
		log = log.Named(cfg.name)
	}
	if c == nil {
		c = Hooks[T]{}
	}

	e := &Engine[T]{
		tree:     tree,
		collab:   c,
		log:      log,
		state:    Pending,
		winner:   labeltree.NoNode,
		released: make([]bool, tree.Len()),
		size:     make([]int, tree.Len()),
	}
	if err := e.countItems(); err != nil {
		return nil, err
	}

	return e, nil
}

// countItems fills e.size bottom-up.
func (e *Engine[T]) countItems() error {
	_, err := labeltree.Walk(e.tree, e.tree.RootIDs(),
		labeltree.WithOnExit(func(id labeltree.NodeID, _ int) error {
			n, _ := e.tree.Node(id)
			if n.IsLeaf() {
				e.size[id] = 1
				return nil
			}
			for _, c := range n.Children {
				e.size[id] += e.size[c.Node]
			}
			return nil
		}))

	return err
}

// State returns the current state.
func (e *Engine[T]) State() State {
	return e.state
}

// Typed returns the keys accepted so far.
func (e *Engine[T]) Typed() string {
	return string(e.typed)
}

// Collapse applies auto-collapse to the root list and returns the first
// stable outcome. An empty tree yields NoMatch and a single reachable item
// yields Selected, both without a keystroke.
//
// Once the engine has left Pending, Collapse is a no-op that returns the
// current outcome.
func (e *Engine[T]) Collapse() (Outcome[T], error) {
	if e.state != Pending {
		return e.outcome(), nil
	}
	root := e.tree.Root()
	e.log.Debug("collapse", zap.Int("entries", len(root)))

	return e.settle(root)
}

// Feed consumes one symbol.
//
// The symbol is matched exactly against the visible entries. On a miss, the
// whole live tree is released and the outcome is NoMatch. On a hit, every
// other visible subtree is released, the matched node is entered and collapse
// runs from it, producing Selected or a new Active state.
//
// Errors are reserved for misuse (ErrNotStarted, ErrTerminal) and internal
// faults (ErrInvariant); an unknown key is a NoMatch outcome, not an error.
func (e *Engine[T]) Feed(sym alphabet.Symbol) (Outcome[T], error) {
	switch e.state {
	case Pending:
		return e.outcome(), ErrNotStarted
	case Selected, NoMatch:
		return e.outcome(), fmt.Errorf("%w: state %s, symbol %q", ErrTerminal, e.state, sym.String())
	}
	e.log.Debug("feed", zap.String("symbol", sym.String()), zap.String("typed", e.Typed()))

	hit := -1
	for i, entry := range e.visible {
		if entry.Symbol == sym {
			hit = i
			break
		}
	}
	if hit < 0 {
		if err := e.releaseLive(); err != nil {
			return e.fault(err)
		}
		return e.finishNoMatch(sym.String()), nil
	}

	matched := e.visible[hit]
	for i, entry := range e.visible {
		if i == hit {
			continue
		}
		if err := e.releaseSubtree(entry.Node); err != nil {
			return e.fault(err)
		}
	}
	e.visible = nil
	e.typed = append(e.typed, rune(sym))

	return e.settle([]labeltree.Entry{matched})
}

// Abandon ends an unfinished selection: every live node is released and the
// outcome is NoMatch, exactly as if an unknown key had been typed. On a
// terminal engine Abandon does nothing and returns the current outcome.
func (e *Engine[T]) Abandon() (Outcome[T], error) {
	switch e.state {
	case Selected, NoMatch:
		return e.outcome(), nil
	case Pending:
		for _, id := range e.tree.RootIDs() {
			if err := e.releaseSubtree(id); err != nil {
				return e.fault(err)
			}
		}
	default:
		if err := e.releaseLive(); err != nil {
			return e.fault(err)
		}
	}

	return e.finishNoMatch(""), nil
}

// Current returns the visible choices while Active, nil otherwise.
func (e *Engine[T]) Current() []Label[T] {
	if e.state != Active {
		return nil
	}

	return e.labels()
}

// settle descends through single-entry lists until it reaches a leaf
// (Selected), a list of two or more entries (Active), or an empty root list
// (NoMatch). It is the only place the engine moves down the tree.
func (e *Engine[T]) settle(entries []labeltree.Entry) (Outcome[T], error) {
	for len(entries) == 1 {
		id := entries[0].Node
		n, ok := e.tree.Node(id)
		if !ok {
			return e.fault(fmt.Errorf("%w: %w: %d", ErrInvariant, labeltree.ErrNodeNotFound, id))
		}
		e.path = append(e.path, id)
		if n.IsLeaf() {
			return e.finishSelected(n), nil
		}
		if len(n.Children) == 0 {
			return e.fault(fmt.Errorf("%w: %w: node %d", ErrInvariant, labeltree.ErrEmptyBranch, id))
		}
		entries = n.Children
	}

	if len(entries) == 0 {
		return e.finishNoMatch(""), nil
	}

	e.visible = entries
	e.state = Active
	labels := e.labels()
	e.log.Debug("render", zap.Int("choices", len(labels)), zap.String("typed", e.Typed()))
	e.collab.OnRender(labels)

	return e.outcome(), nil
}

func (e *Engine[T]) finishSelected(leaf labeltree.Node[T]) Outcome[T] {
	e.state = Selected
	e.winner = leaf.ID
	e.visible = nil
	e.log.Info("selected",
		zap.Int("node", int(leaf.ID)),
		zap.String("typed", e.Typed()),
		zap.Int("path", len(e.path)))
	e.collab.OnSelected(leaf.Item)

	return e.outcome()
}

// fault ends the session after an internal error. The engine moves to NoMatch
// without notifying the collaborator, so later calls see a terminal engine
// instead of a half-released tree.
func (e *Engine[T]) fault(err error) (Outcome[T], error) {
	e.state = NoMatch
	e.visible = nil
	e.path = nil
	e.log.Error("selection aborted", zap.Error(err), zap.String("typed", e.Typed()))

	return e.outcome(), err
}

func (e *Engine[T]) finishNoMatch(symbol string) Outcome[T] {
	e.state = NoMatch
	e.visible = nil
	e.path = nil
	e.log.Info("no match", zap.String("symbol", symbol), zap.String("typed", e.Typed()))
	e.collab.OnNoMatch()

	return e.outcome()
}

func (e *Engine[T]) outcome() Outcome[T] {
	out := Outcome[T]{State: e.state, Node: labeltree.NoNode}
	switch e.state {
	case Active:
		out.Labels = e.labels()
	case Selected:
		leaf, _ := e.tree.Node(e.winner)
		out.Item = leaf.Item
		out.Node = e.winner
		out.Path = append([]labeltree.NodeID(nil), e.path...)
	}

	return out
}

func (e *Engine[T]) labels() []Label[T] {
	out := make([]Label[T], len(e.visible))
	for i, entry := range e.visible {
		n, _ := e.tree.Node(entry.Node)
		out[i] = Label[T]{
			Symbol: entry.Symbol,
			Path:   string(append(append([]rune(nil), e.typed...), rune(entry.Symbol))),
			Node:   entry.Node,
			Leaf:   n.IsLeaf(),
			Item:   n.Item,
			Size:   e.size[entry.Node],
		}
	}

	return out
}
