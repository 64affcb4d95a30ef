package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/keypick/labeltree"
)

// releaseSubtree releases id and everything under it, children first.
func (e *Engine[T]) releaseSubtree(id labeltree.NodeID) error {
	_, err := labeltree.Walk(e.tree, []labeltree.NodeID{id},
		labeltree.WithOnExit(func(n labeltree.NodeID, _ int) error {
			return e.release(n)
		}))

	return err
}

// releaseLive releases every node still owned by the engine: the visible
// subtrees first, then the entered path from the deepest node up.
func (e *Engine[T]) releaseLive() error {
	for _, entry := range e.visible {
		if err := e.releaseSubtree(entry.Node); err != nil {
			return err
		}
	}
	for i := len(e.path) - 1; i >= 0; i-- {
		if err := e.release(e.path[i]); err != nil {
			return err
		}
	}

	return nil
}

// release hands one node to the collaborator. A second release of the same
// node means the engine lost track of ownership.
func (e *Engine[T]) release(id labeltree.NodeID) error {
	if e.released[id] {
		return fmt.Errorf("%w: node %d released twice", ErrInvariant, id)
	}
	e.released[id] = true

	n, _ := e.tree.Node(id)
	e.log.Debug("release", zap.Int("node", int(id)), zap.Stringer("kind", n.Kind))
	e.collab.OnRelease(id, n)

	return nil
}
