package editor

import (
	"trackedit/internal/course"
	"trackedit/internal/tree"
)

// Move shifts the selection by delta visible rows, clamped to the tree. With
// nothing selected it starts from the top.
func (ctl *Controller) Move(delta int) {
	rows := ctl.tree.Visible()
	if len(rows) == 0 {
		return
	}
	if ctl.selected == nil {
		ctl.Select(rows[0].Node.Ref)
		return
	}
	i := tree.Index(rows, *ctl.selected)
	if i < 0 {
		// The selection sits under a collapsed node. Step from its nearest
		// visible ancestor; moving up lands on the ancestor itself.
		i = visibleAncestor(rows, *ctl.selected)
		if i < 0 {
			ctl.Select(rows[0].Node.Ref)
			return
		}
		if delta < 0 {
			delta++
		}
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(rows) {
		i = len(rows) - 1
	}
	ctl.Select(rows[i].Node.Ref)
}

func visibleAncestor(rows []tree.Row, ref course.Ref) int {
	for {
		parent, ok := ref.Parent()
		if !ok {
			return -1
		}
		if i := tree.Index(rows, parent); i >= 0 {
			return i
		}
		ref = parent
	}
}

// Expand opens the selected node. An already open node moves the selection to
// its first child.
func (ctl *Controller) Expand() {
	n := ctl.selectedNode()
	if n == nil || len(n.Children) == 0 {
		return
	}
	if !n.Expanded {
		n.Expanded = true
		return
	}
	ctl.Select(n.Children[0].Ref)
}

// Collapse closes the selected node, or moves to its parent when it is
// already closed.
func (ctl *Controller) Collapse() {
	n := ctl.selectedNode()
	if n == nil {
		return
	}
	if n.Expanded {
		n.Expanded = false
		return
	}
	if parent, ok := n.Ref.Parent(); ok {
		ctl.Select(parent)
	}
}

// Toggle flips the selected node open or closed.
func (ctl *Controller) Toggle() {
	if ctl.selected != nil {
		ctl.tree.Toggle(*ctl.selected)
	}
}

func (ctl *Controller) selectedNode() *tree.Node {
	if ctl.selected == nil {
		return nil
	}
	return ctl.tree.Find(*ctl.selected)
}
