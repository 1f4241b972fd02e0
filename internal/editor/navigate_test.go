package editor

import (
	"testing"

	"trackedit/internal/course"
)

func TestMove(t *testing.T) {
	ctl := newController()

	ctl.Move(1)
	if sel := ctl.Selected(); sel == nil || *sel != course.HeaderRef() {
		t.Fatalf("First move should select the header, got %v", sel)
	}
	ctl.Move(1)
	if sel := ctl.Selected(); *sel != course.CategoryRef(course.KindEnemyPointGroups) {
		t.Errorf("Expected enemy groups, got %s", sel)
	}
	ctl.Move(-5)
	if sel := ctl.Selected(); *sel != course.HeaderRef() {
		t.Errorf("Move should clamp at the top, got %s", sel)
	}
	ctl.Move(100)
	if sel := ctl.Selected(); *sel != course.CategoryRef(course.KindMGEntries) {
		t.Errorf("Move should clamp at the bottom, got %s", sel)
	}
}

func TestExpandCollapse(t *testing.T) {
	ctl := newController()
	ctl.Select(course.CategoryRef(course.KindEnemyPointGroups))

	ctl.Expand()
	if n := ctl.Tree().Find(course.CategoryRef(course.KindEnemyPointGroups)); !n.Expanded {
		t.Fatal("Expand should open the category")
	}
	ctl.Expand()
	if sel := ctl.Selected(); *sel != course.EnemyGroupRef(0) {
		t.Errorf("Second expand should step into the first child, got %s", sel)
	}

	ctl.Collapse()
	if sel := ctl.Selected(); *sel != course.CategoryRef(course.KindEnemyPointGroups) {
		t.Errorf("Collapse on a closed node should select the parent, got %s", sel)
	}
	ctl.Collapse()
	if n := ctl.Tree().Find(course.CategoryRef(course.KindEnemyPointGroups)); n.Expanded {
		t.Error("Collapse should close the category")
	}

	ctl.Select(course.HeaderRef())
	ctl.Collapse()
	if sel := ctl.Selected(); *sel != course.HeaderRef() {
		t.Error("Header has no parent to move to")
	}
}

func TestToggleSelected(t *testing.T) {
	ctl := newController()
	ctl.Toggle()

	ctl.Select(course.CategoryRef(course.KindCheckpointGroups))
	ctl.Toggle()
	if !ctl.Tree().Find(course.CategoryRef(course.KindCheckpointGroups)).Expanded {
		t.Error("Toggle should open the selected node")
	}
	ctl.Toggle()
	if ctl.Tree().Find(course.CategoryRef(course.KindCheckpointGroups)).Expanded {
		t.Error("Second toggle should close it")
	}
}

func TestMoveFromHiddenSelection(t *testing.T) {
	ctl := newController()

	ctl.Select(course.EnemyPointRef(2, 1))
	ctl.Move(1)
	if sel := ctl.Selected(); sel == nil || *sel != course.CategoryRef(course.KindCheckpointGroups) {
		t.Errorf("Down should step past the collapsed ancestor, got %v", sel)
	}

	ctl.Select(course.EnemyPointRef(2, 1))
	ctl.Move(-1)
	if sel := ctl.Selected(); sel == nil || *sel != course.CategoryRef(course.KindEnemyPointGroups) {
		t.Errorf("Up should land on the collapsed ancestor, got %v", sel)
	}

	ctl.Tree().Expand(course.CategoryRef(course.KindEnemyPointGroups))
	ctl.Select(course.EnemyPointRef(2, 1))
	ctl.Move(-1)
	if sel := ctl.Selected(); sel == nil || *sel != course.EnemyGroupRef(2) {
		t.Errorf("Up should land on the nearest visible ancestor, got %v", sel)
	}
}
