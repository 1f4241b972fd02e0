package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"trackedit/internal/actions"
	"trackedit/internal/course"
	"trackedit/internal/lookup"
	"trackedit/internal/tree"
)

func testCourse() *course.Course {
	c := course.New()
	c.EnemyPointGroups.Groups[2] = &course.EnemyPointGroup{ID: 2, Points: []*course.EnemyPoint{
		{Position: course.Vec3{X: 10}, Scale: 1, Link: -1},
		{Position: course.Vec3{X: 20}, Scale: 1, Link: -1},
	}}
	c.EnemyPointGroups.Groups[0] = &course.EnemyPointGroup{ID: 0}
	c.CheckpointGroups.Groups = []*course.CheckpointGroup{{Points: []*course.Checkpoint{{}}}}
	c.Routes = []*course.Route{{}}
	c.Objects = []*course.MapObject{{ObjectID: 1}}
	c.KartPoints = []*course.KartStartPoint{{PlayerID: course.AllPlayers}}
	return c
}

func newController() *Controller {
	ctl := New(lookup.Bundled())
	ctl.Load(testCourse())
	return ctl
}

func TestHandleCommandInsertsAndSelects(t *testing.T) {
	ctl := newController()
	var statuses []Status
	ctl.StatusChanged.AddListener(func(s Status) { statuses = append(statuses, s) })

	err := ctl.HandleCommand(actions.Command{Op: actions.AddEnemyPoints, Target: course.EnemyPointRef(2, 0), Count: 2})
	if err != nil {
		t.Fatalf("HandleCommand failed: %v", err)
	}

	if got := len(ctl.Course().EnemyPointGroups.Groups[2].Points); got != 4 {
		t.Errorf("Expected 4 points, got %d", got)
	}
	sel := ctl.Selected()
	if sel == nil || *sel != course.EnemyPointRef(2, 1) {
		t.Fatalf("Expected the first new point selected, got %v", sel)
	}
	group := ctl.Tree().Find(course.EnemyGroupRef(2))
	if group == nil || len(group.Children) != 4 {
		t.Fatalf("Tree was not rebuilt")
	}
	if !group.Expanded {
		t.Error("Group holding the new point should be expanded")
	}
	if tree.Index(ctl.Tree().Visible(), *sel) < 0 {
		t.Error("New point should be visible")
	}
	if got := ctl.Panel().Labels(); len(got) != 1 || got[0] != "Add Enemy Points" {
		t.Errorf("Expected Add Enemy Points button, got %v", got)
	}
	if !ctl.Dirty() {
		t.Error("Course should be dirty after an edit")
	}
	if len(statuses) != 1 || statuses[0].Error || statuses[0].Text != "Add Enemy Points: Enemy Route Point 1" {
		t.Errorf("Unexpected status %+v", statuses)
	}
}

func TestHandleCommandContainers(t *testing.T) {
	ctl := newController()

	tests := []struct {
		op   actions.Op
		want course.Ref
	}{
		{actions.AddEnemyPath, course.EnemyGroupRef(3)},
		{actions.AddCheckpointGroup, course.CheckpointGroupRef(1)},
		{actions.AddRoute, course.RouteRef(1)},
	}
	for _, tt := range tests {
		if err := ctl.HandleCommand(actions.Command{Op: tt.op, Target: course.CategoryRef(tt.want.Kind.Category())}); err != nil {
			t.Fatalf("%s failed: %v", tt.op, err)
		}
		if sel := ctl.Selected(); sel == nil || *sel != tt.want {
			t.Errorf("%s: expected %s selected, got %v", tt.op, tt.want, sel)
		}
		if ctl.Tree().Find(tt.want) == nil {
			t.Errorf("%s: %s missing from tree", tt.op, tt.want)
		}
	}
}

func TestAddPointsToEmptyRoute(t *testing.T) {
	ctl := newController()

	if err := ctl.HandleCommand(actions.Command{Op: actions.AddRoutePoints, Target: course.RouteRef(0)}); err != nil {
		t.Fatalf("HandleCommand failed: %v", err)
	}
	if got := len(ctl.Course().Routes[0].Points); got != 1 {
		t.Errorf("Zero count should insert one point, got %d", got)
	}
	if sel := ctl.Selected(); sel == nil || *sel != course.RoutePointRef(0, 0) {
		t.Errorf("Expected route point 0 selected, got %v", sel)
	}
}

func TestHandleCommandErrors(t *testing.T) {
	ctl := newController()
	var last Status
	ctl.StatusChanged.AddListener(func(s Status) { last = s })

	err := ctl.HandleCommand(actions.Command{Op: actions.AddCheckpoints, Target: course.CheckpointGroupRef(9)})
	if !errors.Is(err, course.ErrStaleRef) {
		t.Errorf("Expected stale ref error, got %v", err)
	}
	if !last.Error {
		t.Error("Failure should flash an error status")
	}
	if ctl.Dirty() {
		t.Error("Failed command should not mark the course dirty")
	}

	err = ctl.HandleCommand(actions.Command{Op: actions.AddRoutePoints, Target: course.CheckpointRef(0, 0)})
	if !errors.Is(err, course.ErrWrongKind) {
		t.Errorf("Expected wrong kind error, got %v", err)
	}
	if err := ctl.HandleCommand(actions.Command{Op: actions.Op(40)}); err == nil {
		t.Error("Expected error for unknown op")
	}
}

func TestPanelDrivesController(t *testing.T) {
	ctl := newController()
	ctl.Select(course.CategoryRef(course.KindCheckpointGroups))

	if err := ctl.Panel().Activate(0); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if got := len(ctl.Course().CheckpointGroups.Groups); got != 2 {
		t.Errorf("Expected 2 checkpoint groups, got %d", got)
	}
	if got := ctl.Panel().Labels(); len(got) != 1 || got[0] != "Add Checkpoints" {
		t.Errorf("Panel should follow the new selection, got %v", got)
	}
}

func TestSelect(t *testing.T) {
	ctl := newController()
	var changes []*course.Ref
	ctl.SelectionChanged.AddListener(func(r *course.Ref) { changes = append(changes, r) })

	if !ctl.Select(course.HeaderRef()) {
		t.Error("Header should be selectable")
	}
	if len(ctl.Panel().Buttons()) != 0 {
		t.Error("Header offers no actions")
	}
	if ctl.Select(course.ItemRef(course.KindCamera, 0)) {
		t.Error("Selecting a missing camera should fail")
	}
	if ctl.Selected() != nil {
		t.Error("Failed select should clear the selection")
	}
	if len(changes) != 2 || changes[1] != nil {
		t.Errorf("Expected select then clear, got %v", changes)
	}
}

func TestLoadDropsStaleSelection(t *testing.T) {
	ctl := newController()
	ctl.Select(course.EnemyPointRef(2, 1))

	ctl.Load(testCourse())
	if sel := ctl.Selected(); sel == nil || *sel != course.EnemyPointRef(2, 1) {
		t.Errorf("Selection should survive a reload of the same course, got %v", sel)
	}

	loads := 0
	ctl.CourseLoaded.AddListener(func(*course.Course) { loads++ })
	ctl.Load(course.New())
	if ctl.Selected() != nil {
		t.Error("Stale selection should be cleared")
	}
	if len(ctl.Panel().Buttons()) != 0 {
		t.Error("Panel should be empty without a selection")
	}
	if loads != 1 {
		t.Errorf("Expected 1 load event, got %d", loads)
	}
}

func TestOpenSaveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	if err := course.SaveFile(path, testCourse()); err != nil {
		t.Fatal(err)
	}

	ctl := New(lookup.Bundled())
	if err := ctl.Save(""); !errors.Is(err, ErrNoPath) {
		t.Errorf("Expected ErrNoPath, got %v", err)
	}
	if err := ctl.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if ctl.Path() != path {
		t.Errorf("Expected path %s, got %s", path, ctl.Path())
	}

	ctl.HandleCommand(actions.Command{Op: actions.AddRoute})
	if err := ctl.Save(""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ctl.Dirty() {
		t.Error("Save should clear the dirty flag")
	}

	ctl.HandleCommand(actions.Command{Op: actions.AddRoute})
	if err := ctl.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := len(ctl.Course().Routes); got != 2 {
		t.Errorf("Reload should restore the saved 2 routes, got %d", got)
	}
	if got := len(ctl.Tree().Category(course.KindRoutes).Children); got != 2 {
		t.Errorf("Tree should show 2 routes, got %d", got)
	}

	if err := ctl.Open(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error opening a missing file")
	}
	if ctl.Path() != path {
		t.Error("Failed open should keep the previous path")
	}
}

func TestInspect(t *testing.T) {
	ctl := newController()
	ctl.Course().Header.MusicID = 36

	if ctl.Inspect() != nil {
		t.Error("No selection should inspect nothing")
	}
	ctl.Select(course.HeaderRef())
	props := ctl.Inspect()
	if len(props) == 0 || props[0].Name != "Music" || props[0].Value != "Luigi Circuit (0x24)" {
		t.Errorf("Unexpected header properties %v", props)
	}

	ctl.Select(course.ItemRef(course.KindObject, 0))
	props = ctl.Inspect()
	if props[0].Value != "GeoItemBox" {
		t.Errorf("Expected object name, got %v", props[0])
	}

	ctl.Select(course.CategoryRef(course.KindObjects))
	props = ctl.Inspect()
	if len(props) != 1 || props[0].Value != "1" {
		t.Errorf("Expected entry count, got %v", props)
	}

	props = Properties(ctl.Course(), course.ItemRef(course.KindArea, 5), nil)
	if props[0].Name != "Missing" {
		t.Errorf("Expected missing row, got %v", props)
	}
}

func TestEventListeners(t *testing.T) {
	var ev Event[int]
	ev.AddListener(nil)
	sum := 0
	ev.AddListener(func(n int) { sum += n })
	ev.AddListener(func(n int) { sum += n * 10 })
	ev.Invoke(2)
	if sum != 22 {
		t.Errorf("Expected 22, got %d", sum)
	}
}

func TestChangedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	if err := course.SaveFile(path, testCourse()); err != nil {
		t.Fatal(err)
	}
	ctl := New(lookup.Bundled())
	if ctl.ChangedOnDisk() {
		t.Error("An untitled course has no file to change")
	}
	if err := ctl.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if ctl.ChangedOnDisk() {
		t.Error("Freshly opened file should match")
	}

	ctl.HandleCommand(actions.Command{Op: actions.AddRoute})
	if err := ctl.Save(""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ctl.ChangedOnDisk() {
		t.Error("The editor's own save should not count as a change")
	}

	other := testCourse()
	other.Routes = nil
	if err := course.SaveFile(path, other); err != nil {
		t.Fatal(err)
	}
	if !ctl.ChangedOnDisk() {
		t.Error("A write by another program should count as a change")
	}
	if err := ctl.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if ctl.ChangedOnDisk() {
		t.Error("Reload should take the new contents as the baseline")
	}
}

func TestSwitch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := course.SaveFile(first, testCourse()); err != nil {
		t.Fatal(err)
	}
	if err := course.SaveFile(second, course.New()); err != nil {
		t.Fatal(err)
	}

	ctl := New(lookup.Bundled())
	if err := ctl.Open(first); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctl.Tree().Expand(course.CategoryRef(course.KindEnemyPointGroups), course.EnemyGroupRef(2))
	ctl.Select(course.HeaderRef())
	ctl.HandleCommand(actions.Command{Op: actions.AddRoute})

	var last Status
	ctl.StatusChanged.AddListener(func(s Status) { last = s })
	if err := ctl.Switch(first); err != nil {
		t.Fatalf("Switch to the same course failed: %v", err)
	}
	if last.Text != "Already editing this course" || !ctl.Dirty() {
		t.Errorf("Switching to the open course should do nothing, got %+v", last)
	}

	if err := ctl.Switch(second); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	if ctl.Path() != second || ctl.Dirty() {
		t.Errorf("Expected clean %s, got %s (dirty %v)", second, ctl.Path(), ctl.Dirty())
	}
	if ctl.Selected() != nil {
		t.Error("Switch should clear the selection")
	}
	if ctl.Course().EntityCount() != 0 {
		t.Error("Expected the second course loaded")
	}

	saved, err := course.LoadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(saved.Routes); got != 2 {
		t.Errorf("Unsaved edits should be saved before switching, got %d routes", got)
	}

	if err := ctl.Switch(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error switching to a missing file")
	}
	if ctl.Path() != second {
		t.Error("Failed switch should keep the current course")
	}
}
