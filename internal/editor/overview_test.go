package editor

import (
	"testing"

	"trackedit/internal/course"
)

func TestPathsOrder(t *testing.T) {
	c := testCourse()
	c.CheckpointGroups.Groups[0].Points[0] = &course.Checkpoint{
		Start: course.Vec3{X: -100, Z: 50},
		End:   course.Vec3{X: 100, Z: 50},
	}
	c.Routes[0].Loop = 1

	paths := Paths(c)
	if len(paths) != 4 {
		t.Fatalf("Expected 4 paths, got %d", len(paths))
	}
	want := []course.Ref{
		course.EnemyGroupRef(0),
		course.EnemyGroupRef(2),
		course.CheckpointGroupRef(0),
		course.RouteRef(0),
	}
	for i, p := range paths {
		if p.Ref != want[i] {
			t.Errorf("path %d: expected %s, got %s", i, want[i], p.Ref)
		}
	}
	if len(paths[1].Points) != 2 || paths[1].Points[1].Pos.X != 20 {
		t.Errorf("Unexpected enemy path points %+v", paths[1].Points)
	}
	if mid := paths[2].Points[0].Pos; mid != (course.Vec3{Z: 50}) {
		t.Errorf("Checkpoint marker should sit mid-gate, got %+v", mid)
	}
	if !paths[3].Loop {
		t.Error("Route loop flag lost")
	}
}

func TestMarkersAndBounds(t *testing.T) {
	c := testCourse()
	c.Objects[0].Position = course.Vec3{X: -300, Y: 5, Z: 900}
	c.KartPoints[0].Position = course.Vec3{X: 40, Y: -2, Z: -10}

	ms := Markers(c)
	// 2 enemy points, 1 checkpoint, 1 object, 1 kart point
	if len(ms) != 5 {
		t.Fatalf("Expected 5 markers, got %d", len(ms))
	}
	lo, hi, ok := Bounds(ms)
	if !ok {
		t.Fatal("Expected bounds")
	}
	if lo != (course.Vec3{X: -300, Y: -2, Z: -10}) || hi != (course.Vec3{X: 40, Y: 5, Z: 900}) {
		t.Errorf("Unexpected bounds %+v %+v", lo, hi)
	}
	if _, _, ok := Bounds(nil); ok {
		t.Error("Empty marker list has no bounds")
	}
}

func TestHighlighted(t *testing.T) {
	pt := course.EnemyPointRef(2, 1)
	group := course.EnemyGroupRef(2)
	other := course.EnemyGroupRef(0)

	if Highlighted(pt, nil) {
		t.Error("Nothing is highlighted without a selection")
	}
	if !Highlighted(pt, &pt) || !Highlighted(pt, &group) {
		t.Error("Point should highlight for itself and its group")
	}
	if Highlighted(pt, &other) {
		t.Error("Point should not highlight for another group")
	}
}
