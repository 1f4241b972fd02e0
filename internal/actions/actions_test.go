package actions

import (
	"errors"
	"fmt"
	"testing"

	"trackedit/internal/course"
)

type recorder struct {
	got []Command
	err error
}

func (r *recorder) HandleCommand(cmd Command) error {
	r.got = append(r.got, cmd)
	return r.err
}

func TestSetContextMapping(t *testing.T) {
	tests := []struct {
		ref  course.Ref
		want []string
	}{
		{course.HeaderRef(), nil},
		{course.CategoryRef(course.KindEnemyPointGroups), []string{"Add Enemy Path"}},
		{course.EnemyGroupRef(4), []string{"Add Enemy Points"}},
		{course.EnemyPointRef(4, 1), []string{"Add Enemy Points"}},
		{course.CategoryRef(course.KindCheckpointGroups), []string{"Add Checkpoint Group"}},
		{course.CheckpointGroupRef(0), []string{"Add Checkpoints"}},
		{course.CheckpointRef(0, 2), []string{"Add Checkpoints"}},
		{course.CategoryRef(course.KindRoutes), []string{"Add Route"}},
		{course.RouteRef(1), []string{"Add Route Points"}},
		{course.RoutePointRef(1, 0), []string{"Add Route Points"}},
		{course.CategoryRef(course.KindObjects), nil},
		{course.ItemRef(course.KindObject, 0), nil},
		{course.CategoryRef(course.KindKartPoints), nil},
		{course.ItemRef(course.KindKartPoint, 0), nil},
		{course.CategoryRef(course.KindAreas), nil},
		{course.ItemRef(course.KindArea, 0), nil},
		{course.CategoryRef(course.KindCameras), nil},
		{course.ItemRef(course.KindCamera, 0), nil},
		{course.CategoryRef(course.KindRespawnPoints), nil},
		{course.ItemRef(course.KindRespawnPoint, 0), nil},
		{course.CategoryRef(course.KindLightParams), nil},
		{course.ItemRef(course.KindLightParam, 0), nil},
		{course.CategoryRef(course.KindMGEntries), nil},
		{course.ItemRef(course.KindMGEntry, 0), nil},
		{course.Ref{Kind: course.Kind(99)}, nil},
	}

	p := NewPanel(&recorder{})
	for _, tt := range tests {
		ref := tt.ref
		p.SetContext(&ref)
		got := p.Labels()
		if fmt.Sprint(got) != fmt.Sprint(tt.want) || len(got) != len(tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.ref, tt.want, got)
		}
	}
}

func TestSetContextNilClears(t *testing.T) {
	p := NewPanel(&recorder{})
	ref := course.CategoryRef(course.KindRoutes)
	p.SetContext(&ref)
	if len(p.Buttons()) != 1 {
		t.Fatalf("Expected 1 button, got %d", len(p.Buttons()))
	}

	p.SetContext(nil)
	if len(p.Buttons()) != 0 {
		t.Errorf("Expected no buttons after nil context, got %v", p.Labels())
	}
}

func TestActivateForwardsCommand(t *testing.T) {
	rec := &recorder{}
	p := NewPanel(rec)
	p.PointCount = 3
	ref := course.CheckpointRef(1, 2)
	p.SetContext(&ref)

	if err := p.Activate(0); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if len(rec.got) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(rec.got))
	}
	want := Command{Op: AddCheckpoints, Target: ref, Count: 3}
	if rec.got[0] != want {
		t.Errorf("Expected %+v, got %+v", want, rec.got[0])
	}
}

func TestContainerCommandsHaveNoCount(t *testing.T) {
	p := NewPanel(&recorder{})
	p.PointCount = 5
	ref := course.CategoryRef(course.KindEnemyPointGroups)
	p.SetContext(&ref)

	if got := p.Buttons()[0].Command.Count; got != 0 {
		t.Errorf("Expected count 0 for Add Enemy Path, got %d", got)
	}
}

func TestActivateErrors(t *testing.T) {
	boom := errors.New("boom")
	p := NewPanel(&recorder{err: boom})
	ref := course.RouteRef(0)
	p.SetContext(&ref)

	if err := p.Activate(1); err == nil {
		t.Error("Expected error for out of range button")
	}
	if err := p.Activate(-1); err == nil {
		t.Error("Expected error for negative index")
	}
	if err := p.Activate(0); !errors.Is(err, boom) {
		t.Errorf("Expected handler error, got %v", err)
	}

	orphan := NewPanel(nil)
	orphan.SetContext(&ref)
	if err := orphan.Activate(0); err == nil {
		t.Error("Expected error without handler")
	}
}

func TestOpTags(t *testing.T) {
	want := map[Op]string{
		AddEnemyPath:       "add_enemypath",
		AddEnemyPoints:     "add_enemypoints",
		AddCheckpointGroup: "add_checkpointgroup",
		AddCheckpoints:     "add_checkpoints",
		AddRoute:           "add_route",
		AddRoutePoints:     "add_routepoints",
	}
	for op, tag := range want {
		if op.Tag() != tag {
			t.Errorf("Expected %s, got %s", tag, op.Tag())
		}
	}
	if got := Op(42).Tag(); got != "op_42" {
		t.Errorf("Expected op_42, got %s", got)
	}
}
