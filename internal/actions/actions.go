// Package actions builds the contextual "add" buttons shown under the inspector
// for the selected course entity, and forwards a pressed button to the host as
// a typed Command.
package actions

import (
	"fmt"
	"log"

	"trackedit/internal/course"
)

// Op is an insertion the host knows how to perform.
type Op int

const (
	AddEnemyPath Op = iota
	AddEnemyPoints
	AddCheckpointGroup
	AddCheckpoints
	AddRoute
	AddRoutePoints
)

var opInfo = []struct {
	tag   string
	label string
}{
	AddEnemyPath:       {"add_enemypath", "Add Enemy Path"},
	AddEnemyPoints:     {"add_enemypoints", "Add Enemy Points"},
	AddCheckpointGroup: {"add_checkpointgroup", "Add Checkpoint Group"},
	AddCheckpoints:     {"add_checkpoints", "Add Checkpoints"},
	AddRoute:           {"add_route", "Add Route"},
	AddRoutePoints:     {"add_routepoints", "Add Route Points"},
}

// Tag is the short identifier used in logs and key bindings.
func (o Op) Tag() string {
	if o < 0 || int(o) >= len(opInfo) {
		return fmt.Sprintf("op_%d", int(o))
	}
	return opInfo[o].tag
}

// Label is the button caption.
func (o Op) Label() string {
	if o < 0 || int(o) >= len(opInfo) {
		return fmt.Sprintf("Op %d", int(o))
	}
	return opInfo[o].label
}

func (o Op) String() string { return o.Tag() }

// Command asks the host to perform Op relative to Target. Target decides where
// new entities go: after a point, at the end of a group, or appended to a
// container. Count only applies to point insertions; zero means one.
type Command struct {
	Op     Op
	Target course.Ref
	Count  int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Op.Tag(), c.Target)
}

// Handler applies commands. The editor controller implements it.
type Handler interface {
	HandleCommand(cmd Command) error
}

type Button struct {
	Label   string
	Command Command
}

// Panel holds the buttons for the current selection.
type Panel struct {
	handler Handler
	buttons []Button
	// PointCount is copied into point insertion commands.
	PointCount int
}

func NewPanel(h Handler) *Panel {
	return &Panel{handler: h, PointCount: 1}
}

// SetContext replaces the buttons with the ones offered for sel. A nil
// selection, the header and any kind without actions leave the panel empty.
func (p *Panel) SetContext(sel *course.Ref) {
	p.buttons = nil
	if sel == nil {
		return
	}
	for _, op := range OpsFor(sel.Kind) {
		cmd := Command{Op: op, Target: *sel}
		if op.addsPoints() {
			cmd.Count = p.PointCount
		}
		p.buttons = append(p.buttons, Button{Label: op.Label(), Command: cmd})
	}
}

// OpsFor returns the operations offered when an entity of kind k is selected.
func OpsFor(k course.Kind) []Op {
	switch k {
	case course.KindEnemyPointGroups:
		return []Op{AddEnemyPath}
	case course.KindEnemyPointGroup, course.KindEnemyPoint:
		return []Op{AddEnemyPoints}
	case course.KindCheckpointGroups:
		return []Op{AddCheckpointGroup}
	case course.KindCheckpointGroup, course.KindCheckpoint:
		return []Op{AddCheckpoints}
	case course.KindRoutes:
		return []Op{AddRoute}
	case course.KindRoute, course.KindRoutePoint:
		return []Op{AddRoutePoints}
	case course.KindHeader,
		course.KindObjects, course.KindObject,
		course.KindKartPoints, course.KindKartPoint,
		course.KindAreas, course.KindArea,
		course.KindCameras, course.KindCamera,
		course.KindRespawnPoints, course.KindRespawnPoint,
		course.KindLightParams, course.KindLightParam,
		course.KindMGEntries, course.KindMGEntry:
		return nil
	}
	return nil
}

func (o Op) addsPoints() bool {
	return o == AddEnemyPoints || o == AddCheckpoints || o == AddRoutePoints
}

func (p *Panel) Buttons() []Button {
	return p.buttons
}

// Labels returns the button captions in display order.
func (p *Panel) Labels() []string {
	labels := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		labels[i] = b.Label
	}
	return labels
}

// Activate presses button i.
func (p *Panel) Activate(i int) error {
	if i < 0 || i >= len(p.buttons) {
		return fmt.Errorf("activate button %d: panel has %d buttons", i, len(p.buttons))
	}
	if p.handler == nil {
		return fmt.Errorf("activate %s: no handler", p.buttons[i].Command)
	}
	cmd := p.buttons[i].Command
	log.Printf("actions: %s", cmd)
	return p.handler.HandleCommand(cmd)
}
