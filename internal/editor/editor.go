// Package editor is the host controller shared by the window and terminal
// front-ends. It owns the course, the browser tree and the action panel, and
// applies panel commands to the course.
//
// A Controller is not safe for concurrent use. Front-ends call it from their
// UI loop only.
package editor

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"trackedit/internal/actions"
	"trackedit/internal/course"
	"trackedit/internal/tree"
)

var ErrNoPath = errors.New("no course file")

// Names resolves the ids shown in labels and the inspector.
type Names interface {
	ObjectName(id uint16) string
	MusicName(id uint8) string
}

// Status is a short message for the status bar.
type Status struct {
	Text  string
	Error bool
}

type Controller struct {
	course   *course.Course
	path     string
	dirty    bool
	// diskSum is the checksum of the file as last read or written.
	diskSum  [sha256.Size]byte
	names    Names
	tree     *tree.Tree
	panel    *actions.Panel
	selected *course.Ref

	CourseLoaded     Event[*course.Course]
	SelectionChanged Event[*course.Ref]
	StatusChanged    Event[Status]
}

func New(names Names) *Controller {
	ctl := &Controller{
		course: course.New(),
		names:  names,
		tree:   tree.New(names),
	}
	ctl.panel = actions.NewPanel(ctl)
	ctl.tree.Load(ctl.course)
	return ctl
}

func (ctl *Controller) Course() *course.Course { return ctl.course }
func (ctl *Controller) Tree() *tree.Tree       { return ctl.tree }
func (ctl *Controller) Panel() *actions.Panel  { return ctl.panel }
func (ctl *Controller) Path() string           { return ctl.path }

// Dirty reports whether the course changed since it was opened or saved.
func (ctl *Controller) Dirty() bool { return ctl.dirty }

// Selected returns the current selection, or nil.
func (ctl *Controller) Selected() *course.Ref {
	if ctl.selected == nil {
		return nil
	}
	ref := *ctl.selected
	return &ref
}

// Load replaces the course and rebuilds the tree. The selection survives when
// its handle still resolves in the new course.
func (ctl *Controller) Load(c *course.Course) {
	if c == nil {
		c = course.New()
	}
	ctl.course = c
	ctl.tree.Load(c)
	if ctl.selected != nil && !c.Valid(*ctl.selected) {
		ctl.selected = nil
		ctl.SelectionChanged.Invoke(nil)
	}
	if ctl.selected != nil {
		ctl.tree.Reveal(*ctl.selected)
	}
	ctl.panel.SetContext(ctl.selected)
	ctl.CourseLoaded.Invoke(c)
}

// Select makes ref the current selection. Handles that do not resolve clear it.
func (ctl *Controller) Select(ref course.Ref) bool {
	if !ctl.course.Valid(ref) {
		ctl.ClearSelection()
		return false
	}
	ctl.selected = &ref
	ctl.panel.SetContext(ctl.selected)
	ctl.SelectionChanged.Invoke(ctl.Selected())
	return true
}

func (ctl *Controller) ClearSelection() {
	if ctl.selected == nil {
		return
	}
	ctl.selected = nil
	ctl.panel.SetContext(nil)
	ctl.SelectionChanged.Invoke(nil)
}

// HandleCommand applies a panel command, rebuilds the tree and selects the
// first entity it created.
func (ctl *Controller) HandleCommand(cmd actions.Command) error {
	created, err := ctl.apply(cmd)
	if err != nil {
		err = fmt.Errorf("%s: %w", cmd.Op.Tag(), err)
		ctl.status(err.Error(), true)
		return err
	}
	ctl.dirty = true
	ctl.tree.Load(ctl.course)
	ctl.tree.Reveal(created)
	ctl.Select(created)
	ctl.status(fmt.Sprintf("%s: %s", cmd.Op.Label(), tree.Label(ctl.course, created, ctl.names)), false)
	return nil
}

func (ctl *Controller) apply(cmd actions.Command) (course.Ref, error) {
	n := cmd.Count
	if n == 0 {
		n = 1
	}
	c := ctl.course
	switch cmd.Op {
	case actions.AddEnemyPath:
		return c.AddEnemyPath(), nil
	case actions.AddEnemyPoints:
		return c.AddEnemyPoints(cmd.Target, n)
	case actions.AddCheckpointGroup:
		return c.AddCheckpointGroup(), nil
	case actions.AddCheckpoints:
		return c.AddCheckpoints(cmd.Target, n)
	case actions.AddRoute:
		return c.AddRoute(), nil
	case actions.AddRoutePoints:
		return c.AddRoutePoints(cmd.Target, n)
	}
	return course.Ref{}, fmt.Errorf("unknown op %d", int(cmd.Op))
}

// Open loads a course document and remembers its path for Save and Reload.
func (ctl *Controller) Open(path string) error {
	c, err := course.LoadFile(path)
	if err != nil {
		ctl.status(fmt.Sprintf("Open failed: %v", err), true)
		return err
	}
	ctl.path = path
	ctl.dirty = false
	ctl.remember()
	ctl.Load(c)
	ctl.status(fmt.Sprintf("Opened %s", filepath.Base(path)), false)
	log.Printf("Opened %s (%d entities)", path, c.EntityCount())
	return nil
}

// Save writes the course to path, or to the path it was opened from when path
// is empty.
func (ctl *Controller) Save(path string) error {
	if path == "" {
		path = ctl.path
	}
	if path == "" {
		ctl.status("Save failed: no course file", true)
		return ErrNoPath
	}
	if err := course.SaveFile(path, ctl.course); err != nil {
		ctl.status(fmt.Sprintf("Save failed: %v", err), true)
		return err
	}
	ctl.path = path
	ctl.dirty = false
	ctl.remember()
	ctl.status("Course saved!", false)
	return nil
}

// Reload re-reads the course file, discarding unsaved edits.
func (ctl *Controller) Reload() error {
	if ctl.path == "" {
		return ErrNoPath
	}
	c, err := course.LoadFile(ctl.path)
	if err != nil {
		ctl.status(fmt.Sprintf("Reload failed: %v", err), true)
		return err
	}
	ctl.dirty = false
	ctl.remember()
	ctl.Load(c)
	ctl.status(fmt.Sprintf("Reloaded %s", filepath.Base(ctl.path)), false)
	return nil
}

// Switch opens another course. Unsaved edits to the current one are saved
// first; if that fails the current course stays open.
func (ctl *Controller) Switch(path string) error {
	if ctl.path != "" && samePath(path, ctl.path) {
		ctl.status("Already editing this course", false)
		return nil
	}
	if ctl.dirty && ctl.path != "" {
		if err := ctl.Save(""); err != nil {
			return err
		}
	}
	ctl.ClearSelection()
	ctl.tree.Reset()
	if err := ctl.Open(path); err != nil {
		ctl.tree.Load(ctl.course)
		return err
	}
	return nil
}

// ChangedOnDisk reports whether the course file differs from what the editor
// last read or wrote. Watcher signals caused by the editor's own saves are
// filtered with it.
func (ctl *Controller) ChangedOnDisk() bool {
	if ctl.path == "" {
		return false
	}
	sum, err := fileSum(ctl.path)
	if err != nil {
		return true
	}
	return sum != ctl.diskSum
}

func (ctl *Controller) remember() {
	sum, err := fileSum(ctl.path)
	if err != nil {
		log.Printf("Checksum %s: %v", ctl.path, err)
	}
	ctl.diskSum = sum
}

func fileSum(path string) ([sha256.Size]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(data), nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

func (ctl *Controller) status(text string, isErr bool) {
	if isErr {
		log.Println(text)
	}
	ctl.StatusChanged.Invoke(Status{Text: text, Error: isErr})
}
