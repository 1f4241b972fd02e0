// Package session wires the editor together at startup: config, lookup
// tables, the controller, the course to open, the last session's tree state
// and the file watcher. Both front-ends start from here.
package session

import (
	"fmt"
	"log"
	"path/filepath"

	"trackedit/internal/config"
	"trackedit/internal/course"
	"trackedit/internal/editor"
	"trackedit/internal/lookup"
	"trackedit/internal/prefs"
	"trackedit/internal/watch"
)

type Options struct {
	ConfigPath string
	// CoursePath overrides both the last session's course and the config.
	CoursePath string
	PrefsPath  string
}

type Session struct {
	Config *config.Config
	Tables *lookup.Tables
	Ctl    *editor.Controller
	// Prefs is nil when there was no previous session.
	Prefs *prefs.Prefs
	// Watcher is nil when watching is disabled or could not start. It
	// follows every course the controller opens.
	Watcher *watch.Watcher

	prefsPath string
}

// Start builds a session. A course named explicitly in o must open; a course
// remembered from the last session or named in the config may fail, in which
// case the editor starts empty.
func Start(o Options) (*Session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	tables, err := lookup.Load(cfg.Lookup)
	if err != nil {
		return nil, fmt.Errorf("load lookup tables: %w", err)
	}

	s := &Session{
		Config:    cfg,
		Tables:    tables,
		Ctl:       editor.New(tables),
		Prefs:     prefs.Load(o.PrefsPath),
		prefsPath: o.PrefsPath,
	}
	s.Ctl.Panel().PointCount = cfg.PointCount

	if cfg.Watch {
		w, err := watch.New()
		if err != nil {
			log.Printf("Not watching course files: %v", err)
		} else {
			s.Watcher = w
			s.Ctl.CourseLoaded.AddListener(func(*course.Course) { s.follow() })
		}
	}

	path := o.CoursePath
	if path == "" && s.Prefs != nil {
		path = s.Prefs.CoursePath
	}
	if path == "" {
		path = cfg.Course
	}
	if path == "" {
		return s, nil
	}

	if err := s.Ctl.Open(path); err != nil {
		if o.CoursePath != "" {
			s.Close()
			return nil, err
		}
		log.Printf("Starting with an empty course: %v", err)
		return s, nil
	}
	s.restoreTree()
	return s, nil
}

// follow points the watcher at the course that was just loaded, so opening
// another course from a browser moves the watch with it.
func (s *Session) follow() {
	path := s.Ctl.Path()
	if path == "" {
		return
	}
	if err := s.Watcher.Watch(path); err != nil {
		log.Printf("Not watching course file: %v", err)
	}
}

// restoreTree reopens the nodes and the selection of the last session when it
// was editing the same file.
func (s *Session) restoreTree() {
	if s.Prefs == nil || !samePath(s.Prefs.CoursePath, s.Ctl.Path()) {
		return
	}
	s.Ctl.Tree().Expand(s.Prefs.Expanded...)
	if sel := s.Prefs.Selected; sel != nil && s.Ctl.Course().Valid(*sel) {
		s.Ctl.Tree().Reveal(*sel)
		s.Ctl.Select(*sel)
	}
}

// SavePrefs records the open course and the tree state, keeping any layout
// fields already stored.
func (s *Session) SavePrefs() error {
	p := prefs.Prefs{}
	if s.Prefs != nil {
		p = *s.Prefs
	}
	p.CoursePath = s.Ctl.Path()
	p.Selected = s.Ctl.Selected()
	p.Expanded = s.Ctl.Tree().ExpandedRefs()
	if err := p.Save(s.prefsPath); err != nil {
		return err
	}
	s.Prefs = &p
	return nil
}

// Close stops the watcher.
func (s *Session) Close() error {
	if s.Watcher == nil {
		return nil
	}
	return s.Watcher.Close()
}

// AbsPath makes a command line path absolute so it survives a change of
// working directory. Empty paths and paths that cannot be resolved are returned
// as they are.
func AbsPath(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
