package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CourseEntry is one line of the course browser.
type CourseEntry struct {
	Name     string
	Path     string
	IsFolder bool
}

// ScanCourses lists dir for the course browser: folders first, then course
// documents (.json). Hidden entries are skipped.
func ScanCourses(dir string) ([]CourseEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan courses: %w", err)
	}

	var list []CourseEntry
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			list = append(list, CourseEntry{
				Name:     entry.Name(),
				Path:     filepath.Join(dir, entry.Name()),
				IsFolder: true,
			})
		}
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		list = append(list, CourseEntry{Name: name, Path: filepath.Join(dir, name)})
	}
	return list, nil
}

// Browser walks course folders below a root. Up never leaves the root.
type Browser struct {
	root    string
	dir     string
	Entries []CourseEntry
}

func NewBrowser(root string) *Browser {
	return &Browser{root: root, dir: root}
}

func (b *Browser) Dir() string { return b.dir }

// AtRoot reports whether the browser shows its root folder.
func (b *Browser) AtRoot() bool {
	return filepath.Clean(b.dir) == filepath.Clean(b.root)
}

// Refresh rescans the current folder.
func (b *Browser) Refresh() error {
	list, err := ScanCourses(b.dir)
	if err != nil {
		b.Entries = nil
		return err
	}
	b.Entries = list
	return nil
}

// Enter moves into a folder entry.
func (b *Browser) Enter(e CourseEntry) error {
	if !e.IsFolder {
		return nil
	}
	b.dir = e.Path
	return b.Refresh()
}

// Up moves to the parent folder.
func (b *Browser) Up() error {
	if b.AtRoot() {
		return nil
	}
	b.dir = filepath.Dir(b.dir)
	return b.Refresh()
}

// Pick opens a course entry through ctl, or enters a folder entry.
func (b *Browser) Pick(ctl *Controller, e CourseEntry) error {
	if e.IsFolder {
		return b.Enter(e)
	}
	return ctl.Switch(e.Path)
}
