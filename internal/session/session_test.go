package session

import (
	"os"
	"path/filepath"
	"testing"

	"trackedit/internal/course"
	"trackedit/internal/prefs"
)

func writeCourse(t *testing.T, dir string) string {
	t.Helper()
	c := course.New()
	c.EnemyPointGroups.Groups[0] = &course.EnemyPointGroup{ID: 0, Points: []*course.EnemyPoint{
		{Scale: 1, Link: -1},
		{Scale: 1, Link: -1},
	}}
	path := filepath.Join(dir, "course.json")
	if err := course.SaveFile(path, c); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	return path
}

func writeConfig(t *testing.T, dir, yml string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStartOpensCourseFromConfig(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cfgPath := writeConfig(t, dir, "course: "+coursePath+"\nwatch: false\npoint_count: 3\n")

	s, err := Start(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.json")})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Close()

	if s.Ctl.Path() != coursePath {
		t.Errorf("Expected %s opened, got %q", coursePath, s.Ctl.Path())
	}
	if s.Ctl.Panel().PointCount != 3 {
		t.Errorf("Expected point count 3, got %d", s.Ctl.Panel().PointCount)
	}
	if s.Watcher != nil {
		t.Error("Watcher should be off")
	}
	if s.Prefs != nil {
		t.Error("Expected no previous session")
	}
}

func TestStartExplicitCourseMustOpen(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "watch: false\n")

	_, err := Start(Options{
		ConfigPath: cfgPath,
		CoursePath: filepath.Join(dir, "missing.json"),
		PrefsPath:  filepath.Join(dir, "prefs.json"),
	})
	if err == nil {
		t.Error("Expected an error for a missing course")
	}
}

func TestStartConfigCourseMayBeMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "course: "+filepath.Join(dir, "missing.json")+"\nwatch: false\n")

	s, err := Start(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.json")})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Ctl.Path() != "" {
		t.Errorf("Expected an untitled course, got %q", s.Ctl.Path())
	}
	if s.Ctl.Course().EntityCount() != 0 {
		t.Error("Expected an empty course")
	}
}

func TestStartBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "point_count: 0\n")

	if _, err := Start(Options{ConfigPath: cfgPath}); err == nil {
		t.Error("Expected a config validation error")
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cfgPath := writeConfig(t, dir, "watch: false\n")
	prefsPath := filepath.Join(dir, "prefs.json")

	s, err := Start(Options{ConfigPath: cfgPath, CoursePath: coursePath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Ctl.Tree().Expand(course.CategoryRef(course.KindEnemyPointGroups), course.EnemyGroupRef(0))
	s.Ctl.Select(course.EnemyPointRef(0, 1))
	if err := s.SavePrefs(); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	// The course comes from the saved session this time.
	s2, err := Start(Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s2.Ctl.Path() != coursePath {
		t.Errorf("Expected %s reopened, got %q", coursePath, s2.Ctl.Path())
	}
	sel := s2.Ctl.Selected()
	if sel == nil || *sel != course.EnemyPointRef(0, 1) {
		t.Fatalf("Expected selection restored, got %v", sel)
	}
	if n := s2.Ctl.Tree().Find(course.EnemyGroupRef(0)); n == nil || !n.Expanded {
		t.Error("Expected group 0 expanded")
	}
}

func TestSavePrefsKeepsLayout(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.json")
	if err := (&prefs.Prefs{WindowWidth: 1600, WindowHeight: 900, TreeWidth: 280}).Save(prefsPath); err != nil {
		t.Fatal(err)
	}
	coursePath := writeCourse(t, dir)
	cfgPath := writeConfig(t, dir, "watch: false\n")

	s, err := Start(Options{ConfigPath: cfgPath, CoursePath: coursePath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.SavePrefs(); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	p := prefs.Load(prefsPath)
	if p == nil {
		t.Fatal("Expected prefs on disk")
	}
	if p.WindowWidth != 1600 || p.TreeWidth != 280 {
		t.Errorf("Layout fields were lost: %+v", p)
	}
	if p.CoursePath != coursePath {
		t.Errorf("Expected course path %s, got %q", coursePath, p.CoursePath)
	}
}

func TestStartWatches(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cfgPath := writeConfig(t, dir, "watch: true\n")

	s, err := Start(Options{ConfigPath: cfgPath, CoursePath: coursePath, PrefsPath: filepath.Join(dir, "prefs.json")})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Watcher == nil {
		t.Fatal("Expected a watcher")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestWatcherFollowsSwitch(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	otherDir := filepath.Join(dir, "cups")
	if err := os.Mkdir(otherDir, 0755); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(otherDir, "other.json")
	if err := course.SaveFile(other, course.New()); err != nil {
		t.Fatal(err)
	}
	cfgPath := writeConfig(t, dir, "watch: true\n")

	s, err := Start(Options{ConfigPath: cfgPath, CoursePath: coursePath, PrefsPath: filepath.Join(dir, "prefs.json")})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Close()
	if s.Watcher == nil {
		t.Fatal("Expected a watcher")
	}
	if got := s.Watcher.Path(); got != AbsPath(coursePath) {
		t.Errorf("Expected watcher on %s, got %q", coursePath, got)
	}

	if err := s.Ctl.Switch(other); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	if got := s.Watcher.Path(); got != AbsPath(other) {
		t.Errorf("Expected watcher on %s, got %q", other, got)
	}

	// A failed switch leaves the watch where it was.
	if err := s.Ctl.Switch(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Expected an error for a missing course")
	}
	if got := s.Watcher.Path(); got != AbsPath(other) {
		t.Errorf("Expected watcher to stay on %s, got %q", other, got)
	}
}

func TestAbsPath(t *testing.T) {
	if got := AbsPath(""); got != "" {
		t.Errorf("Expected empty path kept, got %q", got)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "courses", "a.json")
	if got := AbsPath(filepath.Join("courses", "a.json")); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if got := AbsPath(want); got != want {
		t.Errorf("Expected absolute path unchanged, got %s", got)
	}
}
