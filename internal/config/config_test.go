package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
window:
  width: 1600
panels:
  tree_width: 300
course: tracks/luigi.json
watch: false
point_count: 4
lookup:
  objects: extra_objects.json
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 720 {
		t.Errorf("Expected 1600x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Panels.TreeWidth != 300 || cfg.Panels.InspectorWidth != 320 {
		t.Errorf("Unexpected panels %+v", cfg.Panels)
	}
	if cfg.Course != "tracks/luigi.json" || cfg.Watch || cfg.PointCount != 4 {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.CourseDir != "assets/courses" {
		t.Errorf("Expected default course dir, got %q", cfg.CourseDir)
	}
	if cfg.Lookup.Objects != "extra_objects.json" {
		t.Errorf("Expected objects override, got %q", cfg.Lookup.Objects)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		yml  string
		want string
	}{
		{"syntax", "window: [", "parse config"},
		{"size", "window:\n  width: -1\n", "window size"},
		{"points", "point_count: 0\n", "point_count"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".yaml")
		if err := os.WriteFile(path, []byte(tt.yml), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}
