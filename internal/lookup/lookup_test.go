package lookup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trackedit/internal/course"
)

func TestBundledTables(t *testing.T) {
	tables := Bundled()

	if got := tables.ObjectName(1); got != "GeoItemBox" {
		t.Errorf("Expected GeoItemBox, got %s", got)
	}
	if got := tables.ObjectName(9999); got != "Unknown object 9999" {
		t.Errorf("Expected unknown object label, got %s", got)
	}
	if got := tables.MusicName(36); got != "Luigi Circuit" {
		t.Errorf("Expected Luigi Circuit, got %s", got)
	}
	if got := tables.MusicName(1); got != "Unknown music 0x01" {
		t.Errorf("Expected unknown music label, got %s", got)
	}
}

func TestColorForGroupsUsesPointColor(t *testing.T) {
	tables := Bundled()

	point, ok := tables.Color(course.KindCheckpoint)
	if !ok {
		t.Fatal("Checkpoint colour missing")
	}
	group, ok := tables.Color(course.KindCheckpointGroup)
	if !ok || group != point {
		t.Errorf("Checkpoint group should share the checkpoint colour, got %v vs %v", group, point)
	}
	if _, ok := tables.Color(course.KindHeader); ok {
		t.Error("Header has no colour coding")
	}
}

func TestOverridesReplaceEntries(t *testing.T) {
	dir := t.TempDir()
	objects := filepath.Join(dir, "objects.json")
	if err := os.WriteFile(objects, []byte(`{"1": "CustomBox", "0x1000": "ModdedThing"}`), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(Overrides{Objects: objects})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := tables.ObjectName(1); got != "CustomBox" {
		t.Errorf("Override should replace bundled name, got %s", got)
	}
	if got := tables.ObjectName(0x1000); got != "ModdedThing" {
		t.Errorf("Override should add hex-keyed entry, got %s", got)
	}
	if got := tables.ObjectName(2); got != "GeoF_ItemBox" {
		t.Errorf("Bundled entries should remain, got %s", got)
	}
}

func TestOverrideErrors(t *testing.T) {
	dir := t.TempDir()
	badColors := filepath.Join(dir, "colors.json")
	if err := os.WriteFile(badColors, []byte(`{"Spaceship": [1, 2, 3, 4]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(Overrides{Colors: badColors}); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("Expected unknown kind error, got %v", err)
	}
	if _, err := Load(Overrides{Music: filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("Expected error for missing override file")
	}
}
