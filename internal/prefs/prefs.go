// Package prefs persists per-user editor state between sessions.
package prefs

import (
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"trackedit/internal/course"
)

const DefaultFile = ".trackedit_prefs.json"

// Prefs holds persistent editor preferences saved between sessions
type Prefs struct {
	WindowWidth    int    `json:"windowWidth,omitempty"`
	WindowHeight   int    `json:"windowHeight,omitempty"`
	WindowX        int    `json:"windowX,omitempty"`
	WindowY        int    `json:"windowY,omitempty"`
	TreeWidth      int32  `json:"treeWidth,omitempty"`
	InspectorWidth int32  `json:"inspectorWidth,omitempty"`
	CoursePath     string `json:"coursePath,omitempty"`
	// Selected is restored when it still resolves in the reopened course.
	Selected *course.Ref `json:"selected,omitempty"`
	// Expanded lists the tree nodes that were open.
	Expanded []course.Ref `json:"expanded,omitempty"`
}

// Load reads prefs from path. A missing or unreadable file yields nil.
func Load(path string) *Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Failed to parse editor prefs: %v", err)
		return nil
	}
	return &p
}

func (p *Prefs) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
