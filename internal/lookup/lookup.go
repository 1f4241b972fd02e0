// Package lookup holds the bundled name and colour tables the editor uses to
// label course entities: object names, music ids and per-kind colour coding.
package lookup

import (
	"embed"
	"fmt"
	"image/color"
	"os"
	"strconv"

	json "github.com/goccy/go-json"

	"trackedit/internal/course"
)

//go:embed data/*.json
var bundled embed.FS

const (
	objectsFile = "data/objects.json"
	musicFile   = "data/music_ids.json"
	colorsFile  = "data/color_coding.json"
)

// Overrides are optional files whose entries replace the bundled ones.
type Overrides struct {
	Objects string `yaml:"objects"`
	Music   string `yaml:"music"`
	Colors  string `yaml:"colors"`
}

type Tables struct {
	objects map[uint16]string
	music   map[uint8]string
	colors  map[course.Kind]color.RGBA
}

// Bundled returns the tables compiled into the binary.
func Bundled() *Tables {
	t, err := Load(Overrides{})
	if err != nil {
		// The embedded files are part of the build.
		panic(err)
	}
	return t
}

// Load reads the bundled tables and merges any override files on top.
func Load(o Overrides) (*Tables, error) {
	t := &Tables{
		objects: make(map[uint16]string),
		music:   make(map[uint8]string),
		colors:  make(map[course.Kind]color.RGBA),
	}

	steps := []struct {
		bundled  string
		override string
		apply    func(map[string]json.RawMessage) error
	}{
		{objectsFile, o.Objects, t.addObjects},
		{musicFile, o.Music, t.addMusic},
		{colorsFile, o.Colors, t.addColors},
	}
	for _, s := range steps {
		data, err := bundled.ReadFile(s.bundled)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.bundled, err)
		}
		if err := applyTable(data, s.apply); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.bundled, err)
		}
		if s.override == "" {
			continue
		}
		data, err = os.ReadFile(s.override)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.override, err)
		}
		if err := applyTable(data, s.apply); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.override, err)
		}
	}
	return t, nil
}

func applyTable(data []byte, apply func(map[string]json.RawMessage) error) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return apply(raw)
}

func (t *Tables) addObjects(raw map[string]json.RawMessage) error {
	for key, v := range raw {
		id, err := strconv.ParseUint(key, 0, 16)
		if err != nil {
			return fmt.Errorf("object id %q: %w", key, err)
		}
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("object %q: %w", key, err)
		}
		t.objects[uint16(id)] = name
	}
	return nil
}

func (t *Tables) addMusic(raw map[string]json.RawMessage) error {
	for key, v := range raw {
		id, err := strconv.ParseUint(key, 0, 8)
		if err != nil {
			return fmt.Errorf("music id %q: %w", key, err)
		}
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("music %q: %w", key, err)
		}
		t.music[uint8(id)] = name
	}
	return nil
}

func (t *Tables) addColors(raw map[string]json.RawMessage) error {
	for key, v := range raw {
		k, ok := course.ParseKind(key)
		if !ok {
			return fmt.Errorf("unknown kind %q", key)
		}
		var rgba [4]uint8
		if err := json.Unmarshal(v, &rgba); err != nil {
			return fmt.Errorf("color %q: %w", key, err)
		}
		t.colors[k] = color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	}
	return nil
}

// ObjectName returns the display name for an object type id.
func (t *Tables) ObjectName(id uint16) string {
	if name, ok := t.objects[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown object %d", id)
}

// MusicName returns the track name for a music id.
func (t *Tables) MusicName(id uint8) string {
	if name, ok := t.music[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown music 0x%02X", id)
}

// Color returns the colour coding for an entity kind. Groups use the colour of
// their points.
func (t *Tables) Color(k course.Kind) (color.RGBA, bool) {
	switch k {
	case course.KindEnemyPointGroup:
		k = course.KindEnemyPoint
	case course.KindCheckpointGroup:
		k = course.KindCheckpoint
	case course.KindRoute:
		k = course.KindRoutePoint
	}
	c, ok := t.colors[k]
	return c, ok
}
