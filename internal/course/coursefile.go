package course

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// --- JSON types ---

// File is the on-disk course document. Enemy point groups are stored as a
// list ordered by id; the map is rebuilt on load.
type File struct {
	Header           Header             `json:"header"`
	EnemyPointGroups []*EnemyPointGroup `json:"enemyPointGroups"`
	CheckpointGroups []*CheckpointGroup `json:"checkpointGroups"`
	Routes           []*Route           `json:"routes"`
	Objects          []*MapObject       `json:"objects"`
	KartPoints       []*KartStartPoint  `json:"kartPoints"`
	Areas            []*Area            `json:"areas"`
	Cameras          []*Camera          `json:"cameras"`
	RespawnPoints    []*RespawnPoint    `json:"respawnPoints"`
	LightParams      []*LightParam      `json:"lightParams"`
	MGEntries        []*MGEntry         `json:"mgEntries"`
}

func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{v.X, v.Y, v.Z})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var a [3]float32
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	v.X, v.Y, v.Z = a[0], a[1], a[2]
	return nil
}

// --- Loading ---

func LoadFile(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course: %w", err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse course: %w", err)
	}
	return c, nil
}

// Decode builds a course from a JSON document.
func Decode(data []byte) (*Course, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Course()
}

// Course converts the document into the in-memory model.
func (f *File) Course() (*Course, error) {
	c := New()
	c.Header = f.Header
	for i, g := range f.EnemyPointGroups {
		if g == nil {
			return nil, fmt.Errorf("enemy point group %d is null", i)
		}
		if _, dup := c.EnemyPointGroups.Groups[g.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy point group id %d", g.ID)
		}
		if err := noNil(g.Points, "enemy point group", g.ID); err != nil {
			return nil, err
		}
		c.EnemyPointGroups.Groups[g.ID] = g
	}
	for i, g := range f.CheckpointGroups {
		if g == nil {
			return nil, fmt.Errorf("checkpoint group %d is null", i)
		}
		if err := noNil(g.Points, "checkpoint group", i); err != nil {
			return nil, err
		}
	}
	for i, r := range f.Routes {
		if r == nil {
			return nil, fmt.Errorf("route %d is null", i)
		}
		if err := noNil(r.Points, "route", i); err != nil {
			return nil, err
		}
	}
	c.CheckpointGroups.Groups = f.CheckpointGroups
	c.Routes = f.Routes
	c.Objects = f.Objects
	c.KartPoints = f.KartPoints
	c.Areas = f.Areas
	c.Cameras = f.Cameras
	c.RespawnPoints = f.RespawnPoints
	c.LightParams = f.LightParams
	c.MGEntries = f.MGEntries

	for _, s := range []struct {
		name string
		ok   bool
	}{
		{"object", allSet(c.Objects)},
		{"kart point", allSet(c.KartPoints)},
		{"area", allSet(c.Areas)},
		{"camera", allSet(c.Cameras)},
		{"respawn point", allSet(c.RespawnPoints)},
		{"light param", allSet(c.LightParams)},
		{"mg entry", allSet(c.MGEntries)},
	} {
		if !s.ok {
			return nil, fmt.Errorf("null %s entry", s.name)
		}
	}
	return c, nil
}

func noNil[T any](s []*T, owner string, id int) error {
	if !allSet(s) {
		return fmt.Errorf("%s %d has a null point", owner, id)
	}
	return nil
}

func allSet[T any](s []*T) bool {
	for _, v := range s {
		if v == nil {
			return false
		}
	}
	return true
}

// --- Saving ---

// ToFile converts the course into its document form.
func (c *Course) ToFile() *File {
	f := &File{
		Header:           c.Header,
		CheckpointGroups: c.CheckpointGroups.Groups,
		Routes:           c.Routes,
		Objects:          c.Objects,
		KartPoints:       c.KartPoints,
		Areas:            c.Areas,
		Cameras:          c.Cameras,
		RespawnPoints:    c.RespawnPoints,
		LightParams:      c.LightParams,
		MGEntries:        c.MGEntries,
	}
	for _, id := range c.EnemyPointGroups.SortedIDs() {
		f.EnemyPointGroups = append(f.EnemyPointGroups, c.EnemyPointGroups.Groups[id])
	}
	return f
}

// Encode renders the course as an indented JSON document.
func (c *Course) Encode() ([]byte, error) {
	return json.MarshalIndent(c.ToFile(), "", "  ")
}

func SaveFile(path string, c *Course) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write course: %w", err)
	}

	return nil
}
