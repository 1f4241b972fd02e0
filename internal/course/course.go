package course

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrStaleRef     = errors.New("ref does not resolve")
	ErrWrongKind    = errors.New("ref has wrong kind")
	ErrInvalidCount = errors.New("count must be positive")
)

// Vec3 is a position, rotation or scale in course space.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Header holds the course-wide settings.
type Header struct {
	MusicID      uint8    `json:"musicId"`
	LapCount     uint8    `json:"lapCount"`
	StartType    uint8    `json:"startType"`
	FogType      uint8    `json:"fogType"`
	FogColor     [3]uint8 `json:"fogColor"`
	FogStartZ    float32  `json:"fogStartZ"`
	FogEndZ      float32  `json:"fogEndZ"`
	AmbientColor [3]uint8 `json:"ambientColor"`
	ShadowColor  [3]uint8 `json:"shadowColor"`
}

type EnemyPoint struct {
	Position        Vec3    `json:"position"`
	Link            int16   `json:"link"`
	Scale           float32 `json:"scale"`
	ItemsOnly       bool    `json:"itemsOnly,omitempty"`
	Swerve          int8    `json:"swerve,omitempty"`
	DriftDirection  int8    `json:"driftDirection,omitempty"`
	DriftAcuteness  uint8   `json:"driftAcuteness,omitempty"`
	DriftDuration   uint8   `json:"driftDuration,omitempty"`
	DriftSupplement uint8   `json:"driftSupplement,omitempty"`
	NoMushroomZone  bool    `json:"noMushroomZone,omitempty"`
}

type EnemyPointGroup struct {
	ID     int           `json:"id"`
	Points []*EnemyPoint `json:"points"`
}

// EnemyPointGroups is keyed by group id; iteration order of Groups carries no
// meaning, use SortedIDs.
type EnemyPointGroups struct {
	Groups map[int]*EnemyPointGroup
}

// SortedIDs returns the group ids in ascending order.
func (g *EnemyPointGroups) SortedIDs() []int {
	ids := make([]int, 0, len(g.Groups))
	for id := range g.Groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type Checkpoint struct {
	Start    Vec3  `json:"start"`
	End      Vec3  `json:"end"`
	Unk1     uint8 `json:"unk1,omitempty"`
	Unk2     uint8 `json:"unk2,omitempty"`
	Unk3     uint8 `json:"unk3,omitempty"`
	Unk4     uint8 `json:"unk4,omitempty"`
	Shortcut bool  `json:"shortcut,omitempty"`
}

type CheckpointGroup struct {
	Points     []*Checkpoint `json:"points"`
	PrevGroups [4]int16      `json:"prevGroups"`
	NextGroups [4]int16      `json:"nextGroups"`
	GroupLink  uint16        `json:"groupLink"`
}

type CheckpointGroups struct {
	Groups []*CheckpointGroup
}

type RoutePoint struct {
	Position Vec3   `json:"position"`
	Unk      uint32 `json:"unk,omitempty"`
}

type Route struct {
	Points []*RoutePoint `json:"points"`
	Smooth uint8         `json:"smooth"`
	Loop   uint8         `json:"loop"`
}

type MapObject struct {
	ObjectID        uint16   `json:"objectId"`
	Position        Vec3     `json:"position"`
	Scale           Vec3     `json:"scale"`
	Rotation        Vec3     `json:"rotation"`
	RouteIndex      int16    `json:"routeIndex"`
	RoutePointIndex int16    `json:"routePointIndex"`
	PresenceFilter  uint8    `json:"presenceFilter"`
	Presence        uint8    `json:"presence"`
	Collision       uint8    `json:"collision"`
	Flag            uint8    `json:"flag"`
	Params          [8]int16 `json:"params"`
}

// AllPlayers is the kart start point player id shared by every player.
const AllPlayers uint8 = 0xFF

type KartStartPoint struct {
	Position     Vec3  `json:"position"`
	Rotation     Vec3  `json:"rotation"`
	Scale        Vec3  `json:"scale"`
	PollPosition uint8 `json:"pollPosition"`
	PlayerID     uint8 `json:"playerId"`
}

type Area struct {
	Position    Vec3      `json:"position"`
	Scale       Vec3      `json:"scale"`
	Rotation    Vec3      `json:"rotation"`
	Shape       uint8     `json:"shape"`
	AreaType    uint8     `json:"areaType"`
	CameraIndex int16     `json:"cameraIndex"`
	Feather     [2]uint32 `json:"feather"`
}

type Camera struct {
	Position   Vec3   `json:"position"`
	Rotation   Vec3   `json:"rotation"`
	CamType    uint8  `json:"camType"`
	StartFOV   uint16 `json:"startFov"`
	EndFOV     uint16 `json:"endFov"`
	Duration   uint16 `json:"duration"`
	RouteIndex int16  `json:"routeIndex"`
	NextCam    int16  `json:"nextCam"`
	Name       string `json:"name,omitempty"`
}

type RespawnPoint struct {
	Position       Vec3   `json:"position"`
	Rotation       Vec3   `json:"rotation"`
	RespawnID      uint16 `json:"respawnId"`
	NextEnemyPoint uint16 `json:"nextEnemyPoint"`
	PrevCheckpoint int16  `json:"prevCheckpoint"`
}

type LightParam struct {
	Color1   [4]uint8 `json:"color1"`
	Color2   [4]uint8 `json:"color2"`
	Position Vec3     `json:"position"`
}

type MGEntry struct {
	Unk1 int16 `json:"unk1"`
	Unk2 int16 `json:"unk2"`
	Unk3 int16 `json:"unk3"`
	Unk4 int16 `json:"unk4"`
}

// Course is the in-memory level data the editor projects and edits.
type Course struct {
	Header           Header
	EnemyPointGroups EnemyPointGroups
	CheckpointGroups CheckpointGroups
	Routes           []*Route
	Objects          []*MapObject
	KartPoints       []*KartStartPoint
	Areas            []*Area
	Cameras          []*Camera
	RespawnPoints    []*RespawnPoint
	LightParams      []*LightParam
	MGEntries        []*MGEntry
}

// New returns an empty course with three laps.
func New() *Course {
	return &Course{
		Header:           Header{LapCount: 3},
		EnemyPointGroups: EnemyPointGroups{Groups: make(map[int]*EnemyPointGroup)},
	}
}

// Resolve maps a handle back to the live entity. Containers resolve to their
// backing collection and the header to *Header.
func (c *Course) Resolve(r Ref) (any, bool) {
	switch r.Kind {
	case KindHeader:
		return &c.Header, true
	case KindEnemyPointGroups:
		return &c.EnemyPointGroups, true
	case KindEnemyPointGroup:
		g, ok := c.EnemyPointGroups.Groups[r.Group]
		return g, ok
	case KindEnemyPoint:
		g, ok := c.EnemyPointGroups.Groups[r.Group]
		if !ok {
			return nil, false
		}
		return at(g.Points, r.Index)
	case KindCheckpointGroups:
		return &c.CheckpointGroups, true
	case KindCheckpointGroup:
		return at(c.CheckpointGroups.Groups, r.Group)
	case KindCheckpoint:
		g, ok := at(c.CheckpointGroups.Groups, r.Group)
		if !ok {
			return nil, false
		}
		return at(g.Points, r.Index)
	case KindRoutes:
		return &c.Routes, true
	case KindRoute:
		return at(c.Routes, r.Group)
	case KindRoutePoint:
		rt, ok := at(c.Routes, r.Group)
		if !ok {
			return nil, false
		}
		return at(rt.Points, r.Index)
	case KindObjects:
		return &c.Objects, true
	case KindObject:
		return at(c.Objects, r.Index)
	case KindKartPoints:
		return &c.KartPoints, true
	case KindKartPoint:
		return at(c.KartPoints, r.Index)
	case KindAreas:
		return &c.Areas, true
	case KindArea:
		return at(c.Areas, r.Index)
	case KindCameras:
		return &c.Cameras, true
	case KindCamera:
		return at(c.Cameras, r.Index)
	case KindRespawnPoints:
		return &c.RespawnPoints, true
	case KindRespawnPoint:
		return at(c.RespawnPoints, r.Index)
	case KindLightParams:
		return &c.LightParams, true
	case KindLightParam:
		return at(c.LightParams, r.Index)
	case KindMGEntries:
		return &c.MGEntries, true
	case KindMGEntry:
		return at(c.MGEntries, r.Index)
	}
	return nil, false
}

// Valid reports whether r still points at something in c.
func (c *Course) Valid(r Ref) bool {
	_, ok := c.Resolve(r)
	return ok
}

func at[T any](s []*T, i int) (*T, bool) {
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// Count returns the number of direct children of a container.
func (c *Course) Count(k Kind) int {
	switch k {
	case KindEnemyPointGroups:
		return len(c.EnemyPointGroups.Groups)
	case KindCheckpointGroups:
		return len(c.CheckpointGroups.Groups)
	case KindRoutes:
		return len(c.Routes)
	case KindObjects:
		return len(c.Objects)
	case KindKartPoints:
		return len(c.KartPoints)
	case KindAreas:
		return len(c.Areas)
	case KindCameras:
		return len(c.Cameras)
	case KindRespawnPoints:
		return len(c.RespawnPoints)
	case KindLightParams:
		return len(c.LightParams)
	case KindMGEntries:
		return len(c.MGEntries)
	}
	return 0
}

// EntityCount returns the total number of groups, points and entries.
func (c *Course) EntityCount() int {
	n := 0
	for _, g := range c.EnemyPointGroups.Groups {
		n += 1 + len(g.Points)
	}
	for _, g := range c.CheckpointGroups.Groups {
		n += 1 + len(g.Points)
	}
	for _, r := range c.Routes {
		n += 1 + len(r.Points)
	}
	return n + len(c.Objects) + len(c.KartPoints) + len(c.Areas) + len(c.Cameras) +
		len(c.RespawnPoints) + len(c.LightParams) + len(c.MGEntries)
}

func staleRef(r Ref) error {
	return fmt.Errorf("%s: %w", r, ErrStaleRef)
}

func wrongKind(r Ref, want string) error {
	return fmt.Errorf("%s is not %s: %w", r, want, ErrWrongKind)
}
