package course

import "fmt"

// Kind identifies every entity variant the editor can select, including the
// header and the category containers.
type Kind int

const (
	KindHeader Kind = iota
	KindEnemyPointGroups
	KindEnemyPointGroup
	KindEnemyPoint
	KindCheckpointGroups
	KindCheckpointGroup
	KindCheckpoint
	KindRoutes
	KindRoute
	KindRoutePoint
	KindObjects
	KindObject
	KindKartPoints
	KindKartPoint
	KindAreas
	KindArea
	KindCameras
	KindCamera
	KindRespawnPoints
	KindRespawnPoint
	KindLightParams
	KindLightParam
	KindMGEntries
	KindMGEntry

	kindCount
)

var kindNames = [kindCount]string{
	KindHeader:           "Header",
	KindEnemyPointGroups: "EnemyPointGroups",
	KindEnemyPointGroup:  "EnemyPointGroup",
	KindEnemyPoint:       "EnemyPoint",
	KindCheckpointGroups: "CheckpointGroups",
	KindCheckpointGroup:  "CheckpointGroup",
	KindCheckpoint:       "Checkpoint",
	KindRoutes:           "Routes",
	KindRoute:            "Route",
	KindRoutePoint:       "RoutePoint",
	KindObjects:          "Objects",
	KindObject:           "Object",
	KindKartPoints:       "KartPoints",
	KindKartPoint:        "KartPoint",
	KindAreas:            "Areas",
	KindArea:             "Area",
	KindCameras:          "Cameras",
	KindCamera:           "Camera",
	KindRespawnPoints:    "RespawnPoints",
	KindRespawnPoint:     "RespawnPoint",
	KindLightParams:      "LightParams",
	KindLightParam:       "LightParam",
	KindMGEntries:        "MGEntries",
	KindMGEntry:          "MGEntry",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// IsCategory reports whether k is a top-level container.
func (k Kind) IsCategory() bool {
	switch k {
	case KindEnemyPointGroups, KindCheckpointGroups, KindRoutes, KindObjects,
		KindKartPoints, KindAreas, KindCameras, KindRespawnPoints,
		KindLightParams, KindMGEntries:
		return true
	}
	return false
}

// Categories lists the containers in tree order.
func Categories() []Kind {
	return []Kind{
		KindEnemyPointGroups,
		KindCheckpointGroups,
		KindRoutes,
		KindObjects,
		KindKartPoints,
		KindAreas,
		KindCameras,
		KindRespawnPoints,
		KindLightParams,
		KindMGEntries,
	}
}

// Category returns the container a kind lives under. Containers and the
// header return themselves.
func (k Kind) Category() Kind {
	switch k {
	case KindEnemyPointGroup, KindEnemyPoint:
		return KindEnemyPointGroups
	case KindCheckpointGroup, KindCheckpoint:
		return KindCheckpointGroups
	case KindRoute, KindRoutePoint:
		return KindRoutes
	case KindObject:
		return KindObjects
	case KindKartPoint:
		return KindKartPoints
	case KindArea:
		return KindAreas
	case KindCamera:
		return KindCameras
	case KindRespawnPoint:
		return KindRespawnPoints
	case KindLightParam:
		return KindLightParams
	case KindMGEntry:
		return KindMGEntries
	}
	return k
}

// ParseKind maps a kind name as returned by String back to the Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
