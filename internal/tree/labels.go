package tree

import (
	"fmt"
	"log"

	"trackedit/internal/course"
)

const headerLabel = "BOL Header"

// Label derives the display text for the entity behind ref. Every kind has a
// case; an unhandled kind shows up as a placeholder row instead of vanishing.
func Label(c *course.Course, ref course.Ref, names NameResolver) string {
	switch ref.Kind {
	case course.KindHeader:
		return headerLabel
	case course.KindEnemyPointGroups, course.KindCheckpointGroups, course.KindRoutes,
		course.KindObjects, course.KindKartPoints, course.KindAreas, course.KindCameras,
		course.KindRespawnPoints, course.KindLightParams, course.KindMGEntries:
		return categoryLabels[ref.Kind]
	case course.KindEnemyPointGroup:
		return fmt.Sprintf("Enemy point group %d", ref.Group)
	case course.KindEnemyPoint:
		return fmt.Sprintf("Enemy Route Point %d", ref.Index)
	case course.KindCheckpointGroup:
		return fmt.Sprintf("Checkpoint group %d", ref.Group)
	case course.KindCheckpoint:
		return fmt.Sprintf("Checkpoint %d", ref.Index)
	case course.KindRoute:
		return fmt.Sprintf("Object point group %d", ref.Group)
	case course.KindRoutePoint:
		return fmt.Sprintf("Object Route Point %d", ref.Index)
	case course.KindObject:
		if o, ok := resolve[course.MapObject](c, ref); ok {
			if names == nil {
				return fmt.Sprintf("Object %d", o.ObjectID)
			}
			return names.ObjectName(o.ObjectID)
		}
	case course.KindKartPoint:
		if k, ok := resolve[course.KartStartPoint](c, ref); ok {
			if k.PlayerID == course.AllPlayers {
				return "Kart Start Point All"
			}
			return fmt.Sprintf("Kart Start Point ID:%d", k.PlayerID)
		}
	case course.KindArea:
		if a, ok := resolve[course.Area](c, ref); ok {
			return fmt.Sprintf("Area (Type: %d)", a.AreaType)
		}
	case course.KindCamera:
		if cam, ok := resolve[course.Camera](c, ref); ok {
			return fmt.Sprintf("Camera (Type: %d)", cam.CamType)
		}
	case course.KindRespawnPoint:
		if r, ok := resolve[course.RespawnPoint](c, ref); ok {
			return fmt.Sprintf("Respawn Point (ID: %d)", r.RespawnID)
		}
	case course.KindLightParam:
		return "LightParam"
	case course.KindMGEntry:
		return "MG"
	default:
		log.Printf("tree: no label rule for %s", ref.Kind)
		return fmt.Sprintf("<unknown kind %d>", int(ref.Kind))
	}
	log.Printf("tree: %s does not resolve", ref)
	return fmt.Sprintf("<missing %s>", ref)
}

func resolve[T any](c *course.Course, ref course.Ref) (*T, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.Resolve(ref)
	if !ok {
		return nil, false
	}
	e, ok := v.(*T)
	return e, ok
}
