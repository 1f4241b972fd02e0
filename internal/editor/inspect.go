package editor

import (
	"fmt"

	"trackedit/internal/course"
	"trackedit/internal/tree"
)

// Property is one read-only inspector row.
type Property struct {
	Name  string
	Value string
}

// Inspect lists the fields of the selected entity, or nil without a selection.
func (ctl *Controller) Inspect() []Property {
	if ctl.selected == nil {
		return nil
	}
	return Properties(ctl.course, *ctl.selected, ctl.names)
}

// Properties lists the fields of the entity behind ref for display.
func Properties(c *course.Course, ref course.Ref, names Names) []Property {
	v, ok := c.Resolve(ref)
	if !ok {
		return []Property{{"Missing", ref.String()}}
	}
	if ref.Kind.IsCategory() {
		return []Property{{"Entries", fmt.Sprint(c.Count(ref.Kind))}}
	}

	switch e := v.(type) {
	case *course.Header:
		music := fmt.Sprintf("0x%02X", e.MusicID)
		if names != nil {
			music = fmt.Sprintf("%s (0x%02X)", names.MusicName(e.MusicID), e.MusicID)
		}
		return []Property{
			{"Music", music},
			{"Laps", fmt.Sprint(e.LapCount)},
			{"Start type", fmt.Sprint(e.StartType)},
			{"Fog type", fmt.Sprint(e.FogType)},
			{"Fog colour", rgb(e.FogColor)},
			{"Fog range", fmt.Sprintf("%.1f to %.1f", e.FogStartZ, e.FogEndZ)},
			{"Ambient", rgb(e.AmbientColor)},
			{"Shadow", rgb(e.ShadowColor)},
		}
	case *course.EnemyPointGroup:
		return []Property{{"ID", fmt.Sprint(e.ID)}, {"Points", fmt.Sprint(len(e.Points))}}
	case *course.EnemyPoint:
		return []Property{
			{"Position", vec(e.Position)},
			{"Link", fmt.Sprint(e.Link)},
			{"Scale", fmt.Sprintf("%.2f", e.Scale)},
			{"Items only", fmt.Sprint(e.ItemsOnly)},
			{"Swerve", fmt.Sprint(e.Swerve)},
			{"Drift", fmt.Sprintf("dir %d, acuteness %d, duration %d, supplement %d",
				e.DriftDirection, e.DriftAcuteness, e.DriftDuration, e.DriftSupplement)},
			{"No mushroom zone", fmt.Sprint(e.NoMushroomZone)},
		}
	case *course.CheckpointGroup:
		return []Property{
			{"Points", fmt.Sprint(len(e.Points))},
			{"Group link", fmt.Sprint(e.GroupLink)},
			{"Previous", fmt.Sprint(e.PrevGroups)},
			{"Next", fmt.Sprint(e.NextGroups)},
		}
	case *course.Checkpoint:
		return []Property{
			{"Start", vec(e.Start)},
			{"End", vec(e.End)},
			{"Unknowns", fmt.Sprintf("%d %d %d %d", e.Unk1, e.Unk2, e.Unk3, e.Unk4)},
			{"Shortcut", fmt.Sprint(e.Shortcut)},
		}
	case *course.Route:
		return []Property{
			{"Points", fmt.Sprint(len(e.Points))},
			{"Smooth", fmt.Sprint(e.Smooth)},
			{"Loop", fmt.Sprint(e.Loop)},
		}
	case *course.RoutePoint:
		return []Property{{"Position", vec(e.Position)}, {"Unknown", fmt.Sprint(e.Unk)}}
	case *course.MapObject:
		return []Property{
			{"Object", tree.Label(c, ref, names)},
			{"Object ID", fmt.Sprint(e.ObjectID)},
			{"Position", vec(e.Position)},
			{"Rotation", vec(e.Rotation)},
			{"Scale", vec(e.Scale)},
			{"Route", fmt.Sprintf("%d point %d", e.RouteIndex, e.RoutePointIndex)},
			{"Presence", fmt.Sprintf("%d (filter %d)", e.Presence, e.PresenceFilter)},
			{"Collision", fmt.Sprint(e.Collision)},
			{"Flag", fmt.Sprint(e.Flag)},
			{"Params", fmt.Sprint(e.Params)},
		}
	case *course.KartStartPoint:
		player := fmt.Sprint(e.PlayerID)
		if e.PlayerID == course.AllPlayers {
			player = "All"
		}
		return []Property{
			{"Position", vec(e.Position)},
			{"Rotation", vec(e.Rotation)},
			{"Scale", vec(e.Scale)},
			{"Pole position", fmt.Sprint(e.PollPosition)},
			{"Player", player},
		}
	case *course.Area:
		return []Property{
			{"Position", vec(e.Position)},
			{"Scale", vec(e.Scale)},
			{"Rotation", vec(e.Rotation)},
			{"Shape", fmt.Sprint(e.Shape)},
			{"Type", fmt.Sprint(e.AreaType)},
			{"Camera", fmt.Sprint(e.CameraIndex)},
			{"Feather", fmt.Sprint(e.Feather)},
		}
	case *course.Camera:
		return []Property{
			{"Name", e.Name},
			{"Position", vec(e.Position)},
			{"Rotation", vec(e.Rotation)},
			{"Type", fmt.Sprint(e.CamType)},
			{"FOV", fmt.Sprintf("%d to %d", e.StartFOV, e.EndFOV)},
			{"Duration", fmt.Sprint(e.Duration)},
			{"Route", fmt.Sprint(e.RouteIndex)},
			{"Next camera", fmt.Sprint(e.NextCam)},
		}
	case *course.RespawnPoint:
		return []Property{
			{"Position", vec(e.Position)},
			{"Rotation", vec(e.Rotation)},
			{"Respawn ID", fmt.Sprint(e.RespawnID)},
			{"Next enemy point", fmt.Sprint(e.NextEnemyPoint)},
			{"Previous checkpoint", fmt.Sprint(e.PrevCheckpoint)},
		}
	case *course.LightParam:
		return []Property{
			{"Colour 1", fmt.Sprint(e.Color1)},
			{"Colour 2", fmt.Sprint(e.Color2)},
			{"Position", vec(e.Position)},
		}
	case *course.MGEntry:
		return []Property{{"Values", fmt.Sprintf("%d %d %d %d", e.Unk1, e.Unk2, e.Unk3, e.Unk4)}}
	}
	return []Property{{"Kind", ref.Kind.String()}}
}

func vec(v course.Vec3) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", v.X, v.Y, v.Z)
}

func rgb(c [3]uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
}
