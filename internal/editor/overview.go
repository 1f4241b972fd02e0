package editor

import "trackedit/internal/course"

// Marker is a positioned entity drawn on the overview map.
type Marker struct {
	Ref course.Ref
	Pos course.Vec3
}

// Path is a group's points in order, drawn as a connected line.
type Path struct {
	Ref    course.Ref
	Points []Marker
	Loop   bool
}

// Markers lists every positioned entity in tree order. Checkpoints are placed
// at the middle of their gate.
func Markers(c *course.Course) []Marker {
	var ms []Marker
	for _, p := range Paths(c) {
		ms = append(ms, p.Points...)
	}
	for i, o := range c.Objects {
		ms = append(ms, Marker{course.ItemRef(course.KindObject, i), o.Position})
	}
	for i, k := range c.KartPoints {
		ms = append(ms, Marker{course.ItemRef(course.KindKartPoint, i), k.Position})
	}
	for i, a := range c.Areas {
		ms = append(ms, Marker{course.ItemRef(course.KindArea, i), a.Position})
	}
	for i, cam := range c.Cameras {
		ms = append(ms, Marker{course.ItemRef(course.KindCamera, i), cam.Position})
	}
	for i, r := range c.RespawnPoints {
		ms = append(ms, Marker{course.ItemRef(course.KindRespawnPoint, i), r.Position})
	}
	for i, l := range c.LightParams {
		ms = append(ms, Marker{course.ItemRef(course.KindLightParam, i), l.Position})
	}
	return ms
}

// Paths returns enemy paths by ascending id, then checkpoint groups, then
// object routes.
func Paths(c *course.Course) []Path {
	var paths []Path
	for _, id := range c.EnemyPointGroups.SortedIDs() {
		p := Path{Ref: course.EnemyGroupRef(id)}
		for i, pt := range c.EnemyPointGroups.Groups[id].Points {
			p.Points = append(p.Points, Marker{course.EnemyPointRef(id, i), pt.Position})
		}
		paths = append(paths, p)
	}
	for gi, g := range c.CheckpointGroups.Groups {
		p := Path{Ref: course.CheckpointGroupRef(gi)}
		for i, cp := range g.Points {
			p.Points = append(p.Points, Marker{course.CheckpointRef(gi, i), midpoint(cp.Start, cp.End)})
		}
		paths = append(paths, p)
	}
	for ri, r := range c.Routes {
		p := Path{Ref: course.RouteRef(ri), Loop: r.Loop != 0}
		for i, pt := range r.Points {
			p.Points = append(p.Points, Marker{course.RoutePointRef(ri, i), pt.Position})
		}
		paths = append(paths, p)
	}
	return paths
}

// Bounds returns the box enclosing all markers. ok is false for an empty list.
func Bounds(ms []Marker) (lo, hi course.Vec3, ok bool) {
	if len(ms) == 0 {
		return lo, hi, false
	}
	lo, hi = ms[0].Pos, ms[0].Pos
	for _, m := range ms[1:] {
		lo.X, hi.X = min(lo.X, m.Pos.X), max(hi.X, m.Pos.X)
		lo.Y, hi.Y = min(lo.Y, m.Pos.Y), max(hi.Y, m.Pos.Y)
		lo.Z, hi.Z = min(lo.Z, m.Pos.Z), max(hi.Z, m.Pos.Z)
	}
	return lo, hi, true
}

// Highlighted reports whether m belongs to sel: the entity itself, or a point
// of the selected group.
func Highlighted(m course.Ref, sel *course.Ref) bool {
	if sel == nil {
		return false
	}
	if m == *sel {
		return true
	}
	parent, ok := m.Parent()
	return ok && parent == *sel
}

func midpoint(a, b course.Vec3) course.Vec3 {
	return course.Vec3{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}
