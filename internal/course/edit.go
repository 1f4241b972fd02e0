package course

// pointOffset is where a point inserted after a neighbour lands relative to it.
var pointOffset = Vec3{X: 0, Y: 0, Z: 500}

// AddEnemyPath appends an empty enemy point group with the next free id.
func (c *Course) AddEnemyPath() Ref {
	if c.EnemyPointGroups.Groups == nil {
		c.EnemyPointGroups.Groups = make(map[int]*EnemyPointGroup)
	}
	id := 0
	for existing := range c.EnemyPointGroups.Groups {
		if existing >= id {
			id = existing + 1
		}
	}
	c.EnemyPointGroups.Groups[id] = &EnemyPointGroup{ID: id}
	return EnemyGroupRef(id)
}

// AddEnemyPoints inserts n points after the referenced enemy point, or at the
// end of the referenced group. It returns the handle of the first new point.
func (c *Course) AddEnemyPoints(target Ref, n int) (Ref, error) {
	if n <= 0 {
		return Ref{}, ErrInvalidCount
	}
	if target.Kind != KindEnemyPoint && target.Kind != KindEnemyPointGroup {
		return Ref{}, wrongKind(target, "an enemy point group or point")
	}
	g, ok := c.EnemyPointGroups.Groups[target.Group]
	if !ok {
		return Ref{}, staleRef(target)
	}
	pos, err := insertPos(len(g.Points), target, KindEnemyPoint)
	if err != nil {
		return Ref{}, err
	}
	added := make([]*EnemyPoint, n)
	for i := range added {
		p := &EnemyPoint{Scale: 1, Link: -1}
		if prev := pos - 1; prev >= 0 {
			*p = *g.Points[prev]
			p.Position = g.Points[prev].Position.Add(scaleVec(pointOffset, i+1))
		}
		added[i] = p
	}
	g.Points = insert(g.Points, pos, added)
	return EnemyPointRef(target.Group, pos), nil
}

// AddCheckpointGroup appends an empty, unlinked checkpoint group.
func (c *Course) AddCheckpointGroup() Ref {
	g := &CheckpointGroup{
		PrevGroups: [4]int16{-1, -1, -1, -1},
		NextGroups: [4]int16{-1, -1, -1, -1},
		GroupLink:  uint16(len(c.CheckpointGroups.Groups)),
	}
	c.CheckpointGroups.Groups = append(c.CheckpointGroups.Groups, g)
	return CheckpointGroupRef(len(c.CheckpointGroups.Groups) - 1)
}

// AddCheckpoints inserts n checkpoints after the referenced checkpoint, or at
// the end of the referenced group.
func (c *Course) AddCheckpoints(target Ref, n int) (Ref, error) {
	if n <= 0 {
		return Ref{}, ErrInvalidCount
	}
	if target.Kind != KindCheckpoint && target.Kind != KindCheckpointGroup {
		return Ref{}, wrongKind(target, "a checkpoint group or checkpoint")
	}
	g, ok := at(c.CheckpointGroups.Groups, target.Group)
	if !ok {
		return Ref{}, staleRef(target)
	}
	pos, err := insertPos(len(g.Points), target, KindCheckpoint)
	if err != nil {
		return Ref{}, err
	}
	added := make([]*Checkpoint, n)
	for i := range added {
		cp := &Checkpoint{}
		if prev := pos - 1; prev >= 0 {
			off := scaleVec(pointOffset, i+1)
			cp.Start = g.Points[prev].Start.Add(off)
			cp.End = g.Points[prev].End.Add(off)
		}
		added[i] = cp
	}
	g.Points = insert(g.Points, pos, added)
	return CheckpointRef(target.Group, pos), nil
}

// AddRoute appends an empty object route.
func (c *Course) AddRoute() Ref {
	c.Routes = append(c.Routes, &Route{})
	return RouteRef(len(c.Routes) - 1)
}

// AddRoutePoints inserts n points after the referenced route point, or at the
// end of the referenced route.
func (c *Course) AddRoutePoints(target Ref, n int) (Ref, error) {
	if n <= 0 {
		return Ref{}, ErrInvalidCount
	}
	if target.Kind != KindRoutePoint && target.Kind != KindRoute {
		return Ref{}, wrongKind(target, "a route or route point")
	}
	rt, ok := at(c.Routes, target.Group)
	if !ok {
		return Ref{}, staleRef(target)
	}
	pos, err := insertPos(len(rt.Points), target, KindRoutePoint)
	if err != nil {
		return Ref{}, err
	}
	added := make([]*RoutePoint, n)
	for i := range added {
		p := &RoutePoint{}
		if prev := pos - 1; prev >= 0 {
			*p = *rt.Points[prev]
			p.Position = rt.Points[prev].Position.Add(scaleVec(pointOffset, i+1))
		}
		added[i] = p
	}
	rt.Points = insert(rt.Points, pos, added)
	return RoutePointRef(target.Group, pos), nil
}

// insertPos returns the list index new points go to: right after the
// referenced point, or the end of the list when the group itself is referenced.
func insertPos(n int, target Ref, pointKind Kind) (int, error) {
	if target.Kind != pointKind {
		return n, nil
	}
	if target.Index < 0 || target.Index >= n {
		return 0, staleRef(target)
	}
	return target.Index + 1, nil
}

func insert[T any](s []*T, pos int, items []*T) []*T {
	out := make([]*T, 0, len(s)+len(items))
	out = append(out, s[:pos]...)
	out = append(out, items...)
	return append(out, s[pos:]...)
}

func scaleVec(v Vec3, f int) Vec3 {
	return Vec3{X: v.X * float32(f), Y: v.Y * float32(f), Z: v.Z * float32(f)}
}
