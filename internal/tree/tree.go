// Package tree projects a course into the browser tree shown next to the
// viewport: a header row plus ten fixed categories whose children mirror the
// course collections.
//
// The projection is rebuilt wholesale on every Load. Nodes are never patched,
// so callers keep course.Refs, not *Node, across a rebuild.
package tree

import (
	"sort"

	"trackedit/internal/course"
)

// NameResolver turns an object type id into a display name.
type NameResolver interface {
	ObjectName(id uint16) string
}

type Node struct {
	Label    string
	Ref      course.Ref
	Children []*Node
	Expanded bool
}

// Tree is the course browser model. Category nodes are created once and keep
// their expansion state across loads.
type Tree struct {
	names      NameResolver
	header     *Node
	categories []*Node
}

var categoryLabels = map[course.Kind]string{
	course.KindEnemyPointGroups: "Enemy point groups",
	course.KindCheckpointGroups: "Checkpoint groups",
	course.KindRoutes:           "Object point groups",
	course.KindObjects:          "Objects",
	course.KindKartPoints:       "Kart start points",
	course.KindAreas:            "Areas",
	course.KindCameras:          "Cameras",
	course.KindRespawnPoints:    "Respawn points",
	course.KindLightParams:      "Light param entries",
	course.KindMGEntries:        "MG entries",
}

func New(names NameResolver) *Tree {
	t := &Tree{
		names:  names,
		header: &Node{Label: headerLabel, Ref: course.HeaderRef()},
	}
	for _, k := range course.Categories() {
		t.categories = append(t.categories, &Node{Label: categoryLabels[k], Ref: course.CategoryRef(k)})
	}
	return t
}

// Roots returns the header followed by the categories in display order.
func (t *Tree) Roots() []*Node {
	roots := make([]*Node, 0, len(t.categories)+1)
	roots = append(roots, t.header)
	return append(roots, t.categories...)
}

// Category returns the node for a container kind, or nil.
func (t *Tree) Category(k course.Kind) *Node {
	for _, n := range t.categories {
		if n.Ref.Kind == k {
			return n
		}
	}
	return nil
}

// Reset drops the children of every category. The categories themselves stay.
func (t *Tree) Reset() {
	for _, n := range t.categories {
		n.Children = nil
	}
}

// Load rebuilds every category from c. Groups that were expanded before keep
// their expansion if their handle still resolves.
func (t *Tree) Load(c *course.Course) {
	expanded := t.expandedGroups()
	t.Reset()

	enemy := t.Category(course.KindEnemyPointGroups)
	for _, id := range c.EnemyPointGroups.SortedIDs() {
		group := t.node(c, course.EnemyGroupRef(id))
		for i := range c.EnemyPointGroups.Groups[id].Points {
			group.Children = append(group.Children, t.node(c, course.EnemyPointRef(id, i)))
		}
		enemy.Children = append(enemy.Children, group)
	}

	checkpoints := t.Category(course.KindCheckpointGroups)
	for gi, g := range c.CheckpointGroups.Groups {
		group := t.node(c, course.CheckpointGroupRef(gi))
		for i := range g.Points {
			group.Children = append(group.Children, t.node(c, course.CheckpointRef(gi, i)))
		}
		checkpoints.Children = append(checkpoints.Children, group)
	}

	routes := t.Category(course.KindRoutes)
	for ri, r := range c.Routes {
		route := t.node(c, course.RouteRef(ri))
		for i := range r.Points {
			route.Children = append(route.Children, t.node(c, course.RoutePointRef(ri, i)))
		}
		routes.Children = append(routes.Children, route)
	}

	objects := t.Category(course.KindObjects)
	for i := range c.Objects {
		objects.Children = append(objects.Children, t.node(c, course.ItemRef(course.KindObject, i)))
	}
	sortObjects(objects, c)

	t.appendItems(c, course.KindKartPoints, course.KindKartPoint, len(c.KartPoints))
	t.appendItems(c, course.KindAreas, course.KindArea, len(c.Areas))
	t.appendItems(c, course.KindCameras, course.KindCamera, len(c.Cameras))
	t.appendItems(c, course.KindRespawnPoints, course.KindRespawnPoint, len(c.RespawnPoints))
	t.appendItems(c, course.KindLightParams, course.KindLightParam, len(c.LightParams))
	t.appendItems(c, course.KindMGEntries, course.KindMGEntry, len(c.MGEntries))

	for _, ref := range expanded {
		if n := t.Find(ref); n != nil {
			n.Expanded = true
		}
	}
}

func (t *Tree) appendItems(c *course.Course, category, item course.Kind, n int) {
	cat := t.Category(category)
	for i := 0; i < n; i++ {
		cat.Children = append(cat.Children, t.node(c, course.ItemRef(item, i)))
	}
}

func (t *Tree) node(c *course.Course, ref course.Ref) *Node {
	return &Node{Label: Label(c, ref, t.names), Ref: ref}
}

// sortObjects orders object rows by object type id. Rows with the same id
// keep their course order.
func sortObjects(objects *Node, c *course.Course) {
	sort.SliceStable(objects.Children, func(i, j int) bool {
		return objectID(c, objects.Children[i]) < objectID(c, objects.Children[j])
	})
}

func objectID(c *course.Course, n *Node) uint16 {
	return c.Objects[n.Ref.Index].ObjectID
}

func (t *Tree) expandedGroups() []course.Ref {
	var refs []course.Ref
	for _, cat := range t.categories {
		for _, n := range cat.Children {
			if n.Expanded {
				refs = append(refs, n.Ref)
			}
		}
	}
	return refs
}

// Find returns the node bound to ref, or nil.
func (t *Tree) Find(ref course.Ref) *Node {
	for _, root := range t.Roots() {
		if n := find(root, ref); n != nil {
			return n
		}
	}
	return nil
}

func find(n *Node, ref course.Ref) *Node {
	if n.Ref == ref {
		return n
	}
	for _, child := range n.Children {
		if found := find(child, ref); found != nil {
			return found
		}
	}
	return nil
}

// Reveal expands every ancestor of ref so its row is visible.
func (t *Tree) Reveal(ref course.Ref) {
	for parent, ok := ref.Parent(); ok; parent, ok = parent.Parent() {
		if n := t.Find(parent); n != nil {
			n.Expanded = true
		}
	}
}

// Toggle flips the expansion of the node bound to ref. Leaves are ignored.
func (t *Tree) Toggle(ref course.Ref) {
	if n := t.Find(ref); n != nil && len(n.Children) > 0 {
		n.Expanded = !n.Expanded
	}
}

// ExpandedRefs lists every expanded node, categories included.
func (t *Tree) ExpandedRefs() []course.Ref {
	var refs []course.Ref
	for _, row := range t.Visible() {
		if row.Node.Expanded {
			refs = append(refs, row.Node.Ref)
		}
	}
	return refs
}

// Expand opens the nodes bound to refs. Refs that do not resolve are skipped.
func (t *Tree) Expand(refs ...course.Ref) {
	for _, ref := range refs {
		if n := t.Find(ref); n != nil {
			n.Expanded = true
		}
	}
}

// Row is one visible line of the tree.
type Row struct {
	Node  *Node
	Depth int
}

// Visible flattens the tree into display rows, descending only into expanded
// nodes.
func (t *Tree) Visible() []Row {
	var rows []Row
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		rows = append(rows, Row{Node: n, Depth: depth})
		if !n.Expanded {
			return
		}
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range t.Roots() {
		walk(root, 0)
	}
	return rows
}

// Index returns the position of ref in rows, or -1.
func Index(rows []Row, ref course.Ref) int {
	for i, r := range rows {
		if r.Node.Ref == ref {
			return i
		}
	}
	return -1
}
