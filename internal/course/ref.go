package course

import "fmt"

// Ref is a handle to an entity in a Course. It holds no pointer, so a Ref kept
// across a reload simply fails to resolve instead of dangling.
//
// Group is the enemy point group id, or the checkpoint group / route index.
// Index is the position inside the owning list.
type Ref struct {
	Kind  Kind `json:"kind"`
	Group int  `json:"group,omitempty"`
	Index int  `json:"index,omitempty"`
}

func HeaderRef() Ref { return Ref{Kind: KindHeader} }
func CategoryRef(k Kind) Ref { return Ref{Kind: k} }
func EnemyGroupRef(id int) Ref { return Ref{Kind: KindEnemyPointGroup, Group: id} }
func EnemyPointRef(id, i int) Ref { return Ref{Kind: KindEnemyPoint, Group: id, Index: i} }
func CheckpointGroupRef(g int) Ref { return Ref{Kind: KindCheckpointGroup, Group: g} }
func CheckpointRef(g, i int) Ref { return Ref{Kind: KindCheckpoint, Group: g, Index: i} }
func RouteRef(r int) Ref { return Ref{Kind: KindRoute, Group: r} }
func RoutePointRef(r, i int) Ref { return Ref{Kind: KindRoutePoint, Group: r, Index: i} }
func ItemRef(k Kind, i int) Ref { return Ref{Kind: k, Index: i} }

// Parent returns the handle of the node that owns r in the tree.
func (r Ref) Parent() (Ref, bool) {
	switch r.Kind {
	case KindHeader:
		return Ref{}, false
	case KindEnemyPoint:
		return EnemyGroupRef(r.Group), true
	case KindCheckpoint:
		return CheckpointGroupRef(r.Group), true
	case KindRoutePoint:
		return RouteRef(r.Group), true
	}
	if r.Kind.IsCategory() {
		return Ref{}, false
	}
	return CategoryRef(r.Kind.Category()), true
}

func (r Ref) String() string {
	switch r.Kind {
	case KindHeader:
		return "header"
	case KindEnemyPointGroup, KindCheckpointGroup, KindRoute:
		return fmt.Sprintf("%s[%d]", r.Kind, r.Group)
	case KindEnemyPoint, KindCheckpoint, KindRoutePoint:
		return fmt.Sprintf("%s[%d/%d]", r.Kind, r.Group, r.Index)
	}
	if r.Kind.IsCategory() {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s[%d]", r.Kind, r.Index)
}
