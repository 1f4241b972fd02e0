//go:build !headless

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"trackedit/internal/course"
	"trackedit/internal/editor"
)

const overviewMargin = float32(40)

// drawOverview draws a top-down map of the course (X right, Z down) between the
// two panels. The selected entity, or every point of a selected group, is
// ringed.
func (a *App) drawOverview() {
	x := float32(a.treeWidth)
	y := float32(topBarH)
	w := float32(rl.GetScreenWidth()) - x - float32(a.inspectorWidth)
	h := float32(rl.GetScreenHeight()) - y
	if w <= 2*overviewMargin || h <= 2*overviewMargin {
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), colorBgMap)

	c := a.ctl.Course()
	markers := editor.Markers(c)
	lo, hi, ok := editor.Bounds(markers)
	if !ok {
		drawText(uiFont, "Empty course", int32(x+w/2-50), int32(y+h/2), 18, colorTextMuted)
		return
	}

	spanX := hi.X - lo.X
	spanZ := hi.Z - lo.Z
	scale := float32(1)
	if spanX > 0 || spanZ > 0 {
		scale = min((w-2*overviewMargin)/max(spanX, 1), (h-2*overviewMargin)/max(spanZ, 1))
	}
	originX := x + (w-spanX*scale)/2
	originY := y + (h-spanZ*scale)/2
	project := func(p course.Vec3) rl.Vector2 {
		return rl.Vector2{X: originX + (p.X-lo.X)*scale, Y: originY + (p.Z-lo.Z)*scale}
	}

	sel := a.ctl.Selected()
	for _, path := range editor.Paths(c) {
		lineColor := a.kindColor(path.Ref.Kind, 120)
		if editor.Highlighted(path.Ref, sel) {
			lineColor = colorAccentLight
		}
		for i := 1; i < len(path.Points); i++ {
			rl.DrawLineV(project(path.Points[i-1].Pos), project(path.Points[i].Pos), lineColor)
		}
		if path.Loop && len(path.Points) > 2 {
			rl.DrawLineV(project(path.Points[len(path.Points)-1].Pos), project(path.Points[0].Pos), lineColor)
		}
	}

	for _, m := range markers {
		pos := project(m.Pos)
		rl.DrawCircleV(pos, 3, a.kindColor(m.Ref.Kind, 255))
		if editor.Highlighted(m.Ref, sel) {
			rl.DrawCircleLines(int32(pos.X), int32(pos.Y), 7, colorAccent)
		}
	}
}

func (a *App) kindColor(k course.Kind, alpha uint8) rl.Color {
	if a.colors != nil {
		if c, ok := a.colors.Color(k); ok {
			col := toColor(c)
			col.A = alpha
			return col
		}
	}
	return rl.NewColor(200, 200, 208, alpha)
}
