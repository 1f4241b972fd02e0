//go:build !headless

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"trackedit/internal/course"
	"trackedit/internal/tree"
)

const (
	treeItemH   = int32(22)
	treeHeaderH = int32(28)
)

// drawTree draws the course browser on the left.
func (a *App) drawTree() {
	panelX := int32(0)
	panelY := topBarH
	panelW := a.treeWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)
	drawText(uiFontBold, "Course", panelX+12, panelY+8, 18, colorTextSecondary)

	mousePos := rl.GetMousePosition()
	mouseInPanel := mouseIn(mousePos, panelX, panelY, panelW, panelH) && a.resizingPanel == 0

	if mouseInPanel {
		a.treeScroll -= int32(rl.GetMouseWheelMove() * 20)
	}

	rows := a.ctl.Tree().Visible()
	maxScroll := int32(len(rows))*treeItemH - panelH + treeHeaderH + 8
	a.treeScroll = clamp(a.treeScroll, 0, max(maxScroll, 0))

	sel := a.ctl.Selected()
	top := panelY + treeHeaderH
	rl.BeginScissorMode(panelX, top, panelW-2, panelH-treeHeaderH)

	for i, row := range rows {
		itemY := top + int32(i)*treeItemH - a.treeScroll
		if itemY+treeItemH < top || itemY > panelY+panelH {
			continue
		}

		hovered := mouseInPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+treeItemH) &&
			mousePos.Y >= float32(top)
		selected := sel != nil && *sel == row.Node.Ref

		if selected {
			rl.DrawRectangle(panelX, itemY, panelW, treeItemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, treeItemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, treeItemH, colorBgHover)
		}

		indent := int32(12) + int32(row.Depth)*16
		if len(row.Node.Children) > 0 {
			arrow := ">"
			if row.Node.Expanded {
				arrow = "v"
			}
			drawText(uiFontMono, arrow, panelX+indent-2, itemY+3, 14, colorTextMuted)
		}
		a.drawKindDot(row.Node.Ref.Kind, panelX+indent+14, itemY+treeItemH/2)

		txtColor := colorTextSecondary
		if selected {
			txtColor = colorAccentLight
		}
		drawText(uiFont, row.Node.Label, panelX+indent+24, itemY+3, 16, txtColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.clickRow(row, mousePos.X < float32(panelX+indent+10))
		}
	}

	rl.EndScissorMode()
}

// clickRow selects the row. A click on the arrow or a double-click toggles it.
func (a *App) clickRow(row tree.Row, onArrow bool) {
	now := rl.GetTime()
	ref := row.Node.Ref
	doubleClick := now-a.lastTreeClick < 0.3 && a.lastClickedRef == ref

	a.ctl.Select(ref)
	if onArrow || doubleClick {
		a.ctl.Toggle()
	}
	a.lastTreeClick = now
	a.lastClickedRef = ref
}

func (a *App) drawKindDot(k course.Kind, x, y int32) {
	if a.colors == nil {
		return
	}
	if c, ok := a.colors.Color(k); ok {
		rl.DrawCircle(x, y, 4, toColor(c))
	}
}

// scrollToSelection keeps the selected row inside the visible part of the
// tree panel.
func (a *App) scrollToSelection() {
	sel := a.ctl.Selected()
	if sel == nil {
		return
	}
	i := tree.Index(a.ctl.Tree().Visible(), *sel)
	if i < 0 {
		return
	}
	rowTop := int32(i) * treeItemH
	viewH := int32(rl.GetScreenHeight()) - topBarH - treeHeaderH
	if rowTop < a.treeScroll {
		a.treeScroll = rowTop
	} else if rowTop+treeItemH > a.treeScroll+viewH {
		a.treeScroll = rowTop + treeItemH - viewH
	}
}
