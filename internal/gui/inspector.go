//go:build !headless

package gui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"trackedit/internal/tree"
)

const (
	propRowH    = int32(22)
	actionBtnH  = int32(26)
	actionGap   = int32(8)
	countStripH = int32(30)
)

// drawInspector draws the selected entity's fields and its action buttons on
// the right. The buttons sit in a fixed area at the bottom.
func (a *App) drawInspector() {
	panelW := a.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := topBarH
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	sel := a.ctl.Selected()
	if sel == nil {
		drawText(uiFont, "Nothing selected", panelX+12, panelY+10, 16, colorTextMuted)
		return
	}

	buttons := a.ctl.Panel().Buttons()
	btnAreaH := int32(0)
	if len(buttons) > 0 {
		btnAreaH = int32(len(buttons))*(actionBtnH+actionGap) + actionGap + countStripH
	}
	scrollableH := panelH - btnAreaH

	mousePos := rl.GetMousePosition()
	if mouseIn(mousePos, panelX, panelY, panelW, scrollableH) && a.resizingPanel == 0 {
		a.inspectorScroll -= int32(rl.GetMouseWheelMove() * 20)
	}

	rl.BeginScissorMode(panelX, panelY, panelW, scrollableH)
	y := panelY + 8 - a.inspectorScroll

	title := tree.Label(a.ctl.Course(), *sel, nil)
	if n := a.ctl.Tree().Find(*sel); n != nil {
		title = n.Label
	}
	drawText(uiFontBold, title, panelX+12, y, 18, colorTextPrimary)
	y += 22
	drawText(uiFontMono, sel.String(), panelX+12, y, 14, colorTextMuted)
	y += 22
	rl.DrawLine(panelX+12, y, panelX+panelW-12, y, colorSeparator)
	y += 10

	labelW := panelW * 2 / 5
	for _, p := range a.ctl.Inspect() {
		drawText(uiFont, p.Name, panelX+12, y+3, 15, colorTextMuted)
		drawText(uiFontMono, p.Value, panelX+12+labelW, y+3, 15, colorTextSecondary)
		y += propRowH
	}

	contentH := y + a.inspectorScroll - panelY + 20
	a.inspectorScroll = clamp(a.inspectorScroll, 0, max(contentH-scrollableH, 0))
	rl.EndScissorMode()

	if len(buttons) > 0 {
		a.drawActions(panelX, panelY+scrollableH, panelW, btnAreaH)
	}
}

// drawActions draws one button per panel action, numbered for the 1-9 keys,
// plus the point count stepper.
func (a *App) drawActions(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, colorBgPanel)
	rl.DrawLine(x+12, y+2, x+w-12, y+2, colorSeparator)

	panel := a.ctl.Panel()
	stripY := y + actionGap
	drawText(uiFont, fmt.Sprintf("Points per insert: %d", panel.PointCount), x+20, stripY+4, 15, colorTextMuted)
	if gui.Button(rl.Rectangle{X: float32(x + w - 76), Y: float32(stripY), Width: 26, Height: 22}, "-") {
		a.setPointCount(panel.PointCount - 1)
	}
	if gui.Button(rl.Rectangle{X: float32(x + w - 46), Y: float32(stripY), Width: 26, Height: 22}, "+") {
		a.setPointCount(panel.PointCount + 1)
	}

	btnY := stripY + countStripH
	for i, b := range panel.Buttons() {
		bounds := rl.Rectangle{X: float32(x + 20), Y: float32(btnY), Width: float32(w - 40), Height: float32(actionBtnH)}
		if gui.Button(bounds, fmt.Sprintf("[%d] %s", i+1, b.Label)) {
			a.activate(i)
			// The panel was rebuilt for the new selection
			return
		}
		btnY += actionBtnH + actionGap
	}
}
