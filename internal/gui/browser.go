//go:build !headless

package gui

import (
	"path/filepath"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"trackedit/internal/editor"
)

const (
	browserH     = int32(150)
	browserItemW = int32(112)
	browserItemH = int32(52)
	doubleClick  = 0.3
)

// toggleBrowser shows or hides the course browser, rescanning its folder when
// it opens.
func (a *App) toggleBrowser() {
	if a.browser == nil {
		a.ctlStatus("No course folder configured", true)
		return
	}
	if a.browsing {
		a.browsing = false
		return
	}
	if err := a.browser.Refresh(); err != nil {
		a.ctlStatus(err.Error(), true)
		return
	}
	a.browsing = true
	a.browserScroll = 0
}

// drawBrowser draws the course browser along the bottom of the overview.
// Folders open on a single click, courses on a double click.
func (a *App) drawBrowser() {
	panelX := a.treeWidth
	panelW := int32(rl.GetScreenWidth()) - a.treeWidth - a.inspectorWidth
	panelY := int32(rl.GetScreenHeight()) - browserH
	if panelW <= 0 {
		return
	}

	rl.DrawRectangle(panelX, panelY, panelW, browserH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, panelW, 1, colorBorder)

	mousePos := rl.GetMousePosition()
	headerY := panelY + 6

	pathX := panelX + 12
	if !a.browser.AtRoot() {
		if gui.Button(rl.Rectangle{X: float32(panelX + 10), Y: float32(headerY), Width: 26, Height: 20}, "<") {
			if err := a.browser.Up(); err != nil {
				a.ctlStatus(err.Error(), true)
			}
			a.browserScroll = 0
			return
		}
		pathX = panelX + 46
	}
	drawText(uiFont, filepath.ToSlash(a.browser.Dir())+"/", pathX, headerY+3, 15, colorTextMuted)

	if gui.Button(rl.Rectangle{X: float32(panelX + panelW - 75), Y: float32(headerY), Width: 65, Height: 20}, "Refresh") {
		if err := a.browser.Refresh(); err != nil {
			a.ctlStatus(err.Error(), true)
		}
	}

	startX := panelX + 10
	startY := panelY + 32
	cols := max((panelW-20)/(browserItemW+8), 1)

	if mouseIn(mousePos, panelX, panelY, panelW, browserH) {
		a.browserScroll = max(a.browserScroll-int32(rl.GetMouseWheelMove()*30), 0)
	}

	rl.BeginScissorMode(panelX, panelY+28, panelW, browserH-28)
	var picked *editor.CourseEntry
	for i, entry := range a.browser.Entries {
		col := int32(i) % cols
		row := int32(i) / cols
		x := startX + col*(browserItemW+8)
		y := startY + row*(browserItemH+8) - a.browserScroll
		if y+browserItemH < panelY+28 || y > panelY+browserH {
			continue
		}

		hovered := mouseIn(mousePos, x, y, browserItemW, browserItemH)
		bg := colorBgElement
		if entry.Path == a.ctl.Path() {
			bg = colorSelection
		} else if hovered {
			bg = colorBgHover
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(browserItemW), Height: float32(browserItemH)}, 0.15, 4, bg)
		drawEntryIcon(entry, x+8, y+10)

		name := entry.Name
		if len(name) > 12 {
			name = name[:11] + "~"
		}
		drawText(uiFont, name, x+40, y+17, 14, colorTextSecondary)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			now := rl.GetTime()
			double := now-a.lastBrowserClick < doubleClick && a.lastBrowserPath == entry.Path
			if entry.IsFolder || double {
				e := entry
				picked = &e
			}
			a.lastBrowserClick = now
			a.lastBrowserPath = entry.Path
		}
	}
	rl.EndScissorMode()

	rows := (int32(len(a.browser.Entries)) + cols - 1) / cols
	a.browserScroll = min(a.browserScroll, max(rows*(browserItemH+8)-(browserH-32), 0))

	if len(a.browser.Entries) == 0 {
		drawText(uiFont, "No courses here", panelX+20, panelY+60, 16, colorTextMuted)
	}

	if picked != nil {
		a.pick(*picked)
	}
}

// pick enters a folder or switches to a course. Open errors already reach the
// status line through the controller.
func (a *App) pick(e editor.CourseEntry) {
	if err := a.browser.Pick(a.ctl, e); err != nil {
		if e.IsFolder {
			a.ctlStatus(err.Error(), true)
		}
		return
	}
	a.browserScroll = 0
	if !e.IsFolder {
		a.browsing = false
		a.treeScroll = 0
	}
}

func drawEntryIcon(e editor.CourseEntry, x, y int32) {
	if e.IsFolder {
		folder := rl.NewColor(220, 180, 80, 255)
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: 14, Height: 6}, 0.4, 4, folder)
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y + 4), Width: 24, Height: 20}, 0.2, 4, folder)
		rl.DrawRectangle(x+2, y+8, 20, 2, rl.NewColor(180, 140, 50, 255))
		return
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x + 3), Y: float32(y), Width: 18, Height: 24}, 0.15, 4, colorAccent)
	for i := int32(0); i < 3; i++ {
		rl.DrawRectangle(x+7, y+6+i*5, 10, 2, colorAccentLight)
	}
}
