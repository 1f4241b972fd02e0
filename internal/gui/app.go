//go:build !headless

// Package gui is the raylib window front-end: course tree on the left, a
// top-down overview in the middle and the inspector with the action buttons on
// the right.
package gui

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"trackedit/internal/config"
	"trackedit/internal/course"
	"trackedit/internal/editor"
	"trackedit/internal/prefs"
	"trackedit/internal/watch"
)

const (
	topBarH      = int32(36)
	flashSeconds = 2 * time.Second
)

// Colors maps an entity kind to its colour coding.
type Colors interface {
	Color(k course.Kind) (color.RGBA, bool)
}

type App struct {
	ctl       *editor.Controller
	cfg       *config.Config
	colors    Colors
	prefsPath string

	windowTitle      string
	windowX, windowY int
	restorePos       bool

	// Panel sizing
	treeWidth      int32
	inspectorWidth int32
	resizingPanel  int // 0=none, 1=tree, 2=inspector
	resizeStartX   float32
	resizeStartW   int32

	treeScroll      int32
	inspectorScroll int32
	lastTreeClick   float64
	lastClickedRef  course.Ref

	statusMsg   string
	statusErr   bool
	statusTime  time.Time
	diskChanged bool

	// Course browser, nil without a course folder
	browser          *editor.Browser
	browsing         bool
	browserScroll    int32
	lastBrowserClick float64
	lastBrowserPath  string
}

func New(ctl *editor.Controller, cfg *config.Config, colors Colors, prefsPath string) *App {
	a := &App{
		ctl:            ctl,
		cfg:            cfg,
		colors:         colors,
		prefsPath:      prefsPath,
		treeWidth:      cfg.Panels.TreeWidth,
		inspectorWidth: cfg.Panels.InspectorWidth,
	}
	if cfg.CourseDir != "" {
		a.browser = editor.NewBrowser(cfg.CourseDir)
	}
	ctl.StatusChanged.AddListener(func(s editor.Status) {
		a.ctlStatus(s.Text, s.Error)
	})
	ctl.CourseLoaded.AddListener(func(*course.Course) {
		a.diskChanged = false
	})
	ctl.SelectionChanged.AddListener(func(*course.Ref) {
		a.inspectorScroll = 0
	})
	return a
}

func (a *App) ctlStatus(text string, isErr bool) {
	a.statusMsg = text
	a.statusErr = isErr
	a.statusTime = time.Now()
}

// ApplyPrefs applies loaded preferences to the window layout
func (a *App) ApplyPrefs(p *prefs.Prefs) {
	if p == nil {
		return
	}
	if p.WindowWidth > 0 && p.WindowHeight > 0 {
		a.cfg.Window.Width = int32(p.WindowWidth)
		a.cfg.Window.Height = int32(p.WindowHeight)
		a.windowX, a.windowY = p.WindowX, p.WindowY
		a.restorePos = true
	}
	if p.TreeWidth > 0 {
		a.treeWidth = p.TreeWidth
	}
	if p.InspectorWidth > 0 {
		a.inspectorWidth = p.InspectorWidth
	}
}

// SavePrefs saves the current layout and selection to disk
func (a *App) SavePrefs() {
	p := prefs.Prefs{
		WindowWidth:    rl.GetScreenWidth(),
		WindowHeight:   rl.GetScreenHeight(),
		WindowX:        int(rl.GetWindowPosition().X),
		WindowY:        int(rl.GetWindowPosition().Y),
		TreeWidth:      a.treeWidth,
		InspectorWidth: a.inspectorWidth,
		CoursePath:     a.ctl.Path(),
		Selected:       a.ctl.Selected(),
		Expanded:       a.ctl.Tree().ExpandedRefs(),
	}
	if err := p.Save(a.prefsPath); err != nil {
		log.Printf("Failed to save editor prefs: %v", err)
	}
}

// Run opens the window and blocks until it is closed. Changes reported by w
// reload the course unless it has unsaved edits.
func (a *App) Run(w *watch.Watcher) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	a.windowTitle = a.title()
	rl.InitWindow(a.cfg.Window.Width, a.cfg.Window.Height, a.windowTitle)
	defer rl.CloseWindow()
	if a.restorePos {
		rl.SetWindowPosition(a.windowX, a.windowY)
	}
	rl.SetTargetFPS(a.cfg.Window.FPS)
	rl.SetExitKey(0)

	initStyle()
	defer unloadFonts()

	for !rl.WindowShouldClose() {
		a.pollWatcher(w)
		a.update()

		if title := a.title(); title != a.windowTitle {
			rl.SetWindowTitle(title)
			a.windowTitle = title
		}
		rl.BeginDrawing()
		rl.ClearBackground(colorBgDark)
		a.drawOverview()
		a.drawUI()
		rl.EndDrawing()
	}
	a.SavePrefs()
}

func (a *App) title() string {
	return "trackedit - " + a.fileLabel()
}

func (a *App) fileLabel() string {
	name := "untitled"
	if a.ctl.Path() != "" {
		name = filepath.Base(a.ctl.Path())
	}
	if a.ctl.Dirty() {
		name += " *"
	}
	return name
}

func (a *App) pollWatcher(w *watch.Watcher) {
	if w == nil {
		return
	}
	select {
	case <-w.Changes():
		if !a.ctl.ChangedOnDisk() {
			// Our own save
			return
		}
		if a.ctl.Dirty() {
			a.diskChanged = true
			return
		}
		a.ctl.Reload()
	default:
	}
}

func (a *App) update() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	// Ctrl+S: save course
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		a.ctl.Save("")
	}
	// Ctrl+R: reload from disk, dropping unsaved edits
	if ctrl && rl.IsKeyPressed(rl.KeyR) {
		a.ctl.Reload()
	}
	// Ctrl+O: course browser
	if ctrl && rl.IsKeyPressed(rl.KeyO) {
		a.toggleBrowser()
	}
	if ctrl {
		return
	}

	if pressed(rl.KeyUp) {
		a.ctl.Move(-1)
		a.scrollToSelection()
	}
	if pressed(rl.KeyDown) {
		a.ctl.Move(1)
		a.scrollToSelection()
	}
	if pressed(rl.KeyRight) {
		a.ctl.Expand()
	}
	if pressed(rl.KeyLeft) {
		a.ctl.Collapse()
		a.scrollToSelection()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		a.ctl.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.browsing {
			a.browsing = false
		} else {
			a.ctl.ClearSelection()
		}
	}

	panel := a.ctl.Panel()
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.setPointCount(panel.PointCount + 1)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.setPointCount(panel.PointCount - 1)
	}
	for i := 0; i < 9; i++ {
		if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
			a.activate(i)
		}
	}
}

func pressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

func (a *App) activate(i int) {
	if i >= len(a.ctl.Panel().Buttons()) {
		return
	}
	if err := a.ctl.Panel().Activate(i); err == nil {
		a.scrollToSelection()
	}
}

// setPointCount changes how many points the next insertion adds and refreshes
// the buttons so they carry the new count.
func (a *App) setPointCount(n int) {
	if n < 1 || n > 99 {
		return
	}
	a.ctl.Panel().PointCount = n
	a.ctl.Panel().SetContext(a.ctl.Selected())
}

func (a *App) drawUI() {
	screenW := int32(rl.GetScreenWidth())

	// Top bar
	rl.DrawRectangle(0, 0, screenW, topBarH, colorBgDark)
	rl.DrawRectangle(0, topBarH-1, screenW, 1, colorBorder)
	drawText(uiFontBold, "TRACKEDIT", 12, 7, 22, colorAccent)

	drawText(uiFont, a.fileLabel(), 140, 9, 18, colorTextSecondary)
	drawText(uiFont, "Ctrl+S: Save  |  Ctrl+R: Reload  |  Ctrl+O: Open  |  1-9: Actions  |  +/-: Points", 360, 9, 18, colorTextMuted)
	drawText(uiFontMono, fmt.Sprintf("Entities: %d", a.ctl.Course().EntityCount()), screenW-160, 9, 18, colorTextMuted)

	if a.diskChanged {
		a.drawBanner("Course changed on disk - Ctrl+R to reload")
	}

	// Status flash below top bar
	if a.statusMsg != "" && time.Since(a.statusTime) < flashSeconds {
		c := colorOK
		if a.statusErr {
			c = colorError
		}
		w := measureText(uiFontBold, a.statusMsg, 16)
		drawText(uiFontBold, a.statusMsg, (screenW-w)/2, topBarH+40, 16, c)
	}

	a.drawTree()
	a.drawInspector()
	if a.browsing {
		a.drawBrowser()
	}
	a.handlePanelResize()

	if a.resizingPanel > 0 || a.isOverPanelEdge() {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (a *App) drawBanner(text string) {
	textW := measureText(uiFont, text, 14)
	x := (int32(rl.GetScreenWidth()) - textW) / 2
	rl.DrawRectangle(x-12, topBarH+6, textW+24, 26, rl.NewColor(108, 99, 255, 40))
	rl.DrawRectangleLines(x-12, topBarH+6, textW+24, 26, colorAccent)
	drawText(uiFont, text, x, topBarH+11, 14, colorAccentLight)
}

// isOverPanelEdge checks if mouse is over a resizable panel edge
func (a *App) isOverPanelEdge() bool {
	return a.panelEdgeAt(rl.GetMousePosition()) != 0
}

func (a *App) panelEdgeAt(m rl.Vector2) int {
	if m.Y <= float32(topBarH) || m.Y >= float32(rl.GetScreenHeight()) {
		return 0
	}
	treeEdge := float32(a.treeWidth)
	if m.X >= treeEdge-2 && m.X <= treeEdge+2 {
		return 1
	}
	inspEdge := float32(rl.GetScreenWidth()) - float32(a.inspectorWidth)
	if m.X >= inspEdge-2 && m.X <= inspEdge+2 {
		return 2
	}
	return 0
}

// handlePanelResize handles drag-to-resize for panels
func (a *App) handlePanelResize() {
	mousePos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.resizingPanel == 0 {
		switch a.panelEdgeAt(mousePos) {
		case 1:
			a.resizingPanel = 1
			a.resizeStartW = a.treeWidth
		case 2:
			a.resizingPanel = 2
			a.resizeStartW = a.inspectorWidth
		}
		a.resizeStartX = mousePos.X
	}

	if a.resizingPanel > 0 && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := int32(mousePos.X - a.resizeStartX)
		if a.resizingPanel == 1 {
			a.treeWidth = clamp(a.resizeStartW+delta, 150, 450)
		} else {
			// Inspector grows to the left
			a.inspectorWidth = clamp(a.resizeStartW-delta, 250, 500)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.resizingPanel = 0
	}
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mouseIn(m rl.Vector2, x, y, w, h int32) bool {
	return m.X >= float32(x) && m.X <= float32(x+w) && m.Y >= float32(y) && m.Y <= float32(y+h)
}
