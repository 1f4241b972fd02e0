// Package tui is the terminal front-end: the course tree on the left, the
// inspector and the action list on the right.
package tui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackedit/internal/course"
	"trackedit/internal/editor"
	"trackedit/internal/tree"
	"trackedit/internal/watch"
)

// Colors maps an entity kind to its colour coding.
type Colors interface {
	Color(k course.Kind) (color.RGBA, bool)
}

type fileChangedMsg struct{}

func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

type Model struct {
	ctl     *editor.Controller
	colors  Colors
	watcher *watch.Watcher
	keys    keyMap
	styles  styles

	inspector     viewport.Model
	width, height int
	treeWidth     int
	treeTop       int

	status      editor.Status
	diskChanged bool

	// browser replaces the inspector while browsing is true.
	browser   *editor.Browser
	browsing  bool
	browseIdx int
}

// New builds the model. courseDir is the root of the course browser; empty
// disables it.
func New(ctl *editor.Controller, colors Colors, w *watch.Watcher, courseDir string) *Model {
	m := &Model{
		ctl:       ctl,
		colors:    colors,
		watcher:   w,
		keys:      newKeyMap(),
		styles:    newStyles(),
		inspector: viewport.New(40, 10),
	}
	if courseDir != "" {
		m.browser = editor.NewBrowser(courseDir)
	}
	ctl.StatusChanged.AddListener(func(s editor.Status) { m.status = s })
	ctl.CourseLoaded.AddListener(func(*course.Course) { m.diskChanged = false })
	ctl.SelectionChanged.AddListener(func(*course.Ref) { m.inspector.GotoTop() })
	return m
}

func (m *Model) Init() tea.Cmd {
	return waitForChange(m.watcher)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case fileChangedMsg:
		if !m.ctl.ChangedOnDisk() {
			return m, waitForChange(m.watcher)
		}
		if m.ctl.Dirty() {
			m.diskChanged = true
		} else {
			m.ctl.Reload()
		}
		m.refresh()
		return m, waitForChange(m.watcher)
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.browsing {
		return m.handleBrowseKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.browse):
		m.openBrowser()
	case key.Matches(msg, m.keys.up):
		m.ctl.Move(-1)
	case key.Matches(msg, m.keys.down):
		m.ctl.Move(1)
	case key.Matches(msg, m.keys.expand):
		m.ctl.Expand()
	case key.Matches(msg, m.keys.collapse):
		m.ctl.Collapse()
	case key.Matches(msg, m.keys.toggle):
		m.ctl.Toggle()
	case key.Matches(msg, m.keys.clear):
		m.ctl.ClearSelection()
	case key.Matches(msg, m.keys.save):
		m.ctl.Save("")
	case key.Matches(msg, m.keys.reload):
		m.ctl.Reload()
	case key.Matches(msg, m.keys.more):
		m.setPointCount(m.ctl.Panel().PointCount + 1)
	case key.Matches(msg, m.keys.fewer):
		m.setPointCount(m.ctl.Panel().PointCount - 1)
	case key.Matches(msg, m.keys.action):
		i := int(msg.String()[0] - '1')
		if i < len(m.ctl.Panel().Buttons()) {
			m.ctl.Panel().Activate(i)
		}
	case key.Matches(msg, m.keys.scrollUp):
		m.inspector.HalfViewUp()
	case key.Matches(msg, m.keys.scrollDn):
		m.inspector.HalfViewDown()
	}
	return nil
}

func (m *Model) openBrowser() {
	if m.browser == nil {
		return
	}
	if err := m.browser.Refresh(); err != nil {
		m.status = editor.Status{Text: err.Error(), Error: true}
		return
	}
	m.browsing = true
	m.browseIdx = 0
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	entries := m.browser.Entries
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, m.keys.clear, m.keys.browse, m.keys.quit):
		m.browsing = false
	case key.Matches(msg, m.keys.up):
		m.browseIdx = max(m.browseIdx-1, 0)
	case key.Matches(msg, m.keys.down):
		m.browseIdx = min(m.browseIdx+1, max(len(entries)-1, 0))
	case key.Matches(msg, m.keys.back, m.keys.collapse):
		if err := m.browser.Up(); err != nil {
			m.status = editor.Status{Text: err.Error(), Error: true}
		}
		m.browseIdx = 0
	case key.Matches(msg, m.keys.toggle, m.keys.expand):
		if m.browseIdx >= len(entries) {
			return nil
		}
		e := entries[m.browseIdx]
		if err := m.browser.Pick(m.ctl, e); err != nil {
			if e.IsFolder {
				m.status = editor.Status{Text: err.Error(), Error: true}
			}
			return nil
		}
		if e.IsFolder {
			m.browseIdx = 0
		} else {
			m.browsing = false
		}
	}
	return nil
}

func (m *Model) browserView() string {
	lines := []string{m.styles.panelTitle.Render("Open course"), m.styles.hint.Render(m.browser.Dir() + "/")}
	if !m.browser.AtRoot() {
		lines = append(lines, m.styles.hint.Render("backspace: up"))
	}
	if len(m.browser.Entries) == 0 {
		lines = append(lines, m.styles.propName.Render(" No courses here"))
	}
	for i, e := range m.browser.Entries {
		name := e.Name
		if e.IsFolder {
			name += "/"
		}
		style := m.styles.row
		if i == m.browseIdx {
			style = m.styles.rowSel
		}
		lines = append(lines, style.Render(" "+name))
	}
	return m.styles.panel.Width(m.inspector.Width).Height(m.bodyHeight()).Render(strings.Join(lines, "\n"))
}

func (m *Model) setPointCount(n int) {
	if n < 1 || n > 99 {
		return
	}
	m.ctl.Panel().PointCount = n
	m.ctl.Panel().SetContext(m.ctl.Selected())
}

// layout sizes the panes from the terminal size. Two lines go to the top bar
// and the status line, two more to each pane's border.
func (m *Model) layout() {
	m.treeWidth = max(m.width*2/5, 24)
	m.inspector.Width = max(m.width-m.treeWidth-4, 10)
	m.refresh()
}

func (m *Model) bodyHeight() int {
	return max(m.height-4, 3)
}

func (m *Model) refresh() {
	actions := len(m.ctl.Panel().Buttons())
	if actions > 0 {
		actions += 2
	}
	m.inspector.Height = max(m.bodyHeight()-actions, 1)
	m.inspector.SetContent(m.inspectorContent())
	m.scrollTree()
}

// scrollTree keeps the selected row inside the tree pane.
func (m *Model) scrollTree() {
	sel := m.ctl.Selected()
	if sel == nil {
		return
	}
	i := tree.Index(m.ctl.Tree().Visible(), *sel)
	if i < 0 {
		return
	}
	h := m.bodyHeight() - 1
	if i < m.treeTop {
		m.treeTop = i
	} else if i >= m.treeTop+h {
		m.treeTop = i - h + 1
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	top := m.styles.topBar.Render(
		m.styles.title.Render("TRACKEDIT") +
			m.styles.file.Render(m.fileLabel()) +
			m.styles.hint.Render(fmt.Sprintf("entities: %d", m.ctl.Course().EntityCount())))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.treeView(), m.inspectorView())
	return lipgloss.JoinVertical(lipgloss.Left, top, body, m.statusLine())
}

func (m *Model) fileLabel() string {
	name := "untitled"
	if m.ctl.Path() != "" {
		name = filepath.Base(m.ctl.Path())
	}
	if m.ctl.Dirty() {
		name += " *"
	}
	return name
}

func (m *Model) treeView() string {
	rows := m.ctl.Tree().Visible()
	h := m.bodyHeight()
	w := m.treeWidth - 2
	sel := m.ctl.Selected()

	lines := []string{m.styles.panelTitle.Render("Course")}
	for i := m.treeTop; i < len(rows) && len(lines) < h; i++ {
		lines = append(lines, m.treeRow(rows[i], sel, w))
	}
	return m.styles.panel.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func (m *Model) treeRow(row tree.Row, sel *course.Ref, w int) string {
	arrow := " "
	if len(row.Node.Children) > 0 {
		arrow = "▸"
		if row.Node.Expanded {
			arrow = "▾"
		}
	}
	dot := " "
	if m.colors != nil {
		if c, ok := m.colors.Color(row.Node.Ref.Kind); ok {
			dot = lipgloss.NewStyle().Foreground(hexColor(c)).Render("●")
		}
	}
	prefix := strings.Repeat("  ", row.Depth) + m.styles.arrow.Render(arrow) + " " + dot + " "
	style := m.styles.row
	if sel != nil && *sel == row.Node.Ref {
		style = m.styles.rowSel
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(prefix + style.Render(row.Node.Label))
}

func (m *Model) inspectorContent() string {
	sel := m.ctl.Selected()
	if sel == nil {
		return m.styles.propName.Render("Nothing selected")
	}
	var b strings.Builder
	title := sel.String()
	if n := m.ctl.Tree().Find(*sel); n != nil {
		title = n.Label
	}
	b.WriteString(m.styles.panelTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(sel.String()))
	b.WriteString("\n")
	for _, p := range m.ctl.Inspect() {
		b.WriteString(m.styles.propName.Width(20).Render(" " + p.Name))
		b.WriteString(m.styles.propValue.Render(p.Value))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) inspectorView() string {
	if m.browsing {
		return m.browserView()
	}
	content := m.inspector.View()
	if buttons := m.ctl.Panel().Buttons(); len(buttons) > 0 {
		lines := []string{m.styles.hint.Render(fmt.Sprintf("points per insert: %d", m.ctl.Panel().PointCount))}
		for i, btn := range buttons {
			lines = append(lines, m.styles.button.Render(fmt.Sprintf(" [%d] %s", i+1, btn.Label)))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", strings.Join(lines, "\n"))
	}
	return m.styles.panel.Width(m.inspector.Width).Height(m.bodyHeight()).Render(content)
}

func (m *Model) statusLine() string {
	if m.diskChanged {
		return m.styles.banner.Render("course changed on disk, press r to reload")
	}
	if m.status.Text != "" {
		if m.status.Error {
			return m.styles.statusErr.Render(m.status.Text)
		}
		return m.styles.statusOK.Render(m.status.Text)
	}
	var hints []string
	for _, b := range m.keys.help() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	return m.styles.hint.Render(strings.Join(hints, " • "))
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// Run blocks until the user quits. w may be nil when watching is disabled.
func Run(ctl *editor.Controller, colors Colors, w *watch.Watcher, courseDir string) error {
	_, err := tea.NewProgram(New(ctl, colors, w, courseDir), tea.WithAltScreen()).Run()
	return err
}
