package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#6C63FF")
	muted  = lipgloss.Color("#777777")
	okFg   = lipgloss.Color("#64DC64")
	errFg  = lipgloss.Color("#FF7878")
)

type styles struct {
	topBar, title, file       lipgloss.Style
	panel, panelTitle         lipgloss.Style
	row, rowSel, arrow        lipgloss.Style
	propName, propValue       lipgloss.Style
	button                    lipgloss.Style
	statusOK, statusErr, hint lipgloss.Style
	banner                    lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	return styles{
		topBar:     base.Padding(0, 1),
		title:      base.Copy().Bold(true).Foreground(accent),
		file:       base.Copy().PaddingLeft(2),
		panel:      base.Copy().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3A3A4A")),
		panelTitle: base.Copy().Bold(true).Padding(0, 1),
		row:        base.Copy(),
		rowSel:     base.Copy().Bold(true).Foreground(lipgloss.Color("#A78BFA")).Background(lipgloss.Color("#26263A")),
		arrow:      base.Copy().Foreground(muted),
		propName:   base.Copy().Foreground(muted),
		propValue:  base.Copy(),
		button:     base.Copy().Foreground(accent).Bold(true),
		statusOK:   base.Copy().Foreground(okFg).Padding(0, 1),
		statusErr:  base.Copy().Foreground(errFg).Padding(0, 1),
		hint:       base.Copy().Faint(true).Padding(0, 1),
		banner:     base.Copy().Foreground(lipgloss.Color("#A78BFA")).Padding(0, 1),
	}
}
