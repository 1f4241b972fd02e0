package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit     key.Binding
	up       key.Binding
	down     key.Binding
	expand   key.Binding
	collapse key.Binding
	toggle   key.Binding
	clear    key.Binding
	save     key.Binding
	reload   key.Binding
	more     key.Binding
	fewer    key.Binding
	action   key.Binding
	scrollUp key.Binding
	scrollDn key.Binding
	browse   key.Binding
	back     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "open"),
		),
		collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "close"),
		),
		toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		reload: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "reload"),
		),
		more: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "points"),
		),
		fewer: key.NewBinding(
			key.WithKeys("-"),
		),
		action: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "action"),
		),
		scrollUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		scrollDn: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		browse: key.NewBinding(
			key.WithKeys("o", "ctrl+o"),
			key.WithHelp("o", "open"),
		),
		back: key.NewBinding(
			key.WithKeys("backspace"),
		),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.up, k.down, k.expand, k.collapse, k.action, k.more, k.browse, k.save, k.reload, k.quit}
}
