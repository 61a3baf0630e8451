package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DemoKeyMap defines keybindings for the swipe demo.
type DemoKeyMap struct {
	DragBack    key.Binding
	DragForward key.Binding
	Release     key.Binding
	Cancel      key.Binding
	ToggleBack  key.Binding
	ToggleFwd   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DragBack, k.DragForward, k.Release, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DragBack, k.DragForward},
		{k.Release, k.Cancel},
		{k.ToggleBack, k.ToggleFwd},
		{k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns the default demo keybindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		DragBack: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "drag toward back"),
		),
		DragForward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "drag toward forward"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "release"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		ToggleBack: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle back"),
		),
		ToggleFwd: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle forward"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a help.Model styled with the theme.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
