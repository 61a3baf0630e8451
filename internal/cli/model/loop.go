package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/swipenav/internal/infrastructure/headless"
)

// frameMsg carries the time of one demo frame.
type frameMsg time.Time

func tickFrame() tea.Cmd {
	return tea.Tick(headless.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
