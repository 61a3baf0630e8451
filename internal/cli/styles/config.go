package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !exists {
		status = fmt.Sprintf("\n  %s %s",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("File not found, built-in defaults are active."),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderWritten renders the success message after a file was written.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the refusal to overwrite an existing file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(filepath.Base(path)),
		r.theme.Subtle.Render("Use --force to overwrite it."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderValid reports a config file that passed validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s %s is valid\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}
