// Package style provides shared styling primitives for gpm's terminal
// output: a small color palette and the icons used by the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#2EA043")
	Red    = lipgloss.Color("#DA3633")
	Yellow = lipgloss.Color("#D29922")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
