// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/colornames"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Dot      = "●"
	Circle   = "○"
	Expanded = "▾"
	Folded   = "▸"
)

// Fill converts a card fill (CSS color name or hex) into a terminal color.
// Unknown names fall back to Slate.
func Fill(name string) lipgloss.Color {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "#") {
		return lipgloss.Color(name)
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Slate
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
