package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/ui/theme"
)

// Minimum terminal size the game renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// CompactWidth is the width below which the footer drops hint
// descriptions that do not fit.
const CompactWidth = 100

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The terminal is too small.\n\n360IQ needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// bar wraps one line of content in the rounded card used by the header
// and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the brand, the screen title centered, and, when
// progress is in [0, 100], the journey completion on the right.
func RenderHeader(title string, progress int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  360IQ")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	right := ""
	if progress >= 0 && progress <= 100 {
		right = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("%d%% complete  ", progress))
	}

	// Border and padding take four columns.
	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders the key hints. On narrow terminals descriptions are
// dropped from the right until the hints fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	render := func(withDesc int) string {
		parts := make([]string, len(hints))
		for i, h := range hints {
			parts[i] = keyStyle.Render(h.Key)
			if i < withDesc && h.Description != "" {
				parts[i] += " " + descStyle.Render(h.Description)
			}
		}
		return "  " + strings.Join(parts, "   ")
	}

	content := render(len(hints))
	if width < CompactWidth {
		for n := len(hints) - 1; n >= 0 && lipgloss.Width(content) > width-4; n-- {
			content = render(n)
		}
	}
	return bar(content, width)
}

// RenderFrame stacks header, content and footer, padding or clipping the
// content so the frame fills exactly height lines.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
