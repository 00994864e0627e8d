// Package layout draws the frame around the active screen: a header with
// the course and navigation trail, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizplayer/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	// TrailSep separates screen titles in the header trail.
	TrailSep = " › "
)

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
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the course on the left, the trail of open screens
// after it and status on the right. Leading trail entries are dropped
// when the line would overflow.
func RenderHeader(course string, trail []string, status string, width int) string {
	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(course)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	room := inner - lipgloss.Width(left) - lipgloss.Width(right) - 2

	crumbs := trail
	for len(crumbs) > 1 && lipgloss.Width(TrailSep+strings.Join(crumbs, TrailSep)) > room {
		crumbs = crumbs[1:]
	}
	middle := ""
	if len(crumbs) > 0 {
		prefix := TrailSep
		if len(crumbs) < len(trail) {
			prefix += "…" + TrailSep
		}
		middle = lipgloss.NewStyle().Foreground(theme.Text).Render(prefix + strings.Join(crumbs, TrailSep))
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return bar(width).Render(left + middle + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the key hints, wrapping onto more lines when they
// don't fit in width.
func RenderFooter(hints []KeyHint, width int) string {
	inner := width - 4
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	line := ""
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		switch {
		case line == "":
			line = part
		case lipgloss.Width(line)+3+lipgloss.Width(part) > inner:
			lines = append(lines, line)
			line = part
		default:
			line += "   " + part
		}
	}
	lines = append(lines, line)

	return bar(width).Render(strings.Join(lines, "\n"))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	h := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if h < 0 {
		h = 0
	}
	body := lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// ContentHeight is the room left between a header and footer.
func ContentHeight(header, footer string, height int) int {
	h := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if h < 0 {
		return 0
	}
	return h
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
