package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// WideWidthThreshold is where the studio splits inputs and results
	// into two columns.
	WideWidthThreshold = 120
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsWide reports whether there is room for a two-column layout.
func IsWide(width int) bool {
	return width >= WideWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small.\n\nResize to at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderInfo is the status shown on the right of the header bar.
type HeaderInfo struct {
	Language string
	Model    string
}

// Breadcrumb joins screen titles from the bottom of the stack to the top.
func Breadcrumb(titles []string) string {
	return strings.Join(titles, " › ")
}

// RenderHeader renders the product name on the left, the breadcrumb in the
// middle and the language and model on the right.
func RenderHeader(titles []string, info HeaderInfo, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Synthetica")

	crumbs := make([]string, len(titles))
	for i, t := range titles {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == len(titles)-1 {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		crumbs[i] = style.Render(t)
	}
	center := Breadcrumb(crumbs)

	var status []string
	if info.Language != "" {
		status = append(status, lipgloss.NewStyle().Foreground(theme.Accent).Render("◆ "+info.Language))
	}
	if info.Model != "" {
		status = append(status, lipgloss.NewStyle().Foreground(theme.TextDim).Render(info.Model))
	}
	right := strings.Join(status, "   ")

	// Border and padding take four columns.
	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
