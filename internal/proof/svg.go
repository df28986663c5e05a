package proof

import (
	"fmt"
	"html"
	"strings"

	"github.com/abhisek/synthetica/internal/olympiad"
)

const (
	svgPadding    = 60.0
	svgNodeRadius = 10.0
)

// TypeColor returns the fill colour used for a step type.
func TypeColor(t olympiad.StepType) string {
	switch t {
	case olympiad.StepHypothesis:
		return "#ec4899"
	case olympiad.StepAxiom:
		return "#f59e0b"
	case olympiad.StepLemma:
		return "#22c55e"
	case olympiad.StepDeduction:
		return "#38bdf8"
	case olympiad.StepConclusion:
		return "#22d3ee"
	default:
		return "#64748b"
	}
}

// RenderSVG draws g as a standalone SVG document.
func RenderSVG(g *Graph) string {
	depth := g.Depth
	if depth == 0 {
		depth = 1
	}
	width := ChartWidth + 2*svgPadding
	height := float64(depth-1)*YGap + 2*svgPadding

	pos := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		pos[n.ID] = n
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		width, height, width, height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="#0f172a"/>`)
	b.WriteString("\n")

	for _, e := range g.Edges {
		src, ok1 := pos[e.Source]
		dst, ok2 := pos[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#475569" stroke-width="1.5"/>`,
			src.X+svgPadding, src.Y+svgPadding, dst.X+svgPadding, dst.Y+svgPadding)
		b.WriteString("\n")
	}

	for _, n := range g.Nodes {
		x, y := n.X+svgPadding, n.Y+svgPadding
		fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="%g" fill="%s"/>`, x, y, svgNodeRadius, TypeColor(n.Type))
		b.WriteString("\n")
		fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="#e2e8f0" font-size="11" text-anchor="middle">%s</text>`,
			x, y+svgNodeRadius+14, html.EscapeString(n.Label))
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}
