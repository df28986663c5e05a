package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, "", Breadcrumb(nil))
	assert.Equal(t, "Studio", Breadcrumb([]string{"Studio"}))
	assert.Equal(t, "Studio › Proof Graph", Breadcrumb([]string{"Studio", "Proof Graph"}))
}

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader([]string{"Studio", "Classic Problems"}, HeaderInfo{Language: "हिन्दी", Model: "gemini-2.5-flash"}, 120))
	assert.Contains(t, out, "Synthetica")
	assert.Contains(t, out, "Studio › Classic Problems")
	assert.Contains(t, out, "◆ हिन्दी")
	assert.Contains(t, out, "gemini-2.5-flash")
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader([]string{"Studio"}, HeaderInfo{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Ctrl+C", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)

	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.Contains(ansi.Strip(frame), "Ctrl+C Quit"))
}
