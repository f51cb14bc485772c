package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "Lives: 3", core.ColorDefault)
	s.SetColored(4, 2, '▲', core.ColorBrightYellow)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d newlines, expected 2", got)
	}
	if !strings.Contains(out, "Lives: 3") {
		t.Error("default-colored text should be rendered")
	}
	if !strings.Contains(out, "▲") {
		t.Error("colored cells should be rendered")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
