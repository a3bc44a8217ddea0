package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/factor-run/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 0, "Level: 3", core.ColorWhite)
	s.SetWithColor(5, 2, '●', core.ColorCyan)
	s.SetWithColor(6, 2, '●', core.ColorBrightGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "Level: 3") {
		t.Errorf("rendered output lost the HUD text: %q", out)
	}
	if strings.Count(out, "●") != 2 {
		t.Errorf("expected 2 balls in output, got %d", strings.Count(out, "●"))
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 3 rows, got %d newlines", strings.Count(out, "\n"))
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine(100, 42, true, "")
	if !strings.Contains(line, "Best: 42") || !strings.Contains(line, "Sound: OFF") {
		t.Errorf("status line = %q", line)
	}
	if !strings.Contains(line, "q quit") {
		t.Error("wide status line should show key hints")
	}

	narrow := renderStatusLine(20, 0, false, "")
	if strings.Contains(narrow, "q quit") {
		t.Error("narrow status line should drop key hints")
	}

	flash := renderStatusLine(100, 0, false, "Sound on")
	if !strings.Contains(flash, "Sound on") || strings.Contains(flash, "q quit") {
		t.Errorf("flash should replace hints, got %q", flash)
	}
}
