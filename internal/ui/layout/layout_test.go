package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(24); got != 24-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(24) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeaderShowsBrandAndStats(t *testing.T) {
	h := RenderHeader("Practice", 42, 2, 100)
	if !strings.Contains(h, "Mentor") {
		t.Error("header missing brand")
	}
	if !strings.Contains(h, "42 xp") {
		t.Error("header missing experience")
	}
	if !strings.Contains(h, "Lv 2") {
		t.Error("header missing level")
	}
	if !strings.Contains(h, "Practice") {
		t.Error("header missing screen title")
	}
}

func TestRenderFooterShowsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 100)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Error("footer missing key hint")
	}
}
