// Package components provides reusable UI components for CodeQuest screens.
// This file contains tests for the statbar component.
package components

import (
	"strings"
	"testing"

	"github.com/AutumnsGrove/codequest/internal/player"
)

func TestRenderStatBar(t *testing.T) {
	tests := []struct {
		name      string
		p         *player.Player
		width     int
		wantEmpty bool
	}{
		{name: "normal player with default width", p: player.New(), width: 80, wantEmpty: false},
		{name: "nil player", p: nil, width: 80, wantEmpty: false},
		{name: "minimum width clamp", p: player.New(), width: 10, wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderStatBar(tt.p, tt.width)
			if (len(out) == 0) != tt.wantEmpty {
				t.Errorf("RenderStatBar() empty = %v, want %v", len(out) == 0, tt.wantEmpty)
			}
		})
	}
}

func TestRenderStatBar_NilPlayerShowsPlaceholder(t *testing.T) {
	out := RenderStatBar(nil, 80)
	if !strings.Contains(out, "No plan loaded") {
		t.Errorf("RenderStatBar() with nil player = %q, want placeholder text", out)
	}
}

func TestRenderStatBar_ShowsSkillsAndCombat(t *testing.T) {
	p := player.New()
	out := RenderStatBar(p, 80)

	if !strings.Contains(out, "Combat:") {
		t.Errorf("RenderStatBar() = %q, want it to contain combat line", out)
	}
	if !strings.Contains(out, "Quest Points:") {
		t.Errorf("RenderStatBar() = %q, want it to contain quest points", out)
	}
}

func TestRenderStatBadge(t *testing.T) {
	out := RenderStatBadge(player.New())
	if !strings.Contains(out, "Combat") || !strings.Contains(out, "QP") {
		t.Errorf("RenderStatBadge() = %q, want combat level and QP", out)
	}
}

func TestRenderStatBadge_NilPlayer(t *testing.T) {
	out := RenderStatBadge(nil)
	if !strings.Contains(out, "No plan loaded") {
		t.Errorf("RenderStatBadge(nil) = %q, want placeholder text", out)
	}
}
