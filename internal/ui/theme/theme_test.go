package theme

import (
	"image/color"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRiskColor(t *testing.T) {
	tests := []struct {
		level string
		want  color.Color
	}{
		{"low", Success},
		{"medium", Warning},
		{"high", Error},
		{"anything else", Error},
	}
	for _, tt := range tests {
		if got := RiskColor(tt.level); got != tt.want {
			t.Errorf("RiskColor(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestRiskColorStylesText(t *testing.T) {
	s := lipgloss.NewStyle().Foreground(RiskColor("high")).Render("HIGH RISK")
	if s == "" {
		t.Fatal("styled risk label rendered empty")
	}
}
