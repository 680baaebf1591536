package notify

import (
	"testing"

	"github.com/deskpal/deskpal/config"
)

func TestResolveTimeout(t *testing.T) {
	tiers := config.TimeoutTiers{Simple: 10, Actions: 30, Reply: 60}

	tests := []struct {
		name    string
		options TimeoutOptions
		want    float64
	}{
		{"no options uses simple tier", TimeoutOptions{}, 10},
		{"actions use actions tier", TimeoutOptions{Actions: []string{"A"}}, 30},
		{"reply uses reply tier", TimeoutOptions{Reply: true}, 60},
		{"reply wins over actions", TimeoutOptions{Actions: []string{"A"}, Reply: true}, 60},
		{"explicit timeout wins", TimeoutOptions{Timeout: 99}, 99},
		{"explicit timeout wins over reply", TimeoutOptions{Timeout: 99, Reply: true}, 99},
		{"explicit timeout wins over actions", TimeoutOptions{Timeout: 99, Actions: []string{"A", "B"}}, 99},
		{"explicit timeout is not clamped", TimeoutOptions{Timeout: 86400}, 86400},
		{"empty actions list uses simple tier", TimeoutOptions{Actions: []string{}}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTimeout(tt.options, tiers)
			if got != tt.want {
				t.Errorf("ResolveTimeout(%+v) = %v, want %v", tt.options, got, tt.want)
			}
		})
	}
}
