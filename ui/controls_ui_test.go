package ui

import "testing"

func TestVolumeText(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "VOL   0%"},
		{0.5, "VOL  50%"},
		{0.05 * 3, "VOL  15%"},
		{1, "VOL 100%"},
	}
	for _, tt := range tests {
		if got := volumeText(tt.in); got != tt.want {
			t.Errorf("volumeText(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
