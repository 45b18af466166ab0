package systems

import (
	"testing"

	cfg "github.com/vitoleone27/vhsplayer3d/config"
)

// toPixels is the inverse of Normalize on an 800×600 canvas.
func toPixels(nx, ny float64) (int, int) {
	return int((nx + 1) / 2 * 800), int((1 - ny) / 2 * 600)
}

func TestClassifyClick(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny float64
		want   cfg.Region
	}{
		{"tape_center", -0.2875, -0.45, cfg.RegionTape},
		{"eject_center", 0.375, -0.1, cfg.RegionEject},
		{"play_center", 0.075, -0.1, cfg.RegionPlay},
		{"pause_center", 0.22, -0.1, cfg.RegionPause},
		{"screen", 0, 0.5, cfg.RegionNone},
		{"between_play_and_pause", 0.1475, -0.1, cfg.RegionNone},
		{"below_buttons", 0.075, -0.25, cfg.RegionNone},
		{"far_corner", -1, -1, cfg.RegionNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := toPixels(c.nx, c.ny)
			if got := ClassifyClick(x, y, 800, 600); got != c.want {
				t.Fatalf("ClassifyClick(%d, %d) = %v, want %v", x, y, got, c.want)
			}
		})
	}
}

func TestRegionBordersAreOutside(t *testing.T) {
	for _, r := range cfg.Deck.Regions {
		b := r.Bounds
		midX := (b.MinX + b.MaxX) / 2
		midY := (b.MinY + b.MaxY) / 2
		if !b.Contains(midX, midY) {
			t.Fatalf("%v: center (%v, %v) should be inside", r.Region, midX, midY)
		}
		edges := [][2]float64{
			{b.MinX, midY}, {b.MaxX, midY},
			{midX, b.MinY}, {midX, b.MaxY},
			{b.MinX, b.MinY}, {b.MaxX, b.MaxY},
		}
		for _, p := range edges {
			if b.Contains(p[0], p[1]) {
				t.Errorf("%v: border point (%v, %v) should be outside", r.Region, p[0], p[1])
			}
		}
	}
}

func TestClassifyClickTopEdgeOfButtons(t *testing.T) {
	// Row 100 of a 200 high canvas is exactly y = 0, the top of the buttons
	x, y := 250, 100
	if nx, ny := Normalize(x, y, 400, 200); nx != 0.25 || ny != 0 {
		t.Fatalf("Normalize = (%v, %v), want (0.25, 0)", nx, ny)
	}
	if got := ClassifyClick(x, y, 400, 200); got != cfg.RegionNone {
		t.Fatalf("got %v, want none", got)
	}
	if got := ClassifyClick(x, y+1, 400, 200); got != cfg.RegionPause {
		t.Fatalf("one row lower: got %v, want pause", got)
	}
}

func TestClassifyClickRegionsExclusive(t *testing.T) {
	const w, h = 400, 400
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny := Normalize(x, y, w, h)
			hits := 0
			for _, r := range cfg.Deck.Regions {
				if r.Bounds.Contains(nx, ny) {
					hits++
				}
			}
			if hits > 1 {
				t.Fatalf("(%d, %d) is inside %d regions", x, y, hits)
			}
		}
	}
}

func TestClassifyClickDegenerateCanvas(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h int
	}{
		{"zero_width", 10, 10, 0, 600},
		{"zero_height", 10, 10, 800, 0},
		{"negative", 10, 10, -5, -5},
		{"off_canvas", -400, 900, 800, 600},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyClick(c.x, c.y, c.w, c.h); got != cfg.RegionNone {
				t.Fatalf("got %v, want none", got)
			}
		})
	}
}
