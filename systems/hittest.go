package systems

import cfg "github.com/vitoleone27/vhsplayer3d/config"

// ClassifyClick maps a pointer position in pixels on a w×h canvas to the hit
// region under it. Positions off the canvas, and empty canvases, hit nothing.
func ClassifyClick(x, y, w, h int) cfg.Region {
	if w <= 0 || h <= 0 {
		return cfg.RegionNone
	}
	nx, ny := Normalize(x, y, w, h)
	for _, r := range cfg.Deck.Regions {
		if r.Bounds.Contains(nx, ny) {
			return r.Region
		}
	}
	return cfg.RegionNone
}

// Normalize converts canvas pixels to normalized device coordinates: x right,
// y up, both in [-1, 1] across the canvas.
func Normalize(x, y, w, h int) (float64, float64) {
	nx := 2*float64(x)/float64(w) - 1
	ny := -2*float64(y)/float64(h) + 1
	return nx, ny
}
