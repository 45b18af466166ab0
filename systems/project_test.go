package systems

import (
	"math"
	"testing"

	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
)

func extent(tris []Tri) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, t := range tris {
		for _, v := range t {
			minX = math.Min(minX, float64(v.Pos.X()))
			maxX = math.Max(maxX, float64(v.Pos.X()))
			minY = math.Min(minY, float64(v.Pos.Y()))
			maxY = math.Max(maxY, float64(v.Pos.Y()))
		}
	}
	return
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestProjectedTapeMatchesTapeRegion(t *testing.T) {
	d := components.NewDeckData()
	minX, maxX, minY, maxY := extent(ProjectObject(d.Objects[cfg.ObjectTape]))

	if !near(minX, -0.5275) || !near(maxX, -0.0525) {
		t.Fatalf("tape x extent = [%v, %v], want [-0.5275, -0.0525]", minX, maxX)
	}
	if !near(minY, -0.5986) || !near(maxY, -0.2958) {
		t.Fatalf("tape y extent = [%v, %v], want about [-0.599, -0.296]", minY, maxY)
	}

	// Center of the drawn tape is clickable
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	for _, r := range cfg.Deck.Regions {
		if r.Region == cfg.RegionTape && !r.Bounds.Contains(cx, cy) {
			t.Fatalf("tape center (%v, %v) outside the tape region", cx, cy)
		}
	}
}

func TestProjectedHousingMatchesButtonRow(t *testing.T) {
	d := components.NewDeckData()
	minX, maxX, minY, maxY := extent(ProjectObject(d.Objects[cfg.ObjectHousing]))

	if !near(minX, -0.55) || !near(maxX, 0.45) {
		t.Fatalf("housing x extent = [%v, %v], want [-0.55, 0.45]", minX, maxX)
	}
	if !near(minY, -0.2) || !near(maxY, 0) {
		t.Fatalf("housing y extent = [%v, %v], want [-0.2, 0]", minY, maxY)
	}
}

func TestProjectObjectClipsDepth(t *testing.T) {
	cases := []struct {
		name     string
		object   func(d *components.DeckData) components.ObjectState
		wantNone bool
	}{
		{
			name: "housing_partly_behind_far_plane",
			object: func(d *components.DeckData) components.ObjectState {
				return d.Objects[cfg.ObjectHousing]
			},
		},
		{
			name: "tape_outside",
			object: func(d *components.DeckData) components.ObjectState {
				return d.Objects[cfg.ObjectTape]
			},
		},
		{
			name: "tape_fully_inserted",
			object: func(d *components.DeckData) components.ObjectState {
				o := d.Objects[cfg.ObjectTape]
				o.Rotation[0] = cfg.Deck.TapeInsertedRotX
				o.Translation[2] = cfg.Deck.TapeInsertedZ
				return o
			},
			wantNone: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := components.NewDeckData()
			tris := ProjectObject(c.object(&d))
			if c.wantNone {
				if len(tris) != 0 {
					t.Fatalf("got %d triangles, want none", len(tris))
				}
				return
			}
			if len(tris) == 0 {
				t.Fatalf("object fully clipped")
			}
			for _, tri := range tris {
				for _, v := range tri {
					if z := v.Pos.Z(); z < -1-1e-5 || z > 1+1e-5 {
						t.Fatalf("vertex depth %v outside [-1, 1]", z)
					}
					if v.Shade < materialAmbient-1e-5 || v.Shade > materialAmbient+materialDiffuse+1e-5 {
						t.Fatalf("shade %v out of range", v.Shade)
					}
				}
			}
		})
	}
}

func TestModelViewIdentityAtRest(t *testing.T) {
	o := components.ObjectState{Scale: [3]float64{1, 1, 1}}
	mv := ModelView(o)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := mv.At(i, j); math.Abs(float64(got-want)) > 1e-6 {
				t.Fatalf("mv[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestSortBackToFront(t *testing.T) {
	at := func(z float32) Tri {
		var tri Tri
		for i := range tri {
			tri[i].Pos[2] = z
		}
		return tri
	}
	items := []drawItem{
		{tri: at(0.1), order: 6}, // tape
		{tri: at(0.5), order: 0},
		{tri: at(0.1), order: 4}, // cover, same depth as the tape
		{tri: at(0.9), order: 2},
	}
	sortBackToFront(items)

	wantOrders := []int{2, 0, 6, 4}
	for i, w := range wantOrders {
		if items[i].order != w {
			t.Fatalf("position %d: order %d, want %d", i, items[i].order, w)
		}
	}
}
