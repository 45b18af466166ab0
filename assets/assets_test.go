package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoadTexturesKeepsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"images/a.png": {Data: pngBytes(t, 2, 1, color.White)},
		"images/b.png": {Data: pngBytes(t, 3, 1, color.Black)},
		"images/c.png": {Data: pngBytes(t, 4, 1, color.White)},
	}

	names := []string{"c.png", "a.png", "b.png", "a.png"}
	imgs, err := LoadTextures(context.Background(), fsys, names)
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	wantWidths := []int{4, 2, 3, 2}
	if len(imgs) != len(wantWidths) {
		t.Fatalf("got %d images, want %d", len(imgs), len(wantWidths))
	}
	for i, w := range wantWidths {
		if got := imgs[i].Bounds().Dx(); got != w {
			t.Errorf("image %d (%s) width = %d, want %d", i, names[i], got, w)
		}
	}
}

func TestLoadTexturesErrors(t *testing.T) {
	cases := []struct {
		name  string
		fsys  fstest.MapFS
		names []string
	}{
		{
			name:  "missing",
			fsys:  fstest.MapFS{},
			names: []string{"nope.png"},
		},
		{
			name:  "corrupt",
			fsys:  fstest.MapFS{"images/bad.png": {Data: []byte("not a png")}},
			names: []string{"bad.png"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			imgs, err := LoadTextures(context.Background(), c.fsys, c.names)
			if err == nil {
				t.Fatalf("expected error, got %d images", len(imgs))
			}
			if imgs != nil {
				t.Fatalf("partial set returned on error")
			}
		})
	}
}

// blockingFS never finishes opening a file until released.
type blockingFS struct {
	release chan struct{}
}

func (b blockingFS) Open(name string) (fs.File, error) {
	<-b.release
	return nil, fs.ErrNotExist
}

func TestLoadTexturesTimeout(t *testing.T) {
	fsys := blockingFS{release: make(chan struct{})}
	defer close(fsys.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := LoadTextures(ctx, fsys, []string{"a.png", "b.png"})
	if !errors.Is(err, ErrLoadTimeout) {
		t.Fatalf("err = %v, want ErrLoadTimeout", err)
	}
}

func TestParseCatalog(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		wantIDs []string
	}{
		{
			name: "valid",
			yaml: `
titles:
  - id: cow
    cover: cowVHS.png
    duration: 10
  - id: fight
    name: Fight
    cover: fightVHS.png
`,
			wantIDs: []string{"cow", "fight"},
		},
		{name: "empty", yaml: "titles: []\n", wantErr: true},
		{name: "malformed", yaml: "titles: [\n", wantErr: true},
		{name: "missing_id", yaml: "titles:\n  - name: x\n", wantErr: true},
		{name: "duplicate", yaml: "titles:\n  - id: a\n  - id: a\n", wantErr: true},
		{name: "negative_duration", yaml: "titles:\n  - id: a\n    duration: -1\n", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cat, err := ParseCatalog([]byte(c.yaml))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCatalog: %v", err)
			}
			if len(cat.Titles) != len(c.wantIDs) {
				t.Fatalf("got %d titles, want %d", len(cat.Titles), len(c.wantIDs))
			}
			for i, id := range c.wantIDs {
				if cat.Titles[i].ID != id {
					t.Errorf("title %d = %q, want %q", i, cat.Titles[i].ID, id)
				}
			}
			if cat.Titles[0].Name != "cow" {
				t.Errorf("missing name should default to id, got %q", cat.Titles[0].Name)
			}
		})
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	cat, err := LoadCatalog(FS(""))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	wantIDs := []string{"cow", "rapids", "fight"}
	if len(cat.Titles) != len(wantIDs) {
		t.Fatalf("got %d titles, want %d", len(cat.Titles), len(wantIDs))
	}
	for i, id := range wantIDs {
		if cat.Titles[i].ID != id {
			t.Errorf("title %d = %q, want %q", i, cat.Titles[i].ID, id)
		}
	}

	names := []string{
		"idle1.png", "VHSbar.png", "cowVHS.png", "VHS.png",
		"idle1.png", "idle2.png", "idle3.png",
		"cowVHS.png", "natureVHS.png", "fightVHS.png",
	}
	slots, err := cat.CoverSlots(names, 7)
	if err != nil {
		t.Fatalf("CoverSlots: %v", err)
	}
	want := map[string]int{"cow": 7, "rapids": 8, "fight": 9}
	for id, slot := range want {
		if slots[id] != slot {
			t.Errorf("cover slot for %s = %d, want %d", id, slots[id], slot)
		}
	}

	d := cat.Durations()
	if d["rapids.mp4"] != cat.Titles[1].Duration {
		t.Errorf("duration for rapids.mp4 = %v", d["rapids.mp4"])
	}
	if _, ok := cat.Title("fight.mp4"); !ok {
		t.Errorf("Title(fight.mp4) not found")
	}
}

func TestEmbeddedTextureSet(t *testing.T) {
	names := []string{
		"idle1.png", "VHSbar.png", "cowVHS.png", "VHS.png",
		"idle2.png", "idle3.png", "natureVHS.png", "fightVHS.png",
	}
	imgs, err := LoadTextures(context.Background(), FS(""), names)
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	for i, img := range imgs {
		if img.Bounds().Empty() {
			t.Errorf("%s is empty", names[i])
		}
	}
}

func TestCoverSlotsMissing(t *testing.T) {
	cat := &Catalog{Titles: []Title{{ID: "x", Cover: "x.png"}}}
	if _, err := cat.CoverSlots([]string{"a.png"}, 0); err == nil {
		t.Fatalf("expected error for unknown cover")
	}
}
