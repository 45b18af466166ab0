// Package assets holds the embedded texture set, sound cues and title catalog.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

var (
	//go:embed catalog.yaml all:images all:audio
	embedded embed.FS
)

// ErrLoadTimeout is returned when the texture set does not resolve in time.
var ErrLoadTimeout = errors.New("assets: texture load timed out")

// FS returns the asset tree: dir on disk when set, otherwise the embedded set.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}

// LoadTextures decodes every named image under images/ concurrently and
// returns them in the order given. Either the whole set resolves or an error
// is returned; a context deadline bounds the wait.
func LoadTextures(ctx context.Context, fsys fs.FS, names []string) ([]image.Image, error) {
	out := make([]image.Image, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := decodeImage(fsys, "images/"+name)
			if err != nil {
				return err
			}
			out[i] = img
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrLoadTimeout
		}
		return nil, fmt.Errorf("assets: texture load: %w", ctx.Err())
	}

	slog.Debug("textures loaded", "count", len(out))
	return out, nil
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}
