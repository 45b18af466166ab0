package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys    fs.FS
	cues    map[string]*audio.Player // One player per cue, reused like a media element
	context *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:    fsys,
		cues:    make(map[string]*audio.Player),
		context: ctx,
	}
}

// PreloadCue decodes a cue and creates its player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadCue(path string) error {
	_, err := l.Cue(path)
	return err
}

// Cue returns the cached player for a short sound. The same player is
// returned on every call so a cue that is still sounding is not restarted.
func (l *AudioLoader) Cue(path string) (*audio.Player, error) {
	if p, ok := l.cues[path]; ok {
		return p, nil
	}

	stream, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read decoded audio %s: %w", path, err)
	}

	p := l.context.NewPlayerFromBytes(decoded)
	l.cues[path] = p
	return p, nil
}

// LoadLoop returns a streaming player that repeats the file forever.
// Loops are not cached.
func (l *AudioLoader) LoadLoop(path string) (*audio.Player, error) {
	stream, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	p, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: player for %s: %w", path, err)
	}
	return p, nil
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string) (lengthStream, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read audio %s: %w", path, err)
	}

	// Decode based on file extension
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("assets: decode ogg %s: %w", path, err)
		}
		return stream, nil

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %s: %w", path, err)
		}
		return stream, nil

	default:
		return nil, fmt.Errorf("assets: unsupported audio format: %s", ext)
	}
}
