package systems

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/media"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalCueVolume    float64 = cfg.Audio.CueVolume
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and loader reading from fsys (called once)
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})
}

// PreloadAllCues decodes all sound cues at startup to avoid lag on first play.
func PreloadAllCues() {
	if globalAudioLoader == nil {
		return
	}
	for id, path := range cfg.Sound.CuePaths {
		if err := globalAudioLoader.PreloadCue(path); err != nil {
			slog.Warn("cue preload failed", "cue", id, "path", path, "err", err)
		}
	}
}

// SoundtrackOpener returns a TrackOpener that loops each title's soundtrack
// under the virtual tape. Titles without one play silently.
func SoundtrackOpener(catalog *assets.Catalog) media.TrackOpener {
	return media.TrackOpenerFunc(func(source string) (media.Track, error) {
		t, ok := catalog.Title(source)
		if !ok || t.Soundtrack == "" || globalAudioLoader == nil {
			return nil, fs.ErrNotExist
		}
		return globalAudioLoader.LoadLoop(t.Soundtrack)
	})
}

// UpdateAudio plays the cues queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, id := range audioData.PendingCues {
		playCue(id, audioData.CueVolume)
	}
	audioData.PendingCues = audioData.PendingCues[:0]
}

// playCue starts a cue unless it is still sounding from an earlier request.
func playCue(id cfg.SoundID, volume float64) {
	if globalAudioLoader == nil || volume <= 0 {
		return
	}

	path, ok := cfg.Sound.CuePaths[id]
	if !ok {
		return
	}

	player, err := globalAudioLoader.Cue(path)
	if err != nil {
		slog.Warn("cue unavailable", "path", path, "err", err)
		return
	}
	if player.IsPlaying() {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	if err := player.SetPosition(0); err != nil {
		slog.Warn("cue rewind failed", "path", path, "err", err)
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayCue queues a sound cue to be played
func PlayCue(e *ecs.ECS, id cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	queueCue(audioData, id)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			CueVolume:   globalCueVolume,
			PendingCues: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
