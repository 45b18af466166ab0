package media

import (
	"log/slog"
	"time"
)

// TapePlayer is a clock-driven Player. Position advances in Update while
// playing and stops at the end of the source, where the player pauses.
type TapePlayer struct {
	durations map[string]float64
	tracks    TrackOpener
	log       *slog.Logger

	source   string
	duration float64 // 0 means unknown: position is unbounded
	position float64
	paused   bool
	volume   float64
	track    Track
}

// NewTapePlayer creates a paused player with no source. durations maps a
// source name to its length in seconds; tracks may be nil.
func NewTapePlayer(durations map[string]float64, tracks TrackOpener, volume float64) *TapePlayer {
	return &TapePlayer{
		durations: durations,
		tracks:    tracks,
		log:       slog.Default().With("component", "tape"),
		paused:    true,
		volume:    clamp01(volume),
	}
}

// Update advances the position by dt seconds while playing.
func (p *TapePlayer) Update(dt float64) {
	if p.paused || p.source == "" {
		return
	}
	p.position += dt
	if p.duration > 0 && p.position >= p.duration {
		p.position = p.duration
		p.Pause()
		p.log.Debug("reached end of tape", "source", p.source)
	}
}

// Play resumes playback. A finished tape starts over from the beginning.
func (p *TapePlayer) Play() {
	if p.source == "" || !p.paused {
		return
	}
	if p.duration > 0 && p.position >= p.duration {
		p.position = 0
		p.syncTrack()
	}
	p.paused = false
	if p.track != nil {
		p.track.Play()
	}
}

func (p *TapePlayer) Pause() {
	p.paused = true
	if p.track != nil {
		p.track.Pause()
	}
}

// Seek moves the position, clamped to the source's length.
func (p *TapePlayer) Seek(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	if p.duration > 0 && seconds > p.duration {
		seconds = p.duration
	}
	p.position = seconds
	p.syncTrack()
}

// SetSource loads a new source. Like a media element, this rewinds and pauses.
func (p *TapePlayer) SetSource(name string) {
	if p.track != nil {
		p.track.Pause()
		p.track = nil
	}
	p.source = name
	p.duration = p.durations[name]
	p.position = 0
	p.paused = true

	if p.tracks == nil || name == "" {
		return
	}
	track, err := p.tracks.OpenTrack(name)
	if err != nil {
		p.log.Debug("no soundtrack", "source", name, "err", err)
		return
	}
	track.SetVolume(p.volume)
	p.track = track
}

func (p *TapePlayer) Paused() bool {
	return p.paused
}

func (p *TapePlayer) CurrentTime() float64 {
	return p.position
}

// Duration returns the length of the current source, 0 when unknown.
func (p *TapePlayer) Duration() float64 {
	return p.duration
}

func (p *TapePlayer) Source() string {
	return p.source
}

// SetVolume sets the volume, clamped to [0, 1].
func (p *TapePlayer) SetVolume(v float64) {
	p.volume = clamp01(v)
	if p.track != nil {
		p.track.SetVolume(p.volume)
	}
}

func (p *TapePlayer) Volume() float64 {
	return p.volume
}

func (p *TapePlayer) syncTrack() {
	if p.track == nil {
		return
	}
	offset := time.Duration(p.position * float64(time.Second))
	if err := p.track.SetPosition(offset); err != nil {
		p.log.Warn("soundtrack seek failed", "source", p.source, "err", err)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
