// Package media plays the virtual tape behind the player's screen.
package media

import "time"

// Player is the playback surface the deck controller drives.
// Times are in seconds.
type Player interface {
	Play()
	Pause()
	Seek(seconds float64)
	SetSource(name string)
	Paused() bool
	CurrentTime() float64
	SetVolume(v float64)
	Volume() float64
}

// Track is an audio stream that follows the tape position.
// *audio.Player from ebiten satisfies it.
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	SetPosition(offset time.Duration) error
}

// TrackOpener returns the soundtrack for a source, or an error when it has none.
type TrackOpener interface {
	OpenTrack(source string) (Track, error)
}

// TrackOpenerFunc adapts a function to TrackOpener.
type TrackOpenerFunc func(source string) (Track, error)

func (f TrackOpenerFunc) OpenTrack(source string) (Track, error) {
	return f(source)
}
