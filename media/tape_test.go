package media

import (
	"errors"
	"testing"
	"time"
)

type fakeTrack struct {
	playing  bool
	volume   float64
	position time.Duration
}

func (f *fakeTrack) Play()               { f.playing = true }
func (f *fakeTrack) Pause()              { f.playing = false }
func (f *fakeTrack) IsPlaying() bool     { return f.playing }
func (f *fakeTrack) SetVolume(v float64) { f.volume = v }
func (f *fakeTrack) SetPosition(d time.Duration) error {
	f.position = d
	return nil
}

func newTestPlayer() *TapePlayer {
	return NewTapePlayer(map[string]float64{"cow.mp4": 10}, nil, 0.5)
}

func TestTapePlayerStartsPaused(t *testing.T) {
	p := newTestPlayer()
	if !p.Paused() {
		t.Fatalf("new player should be paused")
	}
	p.Play()
	if !p.Paused() {
		t.Fatalf("Play without a source should stay paused")
	}
}

func TestTapePlayerUpdate(t *testing.T) {
	cases := []struct {
		name       string
		seek       float64
		play       bool
		steps      int
		dt         float64
		wantTime   float64
		wantPaused bool
	}{
		{"paused_does_not_advance", 2, false, 10, 0.1, 2, true},
		{"playing_advances", 0, true, 10, 0.1, 1, false},
		{"stops_at_end", 9.5, true, 10, 0.1, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.SetSource("cow.mp4")
			p.Seek(c.seek)
			if c.play {
				p.Play()
			}
			for i := 0; i < c.steps; i++ {
				p.Update(c.dt)
			}
			if diff := p.CurrentTime() - c.wantTime; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("CurrentTime() = %v, want %v", p.CurrentTime(), c.wantTime)
			}
			if p.Paused() != c.wantPaused {
				t.Errorf("Paused() = %v, want %v", p.Paused(), c.wantPaused)
			}
		})
	}
}

func TestTapePlayerSeekClamps(t *testing.T) {
	cases := []struct {
		name string
		seek float64
		want float64
	}{
		{"negative", -3, 0},
		{"inside", 4.5, 4.5},
		{"past_end", 60, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.SetSource("cow.mp4")
			p.Seek(c.seek)
			if p.CurrentTime() != c.want {
				t.Fatalf("CurrentTime() = %v, want %v", p.CurrentTime(), c.want)
			}
		})
	}
}

func TestTapePlayerPlayAtEndRewinds(t *testing.T) {
	p := newTestPlayer()
	p.SetSource("cow.mp4")
	p.Seek(10)
	p.Play()
	if p.CurrentTime() != 0 {
		t.Fatalf("Play at end should rewind, got %v", p.CurrentTime())
	}
	if p.Paused() {
		t.Fatalf("player should be playing")
	}
}

func TestTapePlayerSetSourceResets(t *testing.T) {
	p := newTestPlayer()
	p.SetSource("cow.mp4")
	p.Seek(3)
	p.Play()

	p.SetSource("fight.mp4")
	if !p.Paused() || p.CurrentTime() != 0 {
		t.Fatalf("SetSource should pause and rewind, got paused=%v time=%v", p.Paused(), p.CurrentTime())
	}
	// Unknown length: position is not bounded
	p.Seek(500)
	if p.CurrentTime() != 500 {
		t.Fatalf("CurrentTime() = %v, want 500", p.CurrentTime())
	}
}

func TestTapePlayerVolume(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"below", -1, 0},
		{"inside", 0.25, 0.25},
		{"above", 2, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.SetVolume(c.in)
			if p.Volume() != c.want {
				t.Fatalf("Volume() = %v, want %v", p.Volume(), c.want)
			}
		})
	}
}

func TestTapePlayerDrivesTrack(t *testing.T) {
	track := &fakeTrack{}
	opener := TrackOpenerFunc(func(source string) (Track, error) {
		if source != "cow.mp4" {
			return nil, errors.New("no soundtrack")
		}
		return track, nil
	})
	p := NewTapePlayer(map[string]float64{"cow.mp4": 10}, opener, 0.4)

	p.SetSource("cow.mp4")
	if track.volume != 0.4 {
		t.Fatalf("track volume = %v, want 0.4", track.volume)
	}

	p.Seek(2.5)
	if track.position != 2500*time.Millisecond {
		t.Fatalf("track position = %v, want 2.5s", track.position)
	}

	p.Play()
	if !track.IsPlaying() {
		t.Fatalf("track should play with the tape")
	}
	p.Pause()
	if track.IsPlaying() {
		t.Fatalf("track should pause with the tape")
	}

	p.SetVolume(0.9)
	if track.volume != 0.9 {
		t.Fatalf("track volume = %v, want 0.9", track.volume)
	}

	// Switching to a source without a soundtrack drops the old one
	p.Play()
	p.SetSource("rapids.mp4")
	if track.IsPlaying() {
		t.Fatalf("old track should stop on source change")
	}
	p.Play()
	if track.IsPlaying() {
		t.Fatalf("old track should not restart")
	}
}
