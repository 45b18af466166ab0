package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	// Button press on the player housing
	SoundClick
	// Tape sliding in or out of the slot
	SoundTape
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultVolume float64 // Initial playback volume (0.0 - 1.0)
	CueVolume     float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	CuePaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultVolume: 0.5,
		CueVolume:     1.0,
	}

	Sound = SoundConfig{
		CuePaths: map[SoundID]string{
			SoundClick: "audio/click.wav",
			SoundTape:  "audio/vhs.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundClick: 0.8,
		},
	}
}
