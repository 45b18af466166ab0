package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Update ticks per second
}

// AssetsConfig controls start-up asset loading and the idle screen cycle
type AssetsConfig struct {
	Dir               string        // Load from this directory instead of the embedded set ("" = embedded)
	LoadTimeout       time.Duration // Give up on texture loading after this long
	IdleCycleInterval time.Duration // Wall-clock period between idle screen frames
}

// ControlsConfig contains the title menu / volume panel configuration
type ControlsConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	DisabledColor   color.RGBA
	AccentColor     color.RGBA
	VolumeStep      float64
	FontSize        float64
	SmallFontSize   float64
}

// LoadingConfig contains the loading and error screen configuration
type LoadingConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	ErrorColor      color.RGBA
	Message         string
	ErrorTitle      string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   // Draw phase, flags and recent log lines
	LogLevel string // debug, info, warn, error
	LogLines int    // Lines kept for the overlay
}

// Global configuration instances
var C *Config
var Assets AssetsConfig
var Controls ControlsConfig
var Loading LoadingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Backdrop     = color.RGBA{R: 18, G: 18, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 720,
		Title:  "VHS Player",
		TPS:    60,
	}

	Assets = AssetsConfig{
		Dir:               "",
		LoadTimeout:       10 * time.Second,
		IdleCycleInterval: 5 * time.Second,
	}

	Controls = ControlsConfig{
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 40, A: 220},
		TextColor:       White,
		DisabledColor:   color.RGBA{R: 100, G: 100, B: 100, A: 255},
		AccentColor:     BrightOrange,
		VolumeStep:      0.05,
		FontSize:        14,
		SmallFontSize:   11,
	}

	Loading = LoadingConfig{
		BackgroundColor: Backdrop,
		TextColor:       White,
		ErrorColor:      LightRed,
		Message:         "Loading tapes...",
		ErrorTitle:      "Could not start the player",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:  false,
		LogLevel: "info",
		LogLines: 8,
	}
}
