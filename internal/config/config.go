package config

import (
	"errors"
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultGravity = 0.8
	DefaultFPS     = 60
	DefaultLevel   = 1
	DefaultDataDir = "."

	MaxLevel = 3
)

// Config holds the application configuration
type Config struct {
	Width      int
	Height     int
	Gravity    float64
	FPS        int
	StartLevel int
	DataDir    string
	Mute       bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixbounce", flag.ContinueOnError)

	width := fs.Int("width", DefaultWidth, "world width in pixels")
	height := fs.Int("height", DefaultHeight, "world height in pixels")
	gravity := fs.Float64("gravity", DefaultGravity, "gravity in pixels per frame squared")
	fps := fs.Int("fps", DefaultFPS, "target frame rate (1-240)")
	level := fs.Int("level", DefaultLevel, "starting level (1-3)")
	data := fs.String("data", DefaultDataDir, "directory for saved settings and high score")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate world size; the levels are authored for 800x600 but a
	// larger world just adds open space.
	if *width < 100 || *height < 100 {
		return nil, fmt.Errorf("world size must be at least 100x100, got %dx%d", *width, *height)
	}

	if *gravity <= 0 {
		return nil, fmt.Errorf("gravity must be positive, got %g", *gravity)
	}

	if *fps < 1 || *fps > 240 {
		return nil, fmt.Errorf("fps must be between 1 and 240, got %d", *fps)
	}

	if *level < 1 || *level > MaxLevel {
		return nil, fmt.Errorf("level must be between 1 and %d, got %d", MaxLevel, *level)
	}

	if *data == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	cfg := &Config{
		Width:      *width,
		Height:     *height,
		Gravity:    *gravity,
		FPS:        *fps,
		StartLevel: *level,
		DataDir:    *data,
		Mute:       *mute,
	}

	return cfg, nil
}
