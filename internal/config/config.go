package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the bounds used when animation types are generated at random.
type Config struct {
	Offset           float64 `yaml:"offset"`             // Slide distance for random "from" animations
	MaxZoomScale     float64 `yaml:"max_zoom_scale"`     // Upper bound for random zoom scale
	MaxRotationAngle float64 `yaml:"max_rotation_angle"` // Bound for random rotation, radians
}

func Default() Config {
	return Config{
		Offset:           30,
		MaxZoomScale:     2,
		MaxRotationAngle: math.Pi / 4,
	}
}

// Load reads a YAML config. Keys missing from the file keep their defaults.
// Values are taken as written, negative or otherwise.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

type PreviewParams struct {
	Width, Height int
	DPI           int
	Page          int
	Workers       int
	OutputDir     string
}
