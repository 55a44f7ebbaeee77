package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/scene"
)

// Config holds user defaults read from config.toml. Command-line flags
// override every field.
//
// Example:
//
//	seed = 42
//
//	[matrix]
//	size = 6
//	min_weight = 1
//	max_weight = 20
//	symmetric = true
//
//	[canvas]
//	width = 1024
//	height = 768
//
//	[server]
//	addr = ":9090"
type Config struct {
	// Seed drives random fills and layouts. 0 picks a fresh seed per run.
	Seed uint64 `toml:"seed"`

	Matrix MatrixConfig `toml:"matrix"`
	Canvas CanvasConfig `toml:"canvas"`
	Server ServerConfig `toml:"server"`
}

// MatrixConfig holds defaults for random matrices.
type MatrixConfig struct {
	Size      int   `toml:"size"`
	MinWeight int64 `toml:"min_weight"`
	MaxWeight int64 `toml:"max_weight"`
	Symmetric bool  `toml:"symmetric"`
}

// CanvasConfig holds the scene geometry, in pixels.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
	Radius float64 `toml:"radius"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// AllowedOrigins lists browser origins allowed to call the API (CORS).
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Matrix: MatrixConfig{
			Size:      5,
			MinWeight: matrix.DefaultMinWeight,
			MaxWeight: matrix.DefaultMaxWeight,
		},
		Canvas: CanvasConfig{
			Width:  scene.DefaultWidth,
			Height: scene.DefaultHeight,
			Margin: scene.DefaultMargin,
			Radius: scene.DefaultRadius,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. A missing
// file is not an error when path is the default location (explicit is
// false); an explicitly requested file must exist.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// SceneOptions converts the canvas section into scene.Options.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		Width:  c.Canvas.Width,
		Height: c.Canvas.Height,
		Margin: c.Canvas.Margin,
		Radius: c.Canvas.Radius,
	}
}

// RandomOptions converts the matrix section into matrix.RandomOptions.
func (c Config) RandomOptions() matrix.RandomOptions {
	return matrix.RandomOptions{
		Min:       c.Matrix.MinWeight,
		Max:       c.Matrix.MaxWeight,
		Symmetric: c.Matrix.Symmetric,
	}
}

// configPath returns the default config location using the XDG standard
// (~/.config/kgraph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
