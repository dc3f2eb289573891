// Package config reads server settings from the environment and the square
// palette from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

//go:embed palette.yaml
var defaultPaletteYAML []byte

type Config struct {
	Port        string
	DBDriver    string
	DBURL       string
	Secret      string
	PalettePath string
	LogLevel    string
}

// Load reads .env when it exists, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("couldn't load env: %w", err)
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		DBDriver:    getenv("DB_DRIVER", "sqlite"),
		DBURL:       getenv("DB_URL", "chess-marks.db"),
		Secret:      os.Getenv("SECRET"),
		PalettePath: os.Getenv("PALETTE"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}, nil
}

func (c Config) Validate() error {
	if c.Secret == "" {
		return errors.New("SECRET is not set")
	}
	if c.Port == "" {
		return errors.New("PORT is empty")
	}
	return nil
}

// LoadPalette reads a palette file; an empty path uses the embedded default.
// Colors missing from the file keep their defaults.
func LoadPalette(path string) (highlight.Palette, error) {
	data := defaultPaletteYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return highlight.Palette{}, fmt.Errorf("failed to read palette %s: %w", path, err)
		}
	}

	var p highlight.Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return highlight.Palette{}, fmt.Errorf("failed to parse palette %s: %w", path, err)
	}

	return p.WithDefaults(), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
