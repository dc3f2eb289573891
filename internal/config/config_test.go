package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_URL", "")
	t.Setenv("SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "chess-marks.db", cfg.DBURL)
	assert.Error(t, cfg.Validate(), "missing secret")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_URL", "postgres://localhost/marks")
	t.Setenv("SECRET", "s3cret")
	t.Setenv("PALETTE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:     "9000",
		DBDriver: "postgres",
		DBURL:    "postgres://localhost/marks",
		Secret:   "s3cret",
		LogLevel: "info",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette("")
	require.NoError(t, err)
	assert.Equal(t, highlight.DefaultPalette(), p)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("red: \"#ff0000\"\n"), 0o644))

	p, err = LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", p.Red)
	assert.Equal(t, highlight.DefaultPalette().Green, p.Green)

	_, err = LoadPalette(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
