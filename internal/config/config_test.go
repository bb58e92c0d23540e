package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irevoire/angle/internal/game"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "SESSION_SECRET", "SESSION_DAYS", "COOKIE_NAME",
		"NODE_ENV", "CLIENT_ORIGIN", "DB_PATH", "GAME_TZ", "THEME_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, "angle_session", c.CookieName)
	assert.False(t, c.Production)
	assert.Empty(t, c.DBPath)
	assert.Equal(t, time.UTC, c.Location)
	assert.Equal(t, game.DefaultPalette, c.Palette)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_DAYS", "3")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("DB_PATH", "./data/angle.db")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
	assert.Equal(t, 72*time.Hour, c.SessionTTL)
	assert.True(t, c.Production)
	assert.Equal(t, "./data/angle.db", c.DBPath)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":    "loud",
		"SESSION_DAYS": "zero",
		"GAME_TZ":      "Mars/Olympus_Mons",
		"THEME_FILE":   "/does/not/exist.yaml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadPalette_OverlaysSetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wedge: \"#e33\"\nray: yellow\n"), 0o644))

	p, err := LoadPalette(path, game.DefaultPalette)
	require.NoError(t, err)
	assert.Equal(t, game.Palette{Background: "black", Wedge: "#e33", Inner: "black", Ray: "yellow"}, p)
}

func TestLoadPalette_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wedge: [unclosed"), 0o644))

	_, err := LoadPalette(path, game.DefaultPalette)
	assert.Error(t, err)
}
