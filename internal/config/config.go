// internal/config/config.go
//
// Runtime configuration for the angle server.
// Values come from the environment, after an optional .env file has been
// loaded (development convenience; a missing file is not an error). The drawing
// palette can be overridden by a YAML file named by THEME_FILE:
//
//	background: black
//	wedge: "#e33"
//	inner: black
//	ray: white
//
// Unset palette keys keep their default color.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/irevoire/angle/internal/game"
)

type Config struct {
	Port          string
	LogLevel      zerolog.Level
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
	Production    bool
	ClientOrigin  string
	DBPath        string         // empty: in-memory sessions
	Location      *time.Location // zone "today" is computed in
	Palette       game.Palette
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	c := Config{
		Port:          envOr("PORT", "5175"),
		SessionSecret: envOr("SESSION_SECRET", "dev_secret_change_me"),
		CookieName:    envOr("COOKIE_NAME", "angle_session"),
		Production:    os.Getenv("NODE_ENV") == "production",
		ClientOrigin:  envOr("CLIENT_ORIGIN", "http://localhost:5173"),
		DBPath:        os.Getenv("DB_PATH"),
		Palette:       game.DefaultPalette,
	}

	lvl, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	days, err := strconv.Atoi(envOr("SESSION_DAYS", "1"))
	if err != nil || days <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_DAYS %q", os.Getenv("SESSION_DAYS"))
	}
	c.SessionTTL = time.Duration(days) * 24 * time.Hour

	tz := envOr("GAME_TZ", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid GAME_TZ %q: %w", tz, err)
	}
	c.Location = loc

	if path := os.Getenv("THEME_FILE"); path != "" {
		p, err := LoadPalette(path, c.Palette)
		if err != nil {
			return Config{}, err
		}
		c.Palette = p
	}
	return c, nil
}

// LoadPalette overlays the colors found in the YAML file at path onto base.
func LoadPalette(path string, base game.Palette) (game.Palette, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return game.Palette{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	var overlay game.Palette
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return game.Palette{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if overlay.Background != "" {
		base.Background = overlay.Background
	}
	if overlay.Wedge != "" {
		base.Wedge = overlay.Wedge
	}
	if overlay.Inner != "" {
		base.Inner = overlay.Inner
	}
	if overlay.Ray != "" {
		base.Ray = overlay.Ray
	}
	return base, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
