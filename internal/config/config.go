package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration
const (
	DefaultDifficulty = "medium"
	DefaultTheme      = "sunset"
	DefaultBasket     = "classic"
	DefaultFPS        = 60
	MinFPS            = 10
	MaxFPS            = 240
)

// Environment variables consulted before flags
const (
	EnvDifficulty = "BASKETDASH_DIFFICULTY"
	EnvTheme      = "BASKETDASH_THEME"
	EnvBasket     = "BASKETDASH_BASKET"
	EnvMute       = "BASKETDASH_MUTE"
)

// Config holds the application configuration
type Config struct {
	Difficulty string
	Theme      string
	Basket     string
	FPS        int
	Seed       int64
	Mute       bool
	Debug      bool
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// ParseArgs parses command line arguments and returns a Config.
// Difficulty, theme and basket names are not validated here: unknown names
// fall back to defaults inside the game.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("basketdash", flag.ContinueOnError)

	difficulty := fs.String("difficulty", GetEnv(EnvDifficulty, DefaultDifficulty), "difficulty (easy, medium, hard)")
	theme := fs.String("theme", GetEnv(EnvTheme, DefaultTheme), "colour theme (sunset, forest, ocean, neon, night)")
	basket := fs.String("basket", GetEnv(EnvBasket, DefaultBasket), "basket style (classic, neon, dark, glass)")
	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("frames per second (%d-%d)", MinFPS, MaxFPS))
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	mute := fs.Bool("mute", envBool(EnvMute, false), "disable sound")
	debug := fs.Bool("debug", false, "write a debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate frame rate
	if *fps < MinFPS || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, *fps)
	}

	cfg := &Config{
		Difficulty: *difficulty,
		Theme:      *theme,
		Basket:     *basket,
		FPS:        *fps,
		Seed:       *seed,
		Mute:       *mute,
		Debug:      *debug,
	}

	return cfg, nil
}
