package game

import "time"

// Constants for round and catcher geometry
const (
	RoundDuration  = 60 * time.Second
	CatcherWidth   = 80.0
	CatcherHeight  = 16.0
	MaxFrameDelta  = 50 * time.Millisecond
	CaughtLinger   = 220 * time.Millisecond
	DefaultProfile = "medium"
)

// Profile holds the per-difficulty tuning. Speeds are in px/s, accelerations
// in px/s², SpawnInterval is the gap between spawns at score 0.
type Profile struct {
	Name          string
	ObjectSpeed   float64
	SpawnInterval time.Duration
	Accel         float64
	Friction      float64
	MaxSpeed      float64
	MinStart      float64
}

// Easy gets more acceleration, less friction and a higher min-start so the
// basket never feels sticky.
var profiles = map[string]Profile{
	"easy": {
		Name:          "easy",
		ObjectSpeed:   160,
		SpawnInterval: 950 * time.Millisecond,
		Accel:         2200,
		Friction:      900,
		MaxSpeed:      600,
		MinStart:      220,
	},
	"medium": {
		Name:          "medium",
		ObjectSpeed:   220,
		SpawnInterval: 850 * time.Millisecond,
		Accel:         1600,
		Friction:      1200,
		MaxSpeed:      520,
		MinStart:      160,
	},
	"hard": {
		Name:          "hard",
		ObjectSpeed:   280,
		SpawnInterval: 700 * time.Millisecond,
		Accel:         1400,
		Friction:      1500,
		MaxSpeed:      500,
		MinStart:      140,
	},
}

// Difficulties lists profile names from easiest to hardest.
var Difficulties = []string{"easy", "medium", "hard"}

// LookupProfile returns the named profile, or medium when the name is unknown.
func LookupProfile(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[DefaultProfile]
}

// HasProfile reports whether name is a known difficulty.
func HasProfile(name string) bool {
	_, ok := profiles[name]
	return ok
}

// scoreTier is the number of completed groups of 10 points.
func scoreTier(score int) float64 {
	return float64(score / 10)
}

// SpawnScale is the spawn-rate multiplier at the given score: +5% per 10 points.
func SpawnScale(score int) float64 {
	return 1 + scoreTier(score)*0.05
}

// SpeedScale is the fall-speed multiplier at the given score: +8% per 10 points.
func SpeedScale(score int) float64 {
	return 1 + scoreTier(score)*0.08
}

// EffectiveSpawnInterval returns the spawn gap for a profile at the given score.
func (p Profile) EffectiveSpawnInterval(score int) time.Duration {
	return time.Duration(float64(p.SpawnInterval) / SpawnScale(score))
}
