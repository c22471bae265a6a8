package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/nehah091/basket-dash/internal/protocol"
)

// Constants for object generation
const (
	MinObjectSize = 12
	MaxObjectSize = 28
	// ReferenceSize is the size that falls at exactly the base speed.
	ReferenceSize = 16.0
	SpeedJitterLo = 0.85
	SpeedJitterHi = 1.15
)

// Spawner emits falling objects on a score-dependent cadence.
type Spawner struct {
	rng       *rand.Rand
	lastSpawn time.Duration
	nextID    int
}

// NewSpawner creates a spawner drawing all randomness from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Restart makes now the reference point for the next spawn.
func (s *Spawner) Restart(now time.Duration) {
	s.lastSpawn = now
}

// LastSpawn returns the time of the most recent spawn or restart.
func (s *Spawner) LastSpawn() time.Duration {
	return s.lastSpawn
}

// Due reports whether enough time has passed since the last spawn.
func (s *Spawner) Due(now time.Duration, p Profile, score int) bool {
	return now-s.lastSpawn >= p.EffectiveSpawnInterval(score)
}

// Maybe returns a new object if one is due at time now.
//
// The reference moves to now rather than forward by one interval, so a long
// frame produces at most one object instead of a burst.
func (s *Spawner) Maybe(now time.Duration, p Profile, score int, palette []string, fieldWidth float64) (*FallingObject, bool) {
	if !s.Due(now, p, score) {
		return nil, false
	}
	s.lastSpawn = now
	return s.build(p, score, palette, fieldWidth), true
}

func (s *Spawner) build(p Profile, score int, palette []string, fieldWidth float64) *FallingObject {
	s.nextID++

	size := float64(MinObjectSize + s.rng.Intn(MaxObjectSize-MinObjectSize+1))
	x := 0.0
	if span := fieldWidth - size; span > 0 {
		x = math.Floor(s.rng.Float64() * (span + 1))
		x = math.Min(x, span)
	}

	jitter := SpeedJitterLo + s.rng.Float64()*(SpeedJitterHi-SpeedJitterLo)
	speed := p.ObjectSpeed * jitter * SpeedScale(score) * (ReferenceSize / size)

	return &FallingObject{
		ID:    s.nextID,
		X:     x,
		Y:     -size,
		Size:  size,
		Shape: s.pickShape(),
		Color: s.pickColor(palette),
		Speed: speed,
	}
}

func (s *Spawner) pickShape() protocol.Shape {
	roll := s.rng.Float64()
	switch {
	case roll < 0.34:
		return protocol.ShapeCircle
	case roll < 0.67:
		return protocol.ShapeSquare
	default:
		return protocol.ShapeStar
	}
}

func (s *Spawner) pickColor(palette []string) string {
	if len(palette) == 0 {
		palette = Palette(DefaultTheme)
	}
	return palette[s.rng.Intn(len(palette))]
}
