package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/nehah091/basket-dash/internal/protocol"
)

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)))
}

func TestSpawner_FirstSpawnAfterInterval(t *testing.T) {
	s := newTestSpawner(1)
	p := LookupProfile("medium")
	palette := Palette("sunset")

	if _, ok := s.Maybe(849*time.Millisecond, p, 0, palette, 400); ok {
		t.Fatal("expected no spawn before 850ms")
	}

	obj, ok := s.Maybe(850*time.Millisecond, p, 0, palette, 400)
	if !ok {
		t.Fatal("expected spawn at 850ms")
	}
	if obj.X < 0 || obj.X > 400-obj.Size {
		t.Errorf("expected X in [0, %f], got %f", 400-obj.Size, obj.X)
	}
	if obj.Y != -obj.Size {
		t.Errorf("expected Y=%f, got %f", -obj.Size, obj.Y)
	}
	if s.LastSpawn() != 850*time.Millisecond {
		t.Errorf("expected last spawn 850ms, got %v", s.LastSpawn())
	}
}

func TestSpawner_ObjectRanges(t *testing.T) {
	s := newTestSpawner(42)
	p := LookupProfile("medium")
	palette := Palette("ocean")
	inPalette := make(map[string]bool)
	for _, c := range palette {
		inPalette[c] = true
	}

	shapes := make(map[protocol.Shape]int)
	sizes := make(map[float64]bool)
	now := time.Duration(0)

	for i := 0; i < 2000; i++ {
		now += p.SpawnInterval
		obj, ok := s.Maybe(now, p, 0, palette, 400)
		if !ok {
			t.Fatalf("spawn %d: expected object", i)
		}

		if obj.Size < MinObjectSize || obj.Size > MaxObjectSize {
			t.Fatalf("size %f out of range", obj.Size)
		}
		if obj.X < 0 || obj.X > 400-obj.Size {
			t.Fatalf("X %f out of [0, %f]", obj.X, 400-obj.Size)
		}
		if !inPalette[obj.Color] {
			t.Fatalf("colour %s not in palette", obj.Color)
		}

		lo := p.ObjectSpeed * SpeedJitterLo * ReferenceSize / obj.Size
		hi := p.ObjectSpeed * SpeedJitterHi * ReferenceSize / obj.Size
		if obj.Speed < lo || obj.Speed > hi {
			t.Fatalf("speed %f out of [%f, %f] for size %f", obj.Speed, lo, hi, obj.Size)
		}
		if obj.ID != i+1 {
			t.Fatalf("expected ID %d, got %d", i+1, obj.ID)
		}

		shapes[obj.Shape]++
		sizes[obj.Size] = true
	}

	for _, shape := range []protocol.Shape{protocol.ShapeCircle, protocol.ShapeSquare, protocol.ShapeStar} {
		if shapes[shape] < 500 {
			t.Errorf("expected roughly a third %s, got %d of 2000", shape, shapes[shape])
		}
	}
	if !sizes[MinObjectSize] || !sizes[MaxObjectSize] {
		t.Error("expected both size extremes to appear")
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	a := newTestSpawner(7)
	b := newTestSpawner(7)
	p := LookupProfile("hard")
	palette := Palette("neon")

	for i := 1; i <= 50; i++ {
		now := time.Duration(i) * time.Second
		oa, _ := a.Maybe(now, p, i, palette, 640)
		ob, _ := b.Maybe(now, p, i, palette, 640)
		if *oa != *ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestSpawner_NoCatchUpBurst(t *testing.T) {
	s := newTestSpawner(3)
	p := LookupProfile("medium")

	if _, ok := s.Maybe(10*time.Second, p, 0, Palette("sunset"), 400); !ok {
		t.Fatal("expected spawn after a long stall")
	}
	if _, ok := s.Maybe(10*time.Second, p, 0, Palette("sunset"), 400); ok {
		t.Error("expected a single spawn, not a burst")
	}
	if _, ok := s.Maybe(10*time.Second+849*time.Millisecond, p, 0, Palette("sunset"), 400); ok {
		t.Error("expected next spawn to wait a full interval")
	}
}

func TestSpawner_SpeedScalesWithScore(t *testing.T) {
	p := LookupProfile("medium")

	for _, score := range []int{10, 20, 35} {
		base := newTestSpawner(99)
		scaled := newTestSpawner(99)

		o0, _ := base.Maybe(time.Hour, p, 0, Palette("sunset"), 400)
		o1, _ := scaled.Maybe(time.Hour, p, score, Palette("sunset"), 400)

		ratio := o1.Speed / o0.Speed
		want := SpeedScale(score)
		if math.Abs(ratio-want) > 1e-9 {
			t.Errorf("score %d: expected speed ratio %f, got %f", score, want, ratio)
		}
	}
}

func TestSpawner_EmptyPaletteFallsBack(t *testing.T) {
	s := newTestSpawner(5)
	obj, ok := s.Maybe(time.Hour, LookupProfile("easy"), 0, nil, 400)
	if !ok {
		t.Fatal("expected spawn")
	}
	found := false
	for _, c := range Palette(DefaultTheme) {
		if c == obj.Color {
			found = true
		}
	}
	if !found {
		t.Errorf("expected colour from default palette, got %s", obj.Color)
	}
}

func TestSpawner_NarrowField(t *testing.T) {
	s := newTestSpawner(5)
	obj, ok := s.Maybe(time.Hour, LookupProfile("easy"), 0, Palette("sunset"), 10)
	if !ok {
		t.Fatal("expected spawn")
	}
	if obj.X != 0 {
		t.Errorf("expected X=0 when field is narrower than the object, got %f", obj.X)
	}
}
