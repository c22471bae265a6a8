package game

import (
	"math/rand"
	"time"

	"github.com/nehah091/basket-dash/internal/protocol"
)

// CatchListener receives catch events as they happen during a step.
type CatchListener interface {
	OnCatch(ev protocol.CatchEvent)
}

// CatchListenerFunc adapts a plain function to CatchListener.
type CatchListenerFunc func(ev protocol.CatchEvent)

func (f CatchListenerFunc) OnCatch(ev protocol.CatchEvent) { f(ev) }

// Session is the whole mutable state of one game. It is not safe for
// concurrent use: the host drives it from a single goroutine.
type Session struct {
	width  float64
	height float64

	catcher *Catcher
	spawner *Spawner
	objects []*FallingObject

	score    int
	timeLeft time.Duration
	gameOver bool
	timeUp   bool
	paused   bool

	difficulty string
	theme      string
	left       bool
	right      bool

	// clock is simulated time since the round started. It only advances
	// while the round is running, so pauses never age spawns or catches.
	clock   time.Duration
	last    time.Duration
	hasLast bool

	listener CatchListener
}

// NewSession creates a session with an empty playfield. Nothing moves until
// Resize supplies a non-zero geometry.
func NewSession(difficulty, theme string, rng *rand.Rand) *Session {
	s := &Session{
		catcher:    NewCatcher(),
		spawner:    NewSpawner(rng),
		difficulty: difficulty,
		theme:      theme,
	}
	s.Reset()
	return s
}

// SetCatchListener installs the receiver of catch events. nil disables them.
func (s *Session) SetCatchListener(l CatchListener) {
	s.listener = l
}

// Reset starts a fresh round.
func (s *Session) Reset() {
	s.score = 0
	s.objects = nil
	s.gameOver = false
	s.timeUp = false
	s.timeLeft = RoundDuration
	s.clock = 0
	s.spawner.Restart(0)
	s.catcher.Center(s.width)
}

// Resize sets the playfield geometry. A width change restarts the round.
func (s *Session) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	widthChanged := width != s.width
	s.width = width
	s.height = height
	if widthChanged && width > 0 {
		s.Reset()
	}
}

// SetKeys records which direction keys are currently held.
func (s *Session) SetKeys(left, right bool) {
	s.left = left
	s.right = right
}

// SetPaused pauses or resumes the round. The frame clock is re-armed on every
// change so the first frame after resuming has a zero delta.
func (s *Session) SetPaused(paused bool) {
	if paused != s.paused {
		s.hasLast = false
	}
	s.paused = paused
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// SetDifficulty selects a profile by name. Unknown names play as medium.
func (s *Session) SetDifficulty(name string) { s.difficulty = name }

// SetTheme selects the palette for new objects. Unknown names use sunset.
func (s *Session) SetTheme(name string) { s.theme = name }

// Difficulty returns the selected difficulty name.
func (s *Session) Difficulty() string { return s.difficulty }

// Theme returns the selected theme name.
func (s *Session) Theme() string { return s.theme }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeLeft returns the remaining round time.
func (s *Session) TimeLeft() time.Duration { return s.timeLeft }

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// TimeUp reports whether the round ended because the timer ran out.
func (s *Session) TimeUp() bool { return s.timeUp }

// Catcher returns the catcher. Callers must not mutate it.
func (s *Session) Catcher() *Catcher { return s.catcher }

// Objects returns the live objects. Callers must not mutate them.
func (s *Session) Objects() []*FallingObject { return s.objects }

// Ready reports whether the playfield has a usable size.
func (s *Session) Ready() bool {
	return s.width > 0 && s.height > 0
}

// frameDelta returns the time since the previous frame, capped at MaxFrameDelta.
func (s *Session) frameDelta(now time.Duration) time.Duration {
	if !s.hasLast {
		s.last = now
		s.hasLast = true
	}
	dt := now - s.last
	s.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	return dt
}

// Step advances the simulation to the frame timestamp now. now must come from
// a monotonic clock; only differences between calls matter.
func (s *Session) Step(now time.Duration) {
	dt := s.frameDelta(now)

	if !s.Ready() || s.paused || s.gameOver {
		return
	}

	s.clock += dt
	secs := dt.Seconds()

	if !s.timeUp {
		s.timeLeft -= dt
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.timeUp = true
			s.gameOver = true
		}
	}

	prof := LookupProfile(s.difficulty)
	s.catcher.Move(s.left, s.right, secs, prof, s.width)

	if obj, ok := s.spawner.Maybe(s.clock, prof, s.score, Palette(s.theme), s.width); ok {
		s.objects = append(s.objects, obj)
	}

	caught := s.advanceObjects(secs)
	s.pruneObjects()

	// Misses never cost points
	s.score += caught
}

// advanceObjects moves every object and catches the ones touching the basket.
// It returns the number of new catches.
func (s *Session) advanceObjects(dt float64) int {
	box := s.catcher.Bounds(s.height)
	caught := 0

	for _, o := range s.objects {
		o.Fall(dt)
		if o.Caught {
			continue
		}
		if !o.Bounds().Overlaps(box) {
			continue
		}
		if o.Catch(s.clock) {
			caught++
			s.emitCatch(o)
		}
	}
	return caught
}

func (s *Session) pruneObjects() {
	live := s.objects[:0]
	for _, o := range s.objects {
		if o.Expired(s.clock, s.height) {
			continue
		}
		live = append(live, o)
	}
	// Clear the tail so dropped objects can be collected
	for i := len(live); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = live
}

func (s *Session) emitCatch(o *FallingObject) {
	if s.listener == nil {
		return
	}
	s.listener.OnCatch(protocol.CatchEvent{
		ObjectID: o.ID,
		At:       o.CaughtAt,
		Shape:    o.Shape,
		Color:    o.Color,
	})
}

// Snapshot returns a copy of the state for rendering.
func (s *Session) Snapshot() protocol.Snapshot {
	objects := make([]protocol.ObjectState, len(s.objects))
	for i, o := range s.objects {
		objects[i] = o.toProtocol()
	}

	return protocol.Snapshot{
		Width:         s.width,
		Height:        s.height,
		CatcherX:      s.catcher.X,
		CatcherWidth:  s.catcher.Width,
		CatcherHeight: s.catcher.Height,
		Objects:       objects,
		Score:         s.score,
		TimeLeft:      s.timeLeft,
		Paused:        s.paused,
		GameOver:      s.gameOver,
		TimeUp:        s.timeUp,
		Difficulty:    LookupProfile(s.difficulty).Name,
		Theme:         themeName(s.theme),
	}
}

func themeName(theme string) string {
	if HasTheme(theme) {
		return theme
	}
	return DefaultTheme
}
