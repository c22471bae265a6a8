package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/nehah091/basket-dash/internal/protocol"
)

const (
	sampleRate = beep.SampleRate(44100)

	// CatchGap is the minimum time between two catch sounds.
	CatchGap = 120 * time.Millisecond

	bumpFreq     = 180.0
	bumpPeak     = 0.22
	bumpFloor    = 0.0001
	bumpAttack   = 20 * time.Millisecond
	bumpDecayEnd = 120 * time.Millisecond
	bumpLength   = 140 * time.Millisecond
)

// Player turns game events into sounds. A zero-value or muted Player is silent.
type Player struct {
	mu        sync.Mutex
	enabled   bool
	lastCatch time.Time
	now       func() time.Time
	play      func(s ...beep.Streamer)
}

// NewPlayer initializes the speaker and returns a player. When init fails the
// returned player is silent and the error is returned for logging; the game
// works without sound.
func NewPlayer(muted bool) (*Player, error) {
	p := &Player{now: time.Now, play: speaker.Play}
	if muted {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether sounds are actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close shuts down the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// OnCatch plays the catch bump, dropping it if the previous one is too recent.
func (p *Player) OnCatch(_ protocol.CatchEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	now := p.now()
	if !p.lastCatch.IsZero() && now.Sub(p.lastCatch) <= CatchGap {
		return
	}
	p.lastCatch = now

	s, err := bump()
	if err != nil {
		return
	}
	p.play(s)
}

// PlayMilestone plays a rising arpeggio for a score milestone
func (p *Player) PlayMilestone() {
	p.playSeq(
		squareWave(523, 80*time.Millisecond),
		squareWave(659, 80*time.Millisecond),
		squareWave(784, 140*time.Millisecond),
	)
}

// PlayTimeUp plays a descending tone when the round ends
func (p *Player) PlayTimeUp() {
	p.playSeq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

func (p *Player) playSeq(notes ...beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	gap := beep.Silence(sampleRate.N(20 * time.Millisecond))
	seq := make([]beep.Streamer, 0, len(notes)*2)
	for i, n := range notes {
		if i > 0 {
			seq = append(seq, gap)
		}
		seq = append(seq, n)
	}
	p.play(beep.Seq(seq...))
}

// bump is a soft low sine with a quick attack and exponential decay
func bump() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, bumpFreq)
	if err != nil {
		return nil, err
	}
	return &envelope{src: beep.Take(sampleRate.N(bumpLength), sine)}, nil
}

// bumpGain is the bump's amplitude t after it starts.
func bumpGain(t time.Duration) float64 {
	switch {
	case t <= 0:
		return 0
	case t < bumpAttack:
		return bumpPeak * float64(t) / float64(bumpAttack)
	case t < bumpDecayEnd:
		frac := float64(t-bumpAttack) / float64(bumpDecayEnd-bumpAttack)
		return bumpPeak * math.Pow(bumpFloor/bumpPeak, frac)
	default:
		return bumpFloor
	}
}

// envelope shapes src with bumpGain.
type envelope struct {
	src beep.Streamer
	pos int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := bumpGain(sampleRate.D(e.pos))
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.src.Err()
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.15
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
