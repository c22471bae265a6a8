package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/nehah091/basket-dash/internal/audio"
	"github.com/nehah091/basket-dash/internal/config"
	"github.com/nehah091/basket-dash/internal/game"
	"github.com/nehah091/basket-dash/internal/protocol"
	"github.com/nehah091/basket-dash/internal/ui"
)

// BannerDuration is how long a milestone message stays on screen.
const BannerDuration = 2500 * time.Millisecond

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	player   *audio.Player

	session    *game.Session
	milestones *game.Milestones
	rng        *rand.Rand
	keys       ui.KeyHold

	// State
	basket      string
	banner      string
	bannerUntil time.Time
	wasTimeUp   bool
	start       time.Time
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a := &App{
		cfg:        cfg,
		log:        logger,
		session:    game.NewSession(cfg.Difficulty, cfg.Theme, rng),
		milestones: game.NewMilestones(),
		rng:        rng,
		basket:     cfg.Basket,
		player:     &audio.Player{},
	}

	if !game.HasProfile(cfg.Difficulty) {
		logger.Warn("unknown difficulty, playing medium", "difficulty", cfg.Difficulty)
	}
	if !game.HasTheme(cfg.Theme) {
		logger.Warn("unknown theme, using sunset", "theme", cfg.Theme)
	}
	logger.Info("session created", "seed", seed, "difficulty", cfg.Difficulty, "theme", cfg.Theme, "basket", cfg.Basket)

	return a
}

// Run is the main entry point for the application.
// It initializes audio and the screen, then runs the frame loop until the
// player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.ValidatePalettes(); err != nil {
		return fmt.Errorf("invalid palette table: %w", err)
	}

	// Initialize audio (game works without sound)
	player, err := audio.NewPlayer(a.cfg.Mute)
	if err != nil {
		a.log.Warn("audio unavailable, playing silently", "err", err)
	}
	a.player = player
	a.session.SetCatchListener(a.player)

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		a.player.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.resize(a.screen.Size())

	runErr := a.mainLoop(ctx)

	a.cleanup()

	return runErr
}

// mainLoop is the frame loop. Every session mutation happens on this goroutine.
func (a *App) mainLoop(ctx context.Context) error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.start = time.Now()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("stopping", "reason", ctx.Err())
			return nil

		case ev := <-events:
			if a.handleEvent(ev, time.Now()) {
				a.log.Info("quit by player", "score", a.session.Score())
				return nil
			}

		case now := <-ticker.C:
			a.tick(now)
			a.render()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune(), now)

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize(a.screen.Size())
	}

	return false
}

// handleKey applies a key press. Returns true on quit.
func (a *App) handleKey(key tcell.Key, r rune, now time.Time) bool {
	if dir := ui.KeyToDirection(key, r); dir != ui.DirNone {
		a.keys.Press(dir, now)
		return false
	}

	switch ui.KeyToAction(key, r) {
	case ui.ActQuit:
		return true
	case ui.ActPause:
		a.session.SetPaused(!a.session.Paused())
		a.keys.Release()
		a.log.Debug("pause toggled", "paused", a.session.Paused())
	case ui.ActReplay:
		a.replay()
	case ui.ActEasy:
		a.setDifficulty("easy")
	case ui.ActMedium:
		a.setDifficulty("medium")
	case ui.ActHard:
		a.setDifficulty("hard")
	case ui.ActNextDifficulty:
		a.setDifficulty(game.NextDifficulty(a.session.Difficulty()))
	case ui.ActNextTheme:
		a.session.SetTheme(game.NextTheme(a.session.Theme()))
		a.log.Debug("theme changed", "theme", a.session.Theme())
	case ui.ActNextBasket:
		a.basket = ui.NextBasket(a.basket)
	}
	return false
}

func (a *App) setDifficulty(name string) {
	a.session.SetDifficulty(name)
	a.log.Debug("difficulty changed", "difficulty", name)
}

// replay starts a new round
func (a *App) replay() {
	a.log.Info("round reset", "previous_score", a.session.Score())
	a.session.Reset()
	a.milestones.Reset()
	a.banner = ""
	a.wasTimeUp = false
	a.keys.Release()
}

// resize maps terminal cells to playfield pixels. A width change restarts the round.
func (a *App) resize(cols, rows int) {
	w, h := ui.PlayfieldSize(cols, rows)
	before := a.session.Snapshot()
	a.session.Resize(w, h)
	if w != before.Width {
		a.milestones.Reset()
		a.banner = ""
		a.wasTimeUp = false
	}
	a.log.Debug("playfield resized", "cols", cols, "rows", rows, "width", w, "height", h)
}

// tick advances the simulation by one frame and reacts to what happened.
func (a *App) tick(now time.Time) {
	left, right := a.keys.Held(now)
	a.session.SetKeys(left, right)
	a.session.Step(now.Sub(a.start))

	if !a.session.GameOver() && a.milestones.Check(a.session.Score()) {
		a.banner = game.Cheer(a.rng)
		a.bannerUntil = now.Add(BannerDuration)
		a.player.PlayMilestone()
		a.log.Debug("milestone", "score", a.session.Score())
	}
	if a.banner != "" && !now.Before(a.bannerUntil) {
		a.banner = ""
	}

	if a.session.TimeUp() && !a.wasTimeUp {
		a.wasTimeUp = true
		a.player.PlayTimeUp()
		a.log.Info("time up", "score", a.session.Score(), "difficulty", a.session.Difficulty())
	}
}

// render draws the current snapshot.
func (a *App) render() {
	if a.renderer == nil {
		return
	}
	snap := a.session.Snapshot()
	a.renderer.RenderGame(snap, a.hud(snap))
}

func (a *App) hud(snap protocol.Snapshot) ui.HUD {
	hud := ui.HUD{
		Basket: a.basket,
		Banner: a.banner,
		Muted:  !a.player.Enabled(),
	}
	if snap.TimeUp {
		hud.EndMessage = game.EndMessage(snap.Score)
	}
	return hud
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.player.Close()

	if a.screen != nil {
		a.screen.Fini()
	}
}
