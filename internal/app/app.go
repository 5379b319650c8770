package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixbounce/internal/audio"
	"github.com/diegok/pixbounce/internal/config"
	"github.com/diegok/pixbounce/internal/game"
	"github.com/diegok/pixbounce/internal/save"
	"github.com/diegok/pixbounce/internal/ui"
)

// State identifies the current screen.
type State int

const (
	StateMenu State = iota
	StateCustomize
	StateLevelSelect
	StatePlaying
	StateGameOver
)

const (
	// StartingLives is the number of lives in a fresh run.
	StartingLives = 3

	// MovementTimeout is how many ticks a movement key keeps applying after
	// its last repeat event (~133ms at 60Hz). Terminals deliver no key-up,
	// so held keys are emulated from the auto-repeat stream.
	MovementTimeout = 8
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	store    *save.Store
	world    *game.World
	ball     *game.Ball

	state     State
	level     int
	lives     int
	score     int
	highScore int
	won       bool

	// Held-key emulation, one countdown per intent.
	leftTicks  int
	rightTicks int
	jumpHeld   bool

	wasInWater bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and starts the game.
func (a *App) Run() error {
	// Initialize audio (ignore errors - game works without sound)
	if !a.cfg.Mute {
		_ = audio.Init()
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, float64(a.cfg.Width), float64(a.cfg.Height))

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	a.store = save.NewStore(a.cfg.DataDir)
	a.world = game.NewWorld(game.Env{
		Gravity: a.cfg.Gravity,
		Width:   float64(a.cfg.Width),
		Height:  float64(a.cfg.Height),
	})
	a.highScore = a.store.HighScore()
	a.state = StateMenu

	// The customize screen needs a ball before the first run starts.
	a.newBall(float64(a.cfg.Width)/2, 100)

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.update()
			a.render()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		switch a.state {
		case StateMenu:
			return a.handleMenuEvent(ev)
		case StateCustomize:
			a.handleCustomizeEvent(ev)
		case StateLevelSelect:
			a.handleLevelSelectEvent(ev)
		case StatePlaying:
			a.handlePlayingEvent(ev)
		case StateGameOver:
			a.handleGameOverEvent(ev)
		}

	case *tcell.EventResize:
		a.screen.Clear()
		a.render()
	}

	return false
}

// handleMenuEvent handles the main menu. Returns true to quit.
func (a *App) handleMenuEvent(ev *tcell.EventKey) bool {
	switch ev.Rune() {
	case '1':
		a.startRun(a.cfg.StartLevel)
	case '2':
		a.state = StateLevelSelect
	case '3':
		a.state = StateCustomize
	case '4':
		return true
	}
	return false
}

// handleCustomizeEvent drives the customization mutators.
func (a *App) handleCustomizeEvent(ev *tcell.EventKey) {
	if ui.IsBackKey(ev.Key()) {
		a.state = StateMenu
		return
	}
	if ui.IsStartKey(ev.Key()) {
		a.state = StateLevelSelect
		return
	}

	c := a.ball.Custom
	switch ev.Rune() {
	case '+', '=':
		a.ball.SetSize(c.Size + 1)
	case '-':
		a.ball.SetSize(c.Size - 1)
	case '[':
		a.ball.SetBounce(c.BounceFactor - 0.1)
	case ']':
		a.ball.SetBounce(c.BounceFactor + 0.1)
	case ',':
		a.ball.SetOpacity(c.Opacity - 25)
	case '.':
		a.ball.SetOpacity(c.Opacity + 25)
	case ';':
		a.ball.SetGlowSize(c.GlowSize - 0.1)
	case '\'':
		a.ball.SetGlowSize(c.GlowSize + 0.1)
	case 't', 'T':
		a.ball.NextTexture()
	case 'g', 'G':
		a.ball.ToggleGlow()
	case 'c', 'C':
		a.ball.SetColor(nextSwatch(ui.SwatchColors, c.Color))
	case 'p', 'P':
		a.ball.SetPatternColor(nextSwatch(ui.PatternSwatchColors, c.PatternColor))
	}
}

// handleLevelSelectEvent starts the chosen level.
func (a *App) handleLevelSelectEvent(ev *tcell.EventKey) {
	if ui.IsBackKey(ev.Key()) {
		a.state = StateMenu
		return
	}
	switch ev.Rune() {
	case '1', '2', '3':
		level := int(ev.Rune() - '0')
		if a.lives <= 0 {
			a.lives = StartingLives
		}
		a.won = false
		a.level = level
		a.startLevel()
		a.state = StatePlaying
	}
}

// handlePlayingEvent handles gameplay input.
func (a *App) handlePlayingEvent(ev *tcell.EventKey) {
	if ui.IsBackKey(ev.Key()) {
		a.state = StateMenu
		return
	}
	if ui.IsResetKey(ev.Key(), ev.Rune()) {
		a.startLevel()
		return
	}

	switch ui.KeyToIntent(ev.Key(), ev.Rune()) {
	case ui.IntentLeft:
		a.leftTicks = MovementTimeout
		a.rightTicks = 0
	case ui.IntentRight:
		a.rightTicks = MovementTimeout
		a.leftTicks = 0
	case ui.IntentJump:
		a.jumpHeld = true
	}
}

// handleGameOverEvent returns to the menu.
func (a *App) handleGameOverEvent(ev *tcell.EventKey) {
	if ui.IsStartKey(ev.Key()) || ui.IsBackKey(ev.Key()) {
		a.state = StateMenu
	}
}

// startRun begins a fresh run from the configured level.
func (a *App) startRun(level int) {
	a.lives = StartingLives
	a.score = 0
	a.won = false
	a.level = level
	a.startLevel()
	a.state = StatePlaying
}

// startLevel (re)loads the current level and places a fresh ball at its
// start position, keeping the current customization.
func (a *App) startLevel() {
	start, ok := a.world.LoadLevel(a.level)
	if !ok {
		// Undefined level: stay where we are.
		return
	}
	a.newBall(start.X, start.Y)
	a.leftTicks = 0
	a.rightTicks = 0
	a.jumpHeld = false
	a.wasInWater = false
}

// newBall replaces the ball, preserving customization and the save hook.
func (a *App) newBall(x, y float64) {
	custom := game.DefaultCustomization()
	if a.ball != nil {
		custom = a.ball.Custom
	} else if a.store != nil {
		custom = a.store.LoadCustomization()
	}
	a.ball = game.NewBall(x, y, custom)
	a.ball.OnChange(func(c game.Customization) {
		// Persistence failures are invisible in a fullscreen TUI; customization
		// still applies for this session.
		_ = a.store.SaveCustomization(c)
	})
}

// update advances the world by one frame while playing.
func (a *App) update() {
	if a.state != StatePlaying {
		return
	}

	if a.leftTicks > 0 {
		a.ball.MoveLeft()
		a.leftTicks--
	}
	if a.rightTicks > 0 {
		a.ball.MoveRight()
		a.rightTicks--
	}
	if a.jumpHeld {
		if a.ball.OnGround {
			a.ball.Jump()
			audio.PlayJump()
		}
		a.jumpHeld = false
	}

	prevVY := a.ball.VY

	outcome := a.world.FrameUpdate(a.ball)

	a.detectSoundEvents(prevVY)

	switch outcome {
	case game.OutcomeLevelComplete:
		a.completeLevel()
	case game.OutcomePlayerDead:
		a.loseLife()
	default:
		// Falling past the bottom of the world is a death the orchestrator
		// does not report.
		if a.ball.Y > float64(a.cfg.Height)+100 {
			a.loseLife()
		}
	}
}

// completeLevel scores the level and advances, ending the run after the
// last one.
func (a *App) completeLevel() {
	audio.PlayGoal()
	a.score += 100 * a.level

	if a.level >= config.MaxLevel {
		a.won = true
		a.endRun()
		return
	}
	a.level++
	a.startLevel()
}

// loseLife restarts the level or ends the run when no lives remain.
func (a *App) loseLife() {
	audio.PlayDeath()
	a.lives--
	if a.lives <= 0 {
		a.endRun()
		return
	}
	a.startLevel()
}

// endRun submits the score and shows the game-over screen.
func (a *App) endRun() {
	best, err := a.store.SubmitScore(a.score)
	if err == nil {
		a.highScore = best
	}
	a.state = StateGameOver
}

// detectSoundEvents derives bounce and splash sounds from frame deltas.
func (a *App) detectSoundEvents(prevVY float64) {
	// Vertical velocity flip with meaningful speed reads as a bounce.
	if (prevVY > 1 && a.ball.VY < 0) || (prevVY < -1 && a.ball.VY > 0) {
		audio.PlayBounce()
	}

	nowInWater := a.world.Level.InWater(a.ball)
	if nowInWater && !a.wasInWater {
		audio.PlaySplash()
	}
	a.wasInWater = nowInWater
}

// render calls the appropriate renderer method based on the current state.
func (a *App) render() {
	switch a.state {
	case StateMenu:
		a.renderer.RenderMenu(a.highScore)
	case StateCustomize:
		a.renderer.RenderCustomize(a.ball)
	case StateLevelSelect:
		a.renderer.RenderLevelSelect()
	case StatePlaying:
		a.renderer.RenderGame(a.world.Level, a.ball, ui.HUD{
			Level: a.level,
			Lives: a.lives,
			Score: a.score,
		})
	case StateGameOver:
		a.renderer.RenderGameOver(a.score, a.highScore, a.won)
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}

// nextSwatch returns the swatch after the current color, or the first one
// when the current color is not a swatch.
func nextSwatch(swatches []game.RGB, current game.RGB) game.RGB {
	for i, c := range swatches {
		if c == current {
			return swatches[(i+1)%len(swatches)]
		}
	}
	return swatches[0]
}
