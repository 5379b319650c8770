package game

// Env holds the host-supplied world configuration: world size in pixels and
// the gravity constant in pixels per frame squared.
type Env struct {
	Gravity float64
	Width   float64
	Height  float64
}

// Outcome is the caller-visible result of one frame.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLevelComplete
	OutcomePlayerDead
)

// World is the per-frame orchestrator: immersion query, ball integration,
// dynamic geometry update, then goal/enemy evaluation, in that order.
// Everything is synchronous; one FrameUpdate call per rendered frame.
type World struct {
	Env   Env
	Level *LevelState
}

func NewWorld(env Env) *World {
	return &World{Env: env, Level: NewLevelState()}
}

// LoadLevel loads the numbered level and returns its start position, or
// false for an unknown id.
func (w *World) LoadLevel(id int) (Point, bool) {
	return w.Level.Load(id)
}

// FrameUpdate advances the world one frame. The immersion flag is computed
// from the ball's previous-frame position, before integration moves it. The
// full platform list is passed to the step; the ball skips water platforms
// during resolution itself.
func (w *World) FrameUpdate(b *Ball) Outcome {
	inWater := w.Level.InWater(b)
	b.Step(w.Env, w.Level.Platforms, inWater)
	w.Level.UpdateDynamics()

	switch w.Level.Contact(b) {
	case ContactGoal:
		return OutcomeLevelComplete
	case ContactEnemy:
		return OutcomePlayerDead
	}
	return OutcomeNone
}
