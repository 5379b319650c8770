package game

import "testing"

func newTestWorld() *World {
	return NewWorld(testEnv)
}

func TestWorld_LoadLevel(t *testing.T) {
	w := newTestWorld()

	start, ok := w.LoadLevel(2)
	if !ok {
		t.Fatal("expected level 2 to load")
	}
	if start.X != 150 || start.Y != 400 {
		t.Errorf("expected start (150,400), got (%f,%f)", start.X, start.Y)
	}

	if _, ok := w.LoadLevel(99); ok {
		t.Error("expected unknown level to fail")
	}
	if w.Level.Current != 2 {
		t.Errorf("failed load should leave the level untouched, got %d", w.Level.Current)
	}
}

func TestWorld_GoalOutcome(t *testing.T) {
	w := newTestWorld()
	w.LoadLevel(1)

	// Goal zone is (150,150,50,50); one frame of gravity keeps the ball
	// well within proximity range.
	ball := newTestBall(150, 150)
	if got := w.FrameUpdate(ball); got != OutcomeLevelComplete {
		t.Errorf("expected OutcomeLevelComplete at the goal, got %d", got)
	}
}

func TestWorld_EnemyOutcome(t *testing.T) {
	w := newTestWorld()
	w.LoadLevel(2)

	enemy := w.Level.Enemies[0]
	ball := newTestBall(enemy.Rect.CenterX(), enemy.Rect.CenterY())

	if got := w.FrameUpdate(ball); got != OutcomePlayerDead {
		t.Errorf("expected OutcomePlayerDead on the enemy, got %d", got)
	}
}

func TestWorld_NoneOutcome(t *testing.T) {
	w := newTestWorld()
	w.LoadLevel(1)

	ball := newTestBall(400, 100)
	if got := w.FrameUpdate(ball); got != OutcomeNone {
		t.Errorf("expected OutcomeNone in open air, got %d", got)
	}
}

func TestWorld_ImmersionUsesPreviousFramePosition(t *testing.T) {
	w := newTestWorld()
	w.LoadLevel(2) // water at {0,500,800,50}

	// Ball starts immersed (bottom edge at 505): this frame runs on half
	// gravity even though integration moves the ball further down.
	ball := newTestBall(400, 485)
	w.FrameUpdate(ball)
	if ball.VY != 0.4 {
		t.Errorf("expected half gravity for an immersed frame, got VY=%f", ball.VY)
	}

	// Ball starting just above the water gets full gravity this frame.
	dry := newTestBall(400, 470)
	w2 := newTestWorld()
	w2.LoadLevel(2)
	w2.FrameUpdate(dry)
	if dry.VY != 0.8 {
		t.Errorf("expected full gravity above water, got VY=%f", dry.VY)
	}
}

func TestWorld_FrameAdvancesDynamics(t *testing.T) {
	w := newTestWorld()
	w.LoadLevel(3)

	var movingX float64
	for i := range w.Level.Platforms {
		if w.Level.Platforms[i].Kind == KindMoving {
			movingX = w.Level.Platforms[i].Rect.X
		}
	}
	enemyX := w.Level.Enemies[0].Rect.X

	ball := newTestBall(100, 100)
	w.FrameUpdate(ball)

	for i := range w.Level.Platforms {
		p := w.Level.Platforms[i]
		if p.Kind == KindMoving && p.Rect.X != movingX+1 {
			t.Errorf("expected moving platform advanced by one speed step, got %f from %f",
				p.Rect.X, movingX)
		}
	}
	if w.Level.Enemies[0].Rect.X != enemyX+1 {
		t.Errorf("expected enemy advanced by 1, got %f from %f",
			w.Level.Enemies[0].Rect.X, enemyX)
	}
}

func TestWorld_FellOffWorldIsNotAnOutcome(t *testing.T) {
	// The orchestrator never reports a fall; the host checks the ball's
	// height separately.
	w := newTestWorld()
	w.LoadLevel(1)

	ball := newTestBall(700, 100)
	ball.VY = 50
	for i := 0; i < 10; i++ {
		if got := w.FrameUpdate(ball); got == OutcomePlayerDead {
			t.Fatalf("frame %d: falling must not produce OutcomePlayerDead", i)
		}
	}
}
