package game

// PlatformKind distinguishes how a platform participates in physics.
type PlatformKind int

const (
	KindStatic PlatformKind = iota
	KindMoving
	KindWater
)

// Platform is a level rectangle. Moving platforms oscillate horizontally
// between RangeStartX and RangeEndX with direction encoded in the sign of
// Speed. Water platforms mark immersion regions and are never solid.
type Platform struct {
	Rect  Rect
	Kind  PlatformKind
	Color RGB

	RangeStartX float64
	RangeEndX   float64
	Speed       float64
}

// Enemy patrols horizontally between PatrolLow and PatrolHigh.
type Enemy struct {
	Rect       Rect
	Color      RGB
	PatrolLow  float64
	PatrolHigh float64
	Speed      float64
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// LevelDefinition is an immutable level blueprint. The playable levels live
// in the Levels table; LevelState takes its own copies on load.
type LevelDefinition struct {
	Platforms  []Platform
	Enemies    []Enemy
	Goal       Rect
	Start      Point
	Background RGB
}

// Contact is the result of goal and enemy proximity evaluation.
type Contact int

const (
	ContactNone Contact = iota
	ContactGoal
	ContactEnemy
)

// LevelState owns the mutable geometry of the currently loaded level. It is
// the only writer of its platform and enemy collections; the ball is passed
// in for collision queries and never mutated here.
type LevelState struct {
	Current    int
	Platforms  []Platform
	Enemies    []Enemy
	Goal       Rect
	Background RGB
}

func NewLevelState() *LevelState {
	return &LevelState{}
}

// Load replaces the active geometry with a fresh copy of the numbered
// level's blueprint and returns its start position. An unknown id leaves
// the state untouched and reports false.
func (ls *LevelState) Load(id int) (Point, bool) {
	def, ok := Levels[id]
	if !ok {
		return Point{}, false
	}

	ls.Current = id
	ls.Platforms = append([]Platform(nil), def.Platforms...)
	ls.Enemies = append([]Enemy(nil), def.Enemies...)
	ls.Goal = def.Goal
	ls.Background = def.Background
	return def.Start, true
}

// UpdateDynamics advances moving platforms and patrolling enemies by one
// frame. Both snap to their bound and reverse on reaching it; enemy speed
// normalizes to exactly ±1 at the bounds.
func (ls *LevelState) UpdateDynamics() {
	for i := range ls.Platforms {
		p := &ls.Platforms[i]
		if p.Kind != KindMoving {
			continue
		}
		p.Rect.X += p.Speed
		if p.Rect.X > p.RangeEndX {
			p.Rect.X = p.RangeEndX
			p.Speed = -p.Speed
		} else if p.Rect.X < p.RangeStartX {
			p.Rect.X = p.RangeStartX
			p.Speed = -p.Speed
		}
	}

	for i := range ls.Enemies {
		e := &ls.Enemies[i]
		e.Rect.X += e.Speed
		if e.Rect.X > e.PatrolHigh {
			e.Rect.X = e.PatrolHigh
			e.Speed = -1
		} else if e.Rect.X < e.PatrolLow {
			e.Rect.X = e.PatrolLow
			e.Speed = 1
		}
	}
}

// Contact reports goal or enemy proximity for the ball's current position.
// The goal is checked first; enemies follow in definition order with the
// first match short-circuiting.
func (ls *LevelState) Contact(b *Ball) Contact {
	if ls.Current == 0 {
		return ContactNone
	}
	if CircleNearRect(b.X, b.Y, b.Radius(), ls.Goal) {
		return ContactGoal
	}
	for i := range ls.Enemies {
		if CircleNearRect(b.X, b.Y, b.Radius(), ls.Enemies[i].Rect) {
			return ContactEnemy
		}
	}
	return ContactNone
}

// WaterPlatforms returns the water regions of the loaded level.
func (ls *LevelState) WaterPlatforms() []Platform {
	var water []Platform
	for _, p := range ls.Platforms {
		if p.Kind == KindWater {
			water = append(water, p)
		}
	}
	return water
}

// InWater reports whether the ball counts as immersed: its x within the
// platform's horizontal span and its bottom edge within the vertical span
// of any water platform.
func (ls *LevelState) InWater(b *Ball) bool {
	bottom := b.Y + b.Radius()
	for i := range ls.Platforms {
		p := &ls.Platforms[i]
		if p.Kind != KindWater {
			continue
		}
		if b.X >= p.Rect.X && b.X <= p.Rect.Right() &&
			bottom >= p.Rect.Y && bottom <= p.Rect.Bottom() {
			return true
		}
	}
	return false
}
