package game

// Shared level palette.
var (
	grassGreen = RGB{0, 200, 0}
	dirtBrown  = RGB{139, 69, 19}
	waterBlue  = RGB{64, 164, 223}
	exitRed    = RGB{200, 0, 0}
	enemyRed   = RGB{255, 0, 0}
)

// GoalColor is the cosmetic color of every goal zone.
var GoalColor = RGB{255, 215, 0}

// MaxLevel is the highest playable level id.
const MaxLevel = 3

// Levels is the static table of playable levels, keyed by level id.
var Levels = map[int]LevelDefinition{
	// Level 1: staircase of basic platforms up to the goal.
	1: {
		Platforms: []Platform{
			{Rect: Rect{0, 500, 300, 20}, Color: grassGreen},
			{Rect: Rect{400, 500, 400, 20}, Color: grassGreen},
			{Rect: Rect{200, 400, 200, 20}, Color: grassGreen},
			{Rect: Rect{500, 300, 200, 20}, Color: grassGreen},
			{Rect: Rect{100, 200, 200, 20}, Color: grassGreen},
		},
		Goal:       Rect{150, 150, 50, 50},
		Start:      Point{100, 50},
		Background: RGB{135, 206, 235},
	},

	// Level 2: water over the ground, floating platforms, one patroller.
	2: {
		Platforms: []Platform{
			{Rect: Rect{0, 550, 800, 50}, Color: dirtBrown},
			{Rect: Rect{100, 450, 100, 20}, Color: grassGreen},
			{Rect: Rect{300, 400, 100, 20}, Color: grassGreen},
			{Rect: Rect{500, 350, 100, 20}, Color: grassGreen},
			{Rect: Rect{0, 500, 800, 50}, Kind: KindWater, Color: waterBlue},
			{Rect: Rect{650, 300, 100, 20}, Color: exitRed},
		},
		Enemies: []Enemy{
			{Rect: Rect{200, 430, 30, 20}, Color: enemyRed, PatrolLow: 150, PatrolHigh: 250, Speed: 1},
		},
		Goal:       Rect{675, 250, 50, 50},
		Start:      Point{150, 400},
		Background: RGB{100, 149, 237},
	},

	// Level 3: gapped ground, a moving platform and two patrollers.
	3: {
		Platforms: []Platform{
			{Rect: Rect{0, 550, 200, 50}, Color: dirtBrown},
			{Rect: Rect{300, 550, 200, 50}, Color: dirtBrown},
			{Rect: Rect{600, 550, 200, 50}, Color: dirtBrown},
			{Rect: Rect{100, 450, 100, 20}, Color: grassGreen},
			{Rect: Rect{300, 400, 100, 20}, Color: grassGreen},
			{Rect: Rect{500, 350, 100, 20}, Color: grassGreen},
			{Rect: Rect{200, 300, 100, 20}, Kind: KindMoving, Color: grassGreen, RangeStartX: 200, RangeEndX: 400, Speed: 1},
			{Rect: Rect{650, 200, 100, 20}, Color: exitRed},
		},
		Enemies: []Enemy{
			{Rect: Rect{400, 530, 30, 20}, Color: enemyRed, PatrolLow: 350, PatrolHigh: 450, Speed: 1},
			{Rect: Rect{600, 400, 30, 20}, Color: enemyRed, PatrolLow: 550, PatrolHigh: 650, Speed: 1},
		},
		Goal:       Rect{675, 150, 50, 50},
		Start:      Point{100, 400},
		Background: RGB{47, 79, 79},
	},
}
