package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixbounce/internal/game"
)

const (
	PlatformChar = '█'
	WaterChar    = '≈'
	GoalChar     = '▒'
	EnemyChar    = '▲'
	BallChar     = '●'
	GlowChar     = '·'
)

// HUD is the in-game status line content.
type HUD struct {
	Level int
	Lives int
	Score int
}

// Renderer draws all game screens, mapping world coordinates to terminal
// cells.
type Renderer struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewRenderer creates a renderer for a world of the given size in pixels.
func NewRenderer(screen *Screen, worldW, worldH float64) *Renderer {
	return &Renderer{screen: screen, worldW: worldW, worldH: worldH}
}

// RenderMenu displays the main menu with the persisted high score.
func (r *Renderer) RenderMenu(highScore int) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "=== PIXBOUNCE ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(title))/2, 2, title, titleStyle)

	items := []struct {
		text  string
		color tcell.Color
	}{
		{"1. Start Game", tcell.ColorGreen},
		{"2. Select Level", tcell.ColorBlue},
		{"3. Customize Ball", tcell.ColorPurple},
		{"4. Quit", tcell.ColorRed},
	}
	for i, item := range items {
		style := tcell.StyleDefault.Foreground(item.color)
		r.screen.DrawText((screenW-len(item.text))/2, 5+i*2, item.text, style)
	}

	if highScore > 0 {
		scoreText := fmt.Sprintf("High Score: %d", highScore)
		scoreStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		r.screen.DrawText((screenW-len(scoreText))/2, 14, scoreText, scoreStyle)
	}

	quitText := "Press a number key, or 'q' to quit"
	r.screen.DrawText((screenW-len(quitText))/2, screenH-2, quitText,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderLevelSelect displays the level chooser.
func (r *Renderer) RenderLevelSelect() {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "=== SELECT LEVEL ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(title))/2, 2, title, titleStyle)

	names := []string{"1. Green Hills", "2. Waterline", "3. Clockwork"}
	for i, name := range names {
		style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
		r.screen.DrawText((screenW-len(name))/2, 5+i*2, name, style)
	}

	hint := "Press 1-3 to play, ESC for menu"
	r.screen.DrawText((screenW-len(hint))/2, screenH-2, hint,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderCustomize displays the ball customization screen with a live
// preview.
func (r *Renderer) RenderCustomize(ball *game.Ball) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	c := ball.Custom

	title := "=== CUSTOMIZE BALL ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(title))/2, 1, title, titleStyle)

	// Preview box with the ball drawn at a fixed size.
	boxW, boxH := 20, 9
	boxX := (screenW - boxW) / 2
	r.screen.DrawBox(boxX, 3, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.drawBallCells(boxX+boxW/2, 3+boxH/2, 4, 2, game.RGB{}, c)

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	valueStyle := tcell.StyleDefault.Foreground(ColorOf(c.Color))

	rows := []struct {
		label string
		value string
	}{
		{"Size      -/+", fmt.Sprintf("%d", c.Size)},
		{"Bounce    [/]", fmt.Sprintf("%.0f%%", c.BounceFactor*100)},
		{"Opacity   ,/.", fmt.Sprintf("%.0f%%", float64(c.Opacity)/255*100)},
		{"Texture   t", c.Texture.String()},
		{"Glow      g", map[bool]string{true: "on", false: "off"}[c.Glow]},
		{"Glow size ;/'", fmt.Sprintf("%.1f", c.GlowSize)},
		{"Color     c", ""},
		{"Pattern   p", ""},
	}
	startY := 13
	for i, row := range rows {
		r.screen.DrawText(boxX-4, startY+i, row.label, labelStyle)
		r.screen.DrawText(boxX+14, startY+i, row.value, valueStyle)
	}

	// Swatches for the two color rows.
	for i, sc := range SwatchColors {
		style := tcell.StyleDefault.Foreground(ColorOf(sc))
		if sc == c.Color {
			style = style.Bold(true).Underline(true)
		}
		r.screen.SetCell(boxX+14+i*2, startY+6, style, PlatformChar)
	}
	for i, sc := range PatternSwatchColors {
		style := tcell.StyleDefault.Foreground(ColorOf(sc))
		if sc == c.PatternColor {
			style = style.Bold(true).Underline(true)
		}
		r.screen.SetCell(boxX+14+i*2, startY+7, style, PlatformChar)
	}

	hint := "ESC for menu, ENTER to play"
	r.screen.DrawText((screenW-len(hint))/2, screenH-2, hint,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderGame draws the loaded level, the ball and the HUD.
func (r *Renderer) RenderGame(level *game.LevelState, ball *game.Ball, hud HUD) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Row 0 is the HUD; the rest maps the world.
	scaleX := float64(screenW) / r.worldW
	scaleY := float64(screenH-1) / r.worldH

	bgStyle := tcell.StyleDefault.Background(ColorOf(level.Background))
	r.screen.FillRect(0, 1, screenW, screenH-1, bgStyle, ' ')

	for i := range level.Platforms {
		p := &level.Platforms[i]
		ch := PlatformChar
		if p.Kind == game.KindWater {
			ch = WaterChar
		}
		r.fillWorldRect(p.Rect, scaleX, scaleY, tcell.StyleDefault.Foreground(ColorOf(p.Color)).Background(ColorOf(level.Background)), ch)
	}

	goalStyle := tcell.StyleDefault.Foreground(ColorOf(game.GoalColor)).Background(ColorOf(level.Background))
	r.fillWorldRect(level.Goal, scaleX, scaleY, goalStyle, GoalChar)

	for i := range level.Enemies {
		e := &level.Enemies[i]
		style := tcell.StyleDefault.Foreground(ColorOf(e.Color)).Background(ColorOf(level.Background))
		r.fillWorldRect(e.Rect, scaleX, scaleY, style, EnemyChar)
	}

	// Ball, with texture and glow.
	cx := int(ball.X * scaleX)
	cy := int(ball.Y*scaleY) + 1
	rx := int(ball.Radius() * scaleX)
	ry := int(ball.Radius() * scaleY)
	r.drawBallCells(cx, cy, rx, ry, level.Background, ball.Custom)

	// HUD row.
	hudStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, 0, screenW, 1, hudStyle, ' ')
	hudText := fmt.Sprintf(" Level %d | Lives %d | Score %06d | R reset | ESC menu", hud.Level, hud.Lives, hud.Score)
	r.screen.DrawText(0, 0, hudText, hudStyle)

	r.screen.Show()
}

// RenderGameOver displays the final screen with scores.
func (r *Renderer) RenderGameOver(score, highScore int, won bool) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "=== GAME OVER ==="
	color := tcell.ColorRed
	if won {
		title = "=== YOU WIN ==="
		color = tcell.ColorGreen
	}
	r.screen.DrawText((screenW-len(title))/2, screenH/2-3, title,
		tcell.StyleDefault.Bold(true).Foreground(color))

	scoreText := fmt.Sprintf("Score: %d", score)
	r.screen.DrawText((screenW-len(scoreText))/2, screenH/2-1, scoreText,
		tcell.StyleDefault.Foreground(tcell.ColorWhite))

	highText := fmt.Sprintf("High Score: %d", highScore)
	r.screen.DrawText((screenW-len(highText))/2, screenH/2, highText,
		tcell.StyleDefault.Foreground(tcell.ColorYellow))

	hint := "Press ENTER to return to menu"
	r.screen.DrawText((screenW-len(hint))/2, screenH/2+3, hint,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// fillWorldRect fills a world-space rectangle, scaled to cells. Degenerate
// scaled rects still paint one cell so thin platforms stay visible.
func (r *Renderer) fillWorldRect(rect game.Rect, scaleX, scaleY float64, style tcell.Style, ch rune) {
	x := int(rect.X * scaleX)
	y := int(rect.Y*scaleY) + 1
	w := int(rect.W * scaleX)
	h := int(rect.H * scaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.screen.FillRect(x, y, w, h, style, ch)
}

// drawBallCells paints the ball as a filled ellipse of cells with the
// customization texture, plus a glow ring when enabled.
func (r *Renderer) drawBallCells(cx, cy, rx, ry int, background game.RGB, c game.Customization) {
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}

	base := Dim(c.Color, background, c.Opacity)

	if c.Glow {
		gx := int(float64(rx) * c.GlowSize)
		gy := int(float64(ry) * c.GlowSize)
		glowStyle := tcell.StyleDefault.Foreground(Lighten(c.GlowColor, 0.2))
		for dy := -gy; dy <= gy; dy++ {
			for dx := -gx; dx <= gx; dx++ {
				inner := norm(dx, dy, rx, ry)
				outer := norm(dx, dy, gx, gy)
				if inner > 1 && outer <= 1 {
					r.screen.SetCell(cx+dx, cy+dy, glowStyle, GlowChar)
				}
			}
		}
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			d := norm(dx, dy, rx, ry)
			if d > 1 {
				continue
			}

			style := tcell.StyleDefault.Foreground(base)
			switch c.Texture {
			case game.TextureStriped:
				if dy%2 == 0 {
					style = tcell.StyleDefault.Foreground(Lighten(c.Color, 0.3))
				}
			case game.TextureGradient:
				style = tcell.StyleDefault.Foreground(Darken(c.Color, d*0.7))
			case game.TexturePolka:
				if d > 0.5 && (dx+dy)%2 == 0 {
					style = tcell.StyleDefault.Foreground(ColorOf(c.PatternColor))
				}
			}
			r.screen.SetCell(cx+dx, cy+dy, style, BallChar)
		}
	}
}

// norm returns the normalized elliptical distance of a cell offset.
func norm(dx, dy, rx, ry int) float64 {
	nx := float64(dx) / float64(rx)
	ny := float64(dy) / float64(ry)
	return math.Sqrt(nx*nx + ny*ny)
}
