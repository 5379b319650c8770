package game

import "math"

// Physics constants, in pixels per frame at the fixed tick rate.
const (
	MaxSpeedX    = 12.0
	Acceleration = 0.8
	Friction     = 0.9
	JumpSpeed    = -15.0
)

// Legal ranges for the clamping customization mutators.
const (
	MinSize     = 10
	MaxSize     = 50
	MinBounce   = 0.1
	MaxBounce   = 1.0
	MinOpacity  = 0
	MaxOpacity  = 255
	MinGlowSize = 1.0
	MaxGlowSize = 2.5
)

// RGB is a color triple used for customization and level cosmetics.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Texture enumerates the ball fill styles.
type Texture int

const (
	TextureSolid Texture = iota
	TextureStriped
	TextureGradient
	TexturePolka

	textureCount = 4
)

func (t Texture) String() string {
	switch t {
	case TextureStriped:
		return "striped"
	case TextureGradient:
		return "gradient"
	case TexturePolka:
		return "polka"
	default:
		return "solid"
	}
}

// MarshalText stores textures by name in the persisted blob.
func (t Texture) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the known texture names and silently falls back to
// solid for anything else, so a hand-edited save file never fails to load.
func (t *Texture) UnmarshalText(text []byte) error {
	switch string(text) {
	case "striped":
		*t = TextureStriped
	case "gradient":
		*t = TextureGradient
	case "polka":
		*t = TexturePolka
	default:
		*t = TextureSolid
	}
	return nil
}

// Customization is the ball's persisted appearance and feel.
type Customization struct {
	Color        RGB     `json:"color"`
	PatternColor RGB     `json:"pattern_color"`
	Size         int     `json:"size"`
	Texture      Texture `json:"texture"`
	BounceFactor float64 `json:"bounce_factor"`
	Opacity      int     `json:"opacity"`
	Glow         bool    `json:"glow"`
	GlowColor    RGB     `json:"glow_color"`
	GlowSize     float64 `json:"glow_size"`
}

// DefaultCustomization returns the factory appearance.
func DefaultCustomization() Customization {
	return Customization{
		Color:        RGB{255, 0, 0},
		PatternColor: RGB{255, 255, 255},
		Size:         20,
		Texture:      TextureSolid,
		BounceFactor: 0.7,
		Opacity:      255,
		GlowColor:    RGB{255, 255, 200},
		GlowSize:     1.5,
	}
}

// Clamp forces every numeric field into its legal range. Applied to loaded
// save data so out-of-range values degrade instead of breaking physics.
func (c *Customization) Clamp() {
	c.Size = clampInt(c.Size, MinSize, MaxSize)
	c.BounceFactor = clampFloat(c.BounceFactor, MinBounce, MaxBounce)
	c.Opacity = clampInt(c.Opacity, MinOpacity, MaxOpacity)
	c.GlowSize = clampFloat(c.GlowSize, MinGlowSize, MaxGlowSize)
	if c.Texture < 0 || c.Texture >= textureCount {
		c.Texture = TextureSolid
	}
}

// Ball is the player-controlled physics body.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	OnGround bool

	Custom Customization

	onChange func(Customization)
}

// NewBall creates a ball at the given start position with the given
// customization, clamped into range.
func NewBall(x, y float64, custom Customization) *Ball {
	custom.Clamp()
	return &Ball{X: x, Y: y, Custom: custom}
}

// OnChange registers a hook invoked after every customization mutation,
// used by the host to persist settings.
func (b *Ball) OnChange(fn func(Customization)) {
	b.onChange = fn
}

// Radius returns the ball's collision radius.
func (b *Ball) Radius() float64 {
	return float64(b.Custom.Size)
}

// Step advances the ball by one frame against the given platforms. Water
// platforms only mark immersion regions and are skipped during resolution;
// immersion itself is decided by the caller before the step.
func (b *Ball) Step(env Env, platforms []Platform, inWater bool) {
	gravity := env.Gravity
	if inWater {
		gravity *= 0.5
	}
	b.VY += gravity

	if b.OnGround {
		b.VX *= Friction
	}

	b.X += b.VX
	b.Y += b.VY

	b.OnGround = false
	for i := range platforms {
		if platforms[i].Kind == KindWater {
			continue
		}
		b.resolve(platforms[i].Rect)
	}

	b.clampToBounds(env)
}

// resolve pushes the ball out of a single platform. Step never exits early,
// so when platforms overlap the last one in definition order wins.
func (b *Ball) resolve(rect Rect) {
	hit, ok := ResolveCircleRect(b.X, b.Y, b.Radius(), rect)
	if !ok {
		return
	}

	switch hit.Side {
	case SideTop:
		b.Y = rect.Y - b.Radius()
		b.VY = -b.VY * b.Custom.BounceFactor
		b.OnGround = true
	case SideBottom:
		b.Y = rect.Bottom() + b.Radius()
		b.VY = -b.VY * 0.5
	case SideLeft:
		b.X = rect.X - b.Radius()
		b.VX *= -0.5
	case SideRight:
		b.X = rect.Right() + b.Radius()
		b.VX *= -0.5
	}
}

// clampToBounds keeps the ball inside the world. The floor behaves like a
// platform top; the ceiling kills vertical velocity.
func (b *Ball) clampToBounds(env Env) {
	r := b.Radius()

	if b.X < r {
		b.X = r
		b.VX *= -0.5
	} else if b.X > env.Width-r {
		b.X = env.Width - r
		b.VX *= -0.5
	}

	if b.Y < r {
		b.Y = r
		b.VY = 0
	} else if b.Y > env.Height-r {
		b.Y = env.Height - r
		b.VY = -b.VY * b.Custom.BounceFactor
		b.OnGround = true
	}
}

// MoveLeft accelerates the ball left. Acceleration saturates rather than
// clamps: the final call below the cap can push speed slightly past
// MaxSpeedX.
func (b *Ball) MoveLeft() {
	if math.Abs(b.VX) < MaxSpeedX {
		b.VX -= Acceleration
	}
}

// MoveRight accelerates the ball right, saturating like MoveLeft.
func (b *Ball) MoveRight() {
	if math.Abs(b.VX) < MaxSpeedX {
		b.VX += Acceleration
	}
}

// Jump launches the ball upward when it has ground contact.
func (b *Ball) Jump() {
	if b.OnGround {
		b.VY = JumpSpeed
		b.OnGround = false
	}
}

// SetSize sets the ball radius, clamped to [MinSize, MaxSize].
func (b *Ball) SetSize(size int) {
	b.Custom.Size = clampInt(size, MinSize, MaxSize)
	b.changed()
}

// SetBounce sets the bounce factor, clamped to [MinBounce, MaxBounce].
func (b *Ball) SetBounce(factor float64) {
	b.Custom.BounceFactor = clampFloat(factor, MinBounce, MaxBounce)
	b.changed()
}

// SetOpacity sets the fill opacity, clamped to [0, 255].
func (b *Ball) SetOpacity(value int) {
	b.Custom.Opacity = clampInt(value, MinOpacity, MaxOpacity)
	b.changed()
}

// SetGlowSize sets the glow radius multiplier, clamped to [1.0, 2.5].
func (b *Ball) SetGlowSize(size float64) {
	b.Custom.GlowSize = clampFloat(size, MinGlowSize, MaxGlowSize)
	b.changed()
}

// SetTexture sets the fill style; unknown values are ignored.
func (b *Ball) SetTexture(t Texture) {
	if t < 0 || t >= textureCount {
		return
	}
	b.Custom.Texture = t
	b.changed()
}

// NextTexture cycles to the next fill style.
func (b *Ball) NextTexture() {
	b.SetTexture((b.Custom.Texture + 1) % textureCount)
}

// SetColor sets the primary color.
func (b *Ball) SetColor(c RGB) {
	b.Custom.Color = c
	b.changed()
}

// SetPatternColor sets the secondary color used by striped and polka fills.
func (b *Ball) SetPatternColor(c RGB) {
	b.Custom.PatternColor = c
	b.changed()
}

// ToggleGlow flips the glow effect.
func (b *Ball) ToggleGlow() {
	b.Custom.Glow = !b.Custom.Glow
	b.changed()
}

func (b *Ball) changed() {
	if b.onChange != nil {
		b.onChange(b.Custom)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
