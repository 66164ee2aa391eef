// Package particles implements the ambient particle field drawn behind the
// board. Particles drift, scatter away from the pointer and wrap around the
// edges; eating food briefly speeds them up.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snakefield/internal/config"
	"github.com/vovakirdan/snakefield/internal/core"
)

// Config holds field parameters in terminal cells and frames.
type Config struct {
	Count       int
	MinSize     int
	MaxSize     int
	Speed       float64 // Velocity range per axis; each component is in [-Speed/2, Speed/2)
	MouseRadius float64
	BoostFactor float64
	BoostFrames int
}

// DefaultConfig matches the default YAML at 30 frames per second.
func DefaultConfig() Config {
	return FromFileConfig(config.DefaultSnakeConfig().Particles, core.DefaultConfig().FrameRate)
}

// FromFileConfig converts the YAML particle section. The boost duration is
// turned into a frame count at the given frame rate, at least one frame.
func FromFileConfig(pc config.ParticlesConfig, fps int) Config {
	frames := 0
	if pc.BoostMS > 0 {
		frames = max(int(math.Ceil(float64(pc.BoostMS)*float64(fps)/1000)), 1)
	}
	return Config{
		Count:       pc.Count,
		MinSize:     pc.MinSize,
		MaxSize:     pc.MaxSize,
		Speed:       pc.Speed,
		MouseRadius: pc.MouseRadius,
		BoostFactor: pc.BoostFactor,
		BoostFrames: frames,
	}
}

// Particle is a single drifting dot. Velocity is never scaled in place, so
// a boost always ends at exactly the original speed.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   int
}

// Field is the particle system. It is not safe for concurrent use; the
// front-end owns it and calls it from its update loop.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	w, h      float64
	particles []Particle

	pointerX, pointerY float64
	hasPointer         bool

	boostLeft int
}

// New creates a field of cfg.Count particles spread over w×h cells.
func New(cfg Config, w, h int, seed int64) *Field {
	f := &Field{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		w:   float64(max(w, 0)),
		h:   float64(max(h, 0)),
	}
	f.particles = make([]Particle, cfg.Count)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
	return f
}

func (f *Field) spawn() Particle {
	sizes := max(f.cfg.MaxSize-f.cfg.MinSize+1, 1)
	return Particle{
		X:    f.rng.Float64() * f.w,
		Y:    f.rng.Float64() * f.h,
		VX:   (f.rng.Float64() - 0.5) * f.cfg.Speed,
		VY:   (f.rng.Float64() - 0.5) * f.cfg.Speed,
		Size: f.cfg.MinSize + f.rng.Intn(sizes),
	}
}

// Resize changes the field area. Particles outside the new area are moved
// back in by wrapping.
func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(max(w, 0)), float64(max(h, 0))
	for i := range f.particles {
		p := &f.particles[i]
		if f.w > 0 {
			p.X = math.Mod(p.X, f.w)
		}
		if f.h > 0 {
			p.Y = math.Mod(p.Y, f.h)
		}
	}
}

// SetPointer sets the repulsion point.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY, f.hasPointer = x, y, true
}

// ClearPointer removes the repulsion point.
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Boost speeds all particles up by BoostFactor for BoostFrames frames. A
// boost during a boost restarts the countdown without compounding.
func (f *Field) Boost() {
	f.boostLeft = f.cfg.BoostFrames
}

// Boosted reports whether a boost is in effect.
func (f *Field) Boosted() bool {
	return f.boostLeft > 0
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	factor := 1.0
	if f.boostLeft > 0 {
		factor = f.cfg.BoostFactor
		f.boostLeft--
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * factor
		p.Y += p.VY * factor

		if f.hasPointer {
			dx := p.X - f.pointerX
			dy := p.Y - f.pointerY
			// Rows are about twice as tall as columns are wide
			if math.Hypot(dx, dy*2) < f.cfg.MouseRadius {
				p.X += dx / 10
				p.Y += dy / 10
			}
		}

		p.X = core.WrapF(p.X, f.w)
		p.Y = core.WrapF(p.Y, f.h)
	}
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

var glyphs = []rune{'.', '·', '•'}

// Render draws the field into dst. Particles on the far edge after wrapping
// are not drawn.
func (f *Field) Render(dst *core.Screen) {
	color := core.ColorDimCyan
	if f.boostLeft > 0 {
		color = core.ColorBrightCyan
	}
	for _, p := range f.particles {
		x, y := int(p.X), int(p.Y)
		if x >= dst.Width() || y >= dst.Height() {
			continue
		}
		g := glyphs[core.Clamp(p.Size-1, 0, len(glyphs)-1)]
		dst.SetColored(x, y, g, color)
	}
}
