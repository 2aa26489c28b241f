package effects

import (
	"math"
	"math/rand/v2"
	"time"
)

// ConfettiDelay separates the centre burst from the two side cannons.
const ConfettiDelay = 150 * time.Millisecond

// ConfettiFrame is the simulation step used by the presentation layer.
const ConfettiFrame = time.Second / 30

// ConfettiColors are the particle colours of the celebration.
var ConfettiColors = []string{"#FF3366", "#33E1FF", "#33FF99", "#B833FF", "#FFD700"}

var confettiGlyphs = []rune{'*', '+', '•', '▪', '✦', '~'}

const (
	startVelocity = 2.4
	decay         = 0.9
	gravity       = 0.12
	// Cells are roughly twice as tall as they are wide.
	aspect       = 0.5
	particleLife = 60
)

// Burst describes one volley of particles. Angle is in degrees with 90
// pointing up; OriginX/OriginY are fractions of the screen.
type Burst struct {
	Count   int
	Angle   float64
	Spread  float64
	OriginX float64
	OriginY float64
}

// Particle is one piece of confetti in cell space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  string
	Glyph  rune
	Life   int
}

type scheduled struct {
	at     time.Duration
	bursts []Burst
}

// Confetti simulates the two-stage celebration: one wide burst from the
// lower middle of the screen, then a volley from each side.
type Confetti struct {
	width, height int
	rng           *rand.Rand

	elapsed   time.Duration
	queue     []scheduled
	particles []Particle
}

// NewConfetti creates an idle simulation for a width x height screen.
func NewConfetti(width, height int, seed uint64) *Confetti {
	return &Confetti{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Resize updates the screen dimensions.
func (c *Confetti) Resize(width, height int) {
	c.width, c.height = width, height
}

// Celebrate starts the two-stage burst.
func (c *Confetti) Celebrate() {
	c.elapsed = 0
	c.queue = append(c.queue[:0],
		scheduled{at: 0, bursts: []Burst{
			{Count: 100, Angle: 90, Spread: 70, OriginX: 0.5, OriginY: 0.6},
		}},
		scheduled{at: ConfettiDelay, bursts: []Burst{
			{Count: 50, Angle: 60, Spread: 55, OriginX: 0, OriginY: 0.5},
			{Count: 50, Angle: 120, Spread: 55, OriginX: 1, OriginY: 0.5},
		}},
	)
	c.fireDue()
}

// Active reports whether anything is still on screen or scheduled.
func (c *Confetti) Active() bool {
	return len(c.particles) > 0 || len(c.queue) > 0
}

// Particles returns the live particles.
func (c *Confetti) Particles() []Particle {
	return c.particles
}

// Step advances the simulation by dt.
func (c *Confetti) Step(dt time.Duration) {
	c.elapsed += dt
	c.fireDue()

	live := c.particles[:0]
	for _, p := range c.particles {
		p.VX *= decay
		p.VY = p.VY*decay + gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 || p.Y >= float64(c.height) || p.X < -1 || p.X > float64(c.width) {
			continue
		}
		live = append(live, p)
	}
	c.particles = live
}

func (c *Confetti) fireDue() {
	rest := c.queue[:0]
	for _, s := range c.queue {
		if s.at > c.elapsed {
			rest = append(rest, s)
			continue
		}
		for _, b := range s.bursts {
			c.fire(b)
		}
	}
	c.queue = rest
}

func (c *Confetti) fire(b Burst) {
	ox := b.OriginX * float64(c.width)
	oy := b.OriginY * float64(c.height)
	for range b.Count {
		angle := (b.Angle + (0.5*b.Spread - c.rng.Float64()*b.Spread)) * math.Pi / 180
		v := startVelocity*0.5 + c.rng.Float64()*startVelocity
		c.particles = append(c.particles, Particle{
			X:     ox,
			Y:     oy,
			VX:    math.Cos(angle) * v,
			VY:    -math.Sin(angle) * v * aspect,
			Color: ConfettiColors[c.rng.IntN(len(ConfettiColors))],
			Glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
			Life:  particleLife/2 + c.rng.IntN(particleLife/2),
		})
	}
}
