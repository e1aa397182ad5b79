package game

import (
	"math"
	"math/rand"
)

// Particle represents a single point of the constellation field
type Particle struct {
	X, Y   float64 // position in viewport pixels
	VX, VY float64 // velocity in pixels per frame
	Size   float64 // radius in pixels, fixed at creation
}

// Update advances the particle one frame and reflects it off the surface
// bounds. The position is not clamped, so a particle may sit up to one
// frame's velocity outside the surface before it turns back.
func (p *Particle) Update(width, height float64) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}
}

// Field owns the particles and the drawing surface size they move within
type Field struct {
	particles    []Particle
	width        float64
	height       float64
	linkDistance float64
	pairChecks   int // pairs evaluated by the last Links pass
}

// NewField creates count particles at uniformly random positions inside
// the width x height surface using the ranges from cfg.
func NewField(cfg Config, width, height float64, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	f := &Field{
		particles:    make([]Particle, 0, cfg.ParticleCount),
		width:        width,
		height:       height,
		linkDistance: cfg.LinkDistance,
	}
	for i := 0; i < cfg.ParticleCount; i++ {
		f.particles = append(f.particles, Particle{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			VX:   (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
			VY:   (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
			Size: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		})
	}
	return f
}

// NewFieldFromParticles creates a field around an existing particle set.
func NewFieldFromParticles(particles []Particle, width, height, linkDistance float64) *Field {
	return &Field{
		particles:    particles,
		width:        width,
		height:       height,
		linkDistance: linkDistance,
	}
}

// Resize changes the surface size. Particles keep their positions and are
// only affected through the reflection rule on later ticks.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Size returns the current surface size
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Particles exposes the particle slice. Callers must not retain it across frames.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the particle count
func (f *Field) Len() int {
	return len(f.particles)
}

// Tick advances every particle by one frame
func (f *Field) Tick() {
	for i := range f.particles {
		f.particles[i].Update(f.width, f.height)
	}
}

// Links calls fn for every unordered pair closer than the link distance.
// Each pair is evaluated once, with i < j.
func (f *Field) Links(fn func(a, b *Particle)) {
	checks := 0
	for i := range f.particles {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			checks++
			if math.Hypot(a.X-b.X, a.Y-b.Y) < f.linkDistance {
				fn(a, b)
			}
		}
	}
	f.pairChecks = checks
}

// PairChecks returns how many pairs the last Links pass evaluated
func (f *Field) PairChecks() int {
	return f.pairChecks
}
