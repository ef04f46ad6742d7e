package faros

import (
	"math"
	"math/rand/v2"
)

// Particle simulation constants. Velocities are in pixels per 16 ms step.
const (
	particleGravity  = 0.1
	particleFriction = 0.99
	particleBounce   = -0.8
	particleStepMs   = 16.0

	// lifeEpsilon absorbs float drift so that N decays of 1/N end a life.
	lifeEpsilon = 1e-9
)

var (
	particleDecay = Range{Min: 0.01, Max: 0.03}
	particleSize  = Range{Min: 2, Max: 6}
)

// Particle is a short-lived colored dot with simple kinematics.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// Life starts at 1 and drops by Decay every update.
	Life  float64
	Decay float64
	Size  float64
	Color Color
}

// NewParticle creates a particle at (x, y) with velocity (vx, vy) and a
// random decay, size and bluish tint drawn from rng.
func NewParticle(x, y, vx, vy float64, rng *rand.Rand) Particle {
	return Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Life:  1,
		Decay: particleDecay.Random(rng),
		Size:  particleSize.Random(rng),
		Color: Color{
			R: (100 + rng.Float64()*155) / 255,
			G: (100 + rng.Float64()*155) / 255,
			B: (200 + rng.Float64()*55) / 255,
			A: 1,
		},
	}
}

// Alive reports whether the particle has life left.
func (p *Particle) Alive() bool {
	return p.Life > lifeEpsilon
}

// Update advances the particle by dt seconds inside a w×h area. Particles
// leaving the area bounce back with damping and are clamped to its edges.
func (p *Particle) Update(dt, w, h float64) {
	step := dt * 1000 / particleStepMs
	p.X += p.VX * step
	p.Y += p.VY * step
	p.Life = math.Max(p.Life-p.Decay, 0)

	p.VY += particleGravity
	p.VX *= particleFriction
	p.VY *= particleFriction

	if p.X < 0 || p.X > w {
		p.VX *= particleBounce
	}
	if p.Y < 0 || p.Y > h {
		p.VY *= particleBounce
	}
	p.X = clamp(p.X, 0, w)
	p.Y = clamp(p.Y, 0, h)
}

// Draw fades and shrinks the particle with its remaining life.
func (p *Particle) Draw(s Surface) {
	r := p.Size * p.Life / 2
	if r <= 0 {
		return
	}
	s.FillEllipse(p.X, p.Y, r, r, p.Color.WithAlpha(p.Life))
}

// ParticleSystem owns a bounded set of particles. Dead particles are
// swap-removed during Update, so draw order is not stable.
type ParticleSystem struct {
	particles []Particle
	max       int
	rng       *rand.Rand
	w, h      float64

	// SpawnChance is the per-update probability of adding an ambient
	// particle while below the budget.
	SpawnChance float64
}

// NewParticleSystem creates a system holding at most max particles inside
// a w×h area. A nil rng gets a randomly seeded one.
func NewParticleSystem(max int, w, h float64, rng *rand.Rand) *ParticleSystem {
	if max <= 0 {
		max = 50
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ParticleSystem{
		particles:   make([]Particle, 0, max),
		max:         max,
		rng:         rng,
		w:           w,
		h:           h,
		SpawnChance: 0.1,
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int { return len(ps.particles) }

// Max returns the particle budget.
func (ps *ParticleSystem) Max() int { return ps.max }

// SetMax changes the budget. Excess particles are dropped.
func (ps *ParticleSystem) SetMax(max int) {
	if max <= 0 {
		return
	}
	ps.max = max
	if len(ps.particles) > max {
		ps.particles = ps.particles[:max]
	}
}

// Particles returns the live particles. The slice must not be retained.
func (ps *ParticleSystem) Particles() []Particle { return ps.particles }

// Emit adds a particle unless the budget is exhausted.
func (ps *ParticleSystem) Emit(x, y, vx, vy float64) bool {
	if len(ps.particles) >= ps.max {
		return false
	}
	ps.particles = append(ps.particles, NewParticle(x, y, vx, vy, ps.rng))
	return true
}

// EmitRandom adds a particle at a random point with a small random velocity.
func (ps *ParticleSystem) EmitRandom() bool {
	return ps.Emit(
		ps.rng.Float64()*ps.w,
		ps.rng.Float64()*ps.h,
		ps.rng.Float64()*2-1,
		ps.rng.Float64()*2-1,
	)
}

// Burst adds up to n particles at (x, y) moving with velocity v. It returns
// how many fit in the budget.
func (ps *ParticleSystem) Burst(x, y float64, v Vec2, n int) int {
	added := 0
	for i := 0; i < n; i++ {
		if !ps.Emit(x, y, v.X, v.Y) {
			break
		}
		added++
	}
	return added
}

// Fill resets the system and seeds n random particles.
func (ps *ParticleSystem) Fill(n int) {
	ps.particles = ps.particles[:0]
	for i := 0; i < n; i++ {
		if !ps.EmitRandom() {
			return
		}
	}
}

// Resize changes the simulation area. Particles outside it are pulled in
// to 10 px from the new edge.
func (ps *ParticleSystem) Resize(w, h float64) {
	ps.w, ps.h = w, h
	for i := range ps.particles {
		p := &ps.particles[i]
		if p.X > w {
			p.X = w - 10
		}
		if p.Y > h {
			p.Y = h - 10
		}
	}
}

// Update advances every particle and removes the dead ones, then tops the
// system up with ambient particles while the spawn roll succeeds.
func (ps *ParticleSystem) Update(dt float64) {
	i := 0
	for i < len(ps.particles) {
		p := &ps.particles[i]
		p.Update(dt, ps.w, ps.h)
		if !p.Alive() {
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
			continue
		}
		i++
	}
	for len(ps.particles) < ps.max && ps.rng.Float64() < ps.SpawnChance {
		ps.EmitRandom()
	}
}

// Draw draws every live particle.
func (ps *ParticleSystem) Draw(s Surface) {
	for i := range ps.particles {
		ps.particles[i].Draw(s)
	}
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

var (
	_ Entity  = (*ParticleSystem)(nil)
	_ Updater = (*ParticleSystem)(nil)
)
