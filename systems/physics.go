package systems

import (
	"math"

	"github.com/automoto/koopa/components"
	cfg "github.com/automoto/koopa/config"
	"github.com/automoto/koopa/shared/gamemath"
)

// supportEpsilon absorbs float drift when checking whether a collider top is
// flush with a body's bottom.
const supportEpsilon = 0.01

// Contacts reports what a body touched during one step.
type Contacts struct {
	Landed  bool
	HitWall bool
	// Ceiling holds the colliders whose bottom the body's top snapped to.
	Ceiling []gamemath.Rect
}

// Stepper integrates bodies against a collider query. It reuses one
// candidate buffer, so a Stepper must not be shared between goroutines.
type Stepper struct {
	Query   ColliderQuery
	scratch []gamemath.Rect
}

func NewStepper(q ColliderQuery) *Stepper {
	return &Stepper{Query: q}
}

// Step applies gravity, integrates velocity and resolves overlaps against
// every overlapping collider in scan order. For each collider the vertical
// test runs first, then the horizontal one; both use the overlap found before
// either correction, and a later collider overrides an earlier one on the
// same axis. OnGround is recomputed on every call.
func (s *Stepper) Step(b *components.BodyData, dt float64) Contacts {
	var contacts Contacts
	if !b.Active {
		return contacts
	}

	scale := dt * cfg.Physics.TimeScale
	if !b.OnGround {
		b.VY += cfg.Physics.Gravity * scale
	}

	prev := b.Rect()
	b.X += b.VX * scale
	b.Y += b.VY * scale
	b.OnGround = false

	box := prev.Union(b.Rect()).Inflate(max(b.W, b.H) + 1)
	s.scratch = s.Query.AppendCandidates(s.scratch[:0], box)

	for _, c := range s.scratch {
		if !b.Rect().Overlaps(c) {
			continue
		}

		if b.VY > 0 && b.Bottom() > c.Top() && b.Y < c.Top() {
			b.Y = c.Top() - b.H
			b.VY = 0
			b.OnGround = true
			contacts.Landed = true
		} else if b.VY < 0 && b.Y < c.Bottom() && b.Bottom() > c.Bottom() {
			b.Y = c.Bottom()
			b.VY = 0
			contacts.Ceiling = append(contacts.Ceiling, c)
		}

		if b.VX > 0 && b.Right() > c.Left() && b.X < c.Left() {
			b.X = c.Left() - b.W
			b.VX = 0
			contacts.HitWall = true
		} else if b.VX < 0 && b.X < c.Right() && b.Right() > c.Right() {
			b.X = c.Right()
			b.VX = 0
			contacts.HitWall = true
		}
	}

	if !b.OnGround && b.VY >= 0 && supported(b, s.scratch) {
		b.OnGround = true
	}
	return contacts
}

// supported reports whether a collider's top is flush with the body's
// bottom under some part of its width.
func supported(b *components.BodyData, colliders []gamemath.Rect) bool {
	bottom := b.Bottom()
	for _, c := range colliders {
		if math.Abs(c.Top()-bottom) < supportEpsilon && b.X < c.Right() && c.Left() < b.Right() {
			return true
		}
	}
	return false
}

// Solid reports whether any collider overlaps box.
func (s *Stepper) Solid(box gamemath.Rect) bool {
	s.scratch = s.Query.AppendCandidates(s.scratch[:0], box)
	for _, c := range s.scratch {
		if box.Overlaps(c) {
			return true
		}
	}
	return false
}
