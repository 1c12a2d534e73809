package components

import (
	"errors"
	"fmt"

	"github.com/automoto/koopa/shared/gamemath"
	"github.com/yohamta/donburi"
)

var ErrInvalidBody = errors.New("invalid body")

// BodyData is the kinematic state shared by every actor. Velocities are in
// world units per 60Hz frame; the physics step scales them by dt.
type BodyData struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	OnGround    bool
	FacingRight bool
	// Active=false removes the body from collision and drawing without
	// deleting its entity.
	Active bool
}

var Body = donburi.NewComponentType[BodyData]()

// NewBody returns an active, right-facing body.
func NewBody(x, y, w, h float64) (BodyData, error) {
	if w <= 0 || h <= 0 {
		return BodyData{}, fmt.Errorf("%w: size %vx%v", ErrInvalidBody, w, h)
	}
	return BodyData{
		X: x, Y: y, W: w, H: h,
		FacingRight: true,
		Active:      true,
	}, nil
}

// Rect returns the body's bounding box.
func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *BodyData) Bottom() float64 { return b.Y + b.H }
func (b *BodyData) Right() float64  { return b.X + b.W }
