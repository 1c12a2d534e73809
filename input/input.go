// Package input turns keyboard, gamepad and mouse state into per-action
// pressed flags.
package input

import (
	"fmt"

	cfg "github.com/automoto/koopa/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const analogDeadzone = 0.5

// Standard gamepad buttons per action. The left stick and d-pad both drive
// the directional actions.
var gamepadBindings = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveLeft:   {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight:  {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionMoveUp:     {ebiten.StandardGamepadButtonLeftTop},
	cfg.ActionMoveDown:   {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionJump:       {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionMenuUp:     {ebiten.StandardGamepadButtonLeftTop},
	cfg.ActionMenuDown:   {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionMenuLeft:   {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMenuRight:  {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionMenuSelect: {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonCenterRight},
	cfg.ActionMenuBack:   {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonCenterLeft},
}

// Poller samples the bound devices once per frame.
type Poller struct {
	keys     [cfg.ActionCount][]ebiten.Key
	gamepads []ebiten.GamepadID
}

// NewPoller resolves the key names in cfg.Bindings.
func NewPoller() (*Poller, error) {
	p := &Poller{}
	for action, names := range cfg.Bindings {
		for _, name := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding for action %d: %w", action, err)
			}
			p.keys[action] = append(p.keys[action], k)
		}
	}
	return p, nil
}

// Poll returns which actions are held this frame.
func (p *Poller) Poll() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for action, keys := range p.keys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed[action] = true
			}
		}
	}

	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for action, buttons := range gamepadBindings {
			for _, btn := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					pressed[action] = true
				}
			}
		}

		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -analogDeadzone {
			pressed[cfg.ActionMoveLeft] = true
			pressed[cfg.ActionMenuLeft] = true
		}
		if h > analogDeadzone {
			pressed[cfg.ActionMoveRight] = true
			pressed[cfg.ActionMenuRight] = true
		}
		if v < -analogDeadzone {
			pressed[cfg.ActionMoveUp] = true
			pressed[cfg.ActionMenuUp] = true
		}
		if v > analogDeadzone {
			pressed[cfg.ActionMoveDown] = true
			pressed[cfg.ActionMenuDown] = true
		}
	}
	return pressed
}

// Cursor returns the mouse position in screen pixels.
func Cursor() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// Painting reports whether the left button is held.
func Painting() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Erasing reports whether the right button is held.
func Erasing() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Digit returns the digit key (1-9) pressed this frame, or 0.
func Digit() int {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}

// TabPressed reports a fresh press of Tab.
func TabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}
