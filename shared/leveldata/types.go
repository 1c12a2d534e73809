// Package leveldata provides the tile grid, level generation and level file
// formats. It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
package leveldata

import "errors"

// Code is a single symbolic tile.
type Code byte

const (
	Empty    Code = ' '
	Ground   Code = 'G'
	Block    Code = 'B'
	Platform Code = 'P'
	Pipe     Code = 'T'
	Question Code = '?'
	Start    Code = 'S'
	Flag     Code = 'F'

	// Enemy markers are lowercase so they never shadow terrain letters.
	Goomba Code = 'g'
	Koopa  Code = 'k'
	Fish   Code = 'f'
	Spike  Code = 's'
)

// Codes lists the whole vocabulary in editor palette order.
var Codes = []Code{Ground, Block, Platform, Pipe, Question, Start, Flag, Empty, Goomba, Koopa, Fish, Spike}

var codeNames = map[Code]string{
	Empty:    "Empty",
	Ground:   "Ground",
	Block:    "Block",
	Platform: "Platform",
	Pipe:     "Pipe",
	Question: "Question Block",
	Start:    "Player Start",
	Flag:     "Flag",
	Goomba:   "Goomba",
	Koopa:    "Koopa",
	Fish:     "Fish",
	Spike:    "Spike",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether c belongs to the tile vocabulary.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// Solid reports whether the tile yields a collider.
func (c Code) Solid() bool {
	switch c {
	case Ground, Block, Platform, Pipe, Question:
		return true
	}
	return false
}

// Enemy reports whether the tile marks an enemy spawn.
func (c Code) Enemy() bool {
	switch c {
	case Goomba, Koopa, Fish, Spike:
		return true
	}
	return false
}

// Cell addresses one tile.
type Cell struct {
	Row, Col int
}

// Marker is a non-solid tile recorded for actor placement.
type Marker struct {
	Code Code
	Cell Cell
}

var (
	ErrOutOfBounds    = errors.New("cell out of bounds")
	ErrMalformedLevel = errors.New("malformed level")
	ErrNotFound       = errors.New("item not found")
)
