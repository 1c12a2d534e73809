package components

import "github.com/yohamta/donburi"

// CursorData is a selection over Count items laid out Columns per row.
type CursorData struct {
	Selected int
	Count    int
	Columns  int
}

var Cursor = donburi.NewComponentType[CursorData]()

// ScreenData drives the timed and animated screens.
type ScreenData struct {
	Elapsed   float64
	Remaining float64 // seconds until a timed screen closes
}

var Screen = donburi.NewComponentType[ScreenData]()

// Tick advances the screen clock and reports whether time remains.
func (s *ScreenData) Tick(dt float64) bool {
	s.Elapsed += dt
	s.Remaining -= dt
	return s.Remaining > 0
}
