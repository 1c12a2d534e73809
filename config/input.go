package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionEditor
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionCount // Must be last - used for array sizing
)

// Key names per action. The input package resolves these to ebiten keys so
// this package stays free of the graphics stack.
var Bindings = map[ActionID][]string{
	ActionMoveLeft:   {"ArrowLeft", "A"},
	ActionMoveRight:  {"ArrowRight", "D"},
	ActionMoveUp:     {"ArrowUp", "W"},
	ActionMoveDown:   {"ArrowDown", "S"},
	ActionJump:       {"Space", "X"},
	ActionMenuUp:     {"ArrowUp"},
	ActionMenuDown:   {"ArrowDown"},
	ActionMenuLeft:   {"ArrowLeft"},
	ActionMenuRight:  {"ArrowRight"},
	ActionMenuSelect: {"Enter"},
	ActionMenuBack:   {"Escape"},
	ActionEditor:     {"E"},
	ActionSlot1:      {"Digit1"},
	ActionSlot2:      {"Digit2"},
	ActionSlot3:      {"Digit3"},
}
