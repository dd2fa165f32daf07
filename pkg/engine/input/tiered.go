package input

import (
	"sort"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Paint tools
	ActionSelectEmpty
	ActionSelectBox

	// Meta / dev tools
	ActionScreenshot
	ActionMapDump
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// bindings maps key codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"ArrowUp":    ActionMoveNorth,
	"KeyW":       ActionMoveNorth,
	"ArrowDown":  ActionMoveSouth,
	"KeyS":       ActionMoveSouth,
	"ArrowLeft":  ActionMoveWest,
	"KeyA":       ActionMoveWest,
	"ArrowRight": ActionMoveEast,
	"KeyD":       ActionMoveEast,

	// Tool selection
	"Digit1": ActionSelectEmpty,
	"Digit2": ActionSelectBox,

	// Dev tools
	"F12": ActionScreenshot,
	"F8":  ActionMapDump,

	// Quit
	"Escape": ActionQuit,
	"KeyQ":   ActionQuit,
}

// MapToIntent applies the current bindings to a key code and returns a
// high-level Intent.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// CodesFor returns every key code bound to the action, sorted.
func CodesFor(a Action) []string {
	var codes []string
	for code, act := range bindings {
		if act == a {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionSelectEmpty:
		return "Select Empty"
	case ActionSelectBox:
		return "Select Box"
	case ActionScreenshot:
		return "Screenshot"
	case ActionMapDump:
		return "Map Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
