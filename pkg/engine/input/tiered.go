// Package input turns device key presses into high-level game intents.
//
// Input is layered: a RawInput comes straight from a device, a DebouncedInput
// is the deduplicated event, and MapToIntent applies the binding table to
// produce an Intent the game acts on.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionToggle  // Press the light under the cursor
	ActionNewGame // Deal a fresh board
	ActionHint
	ActionQuit

	// Debug
	ActionDumpBoard
)

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "space", "n").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Every front end delivers discrete presses already, so this is a thin copy
// that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim)
	KeyArrowUp:    ActionMoveNorth,
	"k":           ActionMoveNorth,
	KeyArrowDown:  ActionMoveSouth,
	"j":           ActionMoveSouth,
	KeyArrowLeft:  ActionMoveWest,
	"h":           ActionMoveWest,
	KeyArrowRight: ActionMoveEast,
	"l":           ActionMoveEast,

	// Toggle
	KeySpace: ActionToggle,
	KeyEnter: ActionToggle,
	"t":      ActionToggle,

	"n": ActionNewGame,
	"N": ActionNewGame,

	"?":    ActionHint,
	"hint": ActionHint,

	// Gamepad (standard layout)
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_a":          ActionToggle,
	"gamepad_x":          ActionHint,
	"gamepad_y":          ActionNewGame,
	"gamepad_b":          ActionQuit,

	"D":  ActionDumpBoard,
	"f8": ActionDumpBoard,

	"q":       ActionQuit,
	"Q":       ActionQuit,
	KeyEscape: ActionQuit,
	KeyCtrlC:  ActionQuit,
}

// MapToIntent applies the bindings to a debounced input and returns a
// high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a device code through every layer.
func IntentFor(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
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
	case ActionToggle:
		return "Toggle"
	case ActionNewGame:
		return "New Game"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionDumpBoard:
		return "Dump Board"
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
