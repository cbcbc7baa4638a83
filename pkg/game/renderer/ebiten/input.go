package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "github.com/arturogbruno/lights-out-game/pkg/engine/input"
	"github.com/arturogbruno/lights-out-game/pkg/game/gameplay"
)

// keyCodes maps keyboard keys to the raw codes of the input bindings.
var keyCodes = []struct {
	key    ebiten.Key
	code   string
	repeat bool
}{
	{ebiten.KeyArrowUp, engineinput.KeyArrowUp, true},
	{ebiten.KeyArrowDown, engineinput.KeyArrowDown, true},
	{ebiten.KeyArrowLeft, engineinput.KeyArrowLeft, true},
	{ebiten.KeyArrowRight, engineinput.KeyArrowRight, true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeySpace, engineinput.KeySpace, false},
	{ebiten.KeyEnter, engineinput.KeyEnter, false},
	{ebiten.KeyNumpadEnter, engineinput.KeyEnter, false},
	{ebiten.KeyT, "t", false},
	{ebiten.KeyN, "n", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, engineinput.KeyEscape, false},
	{ebiten.KeyF8, "f8", false},
}

// gamepadCodes maps standard-layout gamepad buttons to raw codes.
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
	repeat bool
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up", true},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down", true},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left", true},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right", true},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a", false},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b", false},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x", false},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y", false},
}

// shouldTrigger reports whether a key held for the given number of ticks
// fires this tick: on the first tick, then repeatedly after a delay.
func shouldTrigger(ticks int, repeat bool) bool {
	if ticks == 1 {
		return true
	}
	if !repeat || ticks < keyRepeatInitialDelay {
		return false
	}
	return (ticks-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	g := e.game

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		g.Logger.Info("window opened", "width", w, "height", h)
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			return err
		}
	} else if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			return err
		}
	}

	e.checkPointer()

	if g.QuitRequested {
		return ebiten.Termination
	}
	return nil
}

// checkInput returns the intent for the first keyboard key that fires this tick.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Help
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return engineinput.IntentFor(engineinput.DeviceKeyboard, "?")
	}

	for _, kc := range keyCodes {
		if shouldTrigger(inpututil.KeyPressDuration(kc.key), kc.repeat) {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, kc.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput checks connected standard-layout gamepads.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, gc := range gamepadCodes {
			if shouldTrigger(inpututil.StandardGamepadButtonPressDuration(id, gc.button), gc.repeat) {
				return engineinput.IntentFor(engineinput.DeviceGamepad, gc.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkPointer toggles the light under a mouse click or a new touch.
func (e *EbitenRenderer) checkPointer() {
	layout := e.boardLayout()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := layout.CellAt(x, y); ok {
			gameplay.ToggleAt(e.game, p)
		}
	}

	var touches []ebiten.TouchID
	for _, id := range inpututil.AppendJustPressedTouchIDs(touches) {
		x, y := ebiten.TouchPosition(id)
		if p, ok := layout.CellAt(x, y); ok {
			gameplay.ToggleAt(e.game, p)
		}
	}
}
