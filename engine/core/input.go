package core

import "sync"

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0xFF
)

// Mouse state structure
type MouseState struct {
	X       uint16
	Y       uint16
	Buttons [BUTTON_MAX_BUTTONS]bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input state structure that holds current and previous states for keyboard and mouse
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState
	// Wheel deltas received since the last InputUpdate, in arrival order.
	WheelEvents []float32
}

var inputMutex sync.Mutex
var inputState *InputState = nil

func InputInitialize() error {
	inputMutex.Lock()
	inputState = &InputState{}
	inputMutex.Unlock()
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputMutex.Lock()
	inputState = nil
	inputMutex.Unlock()
	return nil
}

func getInputState() *InputState {
	inputMutex.Lock()
	defer inputMutex.Unlock()
	return inputState
}

// InputUpdate ends the frame: current states become previous states and the
// wheel events are consumed.
func InputUpdate(deltaTime float64) error {
	s := getInputState()
	if s == nil {
		return nil
	}
	s.KeyboardPrevious = s.KeyboardCurrent
	s.MousePrevious = s.MouseCurrent
	s.WheelEvents = s.WheelEvents[:0]
	return nil
}

// keyboard input
func InputIsKeyDown(key KeyCode) bool {
	s := getInputState()
	if s == nil || key >= KEYS_MAX_KEYS {
		return false
	}
	return s.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	return !InputIsKeyDown(key)
}

func InputWasKeyDown(key KeyCode) bool {
	s := getInputState()
	if s == nil || key >= KEYS_MAX_KEYS {
		return false
	}
	return s.KeyboardPrevious.Keys[key]
}

func InputProcessKey(key KeyCode, pressed bool) error {
	s := getInputState()
	if s == nil {
		return ErrSubsystemNotStarted
	}
	if key >= KEYS_MAX_KEYS {
		return nil
	}
	// Only handle this if the state actually changed.
	if s.KeyboardCurrent.Keys[key] != pressed {
		s.KeyboardCurrent.Keys[key] = pressed

		code := EVENT_CODE_KEY_RELEASED
		if pressed {
			code = EVENT_CODE_KEY_PRESSED
		}
		EventFire(EventContext{
			Type: code,
			Data: &KeyEvent{
				KeyCode: key,
			},
		})
	}
	return nil
}

func InputProcessButton(button Button, pressed bool) error {
	s := getInputState()
	if s == nil {
		return ErrSubsystemNotStarted
	}
	if button >= BUTTON_MAX_BUTTONS {
		return nil
	}
	if s.MouseCurrent.Buttons[button] != pressed {
		s.MouseCurrent.Buttons[button] = pressed

		code := EVENT_CODE_BUTTON_RELEASED
		if pressed {
			code = EVENT_CODE_BUTTON_PRESSED
		}
		EventFire(EventContext{
			Type: code,
			Data: &MouseEvent{
				Button: button,
			},
		})
	}
	return nil
}

func InputProcessMouseMove(x uint16, y uint16) error {
	s := getInputState()
	if s == nil {
		return ErrSubsystemNotStarted
	}
	if s.MouseCurrent.X != x || s.MouseCurrent.Y != y {
		s.MouseCurrent.X = x
		s.MouseCurrent.Y = y

		EventFire(EventContext{
			Type: EVENT_CODE_MOUSE_MOVED,
			Data: &MouseEvent{
				PosX: x,
				PosY: y,
			},
		})
	}
	return nil
}

func InputProcessMouseWheel(delta float32) error {
	s := getInputState()
	if s == nil {
		return ErrSubsystemNotStarted
	}
	s.WheelEvents = append(s.WheelEvents, delta)
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{
			Scroll: delta,
		},
	})
	return nil
}

// InputMouseWheelEvents returns a copy of the wheel deltas received this frame.
func InputMouseWheelEvents() []float32 {
	s := getInputState()
	if s == nil {
		return nil
	}
	return append([]float32(nil), s.WheelEvents...)
}
