package core

import "testing"

func TestInputKeyStates(t *testing.T) {
	EventSystemInitialize()
	_ = InputInitialize()
	t.Cleanup(func() {
		_ = InputShutdown()
		_ = EventSystemShutdown()
	})

	var pressed []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
		return false
	})

	_ = InputProcessKey(KEY_W, true)
	_ = InputProcessKey(KEY_W, true)
	if !InputIsKeyDown(KEY_W) || InputWasKeyDown(KEY_W) {
		t.Fatal("W should be down this frame only")
	}
	if len(pressed) != 1 {
		t.Fatalf("repeated press should fire once, got %v", pressed)
	}

	_ = InputUpdate(0.016)
	if !InputWasKeyDown(KEY_W) {
		t.Fatal("previous state should follow the update")
	}
	_ = InputProcessKey(KEY_W, false)
	if !InputIsKeyUp(KEY_W) {
		t.Fatal("W should be released")
	}
}

func TestInputWheelEventsClearedEachFrame(t *testing.T) {
	_ = InputInitialize()
	t.Cleanup(func() { _ = InputShutdown() })

	_ = InputProcessMouseWheel(1)
	_ = InputProcessMouseWheel(-2)
	got := InputMouseWheelEvents()
	if len(got) != 2 || got[0] != 1 || got[1] != -2 {
		t.Fatalf("got %v", got)
	}

	_ = InputUpdate(0.016)
	if len(InputMouseWheelEvents()) != 0 {
		t.Fatal("wheel events should be consumed by the frame update")
	}
}

func TestInputBeforeInitialize(t *testing.T) {
	_ = InputShutdown()
	if InputIsKeyDown(KEY_A) {
		t.Fatal("no key can be down without input state")
	}
	if err := InputProcessKey(KEY_A, true); err != ErrSubsystemNotStarted {
		t.Fatalf("got %v", err)
	}
}
