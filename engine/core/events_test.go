package core

import (
	"sync"
	"testing"
)

func TestEventFireStopsAtHandler(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	var calls []string
	EventRegister(EVENT_CODE_KEY_PRESSED, func(EventContext) bool {
		calls = append(calls, "first")
		return true
	})
	EventRegister(EVENT_CODE_KEY_PRESSED, func(EventContext) bool {
		calls = append(calls, "second")
		return false
	})

	if !EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED}) {
		t.Fatal("expected event to be handled")
	}
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestEventUnregister(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	fired := 0
	h, ok := EventRegister(EVENT_CODE_RESIZED, func(EventContext) bool {
		fired++
		return false
	})
	if !ok {
		t.Fatal("register failed")
	}
	EventFire(EventContext{Type: EVENT_CODE_RESIZED})
	if !EventUnregister(EVENT_CODE_RESIZED, h) {
		t.Fatal("unregister failed")
	}
	if EventUnregister(EVENT_CODE_RESIZED, h) {
		t.Fatal("second unregister should report nothing removed")
	}
	EventFire(EventContext{Type: EVENT_CODE_RESIZED})
	if fired != 1 {
		t.Fatalf("fired %d times", fired)
	}
}

func TestEventQueueFromGoroutines(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	received := 0
	EventRegister(EVENT_CODE_CONFIG_RELOADED, func(ctx EventContext) bool {
		if _, ok := ctx.Data.(*FileEvent); ok {
			received++
		}
		return true
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = EventQueue(EventContext{Type: EVENT_CODE_CONFIG_RELOADED, Data: &FileEvent{Path: "scene.toml"}})
		}()
	}
	wg.Wait()

	if n := EventProcessQueued(); n != 8 {
		t.Fatalf("processed %d events", n)
	}
	if received != 8 {
		t.Fatalf("received %d events", received)
	}
}

func TestEventsBeforeInitialize(t *testing.T) {
	_ = EventSystemShutdown()
	if _, ok := EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) bool { return true }); ok {
		t.Fatal("register should fail before initialize")
	}
	if EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}) {
		t.Fatal("fire should do nothing before initialize")
	}
	if err := EventQueue(EventContext{}); err != ErrSubsystemNotStarted {
		t.Fatalf("got %v", err)
	}
}
