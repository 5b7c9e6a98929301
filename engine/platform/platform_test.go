package platform

import "testing"

func TestHeadlessPumpsUntilClosed(t *testing.T) {
	var seen []uint64
	h := NewHeadless()
	h.Script = func(pump uint64) {
		seen = append(seen, pump)
		if pump == 2 {
			h.Close()
		}
	}
	if err := h.Startup("test", 0, 0, 640, 480); err != nil {
		t.Fatal(err)
	}

	pumps := 0
	for h.PumpMessages() {
		pumps++
	}
	if pumps != 2 {
		t.Fatalf("pumped %d times before quitting", pumps)
	}
	if len(seen) != 3 || seen[2] != 2 {
		t.Fatalf("script saw %v", seen)
	}

	// a restart clears the close request
	h.Script = nil
	if err := h.Startup("test", 0, 0, 640, 480); err != nil {
		t.Fatal(err)
	}
	if !h.PumpMessages() {
		t.Fatal("restarted platform wants to quit")
	}
	if err := h.Shutdown(); err != nil {
		t.Fatal(err)
	}
}

func TestHeadlessSatisfiesPlatform(t *testing.T) {
	var _ Platform = NewHeadless()
}
