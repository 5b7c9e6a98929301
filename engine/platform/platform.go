package platform

import (
	"sync/atomic"

	"github.com/spaghettifunk/cubescene/engine/core"
)

// Platform owns the window (if any) and feeds OS input into the core input
// and event systems.
type Platform interface {
	Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error
	// PumpMessages processes pending OS messages. It returns false once the
	// application should quit.
	PumpMessages() bool
	Shutdown() error
}

// Headless is a Platform without a window. Script, when set, is called on
// every pump with the number of previous pumps so tests can inject input.
type Headless struct {
	Script func(pump uint64)

	pumps   uint64
	closing atomic.Bool
}

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	core.LogInfo("%s running headless (%dx%d)", applicationName, width, height)
	h.closing.Store(false)
	h.pumps = 0
	return nil
}

func (h *Headless) PumpMessages() bool {
	if h.Script != nil {
		h.Script(h.pumps)
	}
	h.pumps++
	return !h.closing.Load()
}

// Close makes the next pump report a quit, like closing a window would.
// Safe to call from any goroutine.
func (h *Headless) Close() {
	h.closing.Store(true)
}

func (h *Headless) Shutdown() error {
	return nil
}
