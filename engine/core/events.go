package core

import (
	"sync"

	"github.com/spaghettifunk/cubescene/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data: *MouseEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08
	// A watched configuration file changed on disk. Data: *FileEvent
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

// Events queued from other goroutines between two frames.
const MAX_QUEUED_EVENTS = 1024

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll float32
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type FileEvent struct {
	Path string
}

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

// EventHandle identifies a registration so it can be removed again.
type EventHandle uint32

type registeredEvent struct {
	handle   EventHandle
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.Mutex
	registered map[EventCode][]registeredEvent
	nextHandle EventHandle
	queue      *containers.RingQueue[EventContext]
}

var eventMutex sync.RWMutex
var eventState *eventSystemState

// EventSystemInitialize (re)creates the event system, dropping any
// previous registrations.
func EventSystemInitialize() bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	eventState = &eventSystemState{
		registered: make(map[EventCode][]registeredEvent),
		queue:      containers.NewRingQueue[EventContext](MAX_QUEUED_EVENTS),
	}
	return true
}

func EventSystemShutdown() error {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	eventState = nil
	return nil
}

func getEventState() *eventSystemState {
	eventMutex.RLock()
	defer eventMutex.RUnlock()
	return eventState
}

/**
 * Register to listen for when events are sent with the provided code.
 * @param code The event code to listen for.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns a handle for EventUnregister, and false if the system is not initialized.
 */
func EventRegister(code EventCode, onEvent FnOnEvent) (EventHandle, bool) {
	s := getEventState()
	if s == nil || onEvent == nil {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandle++
	s.registered[code] = append(s.registered[code], registeredEvent{handle: s.nextHandle, callback: onEvent})
	return s.nextHandle, true
}

// EventUnregister removes a registration. Returns false when nothing matched.
func EventUnregister(code EventCode, handle EventHandle) bool {
	s := getEventState()
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.registered[code]
	for i, e := range events {
		if e.handle == handle {
			s.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * Must be called from the main loop goroutine; use EventQueue elsewhere.
 * @returns true if handled, otherwise false.
 */
func EventFire(context EventContext) bool {
	s := getEventState()
	if s == nil {
		return false
	}
	s.mu.Lock()
	events := append([]registeredEvent(nil), s.registered[context.Type]...)
	s.mu.Unlock()

	for _, e := range events {
		if e.callback(context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// EventQueue stores an event to be fired by the next EventProcessQueued call.
// Safe for use from any goroutine.
func EventQueue(context EventContext) error {
	s := getEventState()
	if s == nil {
		return ErrSubsystemNotStarted
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Enqueue(context)
}

// EventProcessQueued fires every queued event in arrival order and returns
// how many were processed.
func EventProcessQueued() int {
	s := getEventState()
	if s == nil {
		return 0
	}
	processed := 0
	for {
		s.mu.Lock()
		context, err := s.queue.Dequeue()
		s.mu.Unlock()
		if err != nil {
			return processed
		}
		EventFire(context)
		processed++
	}
}
