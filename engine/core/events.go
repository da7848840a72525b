package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/containers"
)

// EventCode identifies the kind of an event. Codes up to MAX_EVENT_CODE are
// reserved for the engine; applications use codes above it.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed/released. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED  EventCode = 0x02
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed/released. Data is *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED  EventCode = 0x04
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved. Data is *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel scrolled. Data is *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Window resized/resolution changed from the OS. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	// A watched file changed on disk. Data is *SystemEvent.
	EVENT_CODE_WATCHED_FILE_UPDATED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

// KeyEvent is the payload of key pressed/released events.
type KeyEvent struct {
	KeyCode KeyCode
}

// MouseEvent is the payload of mouse button, move and wheel events.
type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

// SystemEvent is the payload of window and filesystem events.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
	FilePath     string
}

// EventContext is a fired event: its code and an optional typed payload.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// FnOnEvent handles a dispatched event. Returning true consumes the event;
// it is not passed to handlers registered after this one.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	handle   uuid.UUID
	callback FnOnEvent
}

const eventQueueCapacity = 1024

type eventSystemState struct {
	mu         sync.Mutex
	registered map[EventCode][]registeredEvent
	queue      *containers.RingQueue[EventContext]

	// Closed on shutdown; wakeup carries one token per EventFire.
	wakeup       chan struct{}
	done         chan struct{}
	shutdownOnce sync.Once
}

var onceEvent sync.Once
var eventState *eventSystemState

// EventSystemInitialize sets up the event system. Returns false when it was
// already initialized.
func EventSystemInitialize() bool {
	first := false
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[EventCode][]registeredEvent),
			queue:      containers.NewRingQueue[EventContext](eventQueueCapacity),
			wakeup:     make(chan struct{}, eventQueueCapacity),
			done:       make(chan struct{}),
		}
		first = true
	})
	return first
}

// EventSystemShutdown stops ProcessEvents and drops all registrations and
// queued events.
func EventSystemShutdown() error {
	if eventState == nil {
		return nil
	}
	eventState.shutdownOnce.Do(func() { close(eventState.done) })

	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered = make(map[EventCode][]registeredEvent)
	for !eventState.queue.IsEmpty() {
		if _, err := eventState.queue.Dequeue(); err != nil {
			break
		}
	}
	return nil
}

// EventRegister subscribes onEvent to the given code and returns a handle
// for EventUnregister. Handlers fire in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) (uuid.UUID, error) {
	if eventState == nil {
		return uuid.Nil, fmt.Errorf("event system is not initialized")
	}
	handle := uuid.New()

	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		handle:   handle,
		callback: onEvent,
	})
	return handle, nil
}

// EventUnregister removes a previously registered handler.
func EventUnregister(code EventCode, handle uuid.UUID) error {
	if eventState == nil {
		return fmt.Errorf("event system is not initialized")
	}

	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	events := eventState.registered[code]
	for i, e := range events {
		if e.handle == handle {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no handler registered for code %d with handle %s", code, handle)
}

// EventFire enqueues an event for the next ProcessEvents pass. A full queue
// drops the event with a warning rather than blocking the caller.
func EventFire(context EventContext) {
	if eventState == nil {
		return
	}

	eventState.mu.Lock()
	err := eventState.queue.Enqueue(context)
	eventState.mu.Unlock()
	if err != nil {
		LogWarn("event queue full, dropping event code %d", context.Type)
		return
	}

	select {
	case eventState.wakeup <- struct{}{}:
	default:
	}
}

// EventFireImmediate dispatches an event synchronously, bypassing the queue.
// Returns true when a handler consumed the event. For callers that need the
// result or a strict ordering with their own logic.
func EventFireImmediate(context EventContext) bool {
	if eventState == nil {
		return false
	}
	return dispatch(context)
}

// ProcessEvents drains the queue until EventSystemShutdown. The engine runs
// it on its own goroutine.
func ProcessEvents() {
	for {
		select {
		case <-eventState.done:
			return
		case <-eventState.wakeup:
			drainEvents()
		}
	}
}

func drainEvents() {
	for {
		eventState.mu.Lock()
		context, err := eventState.queue.Dequeue()
		eventState.mu.Unlock()
		if err != nil {
			return
		}
		dispatch(context)
	}
}

func dispatch(context EventContext) bool {
	// Snapshot the handler list so a handler can register or unregister
	// without deadlocking.
	eventState.mu.Lock()
	handlers := make([]registeredEvent, len(eventState.registered[context.Type]))
	copy(handlers, eventState.registered[context.Type])
	eventState.mu.Unlock()

	for _, e := range handlers {
		if e.callback(context) {
			return true
		}
	}
	return false
}
