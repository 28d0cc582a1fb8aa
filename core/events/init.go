package events

import (
	"sync"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("events")

type Handler func(Event) error

type EventHandler struct {
	On      string
	Handler Handler
}

type Event struct {
	Name   string
	Params map[string]interface{}
}

// Bus dispatches events to the handlers registered for their name. Each
// event runs its handlers in a goroutine of its own.
type Bus struct {
	// Input channel for incoming events.
	in chan Event

	// On "event" channel. Register event handlers using channels.
	on chan EventHandler

	handlers map[string][]Handler
	running  sync.WaitGroup
	stopped  chan struct{}
}

// New starts a bus buffering up to size events.
func New(size int) *Bus {
	bus := &Bus{
		in:       make(chan Event, size),
		on:       make(chan EventHandler),
		handlers: make(map[string][]Handler),
		stopped:  make(chan struct{}),
	}
	go bus.sink()
	return bus
}

// Emit queues event. It must not be called after Close.
func (bus *Bus) Emit(event Event) {
	bus.in <- event
}

// On registers h for events named name. Events emitted after On returns
// reach h.
func (bus *Bus) On(name string, h Handler) {
	bus.on <- EventHandler{On: name, Handler: h}
}

// Close drains queued events and waits for running handlers.
func (bus *Bus) Close() {
	close(bus.in)
	<-bus.stopped
}

func (bus *Bus) exec(list []Handler, event Event) {
	defer bus.running.Done()
	for _, h := range list {
		if err := h(event); err != nil {
			log.Errorf("handler for %s failed: %v", event.Name, err)
		}
	}
}

func (bus *Bus) sink() {
	defer close(bus.stopped)
	for {
		select {
		case event, ok := <-bus.in:
			if !ok {
				bus.running.Wait()
				return
			}
			log.Debugf("Incoming event: %+v", event)
			if ls, exists := bus.handlers[event.Name]; exists {
				bus.running.Add(1)
				go bus.exec(ls, event)
			}
		case h := <-bus.on:
			bus.handlers[h.On] = append(bus.handlers[h.On], h.Handler)
		}
	}
}
