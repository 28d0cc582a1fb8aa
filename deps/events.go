package deps

import (
	"github.com/op/go-logging"
	"github.com/tryanzu/storefront/core/events"
)

// IgniteEvents starts the event bus and registers the activity tracker on
// every cart event.
func IgniteEvents(container Deps) (Deps, error) {
	bus := events.New(container.Config().UInt("events.buffer", 64))
	activity := events.TrackActivity(logging.MustGetLogger("activity"))
	for _, name := range events.CartEvents {
		bus.On(name, activity)
	}
	container.EventsProvider = bus
	return container, nil
}
