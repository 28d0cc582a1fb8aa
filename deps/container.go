package deps

import (
	"context"
	"time"
)

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Bootstrap runs ignitors in order over a container holding cfg.
func Bootstrap(container Deps, ignitors ...Ignitor) (Deps, error) {
	if len(ignitors) == 0 {
		ignitors = []Ignitor{
			IgniteLogger,
			IgniteExceptions,
			IgniteTracing,
			IgniteEvents,
			IgniteStorage,
			IgniteCarts,
		}
	}

	var err error
	for _, fn := range ignitors {
		container, err = fn(container)
		if err != nil {
			container.Close()
			return container, err
		}
	}
	return container, nil
}

// Close releases whatever the ignitors opened.
func (d Deps) Close() {
	if d.TracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.TracerProvider.Shutdown(ctx); err != nil {
			log.Warningf("tracer shutdown: %v", err)
		}
	}
	if d.EventsProvider != nil {
		d.EventsProvider.Close()
	}
	if d.LedisConnProvider != nil {
		d.LedisConnProvider.Close()
	}
	if d.BuntProvider != nil {
		d.BuntProvider.Close()
	}
	if d.CacheProvider != nil {
		d.CacheProvider.Close()
	}
	if d.DatabaseSessionProvider != nil {
		d.DatabaseSessionProvider.Close()
	}
}
