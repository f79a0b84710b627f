package ports

import (
	"CatalogEngine/internal/core/events"
	"context"
)

// EventBus relays requests from the view to the engine and
// delivers the engine's responses back to the view.
type EventBus interface {
	// RegisterView sets the single view. A second call is an error.
	RegisterView(view View) error

	// RegisterEngine sets the single engine. A second call is an error.
	RegisterEngine(engine Engine) error

	EnableDebugMode()
	DisableDebugMode()

	// Dispatch sends request to the engine and delivers every response, in order,
	// before returning. It fails when the bus is not configured or when another
	// dispatch is still in flight.
	Dispatch(ctx context.Context, request events.Request) error
}
