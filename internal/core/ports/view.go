package ports

import (
	"CatalogEngine/internal/core/events"
	"context"
)

// View is the interface layer as seen from the event bus.
type View interface {
	HandleEvent(ctx context.Context, event events.Response) error
}
