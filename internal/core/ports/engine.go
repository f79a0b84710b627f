package ports

import (
	"CatalogEngine/internal/core/events"
	"context"
)

// Engine turns one request into the ordered responses it causes.
type Engine interface {
	// Process never fails: every failure is reported as a response event.
	Process(ctx context.Context, request events.Request) []events.Response
}
