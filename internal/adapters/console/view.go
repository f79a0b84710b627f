// Package console provides a view that writes one line per response event.
package console

import (
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// View prints every response it receives to out.
type View struct {
	out   io.Writer
	log   zerolog.Logger
	ended bool
}

var _ ports.View = (*View)(nil) // Ensure compliance

// NewView creates a view writing to out.
func NewView(out io.Writer, baseLogger *zerolog.Logger) *View {
	return &View{
		out: out,
		log: baseLogger.With().Str("component", "console_view").Logger(),
	}
}

// HandleEvent prints event on its own line.
func (v *View) HandleEvent(ctx context.Context, event events.Response) error {
	if _, ok := event.(events.EndApplication); ok {
		v.ended = true
		v.log.Info().Msg("Application end requested")
	}
	if _, err := fmt.Fprintln(v.out, event.String()); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Ended reports whether an EndApplication event has been received.
func (v *View) Ended() bool {
	return v.ended
}
