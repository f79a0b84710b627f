package cli

import (
	"CatalogEngine/internal/adapters/console"
	"CatalogEngine/internal/adapters/eventbus"
	"CatalogEngine/internal/adapters/script"
	"CatalogEngine/internal/adapters/sqlstore"
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/engine"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the "run" command, which replays a request script.
func NewRunCommand(opts *RootOptions, baseLogger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Dispatch every request of a script and print the responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := script.Load(args[0])
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cmd.OutOrStdout(), opts, requests, baseLogger)
		},
	}
}

// Run wires an engine, an event bus and a console view, then dispatches
// requests in order. It stops early once the application end is signalled.
func Run(ctx context.Context, out io.Writer, opts *RootOptions, requests []events.Request, baseLogger *zerolog.Logger) error {
	log := baseLogger.With().Str("component", "cli").Logger()

	eng := engine.New(sqlstore.Opener(baseLogger), baseLogger)
	defer eng.Close()

	view := console.NewView(out, baseLogger)
	bus := eventbus.NewSyncEventBus(baseLogger)
	if err := bus.RegisterView(view); err != nil {
		return fmt.Errorf("configure bus: %w", err)
	}
	if err := bus.RegisterEngine(eng); err != nil {
		return fmt.Errorf("configure bus: %w", err)
	}
	if opts.Debug {
		bus.EnableDebugMode()
	}

	if opts.DatabasePath != "" {
		requests = append([]events.Request{events.OpenDatabase{Path: opts.DatabasePath}}, requests...)
	}

	for i, request := range requests {
		if err := bus.Dispatch(ctx, request); err != nil {
			return fmt.Errorf("dispatch request %d: %w", i+1, err)
		}
		if view.Ended() {
			log.Info().Int("remaining", len(requests)-i-1).Msg("Application ended")
			break
		}
	}
	return nil
}
