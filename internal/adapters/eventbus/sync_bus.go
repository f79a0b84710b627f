package eventbus

import (
	"CatalogEngine/internal/core/events"
	"CatalogEngine/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrNotConfigured is returned by Dispatch until both a view and an engine are registered.
	ErrNotConfigured = errors.New("event bus requires one view and one engine")

	// ErrAlreadyRegistered is returned when a second view or engine is registered.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrDispatchInProgress is returned when a request is dispatched while
	// another one is still being delivered.
	ErrDispatchInProgress = errors.New("a request is already being dispatched")
)

// syncEventBus implements ports.EventBus as a synchronous relay:
// responses are delivered on the caller's goroutine, in the order the engine produced them.
type syncEventBus struct {
	log    zerolog.Logger
	view   ports.View
	engine ports.Engine
	debug  atomic.Bool
	mu     sync.Mutex // held for the whole of a dispatch
}

var _ ports.EventBus = (*syncEventBus)(nil) // Ensure compliance

// NewSyncEventBus creates an empty bus. Register a view and an engine before dispatching.
func NewSyncEventBus(baseLogger *zerolog.Logger) ports.EventBus {
	return &syncEventBus{
		log: baseLogger.With().Str("component", "event_bus").Logger(),
	}
}

// RegisterView sets the view that receives every response.
func (b *syncEventBus) RegisterView(view ports.View) error {
	if view == nil {
		return fmt.Errorf("register view: %w", ErrNotConfigured)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.view != nil {
		return fmt.Errorf("view: %w", ErrAlreadyRegistered)
	}
	b.view = view
	b.log.Info().Msg("View registered")
	return nil
}

// RegisterEngine sets the engine that processes every request.
func (b *syncEventBus) RegisterEngine(engine ports.Engine) error {
	if engine == nil {
		return fmt.Errorf("register engine: %w", ErrNotConfigured)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.engine != nil {
		return fmt.Errorf("engine: %w", ErrAlreadyRegistered)
	}
	b.engine = engine
	b.log.Info().Msg("Engine registered")
	return nil
}

// EnableDebugMode records every request and response in the log.
func (b *syncEventBus) EnableDebugMode() { b.debug.Store(true) }

// DisableDebugMode stops recording traffic.
func (b *syncEventBus) DisableDebugMode() { b.debug.Store(false) }

// Dispatch forwards request to the engine and delivers each response to the view
// before returning. A view error is logged and delivery continues with the next response.
func (b *syncEventBus) Dispatch(ctx context.Context, request events.Request) error {
	// One request at a time; overlapping or re-entrant dispatches are refused.
	if !b.mu.TryLock() {
		return ErrDispatchInProgress
	}
	defer b.mu.Unlock()

	if b.view == nil || b.engine == nil {
		return ErrNotConfigured
	}

	debug := b.debug.Load()
	log := b.log.With().Str("request_id", uuid.NewString()).Logger()

	if debug {
		log.Info().Stringer("request", request).Msg("Sent by view")
	}

	responses := b.engine.Process(ctx, request)
	for _, response := range responses {
		if debug {
			log.Info().Stringer("response", response).Msg("Sent by engine")
		}
		if err := b.view.HandleEvent(ctx, response); err != nil {
			log.Error().Err(err).Stringer("response", response).Msg("View failed to handle event")
		}
	}
	return nil
}
