// Package engine implements the pipeline's typed lifecycle event dispatcher.
// Handlers are registered at construction, events are dispatched one at a
// time in emission order, and the reducer folds every event into run state
// before any handler sees it.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Event is anything the engine can dispatch. Concrete event types live in
// pkg/models; the engine only needs their type tag.
type Event interface {
	EventType() string
}

// Reducer folds an event into per-run state. It is invoked synchronously on
// every emit before the event becomes visible to handlers, which keeps state
// reads inside handlers consistent with everything already emitted.
type Reducer interface {
	Apply(Event)
}

// Handler reacts to matching events and may emit follow-ups. Run bodies may
// fan out concurrent I/O internally, but the engine never runs two handler
// bodies at once.
type Handler struct {
	// Name identifies the handler in logs.
	Name string
	// Match selects the events this handler reacts to.
	Match func(Event) bool
	// Run handles one event and returns follow-up events to emit. A plain
	// error is retriable: it is logged and the run continues. An error
	// wrapped with Terminal aborts the run.
	Run func(ctx context.Context, ev Event) ([]Event, error)
}

// Engine is a single-run event dispatcher. Dispatch is single-threaded at
// the handler level: one goroutine owns the queue, pops events in emission
// order, and runs matching handlers sequentially in registration order.
type Engine struct {
	handlers []Handler
	reducer  Reducer

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Event
	pending int // events emitted but not fully handled
	running bool
	failed  error // terminal error, sticky
	ctx     context.Context
}

// New builds an engine with the given reducer and handler set. Handlers do
// not change after construction.
func New(reducer Reducer, handlers ...Handler) *Engine {
	e := &Engine{
		handlers: handlers,
		reducer:  reducer,
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Handle tracks propagation of an emission through the engine.
type Handle struct {
	engine *Engine
}

// Emit applies the reducer to the event and appends it to the dispatch
// queue. The first Emit starts the dispatch goroutine; ctx bounds every
// handler invocation for the rest of the run.
func (e *Engine) Emit(ctx context.Context, ev Event) *Handle {
	e.mu.Lock()
	if e.failed == nil {
		if e.reducer != nil {
			e.reducer.Apply(ev)
		}
		e.queue = append(e.queue, ev)
		e.pending++
		if !e.running {
			e.running = true
			e.ctx = ctx
			go e.dispatch()
		}
		e.cond.Broadcast()
	}
	e.mu.Unlock()
	return &Handle{engine: e}
}

// emitFollowups enqueues handler-emitted events. The reducer runs here, so a
// child event is always reduced before any handler observes it.
func (e *Engine) emitFollowups(events []Event) {
	if len(events) == 0 {
		return
	}
	e.mu.Lock()
	if e.failed == nil {
		for _, ev := range events {
			if e.reducer != nil {
				e.reducer.Apply(ev)
			}
			e.queue = append(e.queue, ev)
			e.pending++
		}
		e.cond.Broadcast()
	}
	e.mu.Unlock()
}

// dispatch is the single queue-owning goroutine. It exits when the queue
// drains completely or a terminal error is recorded.
func (e *Engine) dispatch() {
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && e.pending > 0 && e.failed == nil {
			e.cond.Wait()
		}
		if (len(e.queue) == 0 && e.pending == 0) || e.failed != nil {
			e.running = false
			e.cond.Broadcast()
			e.mu.Unlock()
			return
		}
		ev := e.queue[0]
		e.queue = e.queue[1:]
		ctx := e.ctx
		e.mu.Unlock()

		e.handle(ctx, ev)

		e.mu.Lock()
		e.pending--
		if e.pending == 0 || e.failed != nil {
			e.running = false
			e.cond.Broadcast()
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()
	}
}

// handle runs every matching handler for one event, in registration order.
func (e *Engine) handle(ctx context.Context, ev Event) {
	for _, h := range e.handlers {
		if h.Match != nil && !h.Match(ev) {
			continue
		}
		followups, err := h.Run(ctx, ev)
		if err != nil {
			if IsTerminal(err) {
				slog.Error("Handler failed terminally, aborting run",
					"handler", h.Name, "event_type", ev.EventType(), "error", err)
				e.fail(err)
				return
			}
			slog.Warn("Handler failed, continuing run",
				"handler", h.Name, "event_type", ev.EventType(), "error", err)
			continue
		}
		e.emitFollowups(followups)
	}
}

func (e *Engine) fail(err error) {
	e.mu.Lock()
	if e.failed == nil {
		e.failed = err
	}
	e.queue = nil
	e.cond.Broadcast()
	e.mu.Unlock()
}

// Settled blocks until the queue is empty and all in-flight handlers have
// completed, or until ctx is done. It returns the terminal error if the run
// was aborted.
func (h *Handle) Settled(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		e := h.engine
		e.mu.Lock()
		for e.pending > 0 && e.failed == nil {
			e.cond.Wait()
		}
		err := e.failed
		e.mu.Unlock()
		done <- err
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("waiting for engine to settle: %w", ctx.Err())
	}
}
