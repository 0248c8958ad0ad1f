package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kind string
	n    int
}

func (e testEvent) EventType() string { return e.kind }

// recordingReducer appends event kinds in apply order.
type recordingReducer struct {
	mu      sync.Mutex
	applied []string
}

func (r *recordingReducer) Apply(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, ev.EventType())
}

func settle(t *testing.T, h *Handle) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.Settled(ctx)
}

func TestEngine_DispatchOrder(t *testing.T) {
	var order []string
	var mu sync.Mutex
	record := func(name string) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
	}

	eng := New(nil,
		Handler{
			Name:  "first",
			Match: func(ev Event) bool { return ev.EventType() == "start" },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				record("first")
				return []Event{testEvent{kind: "child"}}, nil
			},
		},
		Handler{
			Name:  "second",
			Match: func(ev Event) bool { return ev.EventType() == "start" },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				record("second")
				return nil, nil
			},
		},
		Handler{
			Name:  "child",
			Match: func(ev Event) bool { return ev.EventType() == "child" },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				record("child")
				return nil, nil
			},
		},
	)

	require.NoError(t, settle(t, eng.Emit(context.Background(), testEvent{kind: "start"})))

	// Handlers for one event run in registration order; the child emitted by
	// the first handler dispatches after the start event fully completes.
	assert.Equal(t, []string{"first", "second", "child"}, order)
}

func TestEngine_ReducerBeforeHandlers(t *testing.T) {
	reducer := &recordingReducer{}
	var seenAtHandler int

	eng := New(reducer, Handler{
		Name:  "observer",
		Match: func(Event) bool { return true },
		Run: func(_ context.Context, ev Event) ([]Event, error) {
			reducer.mu.Lock()
			seenAtHandler = len(reducer.applied)
			reducer.mu.Unlock()
			return nil, nil
		},
	})

	require.NoError(t, settle(t, eng.Emit(context.Background(), testEvent{kind: "one"})))
	assert.GreaterOrEqual(t, seenAtHandler, 1, "reducer must run before handlers see the event")
}

func TestEngine_RecursiveEmission(t *testing.T) {
	reducer := &recordingReducer{}
	eng := New(reducer, Handler{
		Name:  "counter",
		Match: func(ev Event) bool { return ev.EventType() == "count" },
		Run: func(_ context.Context, ev Event) ([]Event, error) {
			e := ev.(testEvent)
			if e.n >= 5 {
				return nil, nil
			}
			return []Event{testEvent{kind: "count", n: e.n + 1}}, nil
		},
	})

	require.NoError(t, settle(t, eng.Emit(context.Background(), testEvent{kind: "count", n: 1})))
	assert.Len(t, reducer.applied, 5)
}

func TestEngine_RetriableErrorContinues(t *testing.T) {
	var ran []string
	eng := New(nil,
		Handler{
			Name:  "failing",
			Match: func(Event) bool { return true },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				ran = append(ran, "failing")
				return nil, errors.New("transient")
			},
		},
		Handler{
			Name:  "after",
			Match: func(Event) bool { return true },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				ran = append(ran, "after")
				return nil, nil
			},
		},
	)

	err := settle(t, eng.Emit(context.Background(), testEvent{kind: "x"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"failing", "after"}, ran)
}

func TestEngine_TerminalErrorAborts(t *testing.T) {
	var afterRan bool
	eng := New(nil,
		Handler{
			Name:  "fatal",
			Match: func(ev Event) bool { return ev.EventType() == "x" },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				return []Event{testEvent{kind: "never"}}, Terminal(errors.New("log corrupt"))
			},
		},
		Handler{
			Name:  "never",
			Match: func(ev Event) bool { return ev.EventType() == "never" },
			Run: func(_ context.Context, _ Event) ([]Event, error) {
				afterRan = true
				return nil, nil
			},
		},
	)

	err := settle(t, eng.Emit(context.Background(), testEvent{kind: "x"}))
	require.Error(t, err)
	assert.True(t, IsTerminal(err))
	assert.False(t, afterRan)
}

func TestTerminal(t *testing.T) {
	assert.Nil(t, Terminal(nil))
	assert.False(t, IsTerminal(errors.New("plain")))

	wrapped := Terminal(errors.New("bad"))
	assert.True(t, IsTerminal(wrapped))
	assert.EqualError(t, wrapped, "bad")
}

func TestCancelFlag(t *testing.T) {
	var flag CancelFlag
	assert.False(t, flag.Cancelled())
	flag.Cancel()
	assert.True(t, flag.Cancelled())
}
