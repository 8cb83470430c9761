package observability

import (
	"context"
	"time"
)

// OperationEvent describes one finished operation.
type OperationEvent struct {
	Operation string
	// Inputs names the definitions the operation read.
	Inputs   []string
	Duration time.Duration
	// States is the size of the resulting automaton, or -1 when the
	// operation produced a verdict instead of an automaton.
	States int
	Err    error
}

// Result is "error" when the operation failed and "ok" otherwise.
func (e OperationEvent) Result() string {
	if e.Err != nil {
		return "error"
	}
	return "ok"
}

// Observer receives operation events.
type Observer interface {
	OperationDone(ctx context.Context, e OperationEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, e OperationEvent)

func (f ObserverFunc) OperationDone(ctx context.Context, e OperationEvent) {
	f(ctx, e)
}

// Multi fans events out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	list := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return ObserverFunc(func(ctx context.Context, e OperationEvent) {
		for _, o := range list {
			o.OperationDone(ctx, e)
		}
	})
}
