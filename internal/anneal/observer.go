package anneal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// State identifies why an Event was raised.
type State int

const (
	// MoveMade fires on every accepted move, whether or not it improved
	// on the recorder's best.
	MoveMade State = iota
	// ImprovementMade fires immediately before MoveMade, only when the
	// accepted move improved on the recorder's best.
	ImprovementMade
)

func (s State) String() string {
	switch s {
	case MoveMade:
		return "MOVE_MADE"
	case ImprovementMade:
		return "IMPROVEMENT_MADE"
	default:
		return "UNKNOWN"
	}
}

// Event is a read-only notification of an accepted move. It carries
// scalar summaries of the working solution, never the solution itself:
// nothing about this library's concurrency model guarantees the
// solution is safe to read after the driver resumes its next step.
type Event struct {
	ID        uuid.UUID
	State     State
	Iteration int
	Cost      float64
	BestCost  float64
	Temp      float64
}

// Observer receives search notifications. Implementations must not
// block for long: Notify runs synchronously on the driver's goroutine.
type Observer interface {
	Notify(ctx context.Context, ev Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

// Notify implements Observer.
func (f ObserverFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// loggingObserver records every Event as a structured slog record. It is
// the ambient-logging integration point for the driver.
type loggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver wraps logger as an Observer. If logger is nil,
// slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingObserver{logger: logger}
}

// Notify implements Observer.
func (o *loggingObserver) Notify(ctx context.Context, ev Event) {
	o.logger.InfoContext(ctx, "search event",
		slog.String("event_id", ev.ID.String()),
		slog.String("state", ev.State.String()),
		slog.Int("iteration", ev.Iteration),
		slog.Float64("cost", ev.Cost),
		slog.Float64("best_cost", ev.BestCost),
		slog.Float64("temp", ev.Temp),
	)
}
