package tabusearch

import (
	"context"
	"log/slog"
)

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

// Notify implements Observer.
func (f ObserverFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// loggingObserver records every Event as a structured slog record,
// mirroring anneal.loggingObserver for the Tabu Search driver.
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
		slog.String("event_id", ev.ID),
		slog.Bool("improved", ev.Improved),
		slog.Int("iteration", ev.Iteration),
		slog.Float64("cost", ev.Cost),
		slog.Float64("best_cost", ev.BestCost),
	)
}
