package service

import (
	"context"
	"io"
	"log/slog"
)

// UseCaseEvent is one observed call to the optimize use case: enough to
// log a request without re-deriving it from the OptimizeRequest/Response
// pair at the log site.
type UseCaseEvent struct {
	RequestID         string
	NurseID           string
	Policy            string
	ActivityCount     int
	OutcomeStatus     string
	OptimizationScore float64
	Err               error
}

// UseCaseObserver is notified after every optimize call completes,
// success or failure.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards every event; it is the default when no
// logging is configured.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one structured log line per optimize call
// to w.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	return &logUseCaseObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	attrs := []any{
		slog.String("request_id", event.RequestID),
		slog.String("nurse_id", event.NurseID),
		slog.String("policy", event.Policy),
		slog.Int("activity_count", event.ActivityCount),
		slog.String("status", event.OutcomeStatus),
		slog.Float64("optimization_score", event.OptimizationScore),
	}
	if event.Err != nil {
		o.logger.Error("optimize", append(attrs, slog.String("error", event.Err.Error()))...)
		return
	}
	o.logger.Info("optimize", attrs...)
}

// useCaseObserverOrNoop collapses an optional observer list down to one
// observer, so call sites never need a nil check.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	if len(observers) == 0 || observers[0] == nil {
		return NoopUseCaseObserver{}
	}
	return observers[0]
}
