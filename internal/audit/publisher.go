package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"fraudregistry/pkg/requestcontext"
)

// Sink delivers one event to an external collaborator. Append must be safe
// for use from the single worker goroutine.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher hands events to the worker through a bounded inbox. Emission
// never blocks a registry mutation: when the buffer is full the event is
// dropped and logged, because notification delivery is best-effort while the
// ledger is the source of truth.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 1024
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit stamps and queues an event. Safe to call with a nil receiver so
// services can treat the publisher as optional.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"event_type", string(event.Type),
			"event_id", event.ID,
		)
	}
}

// Inbox exposes the receive side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Worker consumes events from the publisher inbox and fans them out to every
// sink. One failing sink does not stop delivery to the others.
type Worker struct {
	inbox  <-chan Event
	sinks  []Sink
	logger *slog.Logger
}

func NewWorker(inbox <-chan Event, logger *slog.Logger, sinks ...Sink) *Worker {
	return &Worker{inbox: inbox, sinks: sinks, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			for _, sink := range w.sinks {
				if err := sink.Append(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "audit sink append failed",
						"error", err,
						"event_type", string(event.Type),
						"event_id", event.ID,
					)
				}
			}
		}
	}
}
