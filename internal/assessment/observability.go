package assessment

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// EventRecord describes one dispatched event and its outcome.
type EventRecord struct {
	SessionID string
	Flow      string
	Name      string
	Key       string
	Value     string
	Err       error
	StartedAt time.Time
	Duration  time.Duration
}

// Success reports whether the event was applied.
func (r EventRecord) Success() bool { return r.Err == nil }

// EventObserver receives every dispatched event.
type EventObserver interface {
	ObserveEvent(ctx context.Context, rec EventRecord)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveEvent(context.Context, EventRecord) {}

type logObserver struct {
	logger *zap.Logger
}

// NewLogObserver logs each event to logger. A nil logger yields a NoopObserver.
func NewLogObserver(logger *zap.Logger) EventObserver {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger.Named("assessment")}
}

func (o *logObserver) ObserveEvent(_ context.Context, rec EventRecord) {
	fields := []zap.Field{
		zap.String("session_id", rec.SessionID),
		zap.String("flow", rec.Flow),
		zap.String("event", rec.Name),
		zap.Duration("duration", rec.Duration),
		zap.Bool("success", rec.Success()),
	}
	if rec.Key != "" {
		fields = append(fields, zap.String("key", rec.Key))
	}
	if rec.Value != "" {
		fields = append(fields, zap.String("value", rec.Value))
	}
	if rec.Err != nil {
		o.logger.Warn("event rejected", append(fields, zap.Error(rec.Err))...)
		return
	}
	o.logger.Debug("event applied", fields...)
}

func newRecord(id, flow string, e interface{ Name() string }, start, end time.Time, err error) EventRecord {
	key, value := describe(e)
	return EventRecord{
		SessionID: id,
		Flow:      flow,
		Name:      e.Name(),
		Key:       key,
		Value:     value,
		Err:       err,
		StartedAt: start,
		Duration:  end.Sub(start),
	}
}

func describe(e any) (key, value string) {
	switch ev := e.(type) {
	case SetDocumentStatus:
		return string(ev.Key), string(ev.Status)
	case SetRating:
		return string(ev.Key), strconv.Itoa(int(ev.Rating))
	case ToggleRisk:
		return ev.ID, ""
	case SelectTab:
		return "", string(ev.Tab)
	case SetTrackerStatus:
		return string(ev.Key), string(ev.Status)
	case ToggleSection:
		return ev.Key, ""
	}
	return "", ""
}
