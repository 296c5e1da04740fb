package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent records metadata about a single generation call, retries
// included.
type LLMCallEvent struct {
	Provider   Provider
	Model      string
	LatencyMs  int64
	Attempts   int
	Success    bool
	StatusCode int
	ErrorCode  string
}

// Observer receives events about generation calls for logging.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes call events as structured log records.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	level := slog.LevelInfo
	status := "ok"
	if !event.Success {
		level = slog.LevelWarn
		status = "err:" + event.ErrorCode
	}
	attrs := []slog.Attr{
		slog.String("provider", string(event.Provider)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Int("attempts", event.Attempts),
		slog.String("status", status),
	}
	if event.StatusCode > 0 {
		attrs = append(attrs, slog.Int("http_status", event.StatusCode))
	}
	o.logger.LogAttrs(context.Background(), level, "llm_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
