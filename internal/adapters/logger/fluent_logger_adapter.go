package logger_adapter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// FluentLoggerAdapter forwards log entries to a Fluent Bit collector.
type FluentLoggerAdapter struct {
	client   *fluent.Fluent
	fields   port.Fields
	minLevel slog.Level
}

func NewFluentLoggerAdapter(client *fluent.Fluent, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}

	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentLoggerAdapter{
		client:   client,
		fields:   make(port.Fields),
		minLevel: level,
	}, nil
}

func (a *FluentLoggerAdapter) mergeFields(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level string, msg string, data port.Fields) {
	data["level"] = level
	data["message"] = msg
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	_ = a.client.Post(level, data)
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelInfo {
		return
	}
	a.post("info", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelWarn {
		return
	}
	a.post("warn", msg, a.mergeFields(fields))
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	if a.minLevel > slog.LevelError {
		return
	}
	data := a.mergeFields(fields)
	if err != nil {
		data["error"] = err.Error()
	}
	a.post("error", msg, data)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	if a.minLevel > slog.LevelDebug {
		return
	}
	a.post("debug", msg, a.mergeFields(fields))
}

// WithFields returns a logger with the extended context pre-merged.
func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.mergeFields(fields),
		minLevel: a.minLevel,
	}
}

func (a *FluentLoggerAdapter) Close() error {
	return a.client.Close()
}
