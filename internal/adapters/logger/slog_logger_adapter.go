package logger_adapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// SlogAdapter implements LoggerPort on top of log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

// SlogConfig controls handler selection and verbosity.
type SlogConfig struct {
	// Writer defaults to os.Stdout.
	Writer io.Writer
	// Level defaults to slog.LevelInfo.
	Level slog.Leveler
	// AddSource includes file:line of the call site.
	AddSource bool
	// IsJSON selects the JSON handler over text.
	IsJSON bool
	// UseColor selects the tint handler (text only). tint detects by itself
	// whether the terminal supports colors.
	UseColor bool
}

func NewSlogAdapter(cfg SlogConfig) port.LoggerPort {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var handler slog.Handler
	if cfg.IsJSON {
		handler = slog.NewJSONHandler(cfg.Writer, opts)
	} else if cfg.UseColor {
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	} else {
		handler = slog.NewTextHandler(cfg.Writer, opts)
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

func (a *SlogAdapter) fieldsToSlogAttrs(fields port.Fields) []any {
	var attrs []any
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	attrs := a.fieldsToSlogAttrs(fields)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	a.logger.Error(msg, attrs...)
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, a.fieldsToSlogAttrs(fields)...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(a.fieldsToSlogAttrs(fields)...)}
}
