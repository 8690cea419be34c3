package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config holds the Fluent Bit connection settings.
type Config struct {
	Host      string
	Port      int
	TagPrefix string
}

// NewClient creates a Fluent Bit client. A successful return does not
// guarantee a live connection: errors surface on the first post attempt.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return logger, nil
}
