package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/adapters/export"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/adapters/immofetcher"
	logger_adapter "github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/adapters/logger"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/adapters/runstore"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/adapters/urlsource"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/configs"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/usecase"
	fluentlogger "github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/pkg/fluentlogger"
)

// Options carries the command-line overrides. Zero values mean "not set",
// so file/env configuration stays in effect.
type Options struct {
	URL       string
	InputFile string
	Output    string
	Format    string
	MaxPages  int
	DeltaBase string
	Settings  string
	LogLevel  string
}

// App is the assembled application.
type App struct {
	config       *configs.AppConfig
	options      Options
	runID        uuid.UUID
	baseLogger   port.LoggerPort
	logger       port.LoggerPort
	fluentClient *fluent.Fluent

	scrapeUC *usecase.ScrapeSearchUseCase
	deltaUC  *usecase.ComputeDeltaUseCase

	urlSource port.URLSourcePort
	runStore  port.RunStorePort
	exporter  port.ExporterPort
}

// NewApp is the composition root: every dependency is created and wired here.
func NewApp(opts Options) (*App, error) {
	appConfig, err := configs.LoadConfig(opts.Settings)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	applyOverrides(appConfig, opts)

	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	runID := uuid.New()
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
		"run_id":       runID.String(),
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})

	fetcherAdapter, err := immofetcher.NewImmoFetcherAdapter(immofetcher.Config{
		UserAgent:   appConfig.Scraper.UserAgent,
		Timeout:     appConfig.Scraper.Timeout(),
		Parallelism: appConfig.Scraper.ParallelRequests,
	})
	if err != nil {
		appLogger.Error("Failed to create Immobiliare Fetcher Adapter", err, nil)
		return nil, fmt.Errorf("failed to initialize immo fetcher: %w", err)
	}
	appLogger.Info("Immobiliare Fetcher Adapter initialized.", nil)

	application := &App{
		config:       appConfig,
		options:      opts,
		runID:        runID,
		baseLogger:   baseLogger,
		logger:       appLogger,
		fluentClient: fluentClient,
		scrapeUC: usecase.NewScrapeSearchUseCase(
			fetcherAdapter,
			appConfig.Scraper.ParallelRequests,
			appConfig.Scraper.DelayBetweenPages(),
		),
		deltaUC:   usecase.NewComputeDeltaUseCase(),
		urlSource: urlsource.NewFileURLSource(),
		runStore:  runstore.NewJSONRunStore(),
		exporter:  export.NewManager(),
	}
	appLogger.Info("All use cases and adapters initialized.", nil)

	return application, nil
}

// applyOverrides layers CLI flags over file/env configuration.
func applyOverrides(cfg *configs.AppConfig, opts Options) {
	if opts.MaxPages > 0 {
		cfg.Scraper.MaxPages = opts.MaxPages
	}
	if opts.Output != "" {
		cfg.Output.Path = opts.Output
	}
	if opts.Format != "" {
		cfg.Output.DefaultFormat = opts.Format
	}
	if opts.DeltaBase != "" {
		cfg.Delta.Enabled = true
		cfg.Delta.PreviousFile = opts.DeltaBase
	}
	if opts.LogLevel != "" {
		cfg.StdoutLogger.Level = opts.LogLevel
	}
}

// Run executes one scrape invocation end to end: resolve URLs, scrape every
// search, apply delta mode when a previous run is available, export.
func (a *App) Run() error {
	defer func() {
		if a.fluentClient != nil {
			a.logger.Info("Closing Fluent Bit connection...", nil)
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: error closing fluent client: %v\n", err)
			}
		}
	}()

	ctx := contextkeys.ContextWithLogger(context.Background(), a.baseLogger)
	ctx = contextkeys.ContextWithRunID(ctx, a.runID)

	urls, err := a.resolveURLs(ctx)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		a.logger.Error("No URLs provided. Use -url or -input-file.", nil, nil)
		return fmt.Errorf("no search URLs provided")
	}

	a.logger.Info("Starting scrape", port.Fields{
		"urls":      len(urls),
		"max_pages": a.config.Scraper.MaxPages,
	})

	var allItems []domain.ListingRecord
	for _, searchURL := range urls {
		items := a.scrapeUC.Execute(ctx, domain.SearchTask{
			URL:      searchURL,
			MaxPages: a.config.Scraper.MaxPages,
		})
		allItems = append(allItems, items...)
	}

	a.logger.Info("Scraping finished", port.Fields{"total_listings": len(allItems)})

	allItems = a.applyDelta(ctx, allItems)

	outputPath := a.config.Output.Path
	format := a.config.Output.DefaultFormat
	if format == "" {
		format = export.InferFormat(outputPath)
	}

	if err := a.exporter.Export(ctx, allItems, outputPath, format); err != nil {
		a.logger.Error("Failed to export data", err, port.Fields{"path": outputPath})
		return err
	}

	a.logger.Info("Export completed", port.Fields{
		"path":   outputPath,
		"format": format,
		"items":  len(allItems),
	})
	return nil
}

func (a *App) resolveURLs(ctx context.Context) ([]string, error) {
	if a.options.URL != "" {
		return []string{urlsource.NormalizeURL(a.options.URL)}, nil
	}

	rawURLs, err := a.urlSource.ReadURLs(ctx, a.options.InputFile)
	if err != nil {
		a.logger.Error("Failed to read URL input file", err, port.Fields{"path": a.options.InputFile})
		return nil, err
	}

	urls := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		urls = append(urls, urlsource.NormalizeURL(raw))
	}
	return urls, nil
}

// applyDelta runs delta mode when enabled and a previous run loads cleanly;
// every failure path degrades to the unannotated current collection.
func (a *App) applyDelta(ctx context.Context, current []domain.ListingRecord) []domain.ListingRecord {
	if !a.config.Delta.Enabled || a.config.Delta.PreviousFile == "" {
		a.logger.Info("Delta Mode disabled.", nil)
		return current
	}

	previous, err := a.runStore.LoadRun(ctx, a.config.Delta.PreviousFile)
	if err != nil {
		a.logger.Warn("Delta Mode requested but previous run data could not be loaded. Proceeding without delta annotations.", port.Fields{
			"previous_file": a.config.Delta.PreviousFile,
			"error":         err.Error(),
		})
		return current
	}
	if len(previous) == 0 {
		a.logger.Warn("Previous run file is empty. Proceeding without delta annotations.", port.Fields{
			"previous_file": a.config.Delta.PreviousFile,
		})
		return current
	}

	combined := a.deltaUC.Execute(ctx, previous, current)
	a.logger.Info("Delta Mode applied", port.Fields{
		"previous_file": a.config.Delta.PreviousFile,
		"total_items":   len(combined),
	})
	return combined
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
