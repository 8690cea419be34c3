package main

import (
	"flag"
	"log"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal"
)

func main() {
	var opts internal.Options

	flag.StringVar(&opts.URL, "url", "", "Single Immobiliare.it search URL (overrides -input-file)")
	flag.StringVar(&opts.InputFile, "input-file", "data/inputs.sample.txt", "Path to a text file containing search URLs (one per line)")
	flag.StringVar(&opts.Output, "output", "", "Output file path (extension determines format unless -format is set)")
	flag.StringVar(&opts.Format, "format", "", "Output format: json, csv or html (default: inferred from -output)")
	flag.IntVar(&opts.MaxPages, "max-pages", 0, "Maximum number of result pages to scrape per URL (overrides settings)")
	flag.StringVar(&opts.DeltaBase, "delta-base", "", "Path to previous run JSON file for Delta Mode comparison")
	flag.StringVar(&opts.Settings, "settings", "", "Path to YAML settings file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Logging level: debug, info, warn or error")
	flag.Parse()

	application, err := internal.NewApp(opts)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application run failed: %v", err)
	}
}
