package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/config"
	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/filter"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/metrics"
	"github.com/pfrederiksen/event-finder/internal/search"
	"github.com/pfrederiksen/event-finder/internal/serpapi"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNoEvents = 2
)

// invalidLocationMessage is shown when the location fails validation
const invalidLocationMessage = "Invalid location. Please enter a proper city/country."

// options holds the parsed command-line flags
type options struct {
	location       string
	start          string
	end            string
	category       string
	format         string
	output         string
	sort           string
	venues         []string
	keywords       []string
	strictCategory bool
	eventLikeOnly  bool
	configPath     string
	envFile        string
	apiKey         string
	metricsFile    string
	verbose        bool
}

// app carries the collaborators of one CLI invocation
type app struct {
	opts     options
	stdout   io.Writer
	stderr   io.Writer
	now      func() time.Time
	exitCode int

	// newFetcher builds the search collaborator from the merged configuration
	newFetcher func(cfg *config.Config) search.Fetcher
}

func newApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		now:        time.Now,
		newFetcher: newSerpAPIFetcher,
	}
}

func newSerpAPIFetcher(cfg *config.Config) search.Fetcher {
	return serpapi.NewClient(cfg.SerpAPI.APIKey,
		serpapi.WithURL(cfg.SerpAPI.Endpoint),
		serpapi.WithTimeout(cfg.SerpAPI.Timeout),
		serpapi.WithUserAgent(cfg.SerpAPI.UserAgent),
	)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event-finder",
		Short: "Find events near a location and date range",
		Long: `A CLI tool to discover events through SerpApi Google search.
Builds category-specific queries, classifies and deduplicates the results,
and prints them as a table or exports them as JSON, CSV or iCalendar.`,
		Example: `  event-finder --location Dubai --category music
  event-finder -l "New York" --start 2026-11-01 --end 2026-11-30 -f csv -o events.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runSearch,
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	// Define flags
	cmd.Flags().StringVarP(&a.opts.location, "location", "l", "", "City or country to search (default from config: Dubai)")
	cmd.Flags().StringVar(&a.opts.start, "start", "", "Start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&a.opts.end, "end", "", "End date YYYY-MM-DD (default start + search.days)")
	cmd.Flags().StringVarP(&a.opts.category, "category", "c", "", "Event category, see 'event-finder categories' (default all)")
	cmd.Flags().StringVarP(&a.opts.format, "format", "f", "", "Output format: table, json, csv or ics (default table)")
	cmd.Flags().StringVarP(&a.opts.output, "output", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVar(&a.opts.sort, "sort", "", "Sort by date, name, category or venue (default search order)")
	cmd.Flags().StringSliceVar(&a.opts.venues, "venue", nil, "Only keep events whose venue contains this text (repeatable)")
	cmd.Flags().StringSliceVar(&a.opts.keywords, "keyword", nil, "Only keep events whose name contains this text (repeatable)")
	cmd.Flags().BoolVar(&a.opts.strictCategory, "strict-category", false, "Only keep events classified as the requested category")
	cmd.Flags().BoolVar(&a.opts.eventLikeOnly, "event-like-only", false, "Drop results that do not look like event listings")
	cmd.Flags().StringVar(&a.opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the search")

	cmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.opts.envFile, "env-file", ".env", "Path to a .env file with SERPAPI_API_KEY")
	cmd.PersistentFlags().StringVar(&a.opts.apiKey, "api-key", "", "SerpApi API key (overrides SERPAPI_API_KEY)")
	cmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCategoriesCmd(a))

	return cmd
}

// newCategoriesCmd lists the selectable categories
func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the event categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range event.Categories() {
				fmt.Fprintf(a.stdout, "%-12s %s\n", c, c.Label())
			}
			return nil
		},
	}
}

// loadConfig merges defaults, the config file, the environment and changed flags
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.ApplyEnv(a.opts.envFile); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.SerpAPI.APIKey = a.opts.apiKey
	}
	if flags.Changed("location") {
		cfg.Search.Location = a.opts.location
	}
	if flags.Changed("category") {
		cfg.Search.Category = a.opts.category
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}
	if flags.Changed("sort") {
		cfg.Output.Sort = a.opts.sort
	}
	if a.opts.verbose {
		cfg.Logging.Level = string(logger.LevelDebug)
	}

	return cfg, nil
}

// buildRequest assembles the search request from config and date flags
func (a *app) buildRequest(cfg *config.Config) (search.Request, error) {
	category, err := event.ParseCategory(cfg.Search.Category)
	if err != nil {
		return search.Request{}, err
	}

	today := a.now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if a.opts.start != "" {
		if start, err = time.Parse(search.DateLayout, a.opts.start); err != nil {
			return search.Request{}, fmt.Errorf("invalid --start date %q (want YYYY-MM-DD)", a.opts.start)
		}
	}

	end := start.AddDate(0, 0, cfg.Search.Days)
	if a.opts.end != "" {
		if end, err = time.Parse(search.DateLayout, a.opts.end); err != nil {
			return search.Request{}, fmt.Errorf("invalid --end date %q (want YYYY-MM-DD)", a.opts.end)
		}
	}

	if end.Before(start) {
		return search.Request{}, fmt.Errorf("end date %s is before start date %s", end.Format(search.DateLayout), start.Format(search.DateLayout))
	}

	return search.Request{
		Location:  cfg.Search.Location,
		StartDate: start,
		EndDate:   end,
		Category:  category,
	}, nil
}

// buildFilter returns the post-search filter for the flags
func (a *app) buildFilter(req search.Request) *filter.Filter {
	f := filter.NewFilter()
	if a.opts.strictCategory {
		f = filter.ForCategory(req.Category)
	}
	f.EventLikeOnly = a.opts.eventLikeOnly
	for _, v := range a.opts.venues {
		if v = strings.TrimSpace(v); v != "" {
			f.Venues = append(f.Venues, v)
		}
	}
	for _, k := range a.opts.keywords {
		if k = strings.TrimSpace(k); k != "" {
			f.Keywords = append(f.Keywords, k)
		}
	}
	return f
}

// runSearch is the main command logic
func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log := logger.New(level, a.stderr)
	logger.SetDefault(log)
	logger.Debug("Configuration loaded", logger.Fields{
		"config":   a.opts.configPath,
		"endpoint": cfg.SerpAPI.Endpoint,
		"timeout":  cfg.SerpAPI.Timeout.String(),
		"format":   cfg.Output.Format,
	})

	format, err := ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	sortOrder, err := ParseSortOrder(cfg.Output.Sort)
	if err != nil {
		return err
	}

	req, err := a.buildRequest(cfg)
	if err != nil {
		return err
	}

	// Location is checked before anything touches the network or the credential
	if err := req.Validate(); err != nil {
		if errors.Is(err, search.ErrInvalidLocation) {
			return errors.New(invalidLocationMessage)
		}
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m := metrics.New()
	searcher := search.New(a.newFetcher(cfg),
		search.WithLogger(log),
		search.WithRecorder(m),
		search.WithFilter(a.buildFilter(req)),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	outcome, err := searcher.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("searching events: %w", err)
	}

	if a.opts.metricsFile != "" {
		if err := m.WriteFile(a.opts.metricsFile); err != nil {
			// Metrics are best effort and never fail the search
			logger.Warn("Could not write metrics", logger.Fields{"path": a.opts.metricsFile, "error": err.Error()})
		}
	}

	sortRecords(outcome.Records, sortOrder)

	result := &OutputResult{
		SearchedAt: a.now().UTC(),
		Location:   strings.TrimSpace(req.Location),
		Category:   req.Category,
		StartDate:  req.StartDate.Format(search.DateLayout),
		EndDate:    req.EndDate.Format(search.DateLayout),
		Queries:    outcome.Queries,
		Failed:     outcome.Failed,
		EventCount: len(outcome.Records),
		Events:     outcome.Records,
	}

	if err := a.write(result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if outcome.Empty() {
		if format != FormatTable || a.opts.output != "" {
			fmt.Fprintln(a.stderr, "No events found.")
		}
		a.exitCode = ExitNoEvents
		return nil
	}

	if a.opts.output != "" {
		logger.Info("Output written", logger.Fields{
			"path":   a.opts.output,
			"format": string(format),
			"events": result.EventCount,
		})
		fmt.Fprintf(a.stderr, "Wrote %d events to %s\n", result.EventCount, a.opts.output)
	}

	a.exitCode = ExitSuccess
	return nil
}

// write sends the result to --output or stdout
func (a *app) write(result *OutputResult, format OutputFormat) error {
	if a.opts.output == "" {
		return WriteOutput(a.stdout, result, format)
	}

	f, err := os.Create(a.opts.output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteOutput(f, result, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Execute runs the CLI
func Execute() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(a.exitCode)
}
