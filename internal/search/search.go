package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/event"
	"github.com/pfrederiksen/event-finder/internal/filter"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/query"
	"github.com/pfrederiksen/event-finder/internal/serpapi"
)

// DateLayout is the textual date format used in queries
const DateLayout = "2006-01-02"

var (
	// ErrInvalidLocation is returned when the location fails validation
	ErrInvalidLocation = errors.New("invalid location")
	// ErrUnknownCategory is returned when the category is not selectable
	ErrUnknownCategory = errors.New("unknown category")
)

// Request describes one user search
type Request struct {
	Location  string
	StartDate time.Time
	EndDate   time.Time
	Category  event.Category
}

// Validate checks the request before any query is issued
func (r Request) Validate() error {
	if !query.ValidateLocation(r.Location) {
		return fmt.Errorf("%w: %q", ErrInvalidLocation, r.Location)
	}
	if !r.Category.IsSelectable() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, r.Category)
	}
	return nil
}

// Queries returns the search strings for the request
func (r Request) Queries() []string {
	return query.Build(r.location(), r.StartDate.Format(DateLayout), r.EndDate.Format(DateLayout), r.Category)
}

func (r Request) location() string {
	return strings.TrimSpace(r.Location)
}

// Fetcher runs one search query against the provider
type Fetcher interface {
	Fetch(ctx context.Context, query, location string) (*serpapi.Result, error)
}

// Recorder receives pipeline metrics. *metrics.Metrics implements it.
type Recorder interface {
	QueryFinished(success bool)
	RecordsExtracted(n int)
	SearchFinished(extracted, returned int, elapsed time.Duration)
}

// Outcome is the result of a search
type Outcome struct {
	Records []event.Record `json:"records"`
	Queries int            `json:"queries"`
	Failed  int            `json:"failed"`
}

// Empty reports whether the search found no events
func (o *Outcome) Empty() bool {
	return len(o.Records) == 0
}

// Searcher runs searches through a Fetcher
type Searcher struct {
	fetcher  Fetcher
	filter   *filter.Filter
	recorder Recorder
	log      *logger.Logger
}

// Option configures a Searcher
type Option func(*Searcher)

// WithFilter applies f to the deduplicated records
func WithFilter(f *filter.Filter) Option {
	return func(s *Searcher) {
		s.filter = f
	}
}

// WithRecorder reports pipeline metrics to r
func WithRecorder(r Recorder) Option {
	return func(s *Searcher) {
		s.recorder = r
	}
}

// WithLogger overrides the package default logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Searcher) {
		s.log = l
	}
}

// New creates a Searcher
func New(fetcher Fetcher, opts ...Option) *Searcher {
	s := &Searcher{
		fetcher: fetcher,
		filter:  filter.NewFilter(),
		log:     logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.filter == nil {
		s.filter = filter.NewFilter()
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	return s
}

// Search runs every query for the request once, in order, and returns the
// merged, deduplicated records. Only validation errors are returned; fetch
// failures are logged and counted in Outcome.Failed.
func (s *Searcher) Search(ctx context.Context, req Request) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	location := req.location()
	queries := req.Queries()

	s.log.Info("Search started", logger.Fields{
		"location": location,
		"category": string(req.Category),
		"start":    req.StartDate.Format(DateLayout),
		"end":      req.EndDate.Format(DateLayout),
		"queries":  len(queries),
	})

	outcome := &Outcome{Queries: len(queries)}
	var records []event.Record

	for _, q := range queries {
		result, err := s.fetcher.Fetch(ctx, q, location)
		if err != nil {
			outcome.Failed++
			s.record(func(r Recorder) { r.QueryFinished(false) })
			s.log.Warn("Query failed", logger.Fields{
				"query": q,
				"error": err.Error(),
			})
			continue
		}

		extracted := serpapi.Extract(result, location)
		s.record(func(r Recorder) {
			r.QueryFinished(true)
			r.RecordsExtracted(len(extracted))
		})
		s.log.Debug("Query finished", logger.Fields{
			"query":   q,
			"records": len(extracted),
		})

		records = append(records, extracted...)
	}

	unique := event.Deduplicate(records)
	outcome.Records = s.filter.Apply(unique)

	s.record(func(r Recorder) { r.SearchFinished(len(records), len(unique), time.Since(started)) })
	s.log.Info("Search finished", logger.Fields{
		"extracted": len(records),
		"unique":    len(unique),
		"returned":  len(outcome.Records),
		"failed":    outcome.Failed,
		"filter":    s.filter.String(),
		"duration":  time.Since(started).String(),
	})

	return outcome, nil
}

func (s *Searcher) record(fn func(Recorder)) {
	if s.recorder != nil {
		fn(s.recorder)
	}
}
