// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/equiscore/equiscore/internal/adapters/intake"
	"github.com/equiscore/equiscore/internal/adapters/report"
	"github.com/equiscore/equiscore/internal/adapters/repository"
	"github.com/equiscore/equiscore/internal/domain/advice"
	"github.com/equiscore/equiscore/internal/domain/indicator"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
	"github.com/equiscore/equiscore/pkg/logger"
	"github.com/equiscore/equiscore/pkg/metrics"
)

const (
	defaultHistoryPath  = "equiscore.db"
	defaultMaxListLimit = 100
)

// Evaluation pairs a stored record with its derived advice report.
type Evaluation struct {
	Record repository.Record `json:"record"`
	Advice advice.Report     `json:"advice"`
}

// Service implements the scorecard evaluation workflow: grade, persist,
// advise, export.
type Service struct {
	mu sync.RWMutex

	// Core components
	evaluator *scorecard.Evaluator
	advisor   *advice.Advisor
	history   repository.Store

	// Configuration
	catalog      indicator.Catalog
	historyPath  string
	maxListLimit int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the indicator catalog used for grading.
func WithCatalog(catalog indicator.Catalog) Option {
	return func(s *Service) {
		if catalog.Len() > 0 {
			s.catalog = catalog
		}
	}
}

// WithHistoryPath sets the SQLite database path of the history store.
func WithHistoryPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.historyPath = path
		}
	}
}

// WithMaxListLimit caps the history listing page size.
func WithMaxListLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxListLimit = limit
		}
	}
}

// New creates a service with configuration options applied.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:      indicator.Default(),
		historyPath:  defaultHistoryPath,
		maxListLimit: defaultMaxListLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scorecard service...")

	s.evaluator = scorecard.NewEvaluator(scorecard.WithCatalog(s.catalog))

	advisor, err := advice.NewAdvisor()
	if err != nil {
		return fmt.Errorf("build advisor: %w", err)
	}
	s.advisor = advisor

	history, err := repository.NewSQLiteStore(ctx, repository.WithPath(s.historyPath))
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	s.history = history
	metrics.UpdateHistorySize(history.Count(ctx))

	s.started = true
	s.logger.Info(ctx, "scorecard service started",
		logger.Int("indicators", s.catalog.Len()),
		logger.String("history", s.historyPath),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping scorecard service...")

	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.logger.Error(context.Background(), "failed to close history", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "scorecard service stopped")
}

// Evaluate grades a request, persists the result and derives advice.
func (s *Service) Evaluate(ctx context.Context, req scorecard.Request) (Evaluation, error) {
	start := time.Now()

	if !req.Ages.Balanced100() {
		// The core accepts the brackets as given; the mismatch is the
		// caller's to fix, so it only warrants a warning here.
		s.logger.Warn(ctx, "age brackets do not sum to 100",
			logger.String("company", req.Company),
			logger.Float64("sum", req.Ages.Sum()),
		)
	}

	card, err := s.evaluator.Evaluate(ctx, req)
	if err != nil {
		metrics.RecordEvaluationError()
		return Evaluation{}, err
	}

	for _, line := range card.Lines {
		metrics.RecordGradeAssigned(line.Key, string(line.Grade))
	}
	metrics.RecordAggregateScore(card.AggregateScore)

	rec := repository.Record{
		ID:        uuid.NewString(),
		Company:   card.Company,
		Year:      card.Year,
		CreatedAt: time.Now().UTC(),
		Card:      card,
	}
	if err := s.history.Save(ctx, rec); err != nil {
		return Evaluation{}, fmt.Errorf("persist evaluation: %w", err)
	}

	metrics.RecordEvaluation()
	metrics.RecordEvaluationDuration(float64(time.Since(start).Milliseconds()))

	s.logger.Info(ctx, "evaluation completed",
		logger.String("id", rec.ID),
		logger.String("company", rec.Company),
		logger.Int("year", rec.Year),
		logger.String("grade", string(card.AggregateGrade)),
		logger.Float64("score", card.AggregateScore),
	)

	return Evaluation{Record: rec, Advice: s.advisor.Advise(card)}, nil
}

// EvaluateFile parses an uploaded indicator file and evaluates it.
func (s *Service) EvaluateFile(ctx context.Context, r io.Reader, format intake.Format) (Evaluation, error) {
	req, err := intake.Parse(r, format)
	if err != nil {
		metrics.RecordIntakeError(string(format))
		return Evaluation{}, err
	}
	metrics.RecordIntake(string(format))
	return s.Evaluate(ctx, req)
}

// Get returns a stored evaluation with freshly derived advice.
func (s *Service) Get(ctx context.Context, id string) (Evaluation, error) {
	rec, err := s.history.Get(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Record: rec, Advice: s.advisor.Advise(rec.Card)}, nil
}

// List returns history summaries, most recent first.
func (s *Service) List(ctx context.Context, limit int) ([]repository.Summary, error) {
	return s.history.List(ctx, limit)
}

// Export renders a stored evaluation in the requested format and returns
// the download name, content type and payload.
func (s *Service) Export(ctx context.Context, id string, format report.Format) (string, string, []byte, error) {
	ev, err := s.Get(ctx, id)
	if err != nil {
		return "", "", nil, err
	}

	var data []byte
	switch format {
	case report.FormatCSV:
		data, err = report.RenderCSV(ev.Record.Card)
	case report.FormatXLSX:
		data, err = report.RenderXLSX(ev.Record.Card)
	case report.FormatHTML:
		data, err = report.RenderHTML(ev.Record.Card, ev.Advice)
	default:
		err = fmt.Errorf("%w: %s", report.ErrUnknownFormat, format)
	}
	if err != nil {
		metrics.RecordExportError(string(format))
		return "", "", nil, err
	}

	metrics.RecordExport(string(format))
	return report.Filename(ev.Record.Card, format), format.ContentType(), data, nil
}

// Template returns the intake template in the requested format.
func (s *Service) Template(format intake.Format) (string, string, []byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case intake.FormatCSV:
		data, err = report.TemplateCSV()
	case intake.FormatXLSX:
		data, err = report.TemplateXLSX()
	default:
		err = fmt.Errorf("%w: %s", intake.ErrUnknownFormat, format)
	}
	if err != nil {
		return "", "", nil, err
	}

	metrics.RecordTemplateDownload(string(format))
	name := "di_indicators_template." + string(format)
	if format == intake.FormatCSV {
		return name, "text/csv; charset=utf-8", data, nil
	}
	return name, report.FormatXLSX.ContentType(), data, nil
}

// Catalog returns the indicator definitions grading is performed against.
func (s *Service) Catalog() []indicator.Definition {
	return s.catalog.Definitions()
}

// MaxListLimit returns the configured history page-size cap.
func (s *Service) MaxListLimit() int {
	return s.maxListLimit
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"indicators":   s.catalog.Len(),
		"maxListLimit": s.maxListLimit,
	}
	if s.history != nil {
		stats["evaluations"] = s.history.Count(context.Background())
	}
	return stats
}
