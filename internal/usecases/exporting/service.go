package exporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/archive"
	"github.com/vfg2006/goodtill-sales-archiver/infrastructure/integrator/goodtill"
	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/log"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

// Flattener converts a raw sales payload into flat archive records.
type Flattener interface {
	Flatten(payload any) ([]domain.FlatRecord, error)
}

// ExportResult summarizes one export run.
type ExportResult struct {
	RunID      string    `json:"run_id"`
	Date       string    `json:"date"`
	Path       string    `json:"path"`
	Records    int       `json:"records"`
	Skipped    bool      `json:"skipped"`
	FinishedAt time.Time `json:"finished_at"`
}

type Service struct {
	integrator goodtill.GoodtillIntegrator
	flattener  Flattener
	archive    archive.Writer

	mu         sync.Mutex
	lastResult *ExportResult
}

func NewService(integrator goodtill.GoodtillIntegrator, flattener Flattener, archiveWriter archive.Writer) *Service {
	return &Service{
		integrator: integrator,
		flattener:  flattener,
		archive:    archiveWriter,
	}
}

// Export archives the given day: fetch and flatten each till's sales, tag
// them with their area, concatenate, and write the day's CSV. A day that is
// already archived is skipped without touching the upstream API. A failure on
// either till aborts the run with nothing written.
func (s *Service) Export(ctx context.Context, day time.Time) (*ExportResult, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, errors.Wrap(err, "generating run ID")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"date":   day.Format(time.DateOnly),
	})

	exists, err := s.archive.Exists(day)
	if err != nil {
		return nil, errors.Wrap(err, "checking archive")
	}

	if exists {
		logger.Infof("File already exists, skipping: %s", s.archive.Path(day))
		return s.finish(&ExportResult{
			RunID:   runID,
			Date:    day.Format(time.DateOnly),
			Path:    s.archive.Path(day),
			Skipped: true,
		}), nil
	}

	var combined []domain.FlatRecord

	for _, area := range domain.Areas {
		sales, err := s.integrator.GetSalesForDay(area, day)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching %s sales", area)
		}

		records, err := s.flattener.Flatten(sales)
		if err != nil {
			return nil, errors.Wrapf(err, "flattening %s sales", area)
		}

		for i := range records {
			records[i].Area = area
		}

		logger.WithFields(log.Fields{
			"area":  area,
			"sales": len(sales),
			"rows":  len(records),
		}).Info("Flattened sales for area")

		combined = append(combined, records...)
	}

	path, err := s.archive.Write(day, combined)
	if err != nil {
		return nil, errors.Wrap(err, "writing archive")
	}

	logger.Infof("Saved daily sales to %s", path)

	return s.finish(&ExportResult{
		RunID:   runID,
		Date:    day.Format(time.DateOnly),
		Path:    path,
		Records: len(combined),
	}), nil
}

func (s *Service) finish(result *ExportResult) *ExportResult {
	result.FinishedAt = time.Now()

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()

	return result
}

// LastResult returns the most recent run's summary, or nil before any run.
func (s *Service) LastResult() *ExportResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}
