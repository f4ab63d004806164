package archive

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/goodtill-sales-archiver/internal/domain"
)

//go:generate mockgen -source=csv_archive.go -destination=mocks/writer_mock.go -package=mocks

// Writer persists one day's flattened sales. Files are keyed by calendar date
// and write-once: an existing day is never overwritten. The existence check
// is an idempotency guard for repeated runs, not a lock; exactly-once across
// concurrent invocations of the tool is out of scope.
type Writer interface {
	Path(day time.Time) string
	Exists(day time.Time) (bool, error)
	Write(day time.Time, records []domain.FlatRecord) (string, error)
}

type CSVArchive struct {
	dir string
}

func NewCSVArchive(dir string) *CSVArchive {
	return &CSVArchive{dir: dir}
}

// Path returns the archive file for the given day.
func (a *CSVArchive) Path(day time.Time) string {
	return filepath.Join(a.dir, day.Format(time.DateOnly)+"_sales.csv")
}

func (a *CSVArchive) Exists(day time.Time) (bool, error) {
	_, err := os.Stat(a.Path(day))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Write creates the day's file with a header row followed by one row per
// record. The archive directory is created if absent. O_EXCL keeps a file
// that appeared since the existence check from being truncated.
func (a *CSVArchive) Write(day time.Time, records []domain.FlatRecord) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating archive directory: %w", err)
	}

	path := a.Path(day)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("error creating archive file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(domain.CSVHeader()); err != nil {
		return "", fmt.Errorf("error writing header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.CSVRow()); err != nil {
			return "", fmt.Errorf("error writing record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing archive file: %w", err)
	}

	return path, nil
}
