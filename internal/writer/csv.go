package writer

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Row is a value that renders as one CSV record.
type Row interface {
	Record() []string
}

// WriterMetrics holds counters for a CSVWriter.
type WriterMetrics struct {
	FilesWritten      int64
	RowsWritten       int64
	LastWriteDuration time.Duration
}

// CSVWriter writes a header and a set of records to a single file.
type CSVWriter struct {
	path   string
	header []string
	logger *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewCSVWriter creates a writer for path. The header is written first on
// every call to WriteRecords.
func NewCSVWriter(path string, header []string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		path:   path,
		header: header,
		logger: logger,
	}
}

// Path returns the destination file.
func (w *CSVWriter) Path() string {
	return w.path
}

// Stats returns current metrics.
func (w *CSVWriter) Stats() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteRows renders rows and writes them with w.
func WriteRows[R Row](w *CSVWriter, rows []R) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return w.WriteRecords(records)
}

// WriteRecords replaces the destination file with the header followed by
// records. Parent directories are created as needed.
func (w *CSVWriter) WriteRecords(records [][]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()

	for i, rec := range records {
		if len(rec) != len(w.header) {
			return fmt.Errorf("record %d has %d fields, header has %d", i, len(rec), len(w.header))
		}
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	cw := csv.NewWriter(tmp)
	if err := cw.Write(w.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return fmt.Errorf("rename to %s: %w", w.path, err)
	}
	committed = true

	duration := time.Since(start)
	w.metrics.FilesWritten++
	w.metrics.RowsWritten += int64(len(records))
	w.metrics.LastWriteDuration = duration

	w.logger.Info("csv written",
		"path", w.path,
		"rows", len(records),
		"duration", duration,
	)

	return nil
}
