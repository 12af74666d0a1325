package storage

import (
	"bytes"
	"captive-portal/internal/metrics"
	"captive-portal/internal/models"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"sync"
	"time"
)

// CSVStore appends submissions to flat CSV files. The mutex serialises
// header creation and appends so each record lands as one intact line.
type CSVStore struct {
	mu sync.Mutex
}

func NewCSVStore() *CSVStore {
	return &CSVStore{}
}

// EnsureHeaderExists creates the file with the header row if it does not
// exist. An existing file is left untouched, whatever it contains.
func (s *CSVStore) EnsureHeaderExists(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return observe(OperationEnsureHeader, func() error {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create submissions file: %w", err)
		}

		header, err := encodeRow(models.CSVHeader)
		if err == nil {
			_, err = f.Write(header)
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			// a header-less file would never be repaired later
			_ = os.Remove(path)
			return fmt.Errorf("failed to write submissions header: %w", err)
		}

		return nil
	})
}

// AppendRecord writes the record as a single CSV line at the end of the file.
func (s *CSVStore) AppendRecord(path string, record models.Submission) error {
	row, err := encodeRow(record.Fields())
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return observe(OperationAppend, func() error {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, filePerm)
		if err != nil {
			return fmt.Errorf("failed to open submissions file: %w", err)
		}

		_, err = f.Write(row)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed to append submission: %w", err)
		}

		return nil
	})
}

// InspectHeader reports whether the file exists and starts with the expected
// header. It never modifies the file.
func (s *CSVStore) InspectHeader(path string) (HeaderStatus, error) {
	status := HeaderMissing

	err := observe(OperationInspect, func() error {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to open submissions file: %w", err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1

		first, err := reader.Read()
		switch {
		case errors.Is(err, io.EOF):
			status = HeaderMismatch
		case err != nil:
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return fmt.Errorf("failed to read submissions header: %w", err)
			}
			status = HeaderMismatch
		case slices.Equal(first, models.CSVHeader):
			status = HeaderOK
		default:
			status = HeaderMismatch
		}

		return nil
	})

	return status, err
}

func encodeRow(fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fields); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	metrics.StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrors.WithLabelValues(operation).Inc()
	}

	return err
}
