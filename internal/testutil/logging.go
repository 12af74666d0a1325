package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// TestLogHandler captures slog records so tests can assert on what a
// handler logged.
type TestLogHandler struct {
	mu      *sync.Mutex
	records *[]TestLogRecord
	attrs   []slog.Attr
}

type TestLogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func NewTestLogHandler() *TestLogHandler {
	records := make([]TestLogRecord, 0)
	return &TestLogHandler{
		mu:      &sync.Mutex{},
		records: &records,
	}
}

func (h *TestLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *TestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any, len(h.attrs)+record.NumAttrs())
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	*h.records = append(*h.records, TestLogRecord{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})

	return nil
}

// WithAttrs shares the record buffer with the parent so loggers derived via
// With still report into the same handler.
func (h *TestLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TestLogHandler{
		mu:      h.mu,
		records: h.records,
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *TestLogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *TestLogHandler) GetRecords() []TestLogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]TestLogRecord(nil), *h.records...)
}

func (h *TestLogHandler) GetRecordsByLevel(level slog.Level) []TestLogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	var filtered []TestLogRecord
	for _, record := range *h.records {
		if record.Level == level {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (h *TestLogHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = (*h.records)[:0]
}

func (h *TestLogHandler) ContainsMessage(level slog.Level, message string) bool {
	_, ok := h.FindMessage(level, message)
	return ok
}

// FindMessage returns the first record at level with the given message.
func (h *TestLogHandler) FindMessage(level slog.Level, message string) (TestLogRecord, bool) {
	for _, record := range h.GetRecordsByLevel(level) {
		if record.Message == message {
			return record, true
		}
	}
	return TestLogRecord{}, false
}

func (h *TestLogHandler) CountByLevel(level slog.Level) int {
	return len(h.GetRecordsByLevel(level))
}
