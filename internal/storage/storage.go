package storage

import (
	"captive-portal/internal/models"
	"fmt"
	"os"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	EnsureHeaderExists(path string) error
	AppendRecord(path string, record models.Submission) error
	InspectHeader(path string) (HeaderStatus, error)
}

// EnsureDirectory creates the storage directory if it is missing.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return nil
}
