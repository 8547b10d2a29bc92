package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when an object does not exist
var ErrNotFound = errors.New("object not found")

// ErrInvalidName is returned for names that are not a single path element
var ErrInvalidName = errors.New("invalid object name")

// maxCollisionSuffix bounds the numeric suffixes tried for one name
const maxCollisionSuffix = 1000

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Name        string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// ExportStore persists rendered export documents. Save never overwrites an
// existing object: on collision it retries with a numeric suffix and returns
// the name actually used.
type ExportStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
}

// ValidateName rejects names that could escape the export namespace
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	if strings.ContainsRune(name, 0) {
		return ErrInvalidName
	}
	return nil
}

// CandidateName returns the n-th name to try: name itself for n == 0, then
// base_n.ext.
func CandidateName(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}
