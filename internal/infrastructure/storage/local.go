package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

// LocalStore keeps exports in a directory on disk
type LocalStore struct {
	dir string
}

var _ ExportStore = (*LocalStore)(nil)

// NewLocalStore creates the directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the backing directory
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save creates the file exclusively so two writers can never share a name
func (s *LocalStore) Save(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	for n := 0; n < maxCollisionSuffix; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := CandidateName(name, n)
		path := filepath.Join(s.dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create export file: %w", err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close export file: %w", err)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("no free export name for %q", name)
}

// Open returns a reader for a stored export
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ObjectInfo{}, ErrNotFound
	}
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}

	return f, ObjectInfo{
		Name:        name,
		Size:        st.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
		ModTime:     st.ModTime(),
	}, nil
}
