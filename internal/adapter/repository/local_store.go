package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound reports an absent persistence entry. Callers fall back to the
// default document.
var ErrNotFound = errors.New("no persisted resume")

const (
	entryName    = "resume.json"
	generatedDir = "generated"
)

// LocalStore persists the serialized resume as a single named entry under
// the data directory. There is no versioning or migration scheme.
type LocalStore struct {
	dir  string
	path string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &LocalStore{dir: dir, path: filepath.Join(dir, entryName)}, nil
}

func (s *LocalStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *LocalStore) Write(data []byte) error {
	// Write through a temp file so a crash mid-write never corrupts the
	// only copy of the resume.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// SaveArtifact writes a best-effort copy of an encoded document under the
// generated directory and returns its path.
func (s *LocalStore) SaveArtifact(pdf []byte) (string, error) {
	dir := filepath.Join(s.dir, generatedDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "resume_"+uuid.New().String()+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
