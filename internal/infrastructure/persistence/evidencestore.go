package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ecomplaint/internal/shared/errors"
)

const uploadsDirName = "uploads"

// FileEvidenceStore writes uploaded evidence under a dedicated directory.
// Stored names concatenate the owning complaint id and the original file
// name; there is no deduplication.
type FileEvidenceStore struct {
	dir string
}

func NewFileEvidenceStore(dataDir string) (*FileEvidenceStore, error) {
	dir := filepath.Join(dataDir, uploadsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileEvidenceStore{dir: dir}, nil
}

func (s *FileEvidenceStore) Save(complaintID int, filename string, data []byte) (string, error) {
	if complaintID == 0 {
		return "", fmt.Errorf("complaint ID is required")
	}

	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || len(base) == 0 {
		return "", fmt.Errorf("invalid evidence file name: %q", filename)
	}

	storedName := fmt.Sprintf("%d_%s", complaintID, base)
	if err := os.WriteFile(filepath.Join(s.dir, storedName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write evidence file: %w", err)
	}

	return storedName, nil
}

func (s *FileEvidenceStore) Path(storedName string) (string, error) {
	// Stored names never contain path separators; reject anything that
	// would escape the upload directory.
	if storedName != filepath.Base(storedName) || strings.Contains(storedName, "..") {
		return "", errors.NewBadRequestError("invalid evidence file name")
	}

	path := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("evidence file not found")
		}
		return "", fmt.Errorf("failed to stat evidence file: %w", err)
	}

	return path, nil
}
