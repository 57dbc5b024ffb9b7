package dataset

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// DefaultPath is the dataset location relative to the project root.
const DefaultPath = "src/lib/data/database.json"

// fileMode is used when Save has to create the file.
const fileMode os.FileMode = 0o644

// Store reads and writes one dataset file.
// Writes overwrite the file in place; there is no temp file and no locking.
type Store struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// NewStore creates a store for path on fs. A nil logger discards output.
func NewStore(fs afero.Fs, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{fs: fs, path: path, logger: logger}
}

// NewOSStore creates a store backed by the operating system filesystem.
func NewOSStore(path string, logger *slog.Logger) *Store {
	return NewStore(afero.NewOsFs(), path, logger)
}

// Path returns the dataset file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the whole dataset file.
func (s *Store) Load() (*Document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrRead, s.path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.logger.Debug("dataset loaded", "path", s.path, "bytes", len(data), "keys", len(doc.keys))
	return doc, nil
}

// Save serializes doc and overwrites the dataset file with it.
// Nothing is written if doc cannot be encoded.
func (s *Store) Save(doc *Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrWrite, s.path, err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, fileMode); err != nil {
		return fmt.Errorf("%w %s: %v", ErrWrite, s.path, err)
	}

	s.logger.Debug("dataset saved", "path", s.path, "bytes", len(data))
	return nil
}
