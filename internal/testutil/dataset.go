package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// SampleDataset is a small but complete dataset document. Its matrix is
// consistent with its languages and records one relation.
const SampleDataset = `{
  "meta": {"version": 3, "note": "a < b && c > d"},
  "languages": [
    {"id": "py", "name": "Python", "paradigms": ["oop", "functional"]},
    {"id": "rs", "name": "Rust"},
    {"name": "Zig"}
  ],
  "references": [{"id": "ref-1", "url": "https://example.org/paper"}],
  "separatingFunctions": [{"id": "sf-1", "languages": ["py", "rs"]}],
  "adjacencyMatrix": {
    "languageIds": ["py", "rs", "Zig"],
    "matrix": [
      [null, {"separatedBy": ["sf-1"]}, null],
      [null, null, null],
      [null, null, null]
    ]
  }
}`

// WriteDataset writes content to the default dataset location under a fresh
// temporary project root and returns the root and the file path.
func WriteDataset(t *testing.T, content string) (root, path string) {
	t.Helper()

	root = t.TempDir()
	path = filepath.Join(root, "src", "lib", "data", "database.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dataset directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return root, path
}

// MemDataset returns an in-memory filesystem holding content at path.
func MemDataset(t *testing.T, path, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write in-memory dataset: %v", err)
	}
	return fs
}

// ReadFile returns the content of path on fs, failing the test on error.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
