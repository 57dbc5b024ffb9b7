// Package reset implements the dataset reset operations.
//
// Both operations are a single read-modify-write pass: load the whole
// document, overwrite a few top-level keys, save the whole document. A load
// failure aborts before anything is written.
package reset

import (
	"fmt"
	"log/slog"

	"github.com/langatlas/langdb/internal/dataset"
	"github.com/langatlas/langdb/pkg/adjacency"
)

// Operation names a reset operation.
type Operation string

// Reset operations.
const (
	OpClearAdjacency Operation = "clear-adjacency"
	OpClearDatabase  Operation = "clear-database"
)

// Confirmation messages printed after a successful write.
const (
	ClearAdjacencyMessage = "Database cleared: adjacencyMatrix rebuilt with null entries for all languages."
	ClearDatabaseMessage  = "Database cleared to empty datasets with valid structure."
)

// Result describes a completed reset.
type Result struct {
	Operation Operation `json:"operation"`
	Path      string    `json:"path"`
	Languages int       `json:"languages"`
	// DiscardedRelations counts the non-null matrix cells that were dropped.
	DiscardedRelations int    `json:"discarded_relations"`
	Message            string `json:"message"`
}

// Resetter applies reset operations to one dataset store.
type Resetter struct {
	store  *dataset.Store
	logger *slog.Logger
}

// New creates a Resetter. A nil logger discards output.
func New(store *dataset.Store, logger *slog.Logger) *Resetter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resetter{store: store, logger: logger}
}

// ClearAdjacency rebuilds the adjacency matrix as an all-null matrix sized to
// the current languages, labelled with each language's id (or name).
// Languages and every other key are left as they are.
func (r *Resetter) ClearAdjacency() (*Result, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	discarded := r.discardedRelations(doc)
	ids, err := RebuildAdjacency(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.store.Path(), err)
	}
	if err := r.store.Save(doc); err != nil {
		return nil, err
	}

	r.logger.Info("adjacency matrix rebuilt",
		"path", r.store.Path(), "languages", len(ids), "discarded_relations", discarded)

	return &Result{
		Operation:          OpClearAdjacency,
		Path:               r.store.Path(),
		Languages:          len(ids),
		DiscardedRelations: discarded,
		Message:            ClearAdjacencyMessage,
	}, nil
}

// ClearDatabase empties languages, references and separating functions and
// resets the adjacency matrix to its zero-dimension form. Other keys are
// kept.
func (r *Resetter) ClearDatabase() (*Result, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	discarded := r.discardedRelations(doc)
	if err := ClearAll(doc); err != nil {
		return nil, err
	}
	if err := r.store.Save(doc); err != nil {
		return nil, err
	}

	r.logger.Info("dataset cleared", "path", r.store.Path(), "discarded_relations", discarded)

	return &Result{
		Operation:          OpClearDatabase,
		Path:               r.store.Path(),
		Languages:          0,
		DiscardedRelations: discarded,
		Message:            ClearDatabaseMessage,
	}, nil
}

// Run dispatches op.
func (r *Resetter) Run(op Operation) (*Result, error) {
	switch op {
	case OpClearAdjacency:
		return r.ClearAdjacency()
	case OpClearDatabase:
		return r.ClearDatabase()
	default:
		return nil, fmt.Errorf("unknown reset operation %q", op)
	}
}

// RebuildAdjacency replaces the matrix of doc with an all-null matrix
// labelled by the current language identifiers, which it returns.
func RebuildAdjacency(doc *dataset.Document) ([]string, error) {
	ids, err := doc.LanguageIDs()
	if err != nil {
		return nil, err
	}
	if err := doc.SetAdjacency(adjacency.BuildEmpty(ids)); err != nil {
		return nil, err
	}
	return ids, nil
}

// ClearAll empties the collections of doc and gives it a zero-dimension
// matrix. Missing keys are added.
func ClearAll(doc *dataset.Document) error {
	for _, key := range []string{
		dataset.KeyLanguages,
		dataset.KeyReferences,
		dataset.KeySeparatingFunctions,
	} {
		if err := doc.Set(key, []any{}); err != nil {
			return err
		}
	}
	return doc.SetAdjacency(adjacency.Empty())
}

// discardedRelations counts the relations in the matrix about to be replaced.
// An unreadable matrix is replaced all the same and counts as zero.
func (r *Resetter) discardedRelations(doc *dataset.Document) int {
	m, err := doc.Adjacency()
	if err != nil {
		r.logger.Debug("previous adjacency matrix unreadable", "error", err)
		return 0
	}
	return m.RelationCount()
}
