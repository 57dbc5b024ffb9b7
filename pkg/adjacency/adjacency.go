// Package adjacency provides the square language-by-language relation matrix
// stored under the dataset's adjacencyMatrix key.
package adjacency

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Cell holds one relation value. A nil or JSON null cell means no relation
// has been recorded for the pair.
type Cell = json.RawMessage

// Matrix is a square table keyed by language identifiers on both axes.
type Matrix struct {
	// LanguageIDs labels both axes; index i of LanguageIDs names row i and column i.
	LanguageIDs []string `json:"languageIds"`
	// Matrix holds len(LanguageIDs) rows of len(LanguageIDs) cells each.
	Matrix [][]Cell `json:"matrix"`
}

// BuildEmpty returns a matrix labelled with ids whose every cell is null.
// The ids slice is copied; the caller may reuse it.
func BuildEmpty(ids []string) *Matrix {
	size := len(ids)
	labels := make([]string, size)
	copy(labels, ids)

	rows := make([][]Cell, size)
	for i := range rows {
		rows[i] = make([]Cell, size)
	}

	return &Matrix{LanguageIDs: labels, Matrix: rows}
}

// Empty returns the zero-dimension matrix used when the dataset holds no languages.
func Empty() *Matrix {
	return BuildEmpty(nil)
}

// Size returns the number of labelled languages.
func (m *Matrix) Size() int {
	return len(m.LanguageIDs)
}

// Validate reports the first way m violates the square invariant, if any.
func (m *Matrix) Validate() error {
	n := len(m.LanguageIDs)
	if len(m.Matrix) != n {
		return fmt.Errorf("matrix has %d rows but %d language ids", len(m.Matrix), n)
	}
	for i, row := range m.Matrix {
		if len(row) != n {
			return fmt.Errorf("row %d (%s) has %d cells, want %d", i, m.LanguageIDs[i], len(row), n)
		}
	}
	return nil
}

// RelationCount returns the number of non-null cells.
func (m *Matrix) RelationCount() int {
	count := 0
	for _, row := range m.Matrix {
		for _, cell := range row {
			if !IsNull(cell) {
				count++
			}
		}
	}
	return count
}

// IsNull reports whether c carries no relation.
func IsNull(c Cell) bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
