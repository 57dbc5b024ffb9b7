package dataset

import (
	"fmt"

	"go.uber.org/multierr"
)

// Report summarizes a dataset document without modifying it.
type Report struct {
	Languages           int      `json:"languages"`
	References          int      `json:"references"`
	SeparatingFunctions int      `json:"separating_functions"`
	MatrixSize          int      `json:"matrix_size"`
	Relations           int      `json:"relations"`
	Issues              []string `json:"issues"`
}

// Consistent reports whether the adjacency matrix matches the language list.
func (r *Report) Consistent() bool {
	return len(r.Issues) == 0
}

// Inspect counts the collections in doc and lists every inconsistency
// between its languages and its adjacency matrix. It fails only when a
// collection it has to count is not an array or the matrix cannot be decoded.
func Inspect(doc *Document) (*Report, error) {
	report := &Report{Issues: []string{}}

	counts := []struct {
		key  string
		dest *int
	}{
		{KeyLanguages, &report.Languages},
		{KeyReferences, &report.References},
		{KeySeparatingFunctions, &report.SeparatingFunctions},
	}
	for _, c := range counts {
		items, err := doc.List(c.key)
		if err != nil {
			return nil, err
		}
		*c.dest = len(items)
	}

	m, err := doc.Adjacency()
	if err != nil {
		return nil, err
	}
	report.MatrixSize = m.Size()
	report.Relations = m.RelationCount()

	for _, issue := range multierr.Errors(CheckConsistency(doc)) {
		report.Issues = append(report.Issues, issue.Error())
	}
	return report, nil
}

// CheckConsistency returns every way the adjacency matrix of doc disagrees
// with its language list, combined into one error. It returns nil for a
// consistent document.
func CheckConsistency(doc *Document) error {
	var errs error

	if !doc.Has(KeyAdjacencyMatrix) {
		errs = multierr.Append(errs, fmt.Errorf("%s is missing", KeyAdjacencyMatrix))
	}

	m, err := doc.Adjacency()
	if err != nil {
		return multierr.Append(errs, err)
	}
	if err := m.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s is not square: %w", KeyAdjacencyMatrix, err))
	}

	seen := make(map[string]int, len(m.LanguageIDs))
	for i, id := range m.LanguageIDs {
		if first, dup := seen[id]; dup {
			errs = multierr.Append(errs, fmt.Errorf("language id %q appears at %d and %d", id, first, i))
			continue
		}
		seen[id] = i
	}

	ids, err := doc.LanguageIDs()
	if err != nil {
		return multierr.Append(errs, err)
	}
	if len(ids) != len(m.LanguageIDs) {
		errs = multierr.Append(errs, fmt.Errorf(
			"%s labels %d languages but %s holds %d",
			KeyAdjacencyMatrix, len(m.LanguageIDs), KeyLanguages, len(ids)))
		return errs
	}
	for i := range ids {
		if ids[i] != m.LanguageIDs[i] {
			errs = multierr.Append(errs, fmt.Errorf(
				"language id %d is %q in %s but %q in %s",
				i, m.LanguageIDs[i], KeyAdjacencyMatrix, ids[i], KeyLanguages))
		}
	}
	return errs
}
