// Package dataset loads, edits, and saves the language dataset document.
//
// A Document keeps every top-level key in its original order and holds each
// value as raw JSON, so fields an operation does not touch are written back
// exactly as they were read.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/langatlas/langdb/pkg/adjacency"
)

// Top-level keys of the dataset document.
const (
	KeyLanguages           = "languages"
	KeyReferences          = "references"
	KeySeparatingFunctions = "separatingFunctions"
	KeyAdjacencyMatrix     = "adjacencyMatrix"
)

// indent is the per-level indentation used when saving.
const indent = "  "

// Document is an ordered JSON object.
type Document struct {
	keys   []string
	fields map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{fields: make(map[string]json.RawMessage)}
}

// Parse decodes data, which must hold exactly one JSON object.
// A repeated key keeps its first position and its last value.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrParse, key, err)
		}
		doc.setRaw(key, value)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrParse)
	}

	return doc, nil
}

// Encode serializes the document with two-space indentation and no
// trailing newline.
func (d *Document) Encode() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		name, err := marshal(key)
		if err != nil {
			return nil, err
		}
		compact.Write(name)
		compact.WriteByte(':')
		compact.Write(d.fields[key])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return out.Bytes(), nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.fields[key]
	return ok
}

// Raw returns the raw JSON stored under key.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Set replaces the value under key, appending the key if it is new.
func (d *Document) Set(key string, value any) error {
	data, err := marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	d.setRaw(key, data)
	return nil
}

func (d *Document) setRaw(key string, value json.RawMessage) {
	if _, exists := d.fields[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = value
}

// List decodes the array under key. A missing key or a JSON null yields an
// empty list.
func (d *Document) List(key string) ([]json.RawMessage, error) {
	raw, ok := d.fields[key]
	if !ok {
		return []json.RawMessage{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array", ErrParse, key)
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, nil
}

// Languages decodes the language records.
func (d *Document) Languages() ([]Language, error) {
	items, err := d.List(KeyLanguages)
	if err != nil {
		return nil, err
	}
	langs := make([]Language, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &langs[i]); err != nil {
			return nil, fmt.Errorf("%w: languages[%d]: %v", ErrParse, i, err)
		}
	}
	return langs, nil
}

// LanguageIDs returns the identifier of every language record, in order.
func (d *Document) LanguageIDs() ([]string, error) {
	langs, err := d.Languages()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(langs))
	for i, lang := range langs {
		id := lang.Identifier()
		if id == "" {
			return nil, fmt.Errorf("%w: languages[%d] has neither id nor name", ErrParse, i)
		}
		ids[i] = id
	}
	return ids, nil
}

// Adjacency decodes the adjacency matrix. A missing key yields a matrix with
// no labels and no rows.
func (d *Document) Adjacency() (*adjacency.Matrix, error) {
	raw, ok := d.fields[KeyAdjacencyMatrix]
	if !ok {
		return &adjacency.Matrix{}, nil
	}
	var m adjacency.Matrix
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, KeyAdjacencyMatrix, err)
	}
	return &m, nil
}

// SetAdjacency replaces the adjacency matrix.
func (d *Document) SetAdjacency(m *adjacency.Matrix) error {
	return d.Set(KeyAdjacencyMatrix, m)
}

// marshal encodes v without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
