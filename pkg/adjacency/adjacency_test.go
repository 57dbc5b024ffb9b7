package adjacency

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuildEmpty(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		wantJSON string
	}{
		{
			name:     "no languages",
			ids:      nil,
			wantJSON: `{"languageIds":[],"matrix":[]}`,
		},
		{
			name:     "empty slice",
			ids:      []string{},
			wantJSON: `{"languageIds":[],"matrix":[]}`,
		},
		{
			name:     "single language",
			ids:      []string{"go"},
			wantJSON: `{"languageIds":["go"],"matrix":[[null]]}`,
		},
		{
			name:     "two languages",
			ids:      []string{"py", "rs"},
			wantJSON: `{"languageIds":["py","rs"],"matrix":[[null,null],[null,null]]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildEmpty(tt.ids)
			require.NoError(t, m.Validate())

			data, err := json.Marshal(m)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestBuildEmpty_CopiesInput(t *testing.T) {
	ids := []string{"c", "cpp"}
	m := BuildEmpty(ids)

	ids[0] = "changed"
	assert.Equal(t, []string{"c", "cpp"}, m.LanguageIDs)
}

func TestBuildEmpty_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfDistinct(rapid.StringMatching(`[a-z][a-z0-9+#]{0,8}`), rapid.ID[string]).Draw(t, "ids")

		m := BuildEmpty(ids)

		if m.Size() != len(ids) {
			t.Fatalf("Size() = %d, want %d", m.Size(), len(ids))
		}
		for i, id := range ids {
			if m.LanguageIDs[i] != id {
				t.Fatalf("LanguageIDs[%d] = %q, want %q", i, m.LanguageIDs[i], id)
			}
		}
		if len(m.Matrix) != len(ids) {
			t.Fatalf("got %d rows, want %d", len(m.Matrix), len(ids))
		}
		for i, row := range m.Matrix {
			if len(row) != len(ids) {
				t.Fatalf("row %d has %d cells, want %d", i, len(row), len(ids))
			}
			for j, cell := range row {
				if !IsNull(cell) {
					t.Fatalf("cell [%d][%d] = %s, want null", i, j, cell)
				}
			}
		}
		if m.RelationCount() != 0 {
			t.Fatalf("RelationCount() = %d, want 0", m.RelationCount())
		}
	})
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.Equal(t, 0, m.Size())
	assert.NotNil(t, m.LanguageIDs)
	assert.NotNil(t, m.Matrix)
	assert.NoError(t, m.Validate())
}

func TestMatrix_Validate(t *testing.T) {
	tests := []struct {
		name      string
		matrix    Matrix
		errSubstr string
	}{
		{
			name:   "square",
			matrix: Matrix{LanguageIDs: []string{"a", "b"}, Matrix: [][]Cell{{nil, nil}, {nil, nil}}},
		},
		{
			name:      "too few rows",
			matrix:    Matrix{LanguageIDs: []string{"a", "b"}, Matrix: [][]Cell{{nil, nil}}},
			errSubstr: "1 rows but 2 language ids",
		},
		{
			name:      "rows without ids",
			matrix:    Matrix{LanguageIDs: []string{}, Matrix: [][]Cell{{}}},
			errSubstr: "1 rows but 0 language ids",
		},
		{
			name:      "ragged row",
			matrix:    Matrix{LanguageIDs: []string{"a", "b"}, Matrix: [][]Cell{{nil, nil}, {nil}}},
			errSubstr: "row 1 (b) has 1 cells, want 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.matrix.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestMatrix_RelationCount(t *testing.T) {
	var m Matrix
	require.NoError(t, json.Unmarshal([]byte(`{
		"languageIds": ["go", "rust"],
		"matrix": [[null, {"kind": "influenced"}], ["similar", null]]
	}`), &m))

	assert.Equal(t, 2, m.RelationCount())
	assert.NoError(t, m.Validate())
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(Cell("null")))
	assert.True(t, IsNull(Cell(" null ")))
	assert.False(t, IsNull(Cell(`0`)))
	assert.False(t, IsNull(Cell(`""`)))
	assert.False(t, IsNull(Cell(`{}`)))
}
