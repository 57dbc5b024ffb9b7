package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeText, false, ModeText},
		{ModeMarkdown, true, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_NoANSIWithoutTTY(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)

	r.Header(1, "Dataset")
	r.Success("done")
	r.Muted("quiet")
	r.StatusLine("matrix", false, "ragged")
	r.Warning("careful")

	combined := out.String() + errOut.String()
	assert.False(t, ansiPattern.MatchString(combined), "unexpected ANSI codes in %q", combined)
	assert.Contains(t, out.String(), "done\n")
	assert.Contains(t, out.String(), "✗ matrix ragged")
	assert.Equal(t, "Warning: careful\n", errOut.String())
}

func TestRenderer_Markdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)

	r.Header(2, "Consistency")
	r.StatusLine("adjacencyMatrix", true, "")
	r.StatusLine("languages", false, "3 vs 2")

	assert.Equal(t, "## Consistency\n- **[OK]** adjacencyMatrix\n- **[ISSUE]** languages: 3 vs 2\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)

	require.NoError(t, r.JSON(map[string]int{"languages": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["languages"])
	assert.Contains(t, out.String(), "\n  \"languages\": 2\n")
}

func TestRenderer_Table(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeMarkdown, false)
		r.Table(table.Row{"Field", "Entries"}, []table.Row{{"languages", 2}})

		// go-pretty upper-cases headers by default
		got := strings.ToLower(out.String())
		assert.Contains(t, got, "| field | entries |")
		assert.Contains(t, got, "| languages | 2 |")
	})

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText, false)
		r.Table(table.Row{"Field", "Entries"}, []table.Row{{"languages", 2}})

		assert.Contains(t, out.String(), "┌")
		assert.Contains(t, out.String(), "languages")
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Sub", FormatHeader(3, "Sub"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
	assert.Equal(t, "**Path:** /tmp/db.json", FormatKeyValue("Path", "/tmp/db.json"))
}
