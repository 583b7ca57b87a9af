package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dupidx/internal/render"
	"gopkg.in/yaml.v3"
)

func TestTable_Write(t *testing.T) {
	table := render.NewTable([]string{"foo", "bar"})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.Write(&buf, "text"))
		assert.Equal(t, "0\tfoo\n1\tbar\n", buf.String())
	})

	t.Run("empty format defaults to text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.Write(&buf, ""))
		assert.Equal(t, "0\tfoo\n1\tbar\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.Write(&buf, "json"))

		var decoded render.Table
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, table, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.Write(&buf, "yaml"))

		var decoded render.Table
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, table, decoded)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := table.Write(&buf, "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestTable_Write_Golden(t *testing.T) {
	table := render.NewTable([]string{"foo", "bar"})

	tests := []struct {
		name       string
		format     string
		goldenName string
	}{
		{
			name:       "text",
			format:     "text",
			goldenName: "table_text",
		},
		{
			name:       "json",
			format:     "json",
			goldenName: "table_json",
		},
		{
			name:       "yaml",
			format:     "yaml",
			goldenName: "table_yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, table.Write(&buf, tt.format))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestNewTable(t *testing.T) {
	t.Run("empty values", func(t *testing.T) {
		table := render.NewTable(nil)
		assert.Empty(t, table.Entries)

		var buf bytes.Buffer
		require.NoError(t, table.Write(&buf, "text"))
		assert.Empty(t, buf.String())
	})

	t.Run("identifiers match positions", func(t *testing.T) {
		table := render.NewTable([]string{"a", "b", "c"})
		require.Len(t, table.Entries, 3)
		for i, e := range table.Entries {
			assert.Equal(t, i, e.ID)
		}
	})
}
