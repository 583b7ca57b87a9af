// Package render renders interned identifier tables for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when an output format is not recognized.
var ErrUnknownFormat = zerr.New("unknown output format, expected 'text', 'json' or 'yaml'")

// Entry is one identifier to value association.
type Entry struct {
	ID    int    `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

// Table is an ordered identifier table ready for rendering.
type Table struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// NewTable builds a Table from values in identifier order.
func NewTable(values []string) Table {
	entries := make([]Entry, len(values))
	for id, v := range values {
		entries[id] = Entry{ID: id, Value: v}
	}
	return Table{Entries: entries}
}

// Write renders the table to w in the given format: "text" (the default),
// "json", or "yaml".
func (t Table) Write(w io.Writer, format string) error {
	switch format {
	case "text", "":
		for _, e := range t.Entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", e.ID, e.Value); err != nil {
				return zerr.Wrap(err, "failed to write table")
			}
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return zerr.Wrap(err, "failed to encode table as JSON")
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(t); err != nil {
			return zerr.Wrap(err, "failed to encode table as YAML")
		}
		return enc.Close()

	default:
		return zerr.With(ErrUnknownFormat, "format", format)
	}
}
