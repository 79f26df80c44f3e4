package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Tabular is implemented by command payloads that can render as a table.
type Tabular interface {
	TableHeaders() []string
	TableRows() [][]string
}

var ErrNotTabular = errors.New("table output is not supported for this command (use --format json)")

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "table":
		t, ok := tabularOf(v)
		if !ok {
			return ErrNotTabular
		}
		return WriteTable(w, t)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
//
// Output stays strict JSON. Paging or follow-up commands go in `meta` or `_hints`.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable renders t with a rounded border. Styling is left to the renderer's
// color profile, so piped output stays plain.
func WriteTable(w io.Writer, t Tabular) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(t.TableHeaders()...).
		Rows(t.TableRows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// tabularOf accepts a Tabular value or an envelope whose "data" is Tabular.
func tabularOf(v any) (Tabular, bool) {
	if t, ok := v.(Tabular); ok {
		return t, true
	}
	if m, ok := v.(map[string]any); ok {
		if t, ok := m["data"].(Tabular); ok {
			return t, true
		}
	}
	return nil, false
}
