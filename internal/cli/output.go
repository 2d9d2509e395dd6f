package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

const maxCellWidth = 60

func validOutput(format string) error {
	switch format {
	case OutputJSON, OutputYAML, OutputTable:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use json, yaml or table)", format)
}

// render writes a decoded provider payload in the requested format.
func render(w io.Writer, format string, data any) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case OutputTable:
		return renderTable(w, data)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
}

// renderTable prints objects as KEY/VALUE rows and lists of objects with
// one column per key. Anything else is printed as is.
func renderTable(w io.Writer, data any) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	switch d := data.(type) {
	case map[string]any:
		t.AppendHeader(table.Row{"KEY", "VALUE"})
		for _, key := range sortedKeys(d) {
			t.AppendRow(table.Row{key, cell(d[key])})
		}
	case []any:
		if len(d) == 0 {
			_, err := fmt.Fprintln(w, "No items found")
			return err
		}
		columns := columnsOf(d)
		if len(columns) == 0 {
			t.AppendHeader(table.Row{"#", "VALUE"})
			for i, item := range d {
				t.AppendRow(table.Row{i + 1, cell(item)})
			}
			break
		}
		header := make(table.Row, len(columns))
		for i, c := range columns {
			header[i] = strings.ToUpper(c)
		}
		t.AppendHeader(header)
		for _, item := range d {
			obj, _ := item.(map[string]any)
			row := make(table.Row, len(columns))
			for i, c := range columns {
				row[i] = cell(obj[c])
			}
			t.AppendRow(row)
		}
		t.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(d))})
	default:
		_, err := fmt.Fprintln(w, cell(data))
		return err
	}

	t.Render()
	return nil
}

// columnsOf returns the union of keys when every item is an object.
func columnsOf(items []any) []string {
	seen := map[string]bool{}
	var columns []string
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		for key := range obj {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	slices.Sort(columns)
	return columns
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cell(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case map[string]any, []any:
		b, _ := json.Marshal(x)
		s = string(b)
	default:
		s = fmt.Sprint(x)
	}
	if r := []rune(s); len(r) > maxCellWidth {
		s = string(r[:maxCellWidth-3]) + "..."
	}
	return s
}
