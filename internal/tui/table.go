package tui

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// row is one displayed record.
type row struct {
	record any
	cells  []string
	label  string
}

// id returns the numeric field of the record, e.g. "id".
func (r row) id(field string) (int64, bool) {
	m, ok := r.record.(map[string]any)
	if !ok {
		return 0, false
	}
	f, ok := m[field].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

// text returns the string field of the record.
func (r row) text(field string) string {
	m, ok := r.record.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[field].(string)
	return s
}

// toDocument converts a typed result to generic JSON data so that it can be
// queried with JMESPath.
func toDocument(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var doc any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return doc, nil
}

// rows extracts the records of v and formats their cells.
func (t tab) rows(v any) ([]row, error) {
	if v == nil {
		return nil, nil
	}
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}
	found, err := t.records.Search(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: select records: %w", t.title, err)
	}

	list, _ := found.([]any)
	rows := make([]row, 0, len(list))
	for _, rec := range list {
		cells := make([]string, len(t.columns))
		for i, c := range t.columns {
			value, err := c.expr.Search(rec)
			if err != nil {
				value = nil
			}
			cells[i] = c.format(value)
		}
		rows = append(rows, row{record: rec, cells: cells, label: strings.Join(cells, " ")})
	}
	return rows, nil
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case []any:
		if len(v) == 0 {
			return "-"
		}
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = formatCell(item)
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "?"
		}
		return string(raw)
	}
}

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

func formatBytes(v any) string {
	n, ok := v.(float64)
	if !ok {
		return formatCell(v)
	}
	i := 0
	for n >= 1024 && i < len(byteUnits)-1 {
		n /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", n, byteUnits[i])
	}
	return fmt.Sprintf("%.1f %s", n, byteUnits[i])
}

func formatTime(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return formatCell(v)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return t.Local().Format("2006-01-02 15:04")
}

// pad fits s into exactly width runes.
func pad(s string, width int) string {
	s = fitText(s, width)
	if n := utf8.RuneCountInString(s); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}

// renderTable renders the header and the rows visible around cursor.
func renderTable(columns []column, rows []row, cursor, height int) string {
	var b strings.Builder

	b.WriteString("  ")
	for _, c := range columns {
		b.WriteString(headerStyle.Render(pad(c.title, c.width)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  no records"))
		return b.String()
	}

	start, end := window(len(rows), cursor, height)
	for i := start; i < end; i++ {
		var line strings.Builder
		for j, c := range columns {
			line.WriteString(pad(rows[i].cells[j], c.width))
			line.WriteString(" ")
		}
		if i == cursor {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line.String()))
		} else {
			b.WriteString("  ")
			b.WriteString(line.String())
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// window returns the range of rows to show so that cursor stays visible.
func window(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
