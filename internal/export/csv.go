// Package export renders entity collections as flat tabular data for
// download. It is a pure projection over what the store already exposes.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Rows flattens a slice of records (or a single mapping, for inventory)
// into a header row plus one row per record. Columns are the union of the
// records' field names, sorted, with id and created_at pinned first when
// present.
func Rows(data any) ([][]string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export data: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(encoded, &records); err != nil {
		// Not a collection; try a single mapping (the inventory document).
		var single map[string]any
		if err := json.Unmarshal(encoded, &single); err != nil {
			return nil, fmt.Errorf("unsupported export shape: %w", err)
		}
		records = []map[string]any{single}
	}

	if len(records) == 0 {
		return [][]string{}, nil
	}

	headers := headerOrder(records)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headers)
	for _, record := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = formatCell(record[h])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes rows as comma-separated text.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func headerOrder(records []map[string]any) []string {
	seen := map[string]bool{}
	for _, record := range records {
		for key := range record {
			seen[key] = true
		}
	}

	pinned := []string{}
	for _, key := range []string{"id", "created_at"} {
		if seen[key] {
			pinned = append(pinned, key)
			delete(seen, key)
		}
	}

	rest := make([]string, 0, len(seen))
	for key := range seen {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	return append(pinned, rest...)
}

func formatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		// json.Unmarshal hands every number back as float64; keep integers
		// free of a trailing ".0" in the export.
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(encoded)
	}
}
