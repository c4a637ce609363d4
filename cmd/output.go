package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gosuri/uitable"

	"github.com/s0up4200/puxbay-go/filter"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, columns []string, records []filter.Record) error {
	table := uitable.New()
	table.MaxColWidth = 48
	table.Wrap = false

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	table.AddRow(header...)

	for _, record := range records {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = formatCell(record[col])
		}
		table.AddRow(row...)
	}

	_, err := fmt.Fprintln(w, table)
	return err
}

// formatCell renders JSON values; whole numbers print without a decimal point.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
