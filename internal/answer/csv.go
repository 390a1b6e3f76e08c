package answer

import "strings"

// ExtractCSVRows collects comma-delimited rows from free text. A line
// qualifies as a row when it contains a comma and does not end with a
// colon (which marks prose lead-ins like "The rows are:"). Fields are
// trimmed and rows with fewer than two fields are dropped.
func ExtractCSVRows(text string) [][]string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ",") || strings.HasSuffix(line, ":") {
			continue
		}
		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, part := range parts {
			fields = append(fields, strings.TrimSpace(part))
		}
		if len(fields) < 2 {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}
