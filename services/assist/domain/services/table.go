// Package services holds the pure parts of the AI assist: reading the
// assistant's table answers, mapping names onto the catalog and the offline
// keyword planner.
package services

import "strings"

// IsTable reports whether an assistant response uses the pipe-delimited
// table layout rather than plain prose.
func IsTable(response string) bool {
	return strings.Contains(response, "|")
}

// TableItemNames extracts the item column from a table such as
//
//	| Store | Item | Price | Notes |
//	|-------|------|-------|-------|
//	| Costco | Milk 2% 2L | $4.20 | cheapest |
//	Total: $4.20
//
// Header, separator and total rows are skipped. Empty cells are dropped
// before picking the second cell, so a row needs at least two non-empty cells.
func TableItemNames(response string) []string {
	names := make([]string, 0)
	for _, line := range strings.Split(response, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		if strings.Contains(line, "---") || strings.Contains(line, "Store") || strings.Contains(line, "Total:") {
			continue
		}
		cells := make([]string, 0, 4)
		for _, c := range strings.Split(line, "|") {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) >= 2 {
			names = append(names, cells[1])
		}
	}
	return names
}
