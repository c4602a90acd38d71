package app

import (
	"regexp"
	"strings"
)

// Span attributes must stay small; a multi-row standings upsert can
// otherwise push kilobytes of SQL into every trace.
const maxTracedQueryLength = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace flattens a SQL statement to a single truncated
// line for use as an otelsql query formatter.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := collapseWhitespace.ReplaceAllString(query, " ")
	if len(flat) <= maxTracedQueryLength {
		return flat
	}

	return flat[:maxTracedQueryLength] + "..."
}
