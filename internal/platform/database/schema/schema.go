// Package schema holds table and column names for every relation the API
// queries, so SQL is assembled from one source of truth.
package schema

import "strings"

// List joins column names for a SELECT or RETURNING clause.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}
