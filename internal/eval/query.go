package eval

// QueryType tags the kind of question that produced a list answer. Ordered
// query types are position-sensitive: the expected answer is a specific
// sequence, not a set.
type QueryType string

const (
	QueryComparison QueryType = "comparison"
	QueryDateRange  QueryType = "date_range"
	QueryLatestN    QueryType = "latest_n"
	QueryEarliestN  QueryType = "earliest_n"
	QueryTopN       QueryType = "top_n"
	QuerySorted     QueryType = "sorted"
)

// orderedQueries is the fixed set of position-sensitive query types.
var orderedQueries = map[QueryType]struct{}{
	QueryComparison: {},
	QueryDateRange:  {},
	QueryLatestN:    {},
	QueryEarliestN:  {},
	QueryTopN:       {},
	QuerySorted:     {},
}

// IsOrderedQuery reports whether a list_of_strings answer for this query
// type must match position-by-position.
func IsOrderedQuery(qt QueryType) bool {
	_, ok := orderedQueries[qt]
	return ok
}
