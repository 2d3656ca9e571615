package search

import "fmt"

// FilterError reports a registered filter whose value cannot be
// interpreted by the compiler (unknown operator, career or level).
// Numeric-shaped values are never parsed here; those fail at the store
// when the query runs.
type FilterError struct {
	Name  string
	Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %q: cannot interpret value %q", e.Name, e.Value)
}
