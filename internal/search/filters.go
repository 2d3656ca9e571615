package search

// Filters accumulates named search criteria for one search session.
// Absence of a name means "do not constrain on this dimension". Values
// are kept as the raw strings the HTTP layer received; shape validation
// happens when the compiled query runs, not here.
type Filters struct {
	values map[string]string
}

// NewFilters returns an empty filter set.
func NewFilters() *Filters {
	return &Filters{values: make(map[string]string)}
}

// Add stores value under name. Empty values are a silent no-op so
// callers can forward query parameters without pre-filtering.
func (f *Filters) Add(name, value string) {
	if value == "" {
		return
	}
	f.values[name] = value
}

// Get returns the value registered under name.
func (f *Filters) Get(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Len returns the number of registered filters.
func (f *Filters) Len() int {
	return len(f.values)
}

// Clear resets the filter set to empty.
func (f *Filters) Clear() {
	f.values = make(map[string]string)
}

// Map returns a copy of the registered filters, used to echo
// "filters_used" back to callers and to annotate errors.
func (f *Filters) Map() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
