package model

// Facets holds the distinct values the search form offers in its
// dropdowns. Recomputed periodically by the facet worker and cached in
// Redis.
type Facets struct {
	Subjects         []string `json:"subjects"`
	Colleges         []string `json:"colleges"`
	Terms            []string `json:"terms"`
	Components       []string `json:"components"`
	InstructionModes []string `json:"instruction_modes"`
	Statuses         []string `json:"statuses"`
}
