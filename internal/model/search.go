package model

// ComparisonOperator names a unit/catalog-number comparison mode.
type ComparisonOperator string

const (
	OperatorExact        ComparisonOperator = "exact"
	OperatorGreater      ComparisonOperator = "greater"
	OperatorLess         ComparisonOperator = "less"
	OperatorGreaterEqual ComparisonOperator = "greater_equal"
	OperatorLessEqual    ComparisonOperator = "less_equal"
)

// CourseCareer buckets courses by catalog number.
type CourseCareer string

const (
	CareerUndergraduate CourseCareer = "Undergraduate"
	CareerGraduate      CourseCareer = "Graduate"
	CareerMedicalSchool CourseCareer = "Medical School"
)

// SearchRequest captures the recognized course-search query parameters.
// Empty fields mean "do not constrain on this dimension"; numeric-shaped
// values stay strings here and are bound as query parameters downstream.
type SearchRequest struct {
	Subject            string `form:"subject"`
	CatalogNum         string `form:"catalog_num"`
	CatalogNumOperator string `form:"catalog_num_operator" binding:"omitempty,oneof=exact greater less greater_equal less_equal"`
	College            string `form:"college"`
	Department         string `form:"department"`
	SearchQuery        string `form:"search_query"`
	Title              string `form:"title"`
	Instructor         string `form:"instructor"`
	Days               string `form:"days"`
	Term               string `form:"term"`
	Units              string `form:"units"`
	UnitsOperator      string `form:"units_operator" binding:"omitempty,oneof=exact greater less greater_equal less_equal"`
	MinUnits           string `form:"min_units"`
	MaxUnits           string `form:"max_units"`
	InstructionMode    string `form:"instruction_mode"`
	Component          string `form:"component"`
	Status             string `form:"status"`
	CourseCareer       string `form:"course_career" binding:"omitempty,oneof=Undergraduate Graduate 'Medical School'"`
	Level              string `form:"level" binding:"omitempty,oneof=1 2 3 4 5"`
	Room               string `form:"room"`
}

// SearchResponse is the payload of the course-search endpoint.
type SearchResponse struct {
	Sections    []SectionSummary  `json:"sections"`
	Count       int               `json:"count"`
	FiltersUsed map[string]string `json:"filters_used"`
}
