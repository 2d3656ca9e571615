package model

// Department represents an administrative unit that owns courses,
// grouped under a college (e.g. "College of Engineering").
type Department struct {
	ID             int    `json:"id"`
	College        string `json:"college"`
	DepartmentCode string `json:"department_code"`
}
