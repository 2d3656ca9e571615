package model

import "fmt"

// Course represents one catalog course. A course is uniquely identified
// by its (subject, catalog_num) pair, e.g. CS 135.
type Course struct {
	ID           int     `json:"id"`
	DepartmentID int     `json:"department_id"`
	Subject      string  `json:"subject"`
	CatalogNum   int     `json:"catalog_num"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Units        int16   `json:"units"`
}

// CourseCode returns the display code, e.g. "CS 135" or "MATH 181".
func (c *Course) CourseCode() string {
	return fmt.Sprintf("%s %d", c.Subject, c.CatalogNum)
}
