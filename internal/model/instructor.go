package model

import "fmt"

// Instructor represents a teaching staff member. Uniqueness is on the
// (first_name, last_name) pair; unassigned sections carry no instructor
// at all and are surfaced to callers as "TBA".
type Instructor struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns "First Last".
func (i *Instructor) FullName() string {
	return fmt.Sprintf("%s %s", i.FirstName, i.LastName)
}
