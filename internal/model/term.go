package model

import "time"

// Term represents one academic offering period bounded by start and end
// dates. Terms are unique per (session_code, year) so successive years
// of the same session can coexist.
type Term struct {
	ID          int       `json:"id"`
	SessionCode string    `json:"session_code"`
	Year        int       `json:"year"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
