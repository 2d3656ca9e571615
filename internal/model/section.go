package model

// Section represents one scheduled offering of a course in a term.
// Unique per (course_id, term_id, section_num). Related to zero or more
// instructors through the section_instructor association table.
//
// start_time and end_time are carried as "HH:MM:SS" text (queries cast
// the underlying TIME columns); nil means the section has no scheduled
// meeting time.
type Section struct {
	ID                 int     `json:"id"`
	CourseID           int     `json:"course_id"`
	TermID             int     `json:"term_id"`
	SectionNum         int     `json:"section_num"`
	Component          string  `json:"component"`
	InstructionMode    string  `json:"instruction_mode"`
	ClassDays          *string `json:"class_days"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	Combined           bool    `json:"combined"`
	ClassStatus        string  `json:"class_status"`
	EnrollmentCapacity *int    `json:"enrollment_capacity"`
	RoomCode           *string `json:"room_code"`
}

// SectionSummary is the flat per-section projection returned by the
// search endpoint. Instructor is the full name of the first assigned
// instructor, or "TBA" when the section has none.
type SectionSummary struct {
	SectionID       int     `json:"section_id"`
	CourseCode      string  `json:"course_code"`
	CourseTitle     string  `json:"course_title"`
	SectionNum      int     `json:"section_num"`
	Days            *string `json:"days"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Units           int16   `json:"units"`
	Instructor      string  `json:"instructor"`
	Status          string  `json:"status"`
	Room            *string `json:"room"`
	Component       string  `json:"component"`
	InstructionMode string  `json:"instruction_mode"`
	CatalogNum      int     `json:"catalog_num"`
}

// SectionDetails is the nested shape returned by the section detail
// endpoint.
type SectionDetails struct {
	SectionInfo    Section      `json:"section_info"`
	CourseInfo     Course       `json:"course_info"`
	DepartmentInfo *Department  `json:"department_info,omitempty"`
	TermInfo       *Term        `json:"term_info,omitempty"`
	Instructors    []Instructor `json:"instructors"`
}
