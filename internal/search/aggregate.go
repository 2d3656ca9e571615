package search

import (
	"github.com/packworks/coursecat-backend/internal/model"
)

// Row is one denormalized tuple produced by the compiled join query.
// Instructor is nil when the outer join found no assignment for the
// section.
type Row struct {
	Section    model.Section
	Course     model.Course
	Instructor *model.Instructor
}

// Result is one aggregated section: the section itself, its course
// snapshot and an order-preserving, de-duplicated instructor list.
type Result struct {
	Section     model.Section      `json:"section"`
	Course      model.Course       `json:"course"`
	Instructors []model.Instructor `json:"instructors"`
}

// Aggregate folds the row stream into one Result per distinct section
// id. The first occurrence of a section creates its record; later rows
// only contribute their instructor, skipped when already present.
// Emission order is first-seen order, which the compiler's fixed ORDER
// BY makes subject, catalog_num, section_num ascending.
func Aggregate(rows []Row) []*Result {
	byID := make(map[int]*Result, len(rows))
	results := make([]*Result, 0, len(rows))

	for _, r := range rows {
		res, seen := byID[r.Section.ID]
		if !seen {
			res = &Result{
				Section:     r.Section,
				Course:      r.Course,
				Instructors: []model.Instructor{},
			}
			byID[r.Section.ID] = res
			results = append(results, res)
		}

		if r.Instructor == nil {
			continue
		}
		if !hasInstructor(res.Instructors, r.Instructor.ID) {
			res.Instructors = append(res.Instructors, *r.Instructor)
		}
	}

	return results
}

func hasInstructor(list []model.Instructor, id int) bool {
	for _, in := range list {
		if in.ID == id {
			return true
		}
	}
	return false
}

// Summary projects the aggregated record into the flat per-section
// summary shape. A section without instructors reports "TBA".
func (r *Result) Summary() model.SectionSummary {
	instructor := "TBA"
	if len(r.Instructors) > 0 {
		instructor = r.Instructors[0].FullName()
	}

	return model.SectionSummary{
		SectionID:       r.Section.ID,
		CourseCode:      r.Course.CourseCode(),
		CourseTitle:     r.Course.Title,
		SectionNum:      r.Section.SectionNum,
		Days:            r.Section.ClassDays,
		StartTime:       r.Section.StartTime,
		EndTime:         r.Section.EndTime,
		Units:           r.Course.Units,
		Instructor:      instructor,
		Status:          r.Section.ClassStatus,
		Room:            r.Section.RoomCode,
		Component:       r.Section.Component,
		InstructionMode: r.Section.InstructionMode,
		CatalogNum:      r.Course.CatalogNum,
	}
}
