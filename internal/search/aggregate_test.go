package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packworks/coursecat-backend/internal/model"
)

func str(s string) *string { return &s }

func sampleCourse() model.Course {
	return model.Course{ID: 7, DepartmentID: 1, Subject: "CS", CatalogNum: 135, Title: "Computer Science I", Units: 3}
}

func sampleSection(id int) model.Section {
	return model.Section{
		ID:              id,
		CourseID:        7,
		TermID:          1,
		SectionNum:      1000 + id,
		Component:       "LEC",
		InstructionMode: "P",
		ClassDays:       str("MW"),
		StartTime:       str("10:00:00"),
		EndTime:         str("11:15:00"),
		ClassStatus:     "O",
	}
}

func TestAggregateFoldsRowsPerSection(t *testing.T) {
	hopper := model.Instructor{ID: 1, FirstName: "Grace", LastName: "Hopper"}
	knuth := model.Instructor{ID: 2, FirstName: "Donald", LastName: "Knuth"}

	rows := []Row{
		{Section: sampleSection(10), Course: sampleCourse(), Instructor: &hopper},
		{Section: sampleSection(10), Course: sampleCourse(), Instructor: &knuth},
		{Section: sampleSection(11), Course: sampleCourse(), Instructor: &knuth},
	}

	results := Aggregate(rows)
	require.Len(t, results, 2)

	assert.Equal(t, 10, results[0].Section.ID)
	assert.Equal(t, []model.Instructor{hopper, knuth}, results[0].Instructors)
	assert.Equal(t, 11, results[1].Section.ID)
	assert.Equal(t, []model.Instructor{knuth}, results[1].Instructors)
}

func TestAggregateDeduplicatesInstructors(t *testing.T) {
	hopper := model.Instructor{ID: 1, FirstName: "Grace", LastName: "Hopper"}

	rows := []Row{
		{Section: sampleSection(10), Course: sampleCourse(), Instructor: &hopper},
		{Section: sampleSection(10), Course: sampleCourse(), Instructor: &hopper},
		{Section: sampleSection(10), Course: sampleCourse(), Instructor: &hopper},
	}

	results := Aggregate(rows)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Instructors, 1)
}

func TestAggregatePreservesFirstSeenOrder(t *testing.T) {
	rows := []Row{
		{Section: sampleSection(30), Course: sampleCourse()},
		{Section: sampleSection(10), Course: sampleCourse()},
		{Section: sampleSection(20), Course: sampleCourse()},
		{Section: sampleSection(10), Course: sampleCourse()},
	}

	results := Aggregate(rows)
	require.Len(t, results, 3)
	assert.Equal(t, 30, results[0].Section.ID)
	assert.Equal(t, 10, results[1].Section.ID)
	assert.Equal(t, 20, results[2].Section.ID)
}

func TestAggregateNoInstructor(t *testing.T) {
	rows := []Row{
		{Section: sampleSection(10), Course: sampleCourse()},
	}

	results := Aggregate(rows)
	require.Len(t, results, 1)
	assert.NotNil(t, results[0].Instructors)
	assert.Empty(t, results[0].Instructors)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]Row{}))
}

func TestResultSummary(t *testing.T) {
	t.Run("WithInstructor", func(t *testing.T) {
		res := Aggregate([]Row{{
			Section:    sampleSection(10),
			Course:     sampleCourse(),
			Instructor: &model.Instructor{ID: 1, FirstName: "Grace", LastName: "Hopper"},
		}})[0]

		sum := res.Summary()
		assert.Equal(t, 10, sum.SectionID)
		assert.Equal(t, "CS 135", sum.CourseCode)
		assert.Equal(t, "Computer Science I", sum.CourseTitle)
		assert.Equal(t, 1010, sum.SectionNum)
		assert.Equal(t, "Grace Hopper", sum.Instructor)
		assert.Equal(t, int16(3), sum.Units)
		assert.Equal(t, "O", sum.Status)
		assert.Equal(t, 135, sum.CatalogNum)
		require.NotNil(t, sum.Days)
		assert.Equal(t, "MW", *sum.Days)
	})

	t.Run("FirstInstructorWins", func(t *testing.T) {
		res := Aggregate([]Row{
			{Section: sampleSection(10), Course: sampleCourse(),
				Instructor: &model.Instructor{ID: 2, FirstName: "Donald", LastName: "Knuth"}},
			{Section: sampleSection(10), Course: sampleCourse(),
				Instructor: &model.Instructor{ID: 1, FirstName: "Grace", LastName: "Hopper"}},
		})[0]

		assert.Equal(t, "Donald Knuth", res.Summary().Instructor)
	})

	t.Run("TBAFallback", func(t *testing.T) {
		res := Aggregate([]Row{{Section: sampleSection(10), Course: sampleCourse()}})[0]
		assert.Equal(t, "TBA", res.Summary().Instructor)
	})

	t.Run("OnlineSectionNilMeetingFields", func(t *testing.T) {
		sec := sampleSection(10)
		sec.ClassDays = nil
		sec.StartTime = nil
		sec.EndTime = nil
		sec.RoomCode = nil

		sum := Aggregate([]Row{{Section: sec, Course: sampleCourse()}})[0].Summary()
		assert.Nil(t, sum.Days)
		assert.Nil(t, sum.StartTime)
		assert.Nil(t, sum.EndTime)
		assert.Nil(t, sum.Room)
	})
}
