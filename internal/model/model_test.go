package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseCode(t *testing.T) {
	c := Course{Subject: "CS", CatalogNum: 135}
	assert.Equal(t, "CS 135", c.CourseCode())

	c = Course{Subject: "NURS", CatalogNum: 1210}
	assert.Equal(t, "NURS 1210", c.CourseCode())
}

func TestInstructorFullName(t *testing.T) {
	i := Instructor{FirstName: "Grace", LastName: "Hopper"}
	assert.Equal(t, "Grace Hopper", i.FullName())
}
