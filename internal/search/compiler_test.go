package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, pairs ...string) (string, []any) {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must come in name/value couples")

	f := NewFilters()
	for i := 0; i < len(pairs); i += 2 {
		f.Add(pairs[i], pairs[i+1])
	}
	query, args, err := Compile(f)
	require.NoError(t, err)
	return query, args
}

func TestCompileEmptyFilters(t *testing.T) {
	query, args := compile(t)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
	assert.True(t, strings.HasPrefix(query, "SELECT DISTINCT"))
	assert.True(t, strings.HasSuffix(query, "ORDER BY c.subject, c.catalog_num, s.section_num"))
}

func TestCompileJoinShape(t *testing.T) {
	query, _ := compile(t)

	assert.Contains(t, query, "FROM section s")
	assert.Contains(t, query, "JOIN course c ON s.course_id = c.id")
	assert.Contains(t, query, "JOIN department d ON c.department_id = d.id")
	assert.Contains(t, query, "JOIN term t ON s.term_id = t.id")
	assert.Contains(t, query, "LEFT JOIN section_instructor si ON s.id = si.section_id")
	assert.Contains(t, query, "LEFT JOIN instructor i ON si.instructor_id = i.id")
	assert.Contains(t, query, "s.start_time::text")
	assert.Contains(t, query, "s.end_time::text")
}

func TestCompileExactMatchFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		value  string
		cond   string
	}{
		{"Subject", "subject", "CS", "c.subject = $1"},
		{"College", "college", "College of Engineering", "d.college = $1"},
		{"Department", "department", "CS", "d.department_code = $1"},
		{"Term", "term", "FA", "t.session_code = $1"},
		{"InstructionMode", "instruction_mode", "WB", "s.instruction_mode = $1"},
		{"Component", "component", "LEC", "s.component = $1"},
		{"Status", "status", "O", "s.class_status = $1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := compile(t, tt.filter, tt.value)
			assert.Contains(t, query, "WHERE "+tt.cond)
			assert.Equal(t, []any{tt.value}, args)
		})
	}
}

func TestCompilePatternFilters(t *testing.T) {
	t.Run("Title", func(t *testing.T) {
		query, args := compile(t, "title", "calculus")
		assert.Contains(t, query, "c.title ILIKE $1")
		assert.Equal(t, []any{"%calculus%"}, args)
	})

	t.Run("Instructor", func(t *testing.T) {
		query, args := compile(t, "instructor", "hopper")
		assert.Contains(t, query, "(i.first_name ILIKE $1 OR i.last_name ILIKE $2)")
		assert.Equal(t, []any{"%hopper%", "%hopper%"}, args)
	})

	t.Run("Room", func(t *testing.T) {
		query, args := compile(t, "room", "TBE")
		assert.Contains(t, query, "s.room_code ILIKE $1")
		assert.Equal(t, []any{"%TBE%"}, args)
	})

	t.Run("SearchQuery", func(t *testing.T) {
		query, args := compile(t, "search_query", "CS 135")
		assert.Contains(t, query,
			"(c.title ILIKE $1 OR i.first_name ILIKE $2 OR i.last_name ILIKE $3"+
				" OR c.subject || ' ' || c.catalog_num ILIKE $4)")
		assert.Equal(t, []any{"%CS 135%", "%CS 135%", "%CS 135%", "%CS 135%"}, args)
	})
}

func TestCompileDaysFilter(t *testing.T) {
	t.Run("SingleDay", func(t *testing.T) {
		query, args := compile(t, "days", "M")
		assert.Contains(t, query, "(s.class_days ILIKE $1)")
		assert.Equal(t, []any{"%M%"}, args)
	})

	t.Run("MultipleDaysAreORed", func(t *testing.T) {
		query, args := compile(t, "days", "MWF")
		assert.Contains(t, query,
			"(s.class_days ILIKE $1 OR s.class_days ILIKE $2 OR s.class_days ILIKE $3)")
		assert.Equal(t, []any{"%M%", "%W%", "%F%"}, args)
	})
}

func TestCompileUnitsFilters(t *testing.T) {
	t.Run("DefaultOperatorIsExact", func(t *testing.T) {
		query, args := compile(t, "units", "3")
		assert.Contains(t, query, "c.units = $1")
		assert.Equal(t, []any{"3"}, args)
	})

	operators := []struct {
		op   string
		cond string
	}{
		{"exact", "c.units = $1"},
		{"greater", "c.units > $1"},
		{"less", "c.units < $1"},
		{"greater_equal", "c.units >= $1"},
		{"less_equal", "c.units <= $1"},
	}
	for _, tt := range operators {
		t.Run(tt.op, func(t *testing.T) {
			query, args := compile(t, "units", "3", "units_operator", tt.op)
			assert.Contains(t, query, tt.cond)
			assert.Equal(t, []any{"3"}, args)
		})
	}

	t.Run("UnknownOperator", func(t *testing.T) {
		f := NewFilters()
		f.Add("units", "3")
		f.Add("units_operator", "between")
		_, _, err := Compile(f)

		var filterErr *FilterError
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, "units_operator", filterErr.Name)
		assert.Equal(t, "between", filterErr.Value)
	})

	t.Run("OperatorAloneIsIgnored", func(t *testing.T) {
		query, args := compile(t, "units_operator", "greater")
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("MinMaxUnits", func(t *testing.T) {
		query, args := compile(t, "min_units", "2", "max_units", "4")
		assert.Contains(t, query, "c.units >= $1")
		assert.Contains(t, query, "c.units <= $2")
		assert.Equal(t, []any{"2", "4"}, args)
	})
}

func TestCompileCatalogNumFilter(t *testing.T) {
	t.Run("DefaultExact", func(t *testing.T) {
		query, args := compile(t, "catalog_num", "135")
		assert.Contains(t, query, "c.catalog_num = $1")
		assert.Equal(t, []any{"135"}, args)
	})

	t.Run("WithOperator", func(t *testing.T) {
		query, args := compile(t, "catalog_num", "400", "catalog_num_operator", "greater_equal")
		assert.Contains(t, query, "c.catalog_num >= $1")
		assert.Equal(t, []any{"400"}, args)
	})

	t.Run("UnknownOperator", func(t *testing.T) {
		f := NewFilters()
		f.Add("catalog_num", "400")
		f.Add("catalog_num_operator", "around")
		_, _, err := Compile(f)

		var filterErr *FilterError
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, "catalog_num_operator", filterErr.Name)
	})
}

func TestCompileCourseCareerFilter(t *testing.T) {
	tests := []struct {
		career string
		cond   string
	}{
		{"Undergraduate", "c.catalog_num < 500"},
		{"Graduate", "c.catalog_num > 599"},
		{"Medical School", "c.catalog_num > 1000"},
	}
	for _, tt := range tests {
		t.Run(tt.career, func(t *testing.T) {
			query, args := compile(t, "course_career", tt.career)
			assert.Contains(t, query, tt.cond)
			assert.Empty(t, args)
		})
	}

	t.Run("UnknownCareer", func(t *testing.T) {
		f := NewFilters()
		f.Add("course_career", "Postdoc")
		_, _, err := Compile(f)

		var filterErr *FilterError
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, "course_career", filterErr.Name)
		assert.Equal(t, "Postdoc", filterErr.Value)
	})
}

func TestCompileLevelFilter(t *testing.T) {
	tests := []struct {
		level string
		cond  string
	}{
		{"1", "c.catalog_num BETWEEN 100 AND 199"},
		{"2", "c.catalog_num BETWEEN 200 AND 299"},
		{"3", "c.catalog_num BETWEEN 300 AND 399"},
		{"4", "c.catalog_num BETWEEN 400 AND 499"},
		{"5", "c.catalog_num >= 600"},
	}
	for _, tt := range tests {
		t.Run("Level"+tt.level, func(t *testing.T) {
			query, args := compile(t, "level", tt.level)
			assert.Contains(t, query, tt.cond)
			assert.Empty(t, args)
		})
	}

	for _, bad := range []string{"0", "6", "senior", "-1"} {
		t.Run("Invalid_"+bad, func(t *testing.T) {
			f := NewFilters()
			f.Add("level", bad)
			_, _, err := Compile(f)

			var filterErr *FilterError
			require.ErrorAs(t, err, &filterErr)
			assert.Equal(t, "level", filterErr.Name)
			assert.Equal(t, bad, filterErr.Value)
		})
	}
}

func TestCompileCombinedFilters(t *testing.T) {
	query, args := compile(t,
		"subject", "CS",
		"units", "3",
		"units_operator", "greater_equal",
		"days", "TR",
		"status", "O",
	)

	assert.Contains(t, query, "c.subject = $1")
	assert.Contains(t, query, "(s.class_days ILIKE $2 OR s.class_days ILIKE $3)")
	assert.Contains(t, query, "c.units >= $4")
	assert.Contains(t, query, "s.class_status = $5")
	assert.Equal(t, []any{"CS", "%T%", "%R%", "3", "O"}, args)

	// Fragments are AND-combined, one WHERE.
	assert.Equal(t, 1, strings.Count(query, "WHERE"))
	assert.Equal(t, 3, strings.Count(query, "\n  AND "))
}

func TestCompileIsDeterministic(t *testing.T) {
	build := func() (string, []any) {
		return compile(t,
			"room", "TBE",
			"subject", "CS",
			"instructor", "knuth",
			"term", "FA",
			"level", "4",
		)
	}

	q1, a1 := build()
	for i := 0; i < 20; i++ {
		q2, a2 := build()
		assert.Equal(t, q1, q2)
		assert.Equal(t, a1, a2)
	}
}

func TestCompileNumericShapeIsNotValidated(t *testing.T) {
	// Malformed numbers pass compilation untouched; the store rejects
	// them when the bound value fails to cast.
	query, args := compile(t, "units", "abc")
	assert.Contains(t, query, "c.units = $1")
	assert.Equal(t, []any{"abc"}, args)
}
