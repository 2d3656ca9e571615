package search

import (
	"fmt"
	"strconv"
	"strings"
)

// The fixed join shape every search runs against. Course, department and
// term are inner joins (a dangling foreign key must fail loudly, not drop
// rows); the instructor association is outer so unassigned sections
// survive. DISTINCT collapses duplicates at the (section, course,
// instructor) tuple level — per-section de-duplication is the
// aggregator's job.
const baseQuery = `SELECT DISTINCT
	s.id, s.course_id, s.term_id, s.section_num, s.component,
	s.instruction_mode, s.class_days, s.start_time::text, s.end_time::text,
	s.combined, s.class_status, s.enrollment_capacity, s.room_code,
	c.id, c.department_id, c.subject, c.catalog_num, c.title,
	c.description, c.units,
	i.id, i.first_name, i.last_name
FROM section s
JOIN course c ON s.course_id = c.id
JOIN department d ON c.department_id = d.id
JOIN term t ON s.term_id = t.id
LEFT JOIN section_instructor si ON s.id = si.section_id
LEFT JOIN instructor i ON si.instructor_id = i.id`

const orderClause = `ORDER BY c.subject, c.catalog_num, s.section_num`

// builder collects AND-combined WHERE fragments with numbered bind
// parameters. Values only ever travel through bind; no user input is
// ever spliced into the SQL text.
type builder struct {
	conds []string
	args  []any
}

// bind registers v as a query argument and returns its $n placeholder.
func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *builder) where(cond string) {
	b.conds = append(b.conds, cond)
}

// predicate translates one registered filter into a WHERE fragment. The
// full filter set is passed alongside the value so companion filters
// (units_operator, catalog_num_operator) can be consulted.
type predicate struct {
	name  string
	build func(b *builder, value string, f *Filters) error
}

// predicates fixes the order filters are applied in, independent of
// registration order. units_operator and catalog_num_operator are
// companions consumed by their operand's predicate and have no entry of
// their own.
var predicates = []predicate{
	{"subject", subjectPredicate},
	{"catalog_num", catalogNumPredicate},
	{"college", collegePredicate},
	{"department", departmentPredicate},
	{"search_query", searchQueryPredicate},
	{"title", titlePredicate},
	{"instructor", instructorPredicate},
	{"days", daysPredicate},
	{"term", termPredicate},
	{"units", unitsPredicate},
	{"min_units", minUnitsPredicate},
	{"max_units", maxUnitsPredicate},
	{"instruction_mode", instructionModePredicate},
	{"component", componentPredicate},
	{"status", statusPredicate},
	{"course_career", courseCareerPredicate},
	{"level", levelPredicate},
	{"room", roomPredicate},
}

// Compile deterministically translates the filter set into one
// executable query over the five-relation join, returning the SQL text
// and its bound arguments. An empty filter set compiles to the full
// catalog in fixed order.
func Compile(f *Filters) (string, []any, error) {
	b := &builder{}
	for _, p := range predicates {
		value, ok := f.Get(p.name)
		if !ok {
			continue
		}
		if err := p.build(b, value, f); err != nil {
			return "", nil, err
		}
	}

	query := baseQuery
	if len(b.conds) > 0 {
		query += "\nWHERE " + strings.Join(b.conds, "\n  AND ")
	}
	query += "\n" + orderClause

	return query, b.args, nil
}

var comparisonOps = map[string]string{
	"exact":         "=",
	"greater":       ">",
	"less":          "<",
	"greater_equal": ">=",
	"less_equal":    "<=",
}

// comparisonOp resolves a companion operator filter, defaulting to exact
// equality when the companion was never registered.
func comparisonOp(f *Filters, name string) (string, error) {
	raw, ok := f.Get(name)
	if !ok {
		return "=", nil
	}
	op, ok := comparisonOps[raw]
	if !ok {
		return "", &FilterError{Name: name, Value: raw}
	}
	return op, nil
}

func subjectPredicate(b *builder, value string, _ *Filters) error {
	b.where("c.subject = " + b.bind(value))
	return nil
}

func catalogNumPredicate(b *builder, value string, f *Filters) error {
	op, err := comparisonOp(f, "catalog_num_operator")
	if err != nil {
		return err
	}
	b.where(fmt.Sprintf("c.catalog_num %s %s", op, b.bind(value)))
	return nil
}

func collegePredicate(b *builder, value string, _ *Filters) error {
	b.where("d.college = " + b.bind(value))
	return nil
}

func departmentPredicate(b *builder, value string, _ *Filters) error {
	b.where("d.department_code = " + b.bind(value))
	return nil
}

func searchQueryPredicate(b *builder, value string, _ *Filters) error {
	pattern := "%" + value + "%"
	b.where("(" + strings.Join([]string{
		"c.title ILIKE " + b.bind(pattern),
		"i.first_name ILIKE " + b.bind(pattern),
		"i.last_name ILIKE " + b.bind(pattern),
		"c.subject || ' ' || c.catalog_num ILIKE " + b.bind(pattern),
	}, " OR ") + ")")
	return nil
}

func titlePredicate(b *builder, value string, _ *Filters) error {
	b.where("c.title ILIKE " + b.bind("%"+value+"%"))
	return nil
}

func instructorPredicate(b *builder, value string, _ *Filters) error {
	pattern := "%" + value + "%"
	b.where("(i.first_name ILIKE " + b.bind(pattern) +
		" OR i.last_name ILIKE " + b.bind(pattern) + ")")
	return nil
}

// daysPredicate matches sections running on ANY of the requested day
// letters: each letter becomes a substring test against class_days and
// the letters are OR-combined.
func daysPredicate(b *builder, value string, _ *Filters) error {
	var letters []string
	for _, day := range value {
		letters = append(letters, "s.class_days ILIKE "+b.bind("%"+string(day)+"%"))
	}
	b.where("(" + strings.Join(letters, " OR ") + ")")
	return nil
}

func termPredicate(b *builder, value string, _ *Filters) error {
	b.where("t.session_code = " + b.bind(value))
	return nil
}

func unitsPredicate(b *builder, value string, f *Filters) error {
	op, err := comparisonOp(f, "units_operator")
	if err != nil {
		return err
	}
	b.where(fmt.Sprintf("c.units %s %s", op, b.bind(value)))
	return nil
}

func minUnitsPredicate(b *builder, value string, _ *Filters) error {
	b.where("c.units >= " + b.bind(value))
	return nil
}

func maxUnitsPredicate(b *builder, value string, _ *Filters) error {
	b.where("c.units <= " + b.bind(value))
	return nil
}

func instructionModePredicate(b *builder, value string, _ *Filters) error {
	b.where("s.instruction_mode = " + b.bind(value))
	return nil
}

func componentPredicate(b *builder, value string, _ *Filters) error {
	b.where("s.component = " + b.bind(value))
	return nil
}

func statusPredicate(b *builder, value string, _ *Filters) error {
	b.where("s.class_status = " + b.bind(value))
	return nil
}

// courseCareerPredicate buckets on catalog number. The Graduate and
// Medical School ranges overlap above 1000; that mirrors the catalog
// office's published rules, so it stays.
func courseCareerPredicate(b *builder, value string, _ *Filters) error {
	switch value {
	case "Undergraduate":
		b.where("c.catalog_num < 500")
	case "Graduate":
		b.where("c.catalog_num > 599")
	case "Medical School":
		b.where("c.catalog_num > 1000")
	default:
		return &FilterError{Name: "course_career", Value: value}
	}
	return nil
}

// levelPredicate maps level 1-4 to the matching catalog hundred-range
// and level 5 to everything from 600 up. Catalog numbers 500-599 match
// no level.
func levelPredicate(b *builder, value string, _ *Filters) error {
	level, err := strconv.Atoi(value)
	if err != nil || level < 1 || level > 5 {
		return &FilterError{Name: "level", Value: value}
	}
	if level == 5 {
		b.where("c.catalog_num >= 600")
		return nil
	}
	b.where(fmt.Sprintf("c.catalog_num BETWEEN %d AND %d", level*100, level*100+99))
	return nil
}

func roomPredicate(b *builder, value string, _ *Filters) error {
	b.where("s.room_code ILIKE " + b.bind("%"+value+"%"))
	return nil
}
