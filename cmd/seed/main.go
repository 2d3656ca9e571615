package main

import (
	"context"
	"fmt"
	"time"

	"github.com/packworks/coursecat-backend/internal/config"
	"github.com/packworks/coursecat-backend/internal/database"
	"github.com/packworks/coursecat-backend/internal/logger"
)

type seedCourse struct {
	subject    string
	catalogNum int
	title      string
	units      int
}

type seedSection struct {
	subject    string
	catalogNum int
	sectionNum int
	component  string
	mode       string
	days       string
	start      string
	end        string
	status     string
	capacity   int
	room       string
	faculty    []string
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding sample catalog ===")

	departments := map[string]struct {
		college string
		code    string
	}{
		"CS":   {"College of Engineering", "CS"},
		"MATH": {"College of Sciences", "MATH"},
		"ENG":  {"College of Liberal Arts", "ENG"},
		"NURS": {"School of Medicine", "NURS"},
	}

	deptIDs := map[string]int{}
	for subject, d := range departments {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO department (college, department_code) VALUES ($1, $2)
			 ON CONFLICT (department_code) DO UPDATE SET college = EXCLUDED.college
			 RETURNING id`,
			d.college, d.code).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("department", d.code).Msg("Failed to seed department")
		}
		deptIDs[subject] = id
	}
	fmt.Printf("Seeded %d departments\n", len(deptIDs))

	var termID int
	err = pool.QueryRow(ctx,
		`INSERT INTO term (session_code, year, start_date, end_date) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (session_code, year) DO UPDATE SET start_date = EXCLUDED.start_date
		 RETURNING id`,
		"FA", 2026, "2026-08-24", "2026-12-11").Scan(&termID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed term")
	}

	courses := []seedCourse{
		{"CS", 135, "Computer Science I", 3},
		{"CS", 202, "Computer Science II", 3},
		{"CS", 477, "Analysis of Algorithms", 3},
		{"CS", 674, "Advanced Operating Systems", 3},
		{"MATH", 181, "Calculus I", 4},
		{"MATH", 251, "Discrete Mathematics", 3},
		{"MATH", 765, "Real Analysis II", 3},
		{"ENG", 101, "Composition I", 3},
		{"ENG", 102, "Composition II", 3},
		{"NURS", 1210, "Clinical Pharmacology", 2},
	}

	courseIDs := map[string]int{}
	for _, c := range courses {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO course (department_id, subject, catalog_num, title, units)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (subject, catalog_num) DO UPDATE SET title = EXCLUDED.title
			 RETURNING id`,
			deptIDs[c.subject], c.subject, c.catalogNum, c.title, c.units).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("course", fmt.Sprintf("%s %d", c.subject, c.catalogNum)).Msg("Failed to seed course")
		}
		courseIDs[fmt.Sprintf("%s %d", c.subject, c.catalogNum)] = id
	}
	fmt.Printf("Seeded %d courses\n", len(courseIDs))

	instructors := [][2]string{
		{"Grace", "Hopper"},
		{"Donald", "Knuth"},
		{"Barbara", "Liskov"},
		{"Alan", "Turing"},
		{"Katherine", "Johnson"},
		{"Edsger", "Dijkstra"},
	}

	instructorIDs := map[string]int{}
	for _, in := range instructors {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO instructor (first_name, last_name) VALUES ($1, $2)
			 ON CONFLICT (first_name, last_name) DO UPDATE SET first_name = EXCLUDED.first_name
			 RETURNING id`,
			in[0], in[1]).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("instructor", in[1]).Msg("Failed to seed instructor")
		}
		instructorIDs[in[1]] = id
	}
	fmt.Printf("Seeded %d instructors\n", len(instructorIDs))

	sections := []seedSection{
		{"CS", 135, 1001, "LEC", "P", "MW", "10:00", "11:15", "O", 120, "TBE-A107", []string{"Hopper"}},
		{"CS", 135, 1002, "LEC", "WB", "", "", "", "O", 80, "", []string{"Hopper", "Knuth"}},
		{"CS", 202, 1001, "LEC", "P", "TR", "13:00", "14:15", "O", 90, "SEB-1243", []string{"Knuth"}},
		{"CS", 477, 1001, "LEC", "P", "MWF", "09:00", "09:50", "C", 45, "TBE-B174", []string{"Liskov"}},
		{"CS", 674, 1001, "SEM", "H", "T", "16:00", "18:45", "O", 20, "SEB-3265", []string{"Dijkstra"}},
		{"MATH", 181, 1001, "LEC", "P", "MTWR", "08:30", "09:20", "O", 150, "CBC-C316", []string{"Johnson"}},
		{"MATH", 251, 1001, "LEC", "P", "MW", "11:30", "12:45", "W", 60, "CBC-C122", []string{"Turing"}},
		{"MATH", 765, 1001, "SEM", "P", "F", "14:00", "16:45", "O", 15, "CBC-B120", []string{"Johnson"}},
		{"ENG", 101, 1001, "LEC", "P", "TR", "10:00", "11:15", "O", 25, "FDH-224", nil},
		{"ENG", 102, 1001, "LEC", "WB", "", "", "", "O", 25, "", []string{"Liskov"}},
		{"NURS", 1210, 1001, "LAB", "P", "W", "07:00", "09:50", "O", 12, "BHS-311", []string{"Johnson"}},
	}

	seeded := 0
	for _, s := range sections {
		courseID := courseIDs[fmt.Sprintf("%s %d", s.subject, s.catalogNum)]

		var days, start, end, room any
		if s.days != "" {
			days = s.days
			start = s.start
			end = s.end
		}
		if s.room != "" {
			room = s.room
		}

		var sectionID int
		err := pool.QueryRow(ctx,
			`INSERT INTO section (course_id, term_id, section_num, component, instruction_mode,
			                      class_days, start_time, end_time, class_status, enrollment_capacity, room_code)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (course_id, term_id, section_num) DO UPDATE SET component = EXCLUDED.component
			 RETURNING id`,
			courseID, termID, s.sectionNum, s.component, s.mode,
			days, start, end, s.status, s.capacity, room).Scan(&sectionID)
		if err != nil {
			fmt.Printf("Error seeding section %s %d.%d: %v\n", s.subject, s.catalogNum, s.sectionNum, err)
			continue
		}

		for _, last := range s.faculty {
			_, err := pool.Exec(ctx,
				`INSERT INTO section_instructor (section_id, instructor_id) VALUES ($1, $2)
				 ON CONFLICT DO NOTHING`,
				sectionID, instructorIDs[last])
			if err != nil {
				fmt.Printf("Error assigning %s to section %d: %v\n", last, sectionID, err)
			}
		}
		seeded++
	}

	fmt.Printf("\nSeed completed! Added %d/%d sections.\n", seeded, len(sections))
}
