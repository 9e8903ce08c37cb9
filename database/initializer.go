package database

import (
	"fmt"
	"log"
	"strings"
)

func (s *PostgreSQLStore) Initialize() error {
	// Init all tables
	log.Println("Initializing PostgresSQL Database.", "Initializing Tables")
	if err := s.InitTables(); err != nil {
		return err
	}
	// Init all views
	log.Println("Initializing PostgresSQL Database.", "Initializing Views")
	if err := s.InitViews(); err != nil {
		return err
	}
	// Print relationships
	log.Println("Initializing PostgresSQL Database.", "Printing Relationships")
	s.PrintAllRelationships()
	return nil
}

func (s *PostgreSQLStore) InitTables() error {
	//
	// Init all the tables
	//

	// colleges table
	colleges_table := `
	CREATE TABLE IF NOT EXISTS colleges (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		name VARCHAR(255) NOT NULL,
		state VARCHAR(64) NOT NULL,
		UNIQUE(name, state)
	);
	`

	// tuition_info table
	tuition_info_table := `
	CREATE TABLE IF NOT EXISTS tuition_info (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		college_id BIGINT UNIQUE NOT NULL REFERENCES colleges(id) ON DELETE CASCADE,
		institution_type VARCHAR(32) NOT NULL,
		degree_length VARCHAR(16) NOT NULL,
		in_state_tuition INT NOT NULL,
		in_state_total INT NOT NULL,
		out_of_state_tuition INT NOT NULL,
		out_of_state_total INT NOT NULL
	);
	`

	// diversity_stats table
	diversity_stats_table := `
	CREATE TABLE IF NOT EXISTS diversity_stats (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		college_id BIGINT UNIQUE NOT NULL REFERENCES colleges(id) ON DELETE CASCADE,
		total_enrollment INT NOT NULL,
		women INT NOT NULL,
		american_indian INT NOT NULL,
		asian INT NOT NULL,
		black INT NOT NULL,
		hispanic INT NOT NULL,
		pacific_islander INT NOT NULL,
		white INT NOT NULL,
		two_or_more INT NOT NULL,
		unknown INT NOT NULL,
		non_resident INT NOT NULL,
		total_minority INT NOT NULL
	);
	`

	// salary_potential table
	salary_potential_table := `
	CREATE TABLE IF NOT EXISTS salary_potential (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		college_id BIGINT UNIQUE NOT NULL REFERENCES colleges(id) ON DELETE CASCADE,
		early_career_pay INT NOT NULL,
		mid_career_pay INT NOT NULL,
		stem_percent INT NOT NULL
	);
	`

	all_tables := strings.Join([]string{colleges_table, tuition_info_table, diversity_stats_table, salary_potential_table}, "")

	_, err := s.db.Exec(all_tables)
	return err
}

func (s *PostgreSQLStore) InitViews() error {
	// college_summary view, recomputed on every read
	summary_view := `
	CREATE OR REPLACE VIEW college_summary AS
	SELECT
		colleges.name AS name,
		colleges.state AS state,
		tuition_info.institution_type AS institution_type,
		tuition_info.degree_length AS degree_length,
		tuition_info.in_state_tuition AS in_state_tuition,
		tuition_info.out_of_state_tuition AS out_of_state_tuition,
		salary_potential.early_career_pay AS early_career_pay,
		salary_potential.mid_career_pay AS mid_career_pay,
		salary_potential.stem_percent AS stem_percent
	FROM colleges
	JOIN tuition_info ON tuition_info.college_id = colleges.id
	JOIN salary_potential ON salary_potential.college_id = colleges.id;
	`

	_, err := s.db.Exec(summary_view)
	return err
}

func (s *PostgreSQLStore) PrintAllRelationships() {
	relationships := map[string]string{
		"tuition_info":     "college_id	-> colleges(id), 1:1, ON DELETE CASCADE",
		"diversity_stats":  "college_id	-> colleges(id), 1:1, ON DELETE CASCADE",
		"salary_potential": "college_id	-> colleges(id), 1:1, ON DELETE CASCADE",
		"college_summary":  "view joining colleges with tuition_info and salary_potential",
	}

	// Print the relationships
	for table, relationship := range relationships {
		fmt.Printf("Relationships for %s table:\n", table)
		fmt.Println(relationship)
		fmt.Println()
	}

}
