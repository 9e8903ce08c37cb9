package database

import (
	"database/sql"

	"github.com/collegemetrics/api/model"
)

func (s *PostgreSQLStore) GetColleges() ([]model.College, error) {
	query := `
		SELECT id, name, state, created_at, updated_at FROM colleges ORDER BY state, name;
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, Translate(err)
	}
	defer rows.Close()

	colleges := []model.College{}
	for rows.Next() {
		college, err := scanIntoCollege(rows)
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, *college)
	}

	return colleges, rows.Err()
}

func (s *PostgreSQLStore) AddCollege(college model.College) error {
	query := `INSERT INTO colleges(name, state, created_at, updated_at) VALUES($1, $2, NOW(), NOW());`

	if _, err := s.db.Exec(query, college.Name, college.State); err != nil {
		return Translate(err)
	}
	return nil
}

func (s *PostgreSQLStore) UpdateCollege(college model.College) error {
	query := `UPDATE colleges SET name=$1, state=$2, updated_at=NOW() WHERE id=$3;`

	if _, err := s.db.Exec(query, college.Name, college.State, college.ID); err != nil {
		return Translate(err)
	}
	return nil
}

func (s *PostgreSQLStore) DeleteCollege(collegeId int64) error {
	query := "DELETE FROM colleges WHERE id=$1"

	if _, err := s.db.Exec(query, collegeId); err != nil {
		return Translate(err)
	}

	return nil
}

func scanIntoCollege(rows *sql.Rows) (*model.College, error) {
	college := new(model.College)
	err := rows.Scan(
		&college.ID,
		&college.Name,
		&college.State,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return college, nil
}
