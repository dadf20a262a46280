package db

import (
	"database/sql"
	"fmt"
)

// PostgresRoster mirrors the roster into the students table.
type PostgresRoster struct {
	db *sql.DB
}

func NewPostgresRoster(db *sql.DB) *PostgresRoster {
	return &PostgresRoster{db: db}
}

func (p *PostgresRoster) Load() (map[string]string, error) {
	rows, err := p.db.Query("SELECT id, name FROM students")
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	defer rows.Close()

	students := map[string]string{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	return students, nil
}

// Save replaces the table contents with students in one transaction.
func (p *PostgresRoster) Save(students map[string]string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err = tx.Exec("DELETE FROM students"); err != nil {
		tx.Rollback()
		return fmt.Errorf("error clearing students: %w", err)
	}
	for id, name := range students {
		if _, err = tx.Exec("INSERT INTO students (id, name) VALUES ($1, $2)", id, name); err != nil {
			tx.Rollback()
			return fmt.Errorf("error saving student %q: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
