// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/travel-tracker/models"
)

// StarterUsers are inserted by Seed when the users table is empty.
var StarterUsers = []models.User{
	{Name: "Mani", Color: "teal"},
	{Name: "Sai", Color: "powderblue"},
}

// Seed loads the country reference data and starter users.
// Existing countries are left alone; users are only added to an empty table.
func Seed(db *sql.DB, dbType string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range Countries {
		_, err := tx.Exec(Rebind(dbType, `
			INSERT INTO countries (country_code, country_name)
			VALUES (?, ?)
			ON CONFLICT (country_code) DO NOTHING
		`), c.Code, c.Name)
		if err != nil {
			return fmt.Errorf("failed to seed country %s: %w", c.Code, err)
		}
	}

	var users int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if users == 0 {
		for _, u := range StarterUsers {
			if _, err := tx.Exec(Rebind(dbType, `INSERT INTO users (name, color) VALUES (?, ?)`), u.Name, u.Color); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
