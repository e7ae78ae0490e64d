package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/lista/internal/models"
)

// PriorityRepo reads the seeded priorities table. Nothing writes to it.
type PriorityRepo struct {
	db *sql.DB
}

// GetAll returns every priority level in storage order
func (r *PriorityRepo) GetAll(ctx context.Context) ([]*models.Priority, error) {
	var priorities []*models.Priority
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT id, level FROM priorities`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p := &models.Priority{}
			if err := rows.Scan(&p.ID, &p.Level); err != nil {
				return err
			}
			priorities = append(priorities, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get priorities: %w", err)
	}
	return priorities, nil
}
