package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// TaskRepo reads and writes the tasks table
type TaskRepo struct {
	db  *sql.DB
	loc *time.Location
}

const selectTaskColumns = `SELECT id, name, description, priority, enddate, state FROM tasks`

// Create inserts every field of task except its ID and returns the ID the store assigned.
// It fails unless exactly one row was written.
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (int, error) {
	var id int64
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx,
			`INSERT INTO tasks (name, description, priority, enddate, state)
			 VALUES (?, ?, ?, ?, ?)`,
			task.Name,
			task.Description,
			priorityArg(task.PriorityID),
			FormatDeadline(task.Deadline, r.loc),
			boolToInt(task.Done),
		)
		if err != nil {
			return err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows != 1 {
			return fmt.Errorf("expected 1 row inserted, got %d", rows)
		}

		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return int(id), nil
}

// Update overwrites every field of the row matching task.ID and reports how many rows changed
func (r *TaskRepo) Update(ctx context.Context, task *models.Task) (int64, error) {
	var rows int64
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx,
			`UPDATE tasks
			 SET name = ?, description = ?, priority = ?, enddate = ?, state = ?
			 WHERE id = ?`,
			task.Name,
			task.Description,
			priorityArg(task.PriorityID),
			FormatDeadline(task.Deadline, r.loc),
			boolToInt(task.Done),
			task.ID,
		)
		if err != nil {
			return err
		}
		rows, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return rows, nil
}

// Delete removes the row with the given ID and reports how many rows were removed
func (r *TaskRepo) Delete(ctx context.Context, taskID int) (int64, error) {
	var rows int64
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", taskID)
		if err != nil {
			return err
		}
		rows, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	return rows, nil
}

// GetAll returns every task in storage order
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectTaskColumns+` ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			task, err := r.scanTask(rows)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns a single task, or models.ErrTaskNotFound
func (r *TaskRepo) GetByID(ctx context.Context, taskID int) (*models.Task, error) {
	var task *models.Task
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		var err error
		task, err = r.scanTask(conn.QueryRowContext(ctx, selectTaskColumns+` WHERE id = ?`, taskID))
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrTaskNotFound
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", taskID, err)
	}
	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TaskRepo) scanTask(row rowScanner) (*models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
		priority    sql.NullInt64
		enddate     sql.NullString
		state       int
	)
	if err := row.Scan(&task.ID, &task.Name, &description, &priority, &enddate, &state); err != nil {
		return nil, err
	}

	deadline, err := ParseDeadline(NullStringToString(enddate), r.loc)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", task.ID, err)
	}

	task.Description = NullStringToString(description)
	task.PriorityID = nullIntToInt(priority)
	task.Deadline = deadline
	task.Done = state > 0
	return &task, nil
}
