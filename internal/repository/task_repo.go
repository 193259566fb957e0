package repository

import (
	"context"
	"errors"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTaskNotFound covers both a nonexistent id and an id owned by another
// user. The two cases must stay indistinguishable so that task ids cannot
// be enumerated across owners.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Every query below filters on user_id. None of these methods may be given
// a way to reach rows of a different owner.

func (r *TaskRepository) Create(ctx context.Context, ownerID, title string, description *string) (*domain.Task, error) {
	t := domain.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, completed)
		 VALUES ($1, $2, $3, false)
		 RETURNING id, completed, created_at, updated_at`,
		ownerID, title, description,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string, status domain.StatusFilter) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks
		 WHERE user_id = $1`

	switch status {
	case domain.StatusPending:
		query += ` AND completed = false`
	case domain.StatusCompleted:
		query += ` AND completed = true`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks
		 WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update applies a partial update in a single statement so concurrent
// writes to the same row serialize. hasDescription distinguishes "omitted"
// from "set to NULL".
func (r *TaskRepository) Update(ctx context.Context, ownerID string, id int64, title *string, description *string, hasDescription bool) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title       = COALESCE($3, title),
		     description = CASE WHEN $4 THEN $5 ELSE description END,
		     updated_at  = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, completed, created_at, updated_at`,
		id, ownerID, title, hasDescription, description,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ToggleComplete(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET completed = NOT completed, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, completed, created_at, updated_at`,
		id, ownerID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
