package interviews

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an interview.
func (r *PGRepo) Create(ctx context.Context, interview Interview) error {
	const query = `
INSERT INTO interviews (
    id, user_id, title, role, experience_level, questions, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		interview.ID,
		interview.UserID,
		interview.Title,
		interview.Role,
		interview.ExperienceLevel,
		interview.Questions,
		interview.CreatedAt,
	)
	return err
}

// GetByID returns an interview by ID.
func (r *PGRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	const query = `
SELECT id, user_id, title, role, experience_level, questions, created_at
FROM interviews
WHERE id = $1
LIMIT 1`
	var interview Interview
	err := r.DB.QueryRowContext(ctx, query, interviewID).Scan(
		&interview.ID,
		&interview.UserID,
		&interview.Title,
		&interview.Role,
		&interview.ExperienceLevel,
		&interview.Questions,
		&interview.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Interview{}, ErrNotFound
		}
		return Interview{}, err
	}
	return interview, nil
}

// ListByUser lists interviews ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, title, role, experience_level, questions, created_at
FROM interviews
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Interview{}
	for rows.Next() {
		var interview Interview
		if err := rows.Scan(
			&interview.ID,
			&interview.UserID,
			&interview.Title,
			&interview.Role,
			&interview.ExperienceLevel,
			&interview.Questions,
			&interview.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, interview)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
