package builtresumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a built resume.
func (r *PGRepo) Create(ctx context.Context, resume BuiltResume) error {
	const query = `
INSERT INTO built_resumes (
    id, user_id, title, user_input_data, ai_generated_content, created_at
) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		[]byte(resume.UserInputData),
		[]byte(resume.AIGeneratedContent),
		resume.CreatedAt,
	)
	return err
}

// GetByID returns a built resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (BuiltResume, error) {
	const query = `
SELECT id, user_id, title, user_input_data, ai_generated_content, created_at
FROM built_resumes
WHERE id = $1
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BuiltResume{}, ErrNotFound
		}
		return BuiltResume{}, err
	}
	return resume, nil
}

// ListByUser lists built resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]BuiltResume, error) {
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
SELECT id, user_id, title, user_input_data, ai_generated_content, created_at
FROM built_resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BuiltResume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Delete removes a built resume by ID.
func (r *PGRepo) Delete(ctx context.Context, resumeID string) error {
	const query = `DELETE FROM built_resumes WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, resumeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (BuiltResume, error) {
	var (
		resume  BuiltResume
		input   []byte
		content []byte
	)
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&input,
		&content,
		&resume.CreatedAt,
	); err != nil {
		return BuiltResume{}, err
	}
	resume.UserInputData = input
	resume.AIGeneratedContent = content
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
