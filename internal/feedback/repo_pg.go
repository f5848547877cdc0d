package feedback

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a feedback row.
func (r *PGRepo) Create(ctx context.Context, fb Feedback) error {
	const query = `
INSERT INTO feedback (
    id, interview_id, user_id, transcript, strengths, areas_for_improvement, overall_score, generated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		fb.ID,
		fb.InterviewID,
		fb.UserID,
		fb.Transcript,
		fb.Strengths,
		fb.AreasForImprovement,
		nullableInt(fb.OverallScore),
		fb.GeneratedAt,
	)
	return err
}

// GetByID returns feedback by ID.
func (r *PGRepo) GetByID(ctx context.Context, feedbackID string) (Feedback, error) {
	const query = `
SELECT id, interview_id, user_id, transcript, strengths, areas_for_improvement, overall_score, generated_at
FROM feedback
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, feedbackID))
}

// FirstByInterview returns the earliest feedback row for an interview.
func (r *PGRepo) FirstByInterview(ctx context.Context, interviewID string) (Feedback, error) {
	const query = `
SELECT id, interview_id, user_id, transcript, strengths, areas_for_improvement, overall_score, generated_at
FROM feedback
WHERE interview_id = $1
ORDER BY generated_at ASC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, interviewID))
}

func (r *PGRepo) scanOne(row *sql.Row) (Feedback, error) {
	var (
		fb    Feedback
		score sql.NullInt64
	)
	err := row.Scan(
		&fb.ID,
		&fb.InterviewID,
		&fb.UserID,
		&fb.Transcript,
		&fb.Strengths,
		&fb.AreasForImprovement,
		&score,
		&fb.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Feedback{}, ErrNotFound
		}
		return Feedback{}, err
	}
	if score.Valid {
		v := int(score.Int64)
		fb.OverallScore = &v
	}
	return fb, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

var _ Repo = (*PGRepo)(nil)
