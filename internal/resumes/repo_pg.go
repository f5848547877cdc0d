package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO resume_analysis (
    id, resume_id, user_id, overall_score, strengths, improvements, generated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var score any
	if analysis.OverallScore != nil {
		score = int64(*analysis.OverallScore)
	}
	_, err := r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeID,
		analysis.UserID,
		score,
		[]byte(analysis.Strengths),
		[]byte(analysis.Improvements),
		analysis.GeneratedAt,
	)
	return err
}

// LatestByResume returns the newest analysis for a resume.
func (r *PGRepo) LatestByResume(ctx context.Context, resumeID string) (Analysis, error) {
	const query = `
SELECT id, resume_id, user_id, overall_score, strengths, improvements, generated_at
FROM resume_analysis
WHERE resume_id = $1
ORDER BY generated_at DESC
LIMIT 1`
	var (
		analysis     Analysis
		score        sql.NullInt64
		strengths    []byte
		improvements []byte
	)
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&analysis.UserID,
		&score,
		&strengths,
		&improvements,
		&analysis.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if score.Valid {
		v := int(score.Int64)
		analysis.OverallScore = &v
	}
	analysis.Strengths = strengths
	analysis.Improvements = improvements
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
