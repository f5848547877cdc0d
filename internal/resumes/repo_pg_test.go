package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateWritesJSONB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	score := 81
	analysis := Analysis{
		ID:           "a-1",
		ResumeID:     "r-1",
		UserID:       "u-1",
		OverallScore: &score,
		Strengths:    json.RawMessage(`{"skillsAssessment":{}}`),
		Improvements: json.RawMessage(`{"note":"n"}`),
		GeneratedAt:  time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO resume_analysis").
		WithArgs(
			analysis.ID,
			analysis.ResumeID,
			analysis.UserID,
			int64(81),
			[]byte(analysis.Strengths),
			[]byte(analysis.Improvements),
			analysis.GeneratedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestByResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	generated := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "resume_id", "user_id", "overall_score", "strengths", "improvements", "generated_at"}).
		AddRow("a-1", "r-1", "u-1", nil, []byte(`{"skillsAssessment":{}}`), []byte(`{}`), generated)
	mock.ExpectQuery("ORDER BY generated_at DESC").
		WithArgs("r-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.LatestByResume(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("LatestByResume: %v", err)
	}
	if got.OverallScore != nil || string(got.Strengths) != `{"skillsAssessment":{}}` {
		t.Fatalf("unexpected analysis: %+v", got)
	}

	mock.ExpectQuery("FROM resume_analysis").
		WithArgs("r-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	if _, err := repo.LatestByResume(context.Background(), "r-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
