package interviews

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubGenerator struct {
	calls    int
	role     string
	level    string
	response string
}

func (g *stubGenerator) GenerateInterviewQuestions(ctx context.Context, role, experienceLevel string) string {
	g.calls++
	g.role = role
	g.level = experienceLevel
	return g.response
}

func TestServiceCreatePersistsInterview(t *testing.T) {
	repo := NewMemoryRepo()
	fixed := time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("x", 3600))
	gen := &stubGenerator{response: `{"opening":"hi","questions":[{"question":"q1"}],"closing":"bye"}`}
	svc := &Service{Repo: repo, Generator: gen, Now: func() time.Time { return fixed }}

	got, err := svc.Create(context.Background(), "user-1", CreateInput{
		Title:           " Mock ",
		Role:            "Backend Developer",
		ExperienceLevel: "Senior",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Role != "Backend Developer" || got.ExperienceLevel != "Senior" || got.Title != "Mock" {
		t.Fatalf("unexpected interview: %+v", got)
	}
	if got.Questions == "" || gen.calls != 1 || gen.role != "Backend Developer" || gen.level != "Senior" {
		t.Fatalf("generator not used as expected: %+v", gen)
	}
	if !got.CreatedAt.Equal(fixed) || got.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC createdAt %v, got %v", fixed, got.CreatedAt)
	}

	stored, err := repo.GetByID(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.CreatedAt.Equal(got.CreatedAt) || stored.Questions != got.Questions {
		t.Fatalf("stored interview differs: %+v", stored)
	}
}

func TestServiceCreateRequiresRoleAndLevel(t *testing.T) {
	gen := &stubGenerator{response: "{}"}
	svc := &Service{Repo: NewMemoryRepo(), Generator: gen}

	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Role: "  ", ExperienceLevel: "Senior"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", CreateInput{Role: "Dev", ExperienceLevel: "Senior"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator should not be called on invalid input")
	}
}

func TestServiceGetEnforcesOwnership(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Generator: &stubGenerator{response: "{}"}}

	created, err := svc.Create(context.Background(), "owner", CreateInput{Role: "Dev", ExperienceLevel: "Junior"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), "intruder", created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "owner", "unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got, err := svc.Get(context.Background(), "owner", created.ID)
	if err != nil || got.ID != created.ID {
		t.Fatalf("owner Get failed: %v %+v", err, got)
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		_ = repo.Create(context.Background(), Interview{ID: id, UserID: "u", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	_ = repo.Create(context.Background(), Interview{ID: "other", UserID: "v", CreatedAt: base})

	svc := &Service{Repo: repo}
	got, err := svc.List(context.Background(), "u", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
