package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"interviewai-backend/internal/llm"
	"interviewai-backend/internal/shared/auth"
	"interviewai-backend/internal/shared/config"
)

const testSecret = "bootstrap-secret"

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:              "0",
		Env:               "dev",
		CORSAllowOrigin:   []string{"http://localhost:5173"},
		LocalStoreDir:     t.TempDir(),
		SupabaseJWTSecret: testSecret,
	}
}

func TestBuildDevUsesLocalFallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	if app.DB != nil {
		t.Fatalf("expected memory repositories without DATABASE_URL")
	}
	if app.LocalFiles == nil || app.Files == nil {
		t.Fatalf("expected local file store in dev")
	}
	if app.Model != nil {
		t.Fatalf("expected no model client without GEMINI_API_KEY")
	}
}

func TestBuildProdRequiresSecrets(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "prod"
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without DATABASE_URL in prod")
	}

	cfg = devConfig(t)
	cfg.Env = "prod"
	cfg.SupabaseJWTSecret = ""
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without SUPABASE_JWT_SECRET in prod")
	}
}

func TestRepeatedGenerationIsNeverThrottled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, key := range []string{"ENV", "DATABASE_URL", "SUPABASE_URL", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}
	cfg := config.LoadFrom(viper.New(), "")
	cfg.LocalStoreDir = t.TempDir()
	cfg.SupabaseJWTSecret = testSecret
	app, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	token, err := auth.SignJWT(testSecret, auth.Claims{Sub: "3f0c9b7e-6a55-4a3e-9f51-0b8f3d1c2a10"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	body, _ := json.Marshal(map[string]string{"role": "QA Engineer", "experienceLevel": "Junior"})
	for i := 0; i < 12; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/interviews/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}
}

func TestInterviewEndToEndWithFallbackQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	token, err := auth.SignJWT(testSecret, auth.Claims{Sub: "3f0c9b7e-6a55-4a3e-9f51-0b8f3d1c2a10"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"role": "Backend Developer", "experienceLevel": "Senior"})
	req := httptest.NewRequest(http.MethodPost, "/api/interviews/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID              string `json:"id"`
		Role            string `json:"role"`
		ExperienceLevel string `json:"experienceLevel"`
		Questions       string `json:"questions"`
		CreatedAt       string `json:"createdAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Role != "Backend Developer" || created.ExperienceLevel != "Senior" {
		t.Fatalf("unexpected interview: %+v", created)
	}
	if created.Questions != llm.FallbackQuestions {
		t.Fatalf("expected fallback questions without a model client")
	}
	if created.CreatedAt == "" {
		t.Fatalf("expected createdAt")
	}

	stored, err := app.InterviewsRepo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CreatedAt.IsZero() || stored.Questions != created.Questions {
		t.Fatalf("stored interview differs: %+v", stored)
	}
}
