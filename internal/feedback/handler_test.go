package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"interviewai-backend/internal/interviews"
	"interviewai-backend/internal/shared/auth"
	"interviewai-backend/internal/shared/server/middleware"
)

const (
	testSecret  = "feedback-secret"
	ownerID     = "3f0c9b7e-6a55-4a3e-9f51-0b8f3d1c2a10"
	otherID     = "9a1e2d3c-4b5a-4c6d-8e7f-0a1b2c3d4e5f"
	interviewID = "5b6c7d8e-9f00-4a1b-8c2d-3e4f5a6b7c8d"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	interviewRepo := interviews.NewMemoryRepo()
	if err := interviewRepo.Create(context.Background(), interviews.Interview{ID: interviewID, UserID: ownerID, CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := &Service{
		Repo:       NewMemoryRepo(),
		Interviews: interviewRepo,
		Analyzer:   stubAnalyzer{"strengths": "good", "areas_for_improvement": "pace", "overall_score": 70},
	}

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth(testSecret))
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, sub string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.SignJWT(testSecret, auth.Claims{Sub: sub})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFeedbackRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/feedback/for-interview/"+interviewID, ownerID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before feedback exists, got %d", w.Code)
	}

	body, _ := json.Marshal(map[string]string{"interviewId": interviewID, "transcript": "Q: hi A: hello"})
	w = do(t, r, http.MethodPost, "/api/feedback", ownerID, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created Response
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.OverallScore == nil || *created.OverallScore != 70 || created.InterviewID != interviewID {
		t.Fatalf("unexpected response: %+v", created)
	}

	w = do(t, r, http.MethodGet, "/api/feedback/"+created.ID, ownerID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on get, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/feedback/for-interview/"+interviewID, ownerID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for interview lookup, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/feedback/"+created.ID, otherID, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", w.Code)
	}
}

func TestFeedbackRejectsBadInterviewID(t *testing.T) {
	r := newTestRouter(t)
	body, _ := json.Marshal(map[string]string{"interviewId": "abc", "transcript": "t"})
	w := do(t, r, http.MethodPost, "/api/feedback", ownerID, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	body, _ = json.Marshal(map[string]string{"interviewId": otherID, "transcript": "t"})
	w = do(t, r, http.MethodPost, "/api/feedback", ownerID, body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown interview, got %d", w.Code)
	}
}
