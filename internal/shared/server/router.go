package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"interviewai-backend/internal/builtresumes"
	"interviewai-backend/internal/feedback"
	"interviewai-backend/internal/interviews"
	"interviewai-backend/internal/resumes"
	"interviewai-backend/internal/services/health"
	"interviewai-backend/internal/shared/config"
	"interviewai-backend/internal/shared/metrics"
	"interviewai-backend/internal/shared/server/middleware"
	"interviewai-backend/internal/shared/server/respond"
)

// RouterDeps lists the handlers mounted on the API. Nil handlers are skipped.
type RouterDeps struct {
	Config           config.Config
	InterviewHandler *interviews.Handler
	FeedbackHandler  *feedback.Handler
	ResumeHandler    *resumes.Handler
	BuilderHandler   *builtresumes.Handler
	Health           *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		ok, database := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "database": database})
	})

	secured := api.Group("")
	secured.Use(middleware.Auth(deps.Config.SupabaseJWTSecret))
	registerMeRoutes(secured)

	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(secured)
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.RegisterRoutes(secured)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(secured)
	}
	if deps.BuilderHandler != nil {
		deps.BuilderHandler.RegisterRoutes(secured)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
