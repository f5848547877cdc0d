package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"interviewai-backend/internal/shared/server/middleware"
	"interviewai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.generate)
	rg.GET("/feedback/for-interview/:interviewId", h.forInterview)
	rg.GET("/feedback/:id", h.get)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "interviewId must be a valid UUID", nil)
		return
	}
	c.Set(middleware.ResourceIDKey, interviewID.String())

	fb, err := h.Svc.Generate(c.Request.Context(), middleware.UserIDFromContext(c), interviewID.String(), req.Transcript)
	if err != nil {
		writeError(c, err, "failed to generate feedback")
		return
	}
	respond.OK(c, toResponse(fb))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}
	fb, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		writeError(c, err, "failed to fetch feedback")
		return
	}
	respond.OK(c, toResponse(fb))
}

func (h *Handler) forInterview(c *gin.Context) {
	interviewID, ok := middleware.PathUUID(c, "interviewId")
	if !ok {
		return
	}
	fb, err := h.Svc.GetForInterview(c.Request.Context(), middleware.UserIDFromContext(c), interviewID)
	if err != nil {
		writeError(c, err, "failed to fetch feedback")
		return
	}
	respond.OK(c, toResponse(fb))
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "interviewId and transcript are required", nil)
	case errors.Is(err, ErrInterviewNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "feedback not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "access to this interview is not allowed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
