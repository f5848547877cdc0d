package interviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews/generate", h.generate)
	rg.GET("/interviews", h.list)
	rg.GET("/interviews/:id", h.get)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	interview, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Title:           req.Title,
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		writeError(c, err, "failed to create interview")
		return
	}

	c.Set(middleware.ResourceIDKey, interview.ID)
	respond.OK(c, toResponse(interview))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	interview, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		writeError(c, err, "failed to fetch interview")
		return
	}
	respond.OK(c, toResponse(interview))
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := middleware.PageParams(c, 20, 50)

	items, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		writeError(c, err, "failed to list interviews")
		return
	}

	resp := make([]Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}
	respond.OK(c, resp)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "role and experienceLevel are required", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "access to this interview is not allowed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
