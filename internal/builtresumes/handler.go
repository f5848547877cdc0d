package builtresumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interviewai-backend/internal/llm"
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

// RegisterRoutes attaches resume builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume-builder/build", h.build)
	rg.GET("/resume-builder/my-resumes", h.list)
	rg.GET("/resume-builder/:id", h.get)
	rg.DELETE("/resume-builder/:id", h.delete)
}

func (h *Handler) build(c *gin.Context) {
	var req llm.BuildInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Build(c.Request.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		writeError(c, err, "failed to build resume")
		return
	}
	c.Set(middleware.ResourceIDKey, resume.ID)
	respond.OK(c, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := middleware.PageParams(c, 50, 100)

	resumes, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		writeError(c, err, "failed to list resumes")
		return
	}
	resp := make([]Response, 0, len(resumes))
	for _, r := range resumes {
		resp = append(resp, toResponse(r))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}
	resume, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), id); err != nil {
		writeError(c, err, "failed to delete resume")
		return
	}
	respond.NoContent(c)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
