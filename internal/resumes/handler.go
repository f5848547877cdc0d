package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"interviewai-backend/internal/shared/server/middleware"
	"interviewai-backend/internal/shared/server/respond"
	"interviewai-backend/internal/supabase"
)

const maxUploadSize = supabase.MaxResumeSize

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	// Uploads enables the local upload route when no Supabase project backs
	// the file store.
	Uploads *supabase.LocalStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, uploads *supabase.LocalStore) *Handler {
	return &Handler{Svc: svc, Uploads: uploads}
}

// RegisterRoutes attaches resume analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/analyze", h.analyze)
	rg.GET("/resume/analysis/:resumeId", h.getAnalysis)
	if h.Uploads != nil {
		rg.POST("/resume/upload", h.upload)
	}
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId must be a valid UUID", nil)
		return
	}
	c.Set(middleware.ResourceIDKey, resumeID.String())

	analysis, err := h.Svc.Analyze(c.Request.Context(), middleware.UserIDFromContext(c), resumeID.String(), req.JobDescription)
	if err != nil {
		writeError(c, err, "failed to analyze resume")
		return
	}
	respond.OK(c, toResponse(analysis))
}

func (h *Handler) getAnalysis(c *gin.Context) {
	resumeID, ok := middleware.PathUUID(c, "resumeId")
	if !ok {
		return
	}
	analysis, err := h.Svc.GetAnalysis(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		writeError(c, err, "failed to fetch analysis")
		return
	}
	respond.OK(c, toResponse(analysis))
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	up, err := h.Uploads.Register(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		return
	}
	c.Set(middleware.ResourceIDKey, up.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"resumeId":      up.ID,
		"fileName":      up.Metadata.FileName,
		"fileSizeBytes": up.Metadata.FileSizeBytes,
		"uploadDate":    up.Metadata.UploadDate,
	})
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required", nil)
	case errors.Is(err, supabase.ErrResumeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "access to this analysis is not allowed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
