package resumes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/assets"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

// Image payloads are base64 data URIs, so allow room beyond the raw pixels.
const maxImageBodySize = 16 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume CRUD routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-resume", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resume/:id", h.get)
	rg.PUT("/update-resume/:id", h.update)
	rg.PUT("/update-resume-image/:id", h.updateImage)
	rg.DELETE("/delete-resume/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req CreatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err, "failed to create resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"success": true,
		"resume":  resume,
		"message": "Resume created successfully",
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumesList, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}
	if resumesList == nil {
		resumesList = []ResumeData{}
	}

	respond.OK(c, gin.H{"success": true, "resumes": resumesList})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	resume, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}

	respond.OK(c, gin.H{"success": true, "resume": resume})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	violations, err := ValidatePayload(body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(violations) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume payload failed validation", violations)
		return
	}

	var req UpdatePayload
	if err := json.Unmarshal(body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeError(c, err, "failed to update resume")
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"resume":  resume,
		"message": "Resume updated successfully",
	})
}

func (h *Handler) updateImage(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBodySize)

	var req ImagePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	urls, err := h.Svc.UpdateImages(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeError(c, err, "failed to update resume images")
		return
	}

	respond.OK(c, gin.H{
		"success":           true,
		"profilePreviewUrl": urls.ProfilePreviewURL,
		"thumbnailLink":     urls.ThumbnailLink,
		"message":           "Images updated successfully",
	})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "failed to delete resume")
		return
	}

	respond.OK(c, gin.H{"success": true, "message": "Resume deleted successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you are not authorized to access this resume", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, assets.ErrInvalidDataURI):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadRequest, "request_failed", fallback, nil)
	}
}
