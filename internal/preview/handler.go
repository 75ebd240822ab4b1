package preview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/export"
	"resumebuilder-backend/internal/render"
	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
	"resumebuilder-backend/internal/shared/telemetry"
	"resumebuilder-backend/internal/shared/util"
)

// Handler serves the rendered views of a resume: the HTML preview, the
// PDF download and the stored thumbnail capture.
type Handler struct {
	Resumes    *resumes.Service
	Rasterizer export.Rasterizer
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service, rast export.Rasterizer) *Handler {
	return &Handler{Resumes: svc, Rasterizer: rast}
}

// RegisterRoutes attaches preview, download and thumbnail routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume/:id/preview", h.preview)
	rg.GET("/resume/:id/download", h.download)
	rg.POST("/resume/:id/thumbnail", h.thumbnail)
}

func (h *Handler) preview(c *gin.Context) {
	html, _, ok := h.renderResume(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) download(c *gin.Context) {
	html, resume, ok := h.renderResume(c)
	if !ok {
		return
	}

	pdf, err := h.Rasterizer.PDF(c.Request.Context(), export.NormalizeColors(html))
	if err != nil {
		telemetry.Error("preview.pdf_failed", map[string]any{"resume_id": resume.ID, "error": err.Error()})
		respond.Error(c, http.StatusBadGateway, "capture_failed", "failed to generate PDF", nil)
		return
	}

	fileName, err := util.SanitizeFileName(resume.Title)
	if err != nil || fileName == "" {
		fileName = "resume"
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) thumbnail(c *gin.Context) {
	html, resume, ok := h.renderResume(c)
	if !ok {
		return
	}
	userID := middleware.UserIDFromContext(c)

	dataURI, err := h.Rasterizer.Capture(c.Request.Context(), export.NormalizeColors(html))
	if err != nil {
		telemetry.Error("preview.capture_failed", map[string]any{"resume_id": resume.ID, "error": err.Error()})
		respond.Error(c, http.StatusBadGateway, "capture_failed", "failed to capture thumbnail", nil)
		return
	}

	urls, err := h.Resumes.UpdateImages(c.Request.Context(), userID, resume.ID, resumes.ImagePayload{Thumbnail: dataURI})
	if err != nil {
		h.writeError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"success":       true,
		"thumbnailLink": urls.ThumbnailLink,
		"message":       "Thumbnail updated successfully",
	})
}

// renderResume loads the resume, checks ownership and renders the stored
// template. A false return means the error response was already written.
func (h *Handler) renderResume(c *gin.Context) (string, resumes.ResumeData, bool) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	resume, err := h.Resumes.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err)
		return "", resumes.ResumeData{}, false
	}

	width := 0
	if raw := c.Query("width"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			width = n
		}
	}

	html, err := render.Render(resume.Template.Theme, &resume, resume.Template.ColorPalette, width)
	if err != nil {
		telemetry.Error("preview.render_failed", map[string]any{"resume_id": id, "error": err.Error()})
		respond.Error(c, http.StatusBadRequest, "request_failed", "failed to render resume", nil)
		return "", resumes.ResumeData{}, false
	}
	return html, resume, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, resumes.ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you are not authorized to access this resume", nil)
	case errors.Is(err, resumes.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadRequest, "request_failed", "failed to load resume", nil)
	}
}
