package wizard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

// Handler exposes the step flow over HTTP. Each move is tied to a
// sequence token so concurrent edits of the same resume cannot leapfrog
// each other.
type Handler struct {
	Resumes  *resumes.Service
	Sessions *SessionManager
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service, sessions *SessionManager) *Handler {
	return &Handler{Resumes: svc, Sessions: sessions}
}

// RegisterRoutes attaches wizard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume/:id/wizard", h.state)
	rg.POST("/resume/:id/wizard/advance", h.advance)
	rg.POST("/resume/:id/wizard/back", h.back)
}

type moveRequest struct {
	Seq    int64           `json:"seq"`
	Resume json.RawMessage `json:"resume,omitempty"`
}

var jsonNull = []byte("null")

// resumePayload schema-checks the embedded step edits and decodes them.
// The same rules gate both write paths, so the flow cannot store a body
// PUT /update-resume would reject.
func resumePayload(raw json.RawMessage) (*resumes.UpdatePayload, []string, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, nil, nil
	}
	violations, err := resumes.ValidatePayload(raw)
	if err != nil {
		return nil, nil, err
	}
	if len(violations) > 0 {
		return nil, violations, nil
	}
	payload := new(resumes.UpdatePayload)
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, nil, err
	}
	return payload, nil, nil
}

func (h *Handler) state(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	if _, err := h.Resumes.Get(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err)
		return
	}

	index, seq := h.Sessions.Snapshot(userID, id)
	c.Set("wizardStep", string(Steps[index]))
	respond.OK(c, gin.H{"success": true, "state": At(index), "seq": seq})
}

func (h *Handler) advance(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	payload, violations, err := resumePayload(req.Resume)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(violations) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume payload failed validation", violations)
		return
	}

	index, err := h.Sessions.Begin(userID, id, req.Seq)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("wizardStep", string(Steps[index]))

	// The step's edits are saved before the step check runs, so a failed
	// check never loses what the user typed. Structurally invalid bodies
	// were already rejected above and are never stored.
	var resume resumes.ResumeData
	if payload != nil {
		resume, err = h.Resumes.Update(c.Request.Context(), userID, id, *payload)
	} else {
		resume, err = h.Resumes.Get(c.Request.Context(), userID, id)
	}
	if err != nil {
		h.Sessions.Abort(userID, id)
		h.writeError(c, err)
		return
	}

	state := Advance(index, &resume)
	if len(state.Errors) > 0 {
		h.Sessions.Abort(userID, id)
		respond.OK(c, gin.H{"success": true, "state": state, "seq": req.Seq})
		return
	}

	seq := h.Sessions.Commit(userID, id, state.Index)
	respond.OK(c, gin.H{"success": true, "state": state, "seq": seq})
}

func (h *Handler) back(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if _, err := h.Resumes.Get(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err)
		return
	}

	index, err := h.Sessions.Begin(userID, id, req.Seq)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("wizardStep", string(Steps[index]))

	state := Retreat(index)
	if state.Signal == SignalExitWizard {
		h.Sessions.Abort(userID, id)
		h.Sessions.Drop(userID, id)
		respond.OK(c, gin.H{"success": true, "state": state, "seq": int64(0)})
		return
	}

	seq := h.Sessions.Commit(userID, id, state.Index)
	respond.OK(c, gin.H{"success": true, "state": state, "seq": seq})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, resumes.ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you are not authorized to access this resume", nil)
	case errors.Is(err, resumes.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrStaleToken):
		respond.Error(c, http.StatusConflict, "stale_token", "another change landed first, reload the wizard state", nil)
	case errors.Is(err, ErrBusy):
		respond.Error(c, http.StatusConflict, "busy", "a navigation request is already in progress", nil)
	default:
		respond.Error(c, http.StatusBadRequest, "request_failed", "wizard navigation failed", nil)
	}
}
