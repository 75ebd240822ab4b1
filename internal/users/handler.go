package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/assets"
	sharedauth "resumebuilder-backend/internal/shared/auth"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the profile routes. Account deletion is
// reserved to admins.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.GET("/user/:userId", h.get)
	rg.PUT("/update-user", h.update)
	rg.DELETE("/delete/:userId", middleware.RequireRole(sharedauth.RoleAdmin), h.remove)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		// Token-only identities (first request before upsert) still get
		// their claims back.
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, gin.H{"success": true, "user": gin.H{
				"id":        userID,
				"email":     middleware.UserEmailFromContext(c),
				"name":      middleware.UserNameFromContext(c),
				"role":      middleware.UserRoleFromContext(c),
				"avatarUrl": middleware.UserPictureFromContext(c),
			}})
			return
		}
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"success": true, "user": user})
}

func (h *Handler) get(c *gin.Context) {
	requested := c.Param("userId")
	callerID := middleware.UserIDFromContext(c)
	if requested != callerID && middleware.UserRoleFromContext(c) != sharedauth.RoleAdmin {
		respond.Error(c, http.StatusForbidden, "forbidden", "you are not authorized to view this user", nil)
		return
	}

	user, err := h.Svc.GetByID(c.Request.Context(), requested)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"success": true, "user": user})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"success": true, "user": user, "message": "Profile updated successfully"})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"success": true, "message": "User deleted successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, assets.ErrInvalidDataURI):
		respond.Error(c, http.StatusBadRequest, "validation_error", "name or avatar is required", nil)
	default:
		respond.Error(c, http.StatusBadRequest, "request_failed", "user operation failed", nil)
	}
}
