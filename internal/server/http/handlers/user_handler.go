package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/server/http/dto"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	facade ProfileFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade ProfileFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Profile handles GET /api/user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := CurrentUserID(c)
	usr, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		Name:         usr.Name,
		City:         usr.City,
		Email:        usr.Email,
		ReferralCode: usr.ReferralCode,
	})
}
