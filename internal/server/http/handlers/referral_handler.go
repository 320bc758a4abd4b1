package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/refward/refward/internal/server/http/dto"
)

// ReferralHandler serves referral code checks and history.
type ReferralHandler struct {
	facade ReferralFacade
}

// NewReferralHandler constructs ReferralHandler.
func NewReferralHandler(facade ReferralFacade) *ReferralHandler {
	return &ReferralHandler{facade: facade}
}

// CheckCode handles GET /api/reward/:code.
func (h *ReferralHandler) CheckCode(c *gin.Context) {
	check, err := h.facade.CheckCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.CodeCheckResponse{Valid: check.Valid, Message: check.Message}
	if check.Valid {
		reward := check.Reward
		resp.Reward = &reward
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/user/referrals.
func (h *ReferralHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	referrals, err := h.facade.Referrals(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(referrals) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.ReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		resp = append(resp, dto.ReferralResponse{ReferredName: r.ReferredName, Reward: r.Reward, ReferredAt: r.CreatedAt})
	}
	c.JSON(http.StatusOK, resp)
}
