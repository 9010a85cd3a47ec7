package handlers

import (
	"errors"
	"net/http"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/middleware"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewCouponHandler(enrollmentService *services.EnrollmentService) *CouponHandler {
	return &CouponHandler{enrollmentService: enrollmentService}
}

type CouponResponse struct {
	Ok         bool                    `json:"ok"`
	Message    string                  `json:"message,omitempty"`
	CouponUsed bool                    `json:"couponUsed"`
	PartyID    uint                    `json:"partyId,omitempty"`
	Status     models.EnrollmentStatus `json:"status"`
}

// GetCoupon godoc
// @Summary      Get the coupon state for a user's party enrollment
// @Description  The coupon exists only once the enrollment is approved
// @Tags         coupon
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path int true "User id"
// @Param        party_id path int true "Party id"
// @Success      200 {object} CouponResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /coupon/{user_id}/{party_id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	partyID, ok := uintParam(c, "party_id")
	if !ok {
		return
	}

	caller := middleware.CurrentUser(c)
	if caller == nil || caller.ID != userID {
		forbidden(c)
		return
	}

	enrollment, err := h.enrollmentService.GetCoupon(userID, partyID)
	if err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			okFalse(c, "coupon not found")
			return
		}
		internalError(c, err)
		return
	}

	switch enrollment.Status {
	case models.StatusPending:
		c.JSON(http.StatusOK, CouponResponse{Ok: false, Message: "enrollment is waiting for approval", Status: enrollment.Status})
	case models.StatusRejected:
		c.JSON(http.StatusOK, CouponResponse{Ok: false, Message: "enrollment was rejected", Status: enrollment.Status})
	default:
		c.JSON(http.StatusOK, CouponResponse{
			Ok:         true,
			CouponUsed: enrollment.CouponUsed,
			PartyID:    enrollment.PartyID,
			Status:     enrollment.Status,
		})
	}
}

type UseCouponRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	PartyID uint `json:"party_id" binding:"required"`
}

// UseCoupon godoc
// @Summary      Redeem a coupon
// @Description  Single use: redeeming twice fails
// @Tags         coupon
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UseCouponRequest true "User and party"
// @Success      200 {object} OkResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /coupon/use [put]
func (h *CouponHandler) UseCoupon(c *gin.Context) {
	var req UseCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	caller := middleware.CurrentUser(c)
	if caller == nil || caller.ID != req.UserID {
		forbidden(c)
		return
	}

	err := h.enrollmentService.UseCoupon(req.UserID, req.PartyID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEnrollmentNotFound):
			okFalse(c, "coupon not found")
		case errors.Is(err, services.ErrCouponUnavailable),
			errors.Is(err, services.ErrCouponAlreadyUsed):
			okFalse(c, err.Error())
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true, Message: "coupon used"})
}
