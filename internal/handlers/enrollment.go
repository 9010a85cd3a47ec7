package handlers

import (
	"errors"
	"net/http"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/middleware"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type EnrollRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	PartyID uint `json:"party_id" binding:"required"`
}

type EnrollResponse struct {
	Ok           bool                    `json:"ok"`
	Message      string                  `json:"message"`
	EnrollmentID uint                    `json:"enrollment_id"`
	Status       models.EnrollmentStatus `json:"status"`
}

// Enroll godoc
// @Summary      Request party participation
// @Description  Creates a pending enrollment; resubmitting returns the existing attempt
// @Tags         enrollment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EnrollRequest true "User and party"
// @Success      200 {object} EnrollResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /enroll [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	caller := middleware.CurrentUser(c)
	if caller == nil || caller.ID != req.UserID {
		forbidden(c)
		return
	}

	enrollment, created, err := h.enrollmentService.Enroll(req.UserID, req.PartyID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			okFalse(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	resp := EnrollResponse{
		EnrollmentID: enrollment.ID,
		Status:       enrollment.Status,
	}
	switch {
	case created:
		resp.Ok = true
		resp.Message = "enrollment submitted, waiting for approval"
	case enrollment.Status == models.StatusPending:
		resp.Ok = true
		resp.Message = "enrollment is already waiting for approval"
	case enrollment.Status == models.StatusApproved:
		resp.Ok = true
		resp.Message = "already enrolled in this party"
	default: // rejected: reported, not retried
		resp.Ok = false
		resp.Message = "enrollment was rejected"
	}
	c.JSON(http.StatusOK, resp)
}

type CheckEnrollmentResponse struct {
	Enrolled bool `json:"enrolled"`
}

// CheckEnrollment godoc
// @Summary      Check whether any enrollment exists for a user and party
// @Tags         enrollment
// @Produce      json
// @Param        user_id path int true "User id"
// @Param        party_id path int true "Party id"
// @Success      200 {object} CheckEnrollmentResponse
// @Router       /enrollment/check/{user_id}/{party_id} [get]
func (h *EnrollmentHandler) CheckEnrollment(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	partyID, ok := uintParam(c, "party_id")
	if !ok {
		return
	}

	enrolled, err := h.enrollmentService.CheckEnrollment(userID, partyID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckEnrollmentResponse{Enrolled: enrolled})
}
