package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/middleware"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewProfileHandler(enrollmentService *services.EnrollmentService) *ProfileHandler {
	return &ProfileHandler{enrollmentService: enrollmentService}
}

type ProfileUser struct {
	ID       uint   `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

type ProfileEnrollment struct {
	PartyID    uint                    `json:"partyId"`
	EnrolledAt time.Time               `json:"enrolledAt"`
	CouponUsed bool                    `json:"couponUsed"`
	Status     models.EnrollmentStatus `json:"status"`
}

type ProfileResponse struct {
	Ok            bool                   `json:"ok"`
	User          ProfileUser            `json:"user"`
	Enrollments   []ProfileEnrollment    `json:"enrollments"`
	CouponSummary services.CouponSummary `json:"couponSummary"`
}

// GetProfile godoc
// @Summary      Get a user's profile, enrollments and coupon summary
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path int true "User id"
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /profile/{user_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	caller := middleware.CurrentUser(c)
	if caller == nil || caller.ID != userID {
		forbidden(c)
		return
	}

	user, enrollments, summary, err := h.enrollmentService.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			okFalse(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	entries := make([]ProfileEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		entries = append(entries, ProfileEnrollment{
			PartyID:    e.PartyID,
			EnrolledAt: e.CreatedAt,
			CouponUsed: e.CouponUsed,
			Status:     e.Status,
		})
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Ok: true,
		User: ProfileUser{
			ID:       user.ID,
			UserID:   user.UserID,
			Name:     user.Name,
			Birthday: user.Birthday,
			Phone:    user.Phone,
		},
		Enrollments:   entries,
		CouponSummary: summary,
	})
}
