package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewAdminHandler(enrollmentService *services.EnrollmentService) *AdminHandler {
	return &AdminHandler{enrollmentService: enrollmentService}
}

type EnrollmentUser struct {
	ID       uint   `json:"id"`
	UserID   string `json:"userId,omitempty"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

type EnrollmentEntry struct {
	ID        uint                    `json:"id"`
	PartyID   uint                    `json:"partyId"`
	Enrolled  bool                    `json:"enrolled"`
	Status    models.EnrollmentStatus `json:"status,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
	User      EnrollmentUser          `json:"user"`
}

func toEntry(e models.Enrollment, includeUserID bool) EnrollmentEntry {
	entry := EnrollmentEntry{
		ID:        e.ID,
		PartyID:   e.PartyID,
		Enrolled:  e.Enrolled,
		CreatedAt: e.CreatedAt,
		User: EnrollmentUser{
			ID:       e.User.ID,
			Name:     e.User.Name,
			Birthday: e.User.Birthday,
			Phone:    e.User.Phone,
		},
	}
	if includeUserID {
		entry.User.UserID = e.User.UserID
		entry.Status = e.Status
	}
	return entry
}

type EnrollmentListResponse struct {
	Ok          bool              `json:"ok,omitempty"`
	PartyID     uint              `json:"partyId,omitempty"`
	Enrollments []EnrollmentEntry `json:"enrollments"`
	Total       int               `json:"total"`
}

// ListEnrollments godoc
// @Summary      List every enrollment with user details
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} EnrollmentListResponse
// @Failure      403 {object} ErrorResponse
// @Router       /enrollments [get]
func (h *AdminHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.ListAll()
	if err != nil {
		internalError(c, err)
		return
	}

	entries := make([]EnrollmentEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entries = append(entries, toEntry(e, false))
	}
	c.JSON(http.StatusOK, EnrollmentListResponse{Enrollments: entries, Total: len(entries)})
}

// ListPartyEnrollments godoc
// @Summary      List a party's enrollments with user details
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        party_id path int true "Party id"
// @Success      200 {object} EnrollmentListResponse
// @Failure      403 {object} ErrorResponse
// @Router       /enrollments/party/{party_id} [get]
func (h *AdminHandler) ListPartyEnrollments(c *gin.Context) {
	partyID, ok := uintParam(c, "party_id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListByParty(partyID)
	if err != nil {
		internalError(c, err)
		return
	}

	entries := make([]EnrollmentEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entries = append(entries, toEntry(e, false))
	}
	c.JSON(http.StatusOK, EnrollmentListResponse{
		PartyID:     partyID,
		Enrollments: entries,
		Total:       len(entries),
	})
}

// ListPendingEnrollments godoc
// @Summary      List enrollments waiting for approval, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} EnrollmentListResponse
// @Failure      403 {object} ErrorResponse
// @Router       /admin/enrollments/pending [get]
func (h *AdminHandler) ListPendingEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.ListPending()
	if err != nil {
		internalError(c, err)
		return
	}

	entries := make([]EnrollmentEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entries = append(entries, toEntry(e, true))
	}
	c.JSON(http.StatusOK, EnrollmentListResponse{
		Ok:          true,
		Enrollments: entries,
		Total:       len(entries),
	})
}

type ApprovalRequest struct {
	EnrollmentID uint `json:"enrollment_id" binding:"required"`
}

type ApprovalResponse struct {
	Ok           bool   `json:"ok"`
	Message      string `json:"message"`
	EnrollmentID uint   `json:"enrollment_id"`
}

func (h *AdminHandler) decide(c *gin.Context, decide func(id uint) (*models.Enrollment, bool, error), verb string) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	enrollment, changed, err := decide(req.EnrollmentID)
	if err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			okFalse(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	message := "enrollment " + verb
	if !changed {
		message = "enrollment was already " + verb
	}
	c.JSON(http.StatusOK, ApprovalResponse{
		Ok:           true,
		Message:      message,
		EnrollmentID: enrollment.ID,
	})
}

// ApproveEnrollment godoc
// @Summary      Approve an enrollment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ApprovalRequest true "Enrollment id"
// @Success      200 {object} ApprovalResponse
// @Failure      403 {object} ErrorResponse
// @Router       /admin/enrollments/approve [post]
func (h *AdminHandler) ApproveEnrollment(c *gin.Context) {
	h.decide(c, h.enrollmentService.Approve, "approved")
}

// RejectEnrollment godoc
// @Summary      Reject an enrollment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ApprovalRequest true "Enrollment id"
// @Success      200 {object} ApprovalResponse
// @Failure      403 {object} ErrorResponse
// @Router       /admin/enrollments/reject [post]
func (h *AdminHandler) RejectEnrollment(c *gin.Context) {
	h.decide(c, h.enrollmentService.Reject, "rejected")
}
