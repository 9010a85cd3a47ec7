package handlers

import (
	"errors"
	"net/http"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registration *services.RegistrationService
}

func NewRegistrationHandler(registration *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

type VerifyInvitationRequest struct {
	InvitationCode string `json:"invitation_code" binding:"required" example:"TEST001"`
}

type VerifyInvitationResponse struct {
	Valid     bool   `json:"valid"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// VerifyInvitation godoc
// @Summary      Verify an invitation code
// @Description  Validate the code and open a registration session
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body VerifyInvitationRequest true "Invitation code"
// @Success      200 {object} VerifyInvitationResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/invitation/verify [post]
func (h *RegistrationHandler) VerifyInvitation(c *gin.Context) {
	var req VerifyInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	sessionID, err := h.registration.VerifyInvitation(req.InvitationCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvitationNotFound),
			errors.Is(err, services.ErrInvitationInactive):
			c.JSON(http.StatusOK, VerifyInvitationResponse{Valid: false, Message: err.Error()})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, VerifyInvitationResponse{Valid: true, SessionID: sessionID})
}

type StepRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Name      string `json:"name,omitempty"`
	Birthday  string `json:"birthday,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Password  string `json:"password,omitempty"`
}

func (h *RegistrationHandler) runStep(c *gin.Context, field string, step func(req StepRequest) error) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	switch {
	case field == "name" && req.Name == "",
		field == "birthday" && req.Birthday == "",
		field == "phone" && req.Phone == "",
		field == "user_id" && req.UserID == "",
		field == "password" && req.Password == "":
		badRequest(c, field+" is required")
		return
	}

	if err := step(req); err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound),
			errors.Is(err, services.ErrStepIncomplete),
			errors.Is(err, services.ErrPhoneTaken),
			errors.Is(err, services.ErrUserIDTaken):
			okFalse(c, err.Error())
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}

// SaveName godoc
// @Summary      Save the name step
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body StepRequest true "Session id and name"
// @Success      200 {object} OkResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register/name [put]
func (h *RegistrationHandler) SaveName(c *gin.Context) {
	h.runStep(c, "name", func(req StepRequest) error {
		return h.registration.SetName(req.SessionID, req.Name)
	})
}

// SaveBirthday godoc
// @Summary      Save the birthday step
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body StepRequest true "Session id and birthday"
// @Success      200 {object} OkResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register/birthday [put]
func (h *RegistrationHandler) SaveBirthday(c *gin.Context) {
	h.runStep(c, "birthday", func(req StepRequest) error {
		return h.registration.SetBirthday(req.SessionID, req.Birthday)
	})
}

// SavePhone godoc
// @Summary      Save the phone step
// @Description  Requires name and birthday to be filled; the phone number must not belong to an existing user
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body StepRequest true "Session id and phone"
// @Success      200 {object} OkResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register/phone [put]
func (h *RegistrationHandler) SavePhone(c *gin.Context) {
	h.runStep(c, "phone", func(req StepRequest) error {
		return h.registration.SetPhone(req.SessionID, req.Phone)
	})
}

// SaveUserID godoc
// @Summary      Save the user id step
// @Description  Requires name, birthday and phone; the id must not be taken
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body StepRequest true "Session id and user id"
// @Success      200 {object} OkResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register/userid [put]
func (h *RegistrationHandler) SaveUserID(c *gin.Context) {
	h.runStep(c, "user_id", func(req StepRequest) error {
		return h.registration.SetUserID(req.SessionID, req.UserID)
	})
}

type CompleteResponse struct {
	Ok          bool   `json:"ok"`
	UserID      uint   `json:"userId"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// SavePassword godoc
// @Summary      Save the password and create the account
// @Description  Final step: hashes the password, creates the user and logs them in
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body StepRequest true "Session id and password"
// @Success      200 {object} CompleteResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/register/password [put]
func (h *RegistrationHandler) SavePassword(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Password == "" {
		badRequest(c, "password is required")
		return
	}

	userID, token, err := h.registration.CompleteWithPassword(req.SessionID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound),
			errors.Is(err, services.ErrStepIncomplete),
			errors.Is(err, services.ErrUserIDTaken):
			okFalse(c, err.Error())
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, CompleteResponse{
		Ok:          true,
		UserID:      userID,
		AccessToken: token,
		TokenType:   "bearer",
	})
}
