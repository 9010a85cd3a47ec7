package services

import (
	"errors"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound = errors.New("invitation code is not valid")
	ErrInvitationInactive = errors.New("invitation code is no longer active")
	ErrSessionNotFound    = errors.New("session expired")
	ErrStepIncomplete     = errors.New("previous step is not complete")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrUserIDTaken        = errors.New("user id is already taken")
)

// RegistrationService drives the multi-step signup flow: an invitation code
// opens a session, each step fills one field, and the password step promotes
// the session into a permanent user.
type RegistrationService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewRegistrationService(db *gorm.DB, auth *AuthService) *RegistrationService {
	return &RegistrationService{db: db, auth: auth}
}

// VerifyInvitation checks the code and, when valid, opens a fresh register
// session keyed by an opaque id.
func (s *RegistrationService) VerifyInvitation(code string) (string, error) {
	var invitation models.Invitation
	if err := s.db.Where("code = ?", code).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvitationNotFound
		}
		return "", err
	}
	if !invitation.IsActive {
		return "", ErrInvitationInactive
	}

	session := models.RegisterSession{
		SessionID:    uuid.NewString(),
		InvitationID: invitation.ID,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return session.SessionID, nil
}

func (s *RegistrationService) getSession(db *gorm.DB, sessionID string) (*models.RegisterSession, error) {
	var session models.RegisterSession
	if err := db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// SetName has no ordering precondition; resubmitting overwrites the value.
func (s *RegistrationService) SetName(sessionID, name string) error {
	session, err := s.getSession(s.db, sessionID)
	if err != nil {
		return err
	}
	return s.db.Model(session).Update("name", name).Error
}

func (s *RegistrationService) SetBirthday(sessionID, birthday string) error {
	session, err := s.getSession(s.db, sessionID)
	if err != nil {
		return err
	}
	return s.db.Model(session).Update("birthday", birthday).Error
}

func (s *RegistrationService) SetPhone(sessionID, phone string) error {
	session, err := s.getSession(s.db, sessionID)
	if err != nil {
		return err
	}
	if session.Name == "" || session.Birthday == "" {
		return ErrStepIncomplete
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPhoneTaken
	}

	return s.db.Model(session).Update("phone", phone).Error
}

func (s *RegistrationService) SetUserID(sessionID, userID string) error {
	session, err := s.getSession(s.db, sessionID)
	if err != nil {
		return err
	}
	if session.Name == "" || session.Birthday == "" || session.Phone == "" {
		return ErrStepIncomplete
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserIDTaken
	}

	return s.db.Model(session).Update("user_id", userID).Error
}

// CompleteWithPassword creates the permanent user from a fully filled session
// and logs the new user in. The session row is kept as an audit trail.
func (s *RegistrationService) CompleteWithPassword(sessionID, password string) (uint, string, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return 0, "", err
	}

	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		session, err := s.getSession(tx, sessionID)
		if err != nil {
			return err
		}
		if session.Name == "" || session.Birthday == "" || session.Phone == "" || session.UserID == "" {
			return ErrStepIncomplete
		}

		user = models.User{
			UserID:       session.UserID,
			Name:         session.Name,
			PasswordHash: hash,
			Birthday:     session.Birthday,
			Phone:        session.Phone,
			InvitationID: session.InvitationID,
		}
		if err := tx.Create(&user).Error; err != nil {
			// Two sessions can pass the SetUserID check with the same id;
			// the unique index decides the winner.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserIDTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, "", err
	}

	token, err := s.auth.GenerateToken(user.ID)
	if err != nil {
		return 0, "", err
	}
	return user.ID, token, nil
}
