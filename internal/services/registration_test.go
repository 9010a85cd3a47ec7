package services_test

import (
	"testing"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRegistration(t *testing.T) (*gorm.DB, *services.AuthService, *services.RegistrationService) {
	t.Helper()
	db := newTestDB(t)
	auth := newAuthService(db)
	return db, auth, services.NewRegistrationService(db, auth)
}

func TestVerifyInvitation(t *testing.T) {
	db, _, reg := newRegistration(t)
	invitation := seedInvitation(t, db, "TEST001", true)
	seedInvitation(t, db, "OLD001", false)

	t.Run("valid code opens a session", func(t *testing.T) {
		sessionID, err := reg.VerifyInvitation("TEST001")
		require.NoError(t, err)
		require.NotEmpty(t, sessionID)

		var session models.RegisterSession
		require.NoError(t, db.Where("session_id = ?", sessionID).First(&session).Error)
		assert.Equal(t, invitation.ID, session.InvitationID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := reg.VerifyInvitation("BAD")
		assert.ErrorIs(t, err, services.ErrInvitationNotFound)
	})

	t.Run("inactive code", func(t *testing.T) {
		_, err := reg.VerifyInvitation("OLD001")
		assert.ErrorIs(t, err, services.ErrInvitationInactive)
	})
}

func TestStepsRequireSession(t *testing.T) {
	_, _, reg := newRegistration(t)

	assert.ErrorIs(t, reg.SetName("missing", "Kim"), services.ErrSessionNotFound)
	assert.ErrorIs(t, reg.SetBirthday("missing", "1990-01-01"), services.ErrSessionNotFound)
	assert.ErrorIs(t, reg.SetPhone("missing", "010-1111-2222"), services.ErrSessionNotFound)
	assert.ErrorIs(t, reg.SetUserID("missing", "kim01"), services.ErrSessionNotFound)

	_, _, err := reg.CompleteWithPassword("missing", "pw123")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestStepOrdering(t *testing.T) {
	db, _, reg := newRegistration(t)
	seedInvitation(t, db, "TEST001", true)

	sessionID, err := reg.VerifyInvitation("TEST001")
	require.NoError(t, err)

	assert.ErrorIs(t, reg.SetPhone(sessionID, "010-1111-2222"), services.ErrStepIncomplete)
	assert.ErrorIs(t, reg.SetUserID(sessionID, "kim01"), services.ErrStepIncomplete)
	_, _, err = reg.CompleteWithPassword(sessionID, "pw123")
	assert.ErrorIs(t, err, services.ErrStepIncomplete)

	require.NoError(t, reg.SetName(sessionID, "Kim"))
	assert.ErrorIs(t, reg.SetPhone(sessionID, "010-1111-2222"), services.ErrStepIncomplete)

	require.NoError(t, reg.SetBirthday(sessionID, "1990-01-01"))
	require.NoError(t, reg.SetPhone(sessionID, "010-1111-2222"))
	require.NoError(t, reg.SetUserID(sessionID, "kim01"))
}

func TestStepOverwriteKeepsLatestValue(t *testing.T) {
	db, _, reg := newRegistration(t)
	seedInvitation(t, db, "TEST001", true)

	sessionID, err := reg.VerifyInvitation("TEST001")
	require.NoError(t, err)

	require.NoError(t, reg.SetName(sessionID, "Kim"))
	require.NoError(t, reg.SetName(sessionID, "Lee"))

	var session models.RegisterSession
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&session).Error)
	assert.Equal(t, "Lee", session.Name)
}

func TestPhoneMustBeUnregistered(t *testing.T) {
	db, _, reg := newRegistration(t)
	seedInvitation(t, db, "TEST001", true)

	existing := createUser(t, db, "taken")
	sessionID, err := reg.VerifyInvitation("TEST001")
	require.NoError(t, err)
	require.NoError(t, reg.SetName(sessionID, "Kim"))
	require.NoError(t, reg.SetBirthday(sessionID, "1990-01-01"))

	assert.ErrorIs(t, reg.SetPhone(sessionID, existing.Phone), services.ErrPhoneTaken)
	require.NoError(t, reg.SetPhone(sessionID, "010-9999-0000"))
}

func TestUserIDMustBeFree(t *testing.T) {
	db, _, reg := newRegistration(t)
	seedInvitation(t, db, "TEST001", true)

	createUser(t, db, "taken")
	sessionID, err := reg.VerifyInvitation("TEST001")
	require.NoError(t, err)
	require.NoError(t, reg.SetName(sessionID, "Kim"))
	require.NoError(t, reg.SetBirthday(sessionID, "1990-01-01"))
	require.NoError(t, reg.SetPhone(sessionID, "010-9999-0000"))

	assert.ErrorIs(t, reg.SetUserID(sessionID, "taken"), services.ErrUserIDTaken)
	require.NoError(t, reg.SetUserID(sessionID, "fresh"))
}

func TestCompleteWithPassword(t *testing.T) {
	db, auth, reg := newRegistration(t)
	invitation := seedInvitation(t, db, "TEST001", true)

	sessionID, err := reg.VerifyInvitation("TEST001")
	require.NoError(t, err)
	require.NoError(t, reg.SetName(sessionID, "Kim"))
	require.NoError(t, reg.SetBirthday(sessionID, "1990-01-01"))
	require.NoError(t, reg.SetPhone(sessionID, "010-1111-2222"))
	require.NoError(t, reg.SetUserID(sessionID, "kim01"))

	userID, token, err := reg.CompleteWithPassword(sessionID, "pw123")
	require.NoError(t, err)
	require.NotZero(t, userID)
	require.NotEmpty(t, token)

	subject, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	assert.Equal(t, "kim01", user.UserID)
	assert.Equal(t, "Kim", user.Name)
	assert.Equal(t, "1990-01-01", user.Birthday)
	assert.Equal(t, "010-1111-2222", user.Phone)
	assert.Equal(t, invitation.ID, user.InvitationID)
	assert.NotEqual(t, "pw123", user.PasswordHash)

	// The completed signup is a working login.
	got, _, err := auth.Login("kim01", "pw123")
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
}

func TestCompleteRaceOnUserID(t *testing.T) {
	db, _, reg := newRegistration(t)
	seedInvitation(t, db, "TEST001", true)

	open := func(phone string) string {
		sessionID, err := reg.VerifyInvitation("TEST001")
		require.NoError(t, err)
		require.NoError(t, reg.SetName(sessionID, "Kim"))
		require.NoError(t, reg.SetBirthday(sessionID, "1990-01-01"))
		require.NoError(t, reg.SetPhone(sessionID, phone))
		return sessionID
	}

	first := open("010-1111-2222")
	second := open("010-3333-4444")

	// Both sessions claim the id before either account exists.
	require.NoError(t, reg.SetUserID(first, "kim01"))
	require.NoError(t, reg.SetUserID(second, "kim01"))

	_, _, err := reg.CompleteWithPassword(first, "pw123")
	require.NoError(t, err)

	_, _, err = reg.CompleteWithPassword(second, "pw456")
	assert.ErrorIs(t, err, services.ErrUserIDTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("user_id = ?", "kim01").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
