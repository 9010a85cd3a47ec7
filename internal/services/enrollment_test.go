package services_test

import (
	"testing"
	"time"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	enrollment, created, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.StatusPending, enrollment.Status)
	assert.True(t, enrollment.Enrolled)

	// Resubmitting returns the same attempt, no duplicate row.
	again, created, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, enrollment.ID, again.ID)
	assert.Equal(t, models.StatusPending, again.Status)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND party_id = ?", user.ID, 7).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	approved, changed, err := svc.Approve(enrollment.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.StatusApproved, approved.Status)

	_, changed, err = svc.Approve(enrollment.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	// Enrolling once approved still reports the existing row.
	again, created, err = svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.StatusApproved, again.Status)
}

func TestEnrollUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)

	_, _, err := svc.Enroll(999, 7)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestEnrollAfterRejection(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	enrollment, _, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)

	rejected, changed, err := svc.Reject(enrollment.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	// No fresh attempt is opened; the rejected row is reported back.
	again, created, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, enrollment.ID, again.ID)
	assert.Equal(t, models.StatusRejected, again.Status)
}

func TestApproveUnknownEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)

	_, _, err := svc.Approve(999)
	assert.ErrorIs(t, err, services.ErrEnrollmentNotFound)
	_, _, err = svc.Reject(999)
	assert.ErrorIs(t, err, services.ErrEnrollmentNotFound)
}

func TestCheckEnrollmentIgnoresStatus(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	enrolled, err := svc.CheckEnrollment(user.ID, 7)
	require.NoError(t, err)
	assert.False(t, enrolled)

	enrollment, _, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)

	enrolled, err = svc.CheckEnrollment(user.ID, 7)
	require.NoError(t, err)
	assert.True(t, enrolled)

	// Even a rejected attempt counts as "has enrolled before".
	_, _, err = svc.Reject(enrollment.ID)
	require.NoError(t, err)
	enrolled, err = svc.CheckEnrollment(user.ID, 7)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestCouponLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	_, err := svc.GetCoupon(user.ID, 7)
	assert.ErrorIs(t, err, services.ErrEnrollmentNotFound)

	enrollment, _, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)

	// Pending enrollment: coupon exists but is not redeemable.
	got, err := svc.GetCoupon(user.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.ErrorIs(t, svc.UseCoupon(user.ID, 7), services.ErrCouponUnavailable)

	_, _, err = svc.Approve(enrollment.ID)
	require.NoError(t, err)

	require.NoError(t, svc.UseCoupon(user.ID, 7))
	assert.ErrorIs(t, svc.UseCoupon(user.ID, 7), services.ErrCouponAlreadyUsed)

	got, err = svc.GetCoupon(user.ID, 7)
	require.NoError(t, err)
	assert.True(t, got.CouponUsed)
}

func TestCouponBlockedAfterRejection(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	enrollment, _, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	_, _, err = svc.Reject(enrollment.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UseCoupon(user.ID, 7), services.ErrCouponUnavailable)
}

func TestLatestRowWins(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	older := models.Enrollment{
		UserID: user.ID, PartyID: 7, Enrolled: true,
		Status: models.StatusApproved, CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)
	newer := models.Enrollment{
		UserID: user.ID, PartyID: 7, Enrolled: true,
		Status: models.StatusRejected, CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&newer).Error)

	got, err := svc.GetCoupon(user.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, models.StatusRejected, got.Status)

	again, created, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, newer.ID, again.ID)
}

func TestListings(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	kim := createUser(t, db, "kim01")
	lee := createUser(t, db, "lee02")

	first, _, err := svc.Enroll(kim.ID, 7)
	require.NoError(t, err)
	_, _, err = svc.Enroll(lee.ID, 7)
	require.NoError(t, err)
	_, _, err = svc.Enroll(kim.ID, 8)
	require.NoError(t, err)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.NotEmpty(t, e.User.Name, "user should be preloaded")
	}

	party, err := svc.ListByParty(7)
	require.NoError(t, err)
	assert.Len(t, party, 2)

	_, _, err = svc.Approve(first.ID)
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, e := range pending {
		assert.Equal(t, models.StatusPending, e.Status)
	}
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEnrollmentService(db)
	user := createUser(t, db, "kim01")

	first, _, err := svc.Enroll(user.ID, 7)
	require.NoError(t, err)
	second, _, err := svc.Enroll(user.ID, 8)
	require.NoError(t, err)
	_, _, err = svc.Enroll(user.ID, 9)
	require.NoError(t, err)

	_, _, err = svc.Approve(first.ID)
	require.NoError(t, err)
	_, _, err = svc.Approve(second.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UseCoupon(user.ID, 7))

	got, enrollments, summary, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "kim01", got.UserID)
	assert.Len(t, enrollments, 3)

	// Only approved enrollments count as coupons.
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Used)
	assert.Equal(t, 1, summary.Available)

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Profile(999)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
