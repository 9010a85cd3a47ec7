package services

import (
	"errors"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrCouponUnavailable  = errors.New("coupon is not available yet")
	ErrCouponAlreadyUsed  = errors.New("coupon already used")
)

// CouponSummary counts coupons across a user's approved enrollments.
type CouponSummary struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// EnrollmentService governs party participation: pending/approved/rejected
// transitions and the single-use coupon attached to approved enrollments.
// Several rows may exist per (user, party) pair; the newest row wins.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

func latestForPair(tx *gorm.DB, userID, partyID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := tx.Where("user_id = ? AND party_id = ?", userID, partyID).
		Order("created_at DESC, id DESC").
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// Enroll submits a participation request. Resubmitting while a request exists
// returns the existing row unchanged, whatever its status; a new pending row
// is only created when the pair has no history.
func (s *EnrollmentService) Enroll(userID, partyID uint) (*models.Enrollment, bool, error) {
	var enrollment *models.Enrollment
	created := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the user row so two concurrent enrolls for the same user
		// cannot both observe "no existing row". sqlite (used in tests) has
		// no row locks; its single writer serializes the transaction anyway.
		userTx := tx
		if tx.Dialector.Name() == "postgres" {
			userTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var user models.User
		if err := userTx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		existing, err := latestForPair(tx, userID, partyID)
		if err != nil {
			return err
		}
		if existing != nil {
			enrollment = existing
			return nil
		}

		fresh := models.Enrollment{
			UserID:   userID,
			PartyID:  partyID,
			Enrolled: true,
			Status:   models.StatusPending,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return err
		}
		enrollment = &fresh
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return enrollment, created, nil
}

// CheckEnrollment is a coarse existence probe, deliberately blind to status.
func (s *EnrollmentService) CheckEnrollment(userID, partyID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND party_id = ?", userID, partyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *EnrollmentService) setStatus(enrollmentID uint, status models.EnrollmentStatus) (*models.Enrollment, bool, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrEnrollmentNotFound
		}
		return nil, false, err
	}

	if enrollment.Status == status {
		return &enrollment, false, nil
	}

	if err := s.db.Model(&enrollment).Update("status", status).Error; err != nil {
		return nil, false, err
	}
	enrollment.Status = status
	return &enrollment, true, nil
}

// Approve marks the enrollment approved. Re-approving is a no-op success, and
// an enrollment may be approved out of any prior status.
func (s *EnrollmentService) Approve(enrollmentID uint) (*models.Enrollment, bool, error) {
	return s.setStatus(enrollmentID, models.StatusApproved)
}

func (s *EnrollmentService) Reject(enrollmentID uint) (*models.Enrollment, bool, error) {
	return s.setStatus(enrollmentID, models.StatusRejected)
}

// GetCoupon reports the coupon state on the newest enrollment for the pair.
// Until the enrollment is approved the coupon is unavailable, whatever the
// stored flag says.
func (s *EnrollmentService) GetCoupon(userID, partyID uint) (*models.Enrollment, error) {
	enrollment, err := latestForPair(s.db, userID, partyID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}
	return enrollment, nil
}

// UseCoupon redeems the coupon exactly once. The flip is a conditional update
// so two concurrent redemptions cannot both succeed.
func (s *EnrollmentService) UseCoupon(userID, partyID uint) error {
	enrollment, err := latestForPair(s.db, userID, partyID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}
	if enrollment.Status != models.StatusApproved {
		return ErrCouponUnavailable
	}

	res := s.db.Model(&models.Enrollment{}).
		Where("id = ? AND coupon_used = ?", enrollment.ID, false).
		Update("coupon_used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCouponAlreadyUsed
	}
	return nil
}

func (s *EnrollmentService) ListAll() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Preload("User").Find(&enrollments).Error
	return enrollments, err
}

func (s *EnrollmentService) ListByParty(partyID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Preload("User").Where("party_id = ?", partyID).Find(&enrollments).Error
	return enrollments, err
}

func (s *EnrollmentService) ListPending() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Preload("User").
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

// Profile gathers a user's identity, enrollment history and coupon summary.
// Only approved enrollments count as coupons.
func (s *EnrollmentService) Profile(userID uint) (*models.User, []models.Enrollment, CouponSummary, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, CouponSummary{}, ErrUserNotFound
		}
		return nil, nil, CouponSummary{}, err
	}

	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, nil, CouponSummary{}, err
	}

	summary := CouponSummary{}
	for _, e := range enrollments {
		if e.Status == models.StatusApproved {
			summary.Total++
			if e.CouponUsed {
				summary.Used++
			}
		}
	}
	summary.Available = summary.Total - summary.Used

	return &user, enrollments, summary, nil
}
