package models

import "time"

type EnrollmentStatus string

const (
	StatusPending  EnrollmentStatus = "pending"
	StatusApproved EnrollmentStatus = "approved"
	StatusRejected EnrollmentStatus = "rejected"
)

// Enrollment is one participation attempt of a user in a party. Several rows
// may exist for the same (user, party) pair; the newest one is authoritative.
type Enrollment struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index:idx_enrollments_user_party" json:"user_id"`
	User       User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PartyID    uint             `gorm:"not null;index:idx_enrollments_user_party" json:"party_id"`
	Enrolled   bool             `gorm:"not null;default:true" json:"enrolled"`
	Status     EnrollmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CouponUsed bool             `gorm:"not null;default:false" json:"coupon_used"`
	CreatedAt  time.Time        `json:"created_at"`
}
