package models

// RegisterSession accumulates signup data across the multi-step flow.
// Optional fields stay empty until the matching step fills them; the row is
// kept after the user is created.
type RegisterSession struct {
	SessionID    string `gorm:"primaryKey;size:64" json:"session_id"`
	InvitationID uint   `gorm:"not null" json:"invitation_id"`
	Name         string `gorm:"size:100" json:"name,omitempty"`
	Birthday     string `gorm:"size:20" json:"birthday,omitempty"`
	Phone        string `gorm:"size:30" json:"phone,omitempty"`
	UserID       string `gorm:"size:100" json:"user_id,omitempty"`
	Password     string `gorm:"size:255" json:"-"`
}
