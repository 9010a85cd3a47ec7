package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:100;uniqueIndex;not null" json:"user_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Birthday     string    `gorm:"size:20;not null" json:"birthday"`
	Phone        string    `gorm:"size:30;uniqueIndex;not null" json:"phone"`
	InvitationID uint      `gorm:"not null" json:"invitation_id"`
	CreatedAt    time.Time `json:"created_at"`
}
