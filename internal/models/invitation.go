package models

type Invitation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Code     string `gorm:"size:100;uniqueIndex;not null" json:"code"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
