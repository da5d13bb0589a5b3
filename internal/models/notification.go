package models

import (
	"time"
)

// Notification kinds.
const (
	NotificationOvertook  = "overtook"
	NotificationOvertaken = "overtaken"
)

// Notification is created in pairs by the overtaking detector: the user who
// passed gets an "overtook" row, the user who was passed gets an "overtaken"
// row pointing back. Rows are append-only; only ReadAt ever changes.
type Notification struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	Type          string `gorm:"size:20;not null"`
	Message       string `gorm:"not null"`
	RelatedUserID uint   `gorm:"not null"`
	ActivityType  string `gorm:"size:50;not null"`
	ReadAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}
