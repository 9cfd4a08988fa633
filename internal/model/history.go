package model

import (
	"time"

	"gorm.io/gorm"
)

type History struct {
	gorm.Model
	RunID       string  `gorm:"not null;index"`
	GroupName   string  `gorm:"not null"`
	URL         string  `gorm:"not null"`
	LocalPath   string  `gorm:"not null"`
	Status      Outcome `gorm:"not null"`
	ErrMsg      string
	InstalledAt time.Time `gorm:"not null"`
}
