package models

import (
	"time"
)

type Role struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	DateCreated time.Time `gorm:"not null"`

	Candidates []Candidate `gorm:"foreignKey:RoleID"`
}

type Candidate struct {
	ID              uint   `gorm:"primaryKey"`
	RoleID          uint   `gorm:"not null;index"`
	Name            string `gorm:"size:255;not null"`
	CurrentTitle    string `gorm:"size:255;not null"`
	Company         string `gorm:"size:255;not null"`
	Location        string `gorm:"size:255;not null"`
	LinkedIn        string `gorm:"size:255;not null"`
	MatchReason     string `gorm:"type:text;not null"`
	FitScore        int    `gorm:"not null"`
	CultureScore    int    `gorm:"not null"`
	ExperienceScore int    `gorm:"not null"`
}
