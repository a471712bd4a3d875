package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	IsAdmin     bool `gorm:"default:false" json:"is_admin"`
	IsActive    bool `gorm:"default:true" json:"is_active"`
	WeeklyHours int  `gorm:"not null;default:0" json:"weekly_hours"`

	// Category/WorkCenter son opcionales: nil = sin asignar.
	Category   *string `gorm:"size:20" json:"category"`
	WorkCenter *string `gorm:"size:100" json:"work_center"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
