package models

import "time"

type EmployeeStatus struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:uix_employee_day" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:uix_employee_day" json:"date"`

	Status string `gorm:"size:20;not null" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
