package models

import "time"

type TimeRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	Date time.Time `gorm:"type:date;not null;index" json:"date"`

	Notes string `gorm:"type:text" json:"notes"`

	// Admin que modificó el registro por última vez.
	ModifiedBy *uint `json:"modified_by"`
	Editor     *User `gorm:"foreignKey:ModifiedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOpen: fichaje de entrada sin salida registrada.
func (r *TimeRecord) IsOpen() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}

// IsClosed: entrada y salida registradas.
func (r *TimeRecord) IsClosed() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}
