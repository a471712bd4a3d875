package dto

import "time"

type RecordListDTO struct {
	ID       uint       `json:"id"`
	UserID   uint       `json:"user_id"`
	Username string     `json:"username"`
	Date     string     `json:"date"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Duration string     `json:"duration"`
	Notes    string     `json:"notes"`
}

type CalendarEventDTO struct {
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

type WeeklySummaryDTO struct {
	WorkedSeconds    int64  `json:"worked_seconds"`
	AllowedSeconds   int64  `json:"allowed_seconds"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Worked           string `json:"worked"`
	Remaining        string `json:"remaining"`
	IsOver           bool   `json:"is_over"`
}
