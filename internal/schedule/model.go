package schedule

import "time"

// ClassOccurrence is one concrete scheduled instance of a class.
type ClassOccurrence struct {
	ID        string    `db:"id" json:"id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	Name      string    `db:"class_name" json:"class_name"`
	Start     time.Time `db:"start_time" json:"start_time"`
	End       time.Time `db:"end_time" json:"end_time"`
	Capacity  int       `db:"max_participants" json:"max_participants"`
	TypeID    *string   `db:"class_type_id" json:"class_type_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OccurrenceWithCount enriches an occurrence with the number of confirmed
// registrations, for calendar views.
type OccurrenceWithCount struct {
	ClassOccurrence
	ConfirmedCount int  `json:"confirmed_count"`
	IsFull         bool `json:"is_full"`
}

type CreateSingleRequest struct {
	GroupID         string  `json:"group_id" binding:"required,uuid4"`
	Name            string  `json:"class_name" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Capacity        int     `json:"max_participants" binding:"required"`
	TypeID          *string `json:"class_type_id,omitempty"`
}

type CreateRecurringRequest struct {
	GroupID         string   `json:"group_id" binding:"required,uuid4"`
	Name            string   `json:"class_name" binding:"required"`
	StartDate       string   `json:"start_date" binding:"required"`
	Weekdays        []string `json:"weekdays" binding:"required"`
	WeeksCount      int      `json:"weeks_count" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes" binding:"required"`
	Capacity        int      `json:"max_participants" binding:"required"`
	TypeID          *string  `json:"class_type_id,omitempty"`
}

type RescheduleRequest struct {
	NewStart time.Time `json:"new_start" binding:"required"`
	NewEnd   time.Time `json:"new_end" binding:"required"`
}
