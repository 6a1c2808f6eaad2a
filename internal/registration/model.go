package registration

import "time"

// Status is the state of a registration. A missing row means StatusNone;
// "none" is never stored.
type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusWaitlisted Status = "waitlisted"
	StatusNone       Status = "none"
)

// Registration ties a user to a class occurrence. Identity is the
// (occurrence, user) pair; there is at most one row per pair.
type Registration struct {
	OccurrenceID string    `db:"class_schedule_id" json:"class_schedule_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RegisterResponse struct {
	Status Status `json:"status" example:"confirmed"`
}

type StatusResponse struct {
	Status Status `json:"status" example:"none"`
}
