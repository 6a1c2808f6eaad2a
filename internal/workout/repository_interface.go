package workout

import (
	"context"
	"time"
)

type Repository interface {
	ListTemplates(ctx context.Context) ([]Workout, error)
	CreateScheduled(ctx context.Context, sw ScheduledWorkout) (*ScheduledWorkout, error)
	ListScheduled(ctx context.Context, userID string, from, to time.Time) ([]ScheduledWorkout, error)
}
