package workout

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTemplates(ctx context.Context) ([]Workout, error) {
	query := `
		SELECT id, title, category, movements, description, is_template, created_at
		FROM workouts
		WHERE is_template = TRUE
		ORDER BY created_at DESC
	`

	var workouts []Workout
	err := r.db.SelectContext(ctx, &workouts, query)
	if err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *repository) CreateScheduled(ctx context.Context, sw ScheduledWorkout) (*ScheduledWorkout, error) {
	query := `
		INSERT INTO scheduled_workouts (id, user_id, track_id, date, name, workout_details, status, created_at)
		VALUES (:id, :user_id, :track_id, :date, :name, :workout_details, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, sw)
	if err != nil {
		return nil, err
	}

	return &sw, nil
}

// ListScheduled returns a user's programmed workouts with date in [from, to).
func (r *repository) ListScheduled(ctx context.Context, userID string, from, to time.Time) ([]ScheduledWorkout, error) {
	query := `
		SELECT id, user_id, track_id, date, name, workout_details, status, created_at
		FROM scheduled_workouts
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	var workouts []ScheduledWorkout
	err := r.db.SelectContext(ctx, &workouts, query, userID, from, to)
	if err != nil {
		return nil, err
	}

	return workouts, nil
}
