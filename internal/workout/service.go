package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ValidationError reports malformed input, raised before any store call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type Service interface {
	Examples(ctx context.Context) ([]ExampleWorkout, error)
	Schedule(ctx context.Context, userID string, req ScheduleRequest) (*ScheduledWorkout, error)
	ListScheduled(ctx context.Context, userID string, from, to time.Time) ([]ScheduledWorkout, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Examples(ctx context.Context) ([]ExampleWorkout, error) {
	workouts, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	examples := make([]ExampleWorkout, 0, len(workouts))
	for _, w := range workouts {
		examples = append(examples, w.Example())
	}

	return examples, nil
}

// Schedule inserts a new draft workout on the user's calendar. Every call
// creates a fresh row; publishing is a separate concern.
func (s *service) Schedule(ctx context.Context, userID string, req ScheduleRequest) (*ScheduledWorkout, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid date %q, use YYYY-MM-DD", req.Date)}
	}

	sw := ScheduledWorkout{
		ID:        uuid.NewString(),
		UserID:    userID,
		TrackID:   req.TrackID,
		Date:      date,
		Name:      req.Name,
		Details:   req.Details,
		Status:    "draft",
		CreatedAt: time.Now(),
	}

	return s.repo.CreateScheduled(ctx, sw)
}

func (s *service) ListScheduled(ctx context.Context, userID string, from, to time.Time) ([]ScheduledWorkout, error) {
	return s.repo.ListScheduled(ctx, userID, from, to)
}
