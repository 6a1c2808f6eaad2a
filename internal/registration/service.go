package registration

import (
	"context"
	"time"

	"gymclass/internal/logger"
	"gymclass/internal/metrics"
	"gymclass/internal/schedule"
	"gymclass/internal/user"
)

// Notifier sends registration outcome emails. It is optional; a nil Notifier
// disables notifications.
type Notifier interface {
	SendRegistrationResult(ctx context.Context, to, name, className string, confirmed bool, when time.Time) error
	SendCancellation(ctx context.Context, to, name, className string, when time.Time) error
}

type Service interface {
	Register(ctx context.Context, occurrenceID, userID string) (Status, error)
	Cancel(ctx context.Context, occurrenceID, userID string) error
	StatusOf(ctx context.Context, occurrenceID, userID string) (Status, error)
	Roster(ctx context.Context, occurrenceID string) ([]Registration, error)
}

type service struct {
	repo         Repository
	scheduleRepo schedule.Repository
	userRepo     user.Repository
	notifier     Notifier
}

func NewService(repo Repository, scheduleRepo schedule.Repository, userRepo user.Repository, notifier Notifier) Service {
	return &service{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// Register moves the (occurrence, user) pair from none to confirmed or
// waitlisted. The repository classifies under a per-occurrence row lock, so
// concurrent callers cannot oversubscribe the capacity. No other registration is
// touched; in particular nobody gets promoted here.
func (s *service) Register(ctx context.Context, occurrenceID, userID string) (Status, error) {
	status, err := s.repo.Insert(ctx, occurrenceID, userID)
	if err != nil {
		return "", err
	}

	metrics.RecordRegistration(string(status))
	s.notifyRegistration(ctx, occurrenceID, userID, status)

	return status, nil
}

// Cancel removes the registration entirely. Cancelling an absent registration
// is a no-op, not an error. The freed seat stays free: waitlisted users are
// not promoted.
func (s *service) Cancel(ctx context.Context, occurrenceID, userID string) error {
	deleted, err := s.repo.Delete(ctx, occurrenceID, userID)
	if err != nil {
		return err
	}

	if deleted {
		metrics.RecordCancellation()
		s.notifyCancellation(ctx, occurrenceID, userID)
	}

	return nil
}

func (s *service) StatusOf(ctx context.Context, occurrenceID, userID string) (Status, error) {
	reg, err := s.repo.Get(ctx, occurrenceID, userID)
	if err != nil {
		return "", err
	}
	if reg == nil {
		return StatusNone, nil
	}
	return reg.Status, nil
}

func (s *service) Roster(ctx context.Context, occurrenceID string) ([]Registration, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, occurrenceID); err != nil {
		return nil, ErrClassNotFound
	}
	return s.repo.ListByOccurrence(ctx, occurrenceID)
}

func (s *service) notifyRegistration(ctx context.Context, occurrenceID, userID string, status Status) {
	if s.notifier == nil {
		return
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return
	}
	occ, err := s.scheduleRepo.GetByID(ctx, occurrenceID)
	if err != nil {
		return
	}

	if err := s.notifier.SendRegistrationResult(ctx, u.Email, u.Name, occ.Name, status == StatusConfirmed, occ.Start); err != nil {
		logger.Errorf("Failed to queue registration email for %s: %v", u.Email, err)
	}
}

func (s *service) notifyCancellation(ctx context.Context, occurrenceID, userID string) {
	if s.notifier == nil {
		return
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return
	}
	occ, err := s.scheduleRepo.GetByID(ctx, occurrenceID)
	if err != nil {
		return
	}

	if err := s.notifier.SendCancellation(ctx, u.Email, u.Name, occ.Name, occ.Start); err != nil {
		logger.Errorf("Failed to queue cancellation email for %s: %v", u.Email, err)
	}
}
