package schedule

import (
	"context"
	"time"

	"gymclass/internal/metrics"
)

type Service interface {
	CreateSingle(ctx context.Context, req CreateSingleRequest) (*ClassOccurrence, error)
	CreateRecurring(ctx context.Context, req CreateRecurringRequest) ([]ClassOccurrence, error)
	ListWindow(ctx context.Context, groupID string, windowStart, windowEnd time.Time) ([]OccurrenceWithCount, error)
	Reschedule(ctx context.Context, id string, newStart, newEnd time.Time) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	gen  *Generator
}

func NewService(repo Repository, gen *Generator) Service {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &service{repo: repo, gen: gen}
}

func (s *service) CreateSingle(ctx context.Context, req CreateSingleRequest) (*ClassOccurrence, error) {
	occurrences, err := s.gen.Single(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateBatch(ctx, occurrences); err != nil {
		return nil, err
	}

	metrics.RecordOccurrencesCreated("single", 1)
	return &occurrences[0], nil
}

func (s *service) CreateRecurring(ctx context.Context, req CreateRecurringRequest) ([]ClassOccurrence, error) {
	occurrences, err := s.gen.Recurring(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateBatch(ctx, occurrences); err != nil {
		return nil, err
	}

	metrics.RecordOccurrencesCreated("recurring", len(occurrences))
	return occurrences, nil
}

// ListWindow returns the occurrences starting in [windowStart, windowEnd) with
// their confirmed counts. Counts are fetched in one grouped query, not one per
// occurrence, and default to zero.
func (s *service) ListWindow(ctx context.Context, groupID string, windowStart, windowEnd time.Time) ([]OccurrenceWithCount, error) {
	occurrences, err := s.repo.ListWindow(ctx, groupID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(occurrences))
	for i, occ := range occurrences {
		ids[i] = occ.ID
	}

	counts, err := s.repo.ConfirmedCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]OccurrenceWithCount, 0, len(occurrences))
	for _, occ := range occurrences {
		count := counts[occ.ID]
		result = append(result, OccurrenceWithCount{
			ClassOccurrence: occ,
			ConfirmedCount:  count,
			IsFull:          count >= occ.Capacity,
		})
	}

	return result, nil
}

func (s *service) Reschedule(ctx context.Context, id string, newStart, newEnd time.Time) error {
	if !newEnd.After(newStart) {
		return validationErrorf("new_end must be after new_start")
	}

	if err := s.repo.UpdateTimes(ctx, id, newStart, newEnd); err != nil {
		return err
	}

	metrics.RecordReschedule()
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
