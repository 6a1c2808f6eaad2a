package schedule

import (
	"context"
	"time"
)

type Repository interface {
	CreateBatch(ctx context.Context, occurrences []ClassOccurrence) error
	GetByID(ctx context.Context, id string) (*ClassOccurrence, error)
	ListWindow(ctx context.Context, groupID string, windowStart, windowEnd time.Time) ([]ClassOccurrence, error)
	ConfirmedCounts(ctx context.Context, occurrenceIDs []string) (map[string]int, error)
	UpdateTimes(ctx context.Context, id string, newStart, newEnd time.Time) error
	Delete(ctx context.Context, id string) error
}
