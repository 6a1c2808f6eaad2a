package registration

import "context"

type Repository interface {
	// Insert classifies the registration against the occurrence's capacity
	// under the occurrence row lock and inserts it, returning the assigned
	// status.
	Insert(ctx context.Context, occurrenceID, userID string) (Status, error)
	// Delete removes the registration if present. The bool reports whether a
	// row was actually removed.
	Delete(ctx context.Context, occurrenceID, userID string) (bool, error)
	Get(ctx context.Context, occurrenceID, userID string) (*Registration, error)
	ListByOccurrence(ctx context.Context, occurrenceID string) ([]Registration, error)
}
