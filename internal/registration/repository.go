package registration

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrClassNotFound     = errors.New("class occurrence not found")
	ErrAlreadyRegistered = errors.New("user already registered for this class")
)

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert classifies and writes a registration in one transaction. The
// occurrence row is locked first, so concurrent registrations for the same
// class serialize and the confirmed count is read while the lock is held.
// The primary key on (class_schedule_id, user_id) rejects a second row for
// the same pair.
func (r *repository) Insert(ctx context.Context, occurrenceID, userID string) (Status, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var capacity int
	err = tx.GetContext(ctx, &capacity, `
		SELECT max_participants
		FROM class_schedules
		WHERE id = $1
		FOR UPDATE
	`, occurrenceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrClassNotFound
		}
		return "", err
	}

	var confirmed int
	err = tx.GetContext(ctx, &confirmed, `
		SELECT COUNT(*)
		FROM class_registrations
		WHERE class_schedule_id = $1 AND status = 'confirmed'
	`, occurrenceID)
	if err != nil {
		return "", err
	}

	status := StatusWaitlisted
	if confirmed < capacity {
		status = StatusConfirmed
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO class_registrations (class_schedule_id, user_id, status)
		VALUES ($1, $2, $3)
	`, occurrenceID, userID, status)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return "", ErrAlreadyRegistered
		}
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return status, nil
}

func (r *repository) Delete(ctx context.Context, occurrenceID, userID string) (bool, error) {
	query := `
		DELETE FROM class_registrations
		WHERE class_schedule_id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, occurrenceID, userID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) Get(ctx context.Context, occurrenceID, userID string) (*Registration, error) {
	query := `
		SELECT class_schedule_id, user_id, status, created_at
		FROM class_registrations
		WHERE class_schedule_id = $1 AND user_id = $2
	`

	var reg Registration
	err := r.db.GetContext(ctx, &reg, query, occurrenceID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &reg, nil
}

// ListByOccurrence returns a class roster, confirmed first, each group in
// arrival order so the waitlist position is the row position.
func (r *repository) ListByOccurrence(ctx context.Context, occurrenceID string) ([]Registration, error) {
	query := `
		SELECT class_schedule_id, user_id, status, created_at
		FROM class_registrations
		WHERE class_schedule_id = $1
		ORDER BY CASE status WHEN 'confirmed' THEN 0 ELSE 1 END, created_at ASC
	`

	var registrations []Registration
	err := r.db.SelectContext(ctx, &registrations, query, occurrenceID)
	if err != nil {
		return nil, err
	}

	return registrations, nil
}
