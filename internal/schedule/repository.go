package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBatch inserts all occurrences in one transaction. Either the whole
// batch is committed or none of it is.
func (r *repository) CreateBatch(ctx context.Context, occurrences []ClassOccurrence) error {
	if len(occurrences) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO class_schedules (id, group_id, class_name, start_time, end_time, max_participants, class_type_id)
		VALUES (:id, :group_id, :class_name, :start_time, :end_time, :max_participants, :class_type_id)
	`

	for _, occ := range occurrences {
		if _, err := tx.NamedExecContext(ctx, query, occ); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id string) (*ClassOccurrence, error) {
	query := `
		SELECT id, group_id, class_name, start_time, end_time, max_participants, class_type_id, created_at
		FROM class_schedules
		WHERE id = $1
	`

	var occ ClassOccurrence
	err := r.db.GetContext(ctx, &occ, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOccurrenceNotFound
		}
		return nil, err
	}

	return &occ, nil
}

// ListWindow selects occurrences whose start falls in [windowStart, windowEnd).
// The half-open bound keeps a boundary occurrence out of two adjacent windows.
func (r *repository) ListWindow(ctx context.Context, groupID string, windowStart, windowEnd time.Time) ([]ClassOccurrence, error) {
	query := `
		SELECT id, group_id, class_name, start_time, end_time, max_participants, class_type_id, created_at
		FROM class_schedules
		WHERE group_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time ASC
	`

	var occurrences []ClassOccurrence
	err := r.db.SelectContext(ctx, &occurrences, query, groupID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	return occurrences, nil
}

// ConfirmedCounts aggregates confirmed registrations for all given occurrence
// ids in a single grouped query. Occurrences with no confirmed rows are simply
// absent from the result map.
func (r *repository) ConfirmedCounts(ctx context.Context, occurrenceIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(occurrenceIDs))
	if len(occurrenceIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT class_schedule_id, COUNT(*) AS confirmed_count
		FROM class_registrations
		WHERE status = 'confirmed' AND class_schedule_id IN (?)
		GROUP BY class_schedule_id
	`, occurrenceIDs)
	if err != nil {
		return nil, err
	}

	rows := []struct {
		OccurrenceID   string `db:"class_schedule_id"`
		ConfirmedCount int    `db:"confirmed_count"`
	}{}

	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.OccurrenceID] = row.ConfirmedCount
	}

	return counts, nil
}

// UpdateTimes moves an occurrence. Only start and end change; name, capacity
// and registrations are untouched.
func (r *repository) UpdateTimes(ctx context.Context, id string, newStart, newEnd time.Time) error {
	query := `
		UPDATE class_schedules
		SET start_time = $2, end_time = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, newStart, newEnd)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrOccurrenceNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM class_schedules
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrOccurrenceNotFound
	}

	return nil
}
