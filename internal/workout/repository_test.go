package workout

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func TestListTemplates(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "category", "movements", "description", "is_template", "created_at"}).
		AddRow("w-1", "Fran", "Benchmark", "21-15-9", nil, true, now).
		AddRow("w-2", nil, nil, nil, []byte(`{"rounds":5}`), true, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, category, movements, description, is_template, created_at FROM workouts WHERE is_template = TRUE ORDER BY created_at DESC")).
		WillReturnRows(rows)

	workouts, err := repo.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	require.Equal(t, "Fran", *workouts[0].Title)
	require.Nil(t, workouts[1].Title)
}

func TestCreateScheduled(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	sw := ScheduledWorkout{
		ID:        "sw-1",
		UserID:    "u-1",
		TrackID:   "t-1",
		Date:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Name:      "Monday Strength",
		Details:   json.RawMessage(`{"blocks":[]}`),
		Status:    "draft",
		CreatedAt: time.Now(),
	}

	// The sqlmock driver reports no bind type, so named parameters stay as ?.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_workouts (id, user_id, track_id, date, name, workout_details, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")).
		WithArgs(sw.ID, sw.UserID, sw.TrackID, sw.Date, sw.Name, []byte(sw.Details), sw.Status, sw.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateScheduled(context.Background(), sw)
	require.NoError(t, err)
	require.Equal(t, "sw-1", created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListScheduled(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "track_id", "date", "name", "workout_details", "status", "created_at"}).
		AddRow("sw-1", "u-1", "t-1", from.AddDate(0, 0, 2), "Monday Strength", []byte(`{}`), "draft", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, track_id, date, name, workout_details, status, created_at FROM scheduled_workouts WHERE user_id = $1 AND date >= $2 AND date < $3 ORDER BY date ASC")).
		WithArgs("u-1", from, to).
		WillReturnRows(rows)

	workouts, err := repo.ListScheduled(context.Background(), "u-1", from, to)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Equal(t, "draft", workouts[0].Status)
}
