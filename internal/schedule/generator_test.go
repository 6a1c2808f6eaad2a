package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return NewGenerator(time.UTC)
}

func TestGeneratorSingle(t *testing.T) {
	gen := testGenerator()

	t.Run("Builds one occurrence", func(t *testing.T) {
		occurrences, err := gen.Single(CreateSingleRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			Date:            "2024-01-01",
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		require.NoError(t, err)
		require.Len(t, occurrences, 1)

		occ := occurrences[0]
		assert.NotEmpty(t, occ.ID)
		assert.Equal(t, "Yoga", occ.Name)
		assert.Equal(t, time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), occ.Start)
		assert.Equal(t, time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), occ.End)
		assert.Equal(t, 10, occ.Capacity)
	})

	t.Run("Rejects zero duration", func(t *testing.T) {
		_, err := gen.Single(CreateSingleRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			Date:            "2024-01-01",
			StartTime:       "06:00",
			DurationMinutes: 0,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Rejects capacity below one", func(t *testing.T) {
		_, err := gen.Single(CreateSingleRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			Date:            "2024-01-01",
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        0,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Rejects unparsable date", func(t *testing.T) {
		_, err := gen.Single(CreateSingleRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			Date:            "01/02/2024",
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Rejects unparsable start time", func(t *testing.T) {
		_, err := gen.Single(CreateSingleRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			Date:            "2024-01-01",
			StartTime:       "6am",
			DurationMinutes: 60,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestGeneratorRecurring(t *testing.T) {
	gen := testGenerator()

	t.Run("Two weekdays over two weeks", func(t *testing.T) {
		// 2024-01-01 is a Monday.
		occurrences, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			StartDate:       "2024-01-01",
			Weekdays:        []string{"monday", "wednesday"},
			WeeksCount:      2,
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		require.NoError(t, err)
		require.Len(t, occurrences, 4)

		wantStarts := []time.Time{
			time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 6, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 8, 6, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC),
		}
		for i, occ := range occurrences {
			assert.Equal(t, wantStarts[i], occ.Start, "occurrence %d", i)
			assert.Equal(t, wantStarts[i].Add(time.Hour), occ.End, "occurrence %d", i)
			assert.Equal(t, "Yoga", occ.Name)
			assert.Equal(t, 10, occ.Capacity)
		}
	})

	t.Run("Weekday earlier in the week lands before the start date", func(t *testing.T) {
		// 2024-01-03 is a Wednesday; monday of that week is 2024-01-01.
		occurrences, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Spin",
			StartDate:       "2024-01-03",
			Weekdays:        []string{"monday"},
			WeeksCount:      1,
			StartTime:       "18:30",
			DurationMinutes: 45,
			Capacity:        8,
		})
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC), occurrences[0].Start)
	})

	t.Run("Occurrence count is weeks times weekdays", func(t *testing.T) {
		occurrences, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "HIIT",
			StartDate:       "2024-01-01",
			Weekdays:        []string{"monday", "tuesday", "friday"},
			WeeksCount:      4,
			StartTime:       "07:00",
			DurationMinutes: 30,
			Capacity:        12,
		})
		require.NoError(t, err)
		assert.Len(t, occurrences, 12)
	})

	t.Run("Rejects empty weekday set", func(t *testing.T) {
		_, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			StartDate:       "2024-01-01",
			Weekdays:        nil,
			WeeksCount:      1,
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Rejects unknown weekday", func(t *testing.T) {
		_, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			StartDate:       "2024-01-01",
			Weekdays:        []string{"funday"},
			WeeksCount:      1,
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Rejects weeks_count below one", func(t *testing.T) {
		_, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			StartDate:       "2024-01-01",
			Weekdays:        []string{"monday"},
			WeeksCount:      0,
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("Unique ids across the batch", func(t *testing.T) {
		occurrences, err := gen.Recurring(CreateRecurringRequest{
			GroupID:         "g1",
			Name:            "Yoga",
			StartDate:       "2024-01-01",
			Weekdays:        []string{"monday", "wednesday"},
			WeeksCount:      3,
			StartTime:       "06:00",
			DurationMinutes: 60,
			Capacity:        10,
		})
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, occ := range occurrences {
			assert.False(t, seen[occ.ID])
			seen[occ.ID] = true
		}
	})
}
