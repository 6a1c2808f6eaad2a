package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Generator expands a class creation request into one or more concrete
// occurrences. All validation happens here, before anything is persisted.
type Generator struct {
	loc *time.Location
}

func NewGenerator(loc *time.Location) *Generator {
	if loc == nil {
		loc = time.Local
	}
	return &Generator{loc: loc}
}

// Single builds exactly one occurrence from a date, wall-clock start time and
// duration.
func (g *Generator) Single(req CreateSingleRequest) ([]ClassOccurrence, error) {
	if err := validateCommon(req.Name, req.DurationMinutes, req.Capacity); err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(dateLayout, req.Date, g.loc)
	if err != nil {
		return nil, validationErrorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	startOfDay, err := parseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	start := g.at(day, startOfDay)
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	return []ClassOccurrence{{
		ID:       uuid.NewString(),
		GroupID:  req.GroupID,
		Name:     req.Name,
		Start:    start,
		End:      end,
		Capacity: req.Capacity,
		TypeID:   req.TypeID,
	}}, nil
}

// Recurring builds weeksCount x len(weekdays) occurrences. The date for week w
// and weekday d is computed relative to the start date's week, so a weekday
// earlier in the week than the start date lands before it in week zero.
func (g *Generator) Recurring(req CreateRecurringRequest) ([]ClassOccurrence, error) {
	if err := validateCommon(req.Name, req.DurationMinutes, req.Capacity); err != nil {
		return nil, err
	}
	if req.WeeksCount < 1 {
		return nil, validationErrorf("weeks_count must be at least 1, got %d", req.WeeksCount)
	}
	if len(req.Weekdays) == 0 {
		return nil, validationErrorf("at least one weekday must be selected")
	}

	days := make([]time.Weekday, 0, len(req.Weekdays))
	seen := make(map[time.Weekday]bool)
	for _, name := range req.Weekdays {
		d, ok := weekdayNames[name]
		if !ok {
			return nil, validationErrorf("unknown weekday %q", name)
		}
		if seen[d] {
			return nil, validationErrorf("weekday %q selected twice", name)
		}
		seen[d] = true
		days = append(days, d)
	}

	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, g.loc)
	if err != nil {
		return nil, validationErrorf("invalid start_date %q, expected YYYY-MM-DD", req.StartDate)
	}

	startOfDay, err := parseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute

	occurrences := make([]ClassOccurrence, 0, req.WeeksCount*len(days))
	for w := 0; w < req.WeeksCount; w++ {
		base := startDate.AddDate(0, 0, 7*w)
		for _, d := range days {
			day := base.AddDate(0, 0, int(d)-int(base.Weekday()))
			start := g.at(day, startOfDay)
			occurrences = append(occurrences, ClassOccurrence{
				ID:       uuid.NewString(),
				GroupID:  req.GroupID,
				Name:     req.Name,
				Start:    start,
				End:      start.Add(duration),
				Capacity: req.Capacity,
				TypeID:   req.TypeID,
			})
		}
	}

	return occurrences, nil
}

func (g *Generator) at(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, g.loc)
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, validationErrorf("invalid start_time %q, expected HH:MM", value)
	}
	return t, nil
}

func validateCommon(name string, durationMinutes, capacity int) error {
	if name == "" {
		return validationErrorf("class_name must not be empty")
	}
	if durationMinutes <= 0 {
		return validationErrorf("duration_minutes must be positive, got %d", durationMinutes)
	}
	if capacity < 1 {
		return validationErrorf("max_participants must be at least 1, got %d", capacity)
	}
	return nil
}
