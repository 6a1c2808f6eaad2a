package workout

import (
	"encoding/json"
	"strings"
	"time"
)

// Workout is a stored workout template row. Category, movements and
// description are all optional in the table.
type Workout struct {
	ID          string          `db:"id" json:"id"`
	Title       *string         `db:"title" json:"title"`
	Category    *string         `db:"category" json:"category"`
	Movements   *string         `db:"movements" json:"movements"`
	Description json.RawMessage `db:"description" json:"description"`
	IsTemplate  bool            `db:"is_template" json:"is_template"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// ExampleWorkout is the flattened shape the workout builder consumes.
type ExampleWorkout struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	RawText  string `json:"rawText"`
}

// Example flattens a template row, filling gaps the way clients expect:
// missing category reads as GPP, raw text prefers movements over the
// description JSON.
func (w Workout) Example() ExampleWorkout {
	category := "GPP"
	if w.Category != nil && *w.Category != "" {
		category = *w.Category
	}

	title := "Untitled Workout"
	if w.Title != nil && *w.Title != "" {
		title = *w.Title
	}

	rawText := "No movements or description found."
	switch {
	case w.Movements != nil && strings.TrimSpace(*w.Movements) != "":
		rawText = *w.Movements
	case len(w.Description) > 0:
		var buf strings.Builder
		if err := indentJSON(&buf, w.Description); err == nil {
			rawText = strings.TrimRight(buf.String(), "\n")
		} else {
			rawText = string(w.Description)
		}
	}

	return ExampleWorkout{
		ID:       w.ID,
		Category: category,
		Title:    title,
		RawText:  rawText,
	}
}

func indentJSON(buf *strings.Builder, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ScheduledWorkout is a programmed workout on a user's track calendar.
type ScheduledWorkout struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	TrackID   string          `db:"track_id" json:"track_id"`
	Date      time.Time       `db:"date" json:"date"`
	Name      string          `db:"name" json:"name"`
	Details   json.RawMessage `db:"workout_details" json:"workout_details"`
	Status    string          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type ScheduleRequest struct {
	TrackID string          `json:"track_id" binding:"required,uuid4"`
	Date    string          `json:"date" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Details json.RawMessage `json:"workout_details"`
}
