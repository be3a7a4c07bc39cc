package stats

import (
	"testing"
	"time"

	"github.com/tarang07q/NewsPlus/internal/models"
)

func event(category, source string, readAt time.Time) models.ReadEvent {
	return models.ReadEvent{
		Article: models.Article{
			Source:   models.Source{Name: source},
			Title:    "t",
			URL:      "https://example.com/" + category,
			Category: category,
		},
		ReadAt: readAt.Format(time.RFC3339),
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, time.Now())

	if got.TotalRead != 0 || got.Streak != 0 {
		t.Errorf("empty history: totalRead=%d streak=%d", got.TotalRead, got.Streak)
	}
	if len(got.Categories) != 0 || len(got.Sources) != 0 {
		t.Errorf("empty history: non-empty counts %v %v", got.Categories, got.Sources)
	}
	if got.TopCategory != NoneYet || got.TopSource != NoneYet {
		t.Errorf("empty history: top = %q / %q, want %q", got.TopCategory, got.TopSource, NoneYet)
	}
}

func TestAggregateCounts(t *testing.T) {
	now := time.Now()
	events := []models.ReadEvent{
		event("tech", "BBC News", now),
		event("tech", "Reuters", now),
		event("science", "BBC News", now),
	}

	got := Aggregate(events, now)

	if got.TotalRead != 3 {
		t.Errorf("totalRead = %d", got.TotalRead)
	}
	if got.Categories["tech"] != 2 || got.Categories["science"] != 1 {
		t.Errorf("categories = %v", got.Categories)
	}
	if got.Sources["BBC News"] != 2 || got.Sources["Reuters"] != 1 {
		t.Errorf("sources = %v", got.Sources)
	}
	if got.TopCategory != "tech" {
		t.Errorf("topCategory = %q", got.TopCategory)
	}
	if got.TopSource != "BBC News" {
		t.Errorf("topSource = %q", got.TopSource)
	}
}

func TestAggregateDefaultBuckets(t *testing.T) {
	now := time.Now()
	events := []models.ReadEvent{event("", "", now)}

	got := Aggregate(events, now)

	if got.Categories["general"] != 1 {
		t.Errorf("missing category should bucket as general: %v", got.Categories)
	}
	if got.Sources["Unknown"] != 1 {
		t.Errorf("missing source should bucket as Unknown: %v", got.Sources)
	}
}

func TestAggregateTieBreakFirstOccurrence(t *testing.T) {
	now := time.Now()
	events := []models.ReadEvent{
		event("science", "Reuters", now),
		event("tech", "BBC News", now),
		event("science", "BBC News", now),
		event("tech", "Reuters", now),
	}

	got := Aggregate(events, now)

	// science and Reuters each tie at 2 but appeared first.
	if got.TopCategory != "science" {
		t.Errorf("tie must go to first occurrence, got %q", got.TopCategory)
	}
	if got.TopSource != "Reuters" {
		t.Errorf("tie must go to first occurrence, got %q", got.TopSource)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	events := []models.ReadEvent{
		event("tech", "BBC News", now),
		event("tech", "BBC News", now.AddDate(0, 0, -1)),
		event("tech", "BBC News", now.AddDate(0, 0, -2)),
		// gap at -3
		event("tech", "BBC News", now.AddDate(0, 0, -4)),
	}

	got := Aggregate(events, now)
	if got.Streak != 3 {
		t.Errorf("streak = %d, want 3", got.Streak)
	}
}

func TestStreakZeroWithoutToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	events := []models.ReadEvent{
		event("tech", "BBC News", now.AddDate(0, 0, -1)),
		event("tech", "BBC News", now.AddDate(0, 0, -2)),
	}

	got := Aggregate(events, now)
	if got.Streak != 0 {
		t.Errorf("no read today: streak = %d, want 0", got.Streak)
	}
}

func TestStreakSingleReadToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	got := Aggregate([]models.ReadEvent{event("tech", "BBC News", now)}, now)
	if got.Streak != 1 {
		t.Errorf("streak = %d, want 1", got.Streak)
	}
}

func TestStreakCappedAt30(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	var events []models.ReadEvent
	for d := 0; d < 60; d++ {
		events = append(events, event("tech", "BBC News", now.AddDate(0, 0, -d)))
	}

	got := Aggregate(events, now)
	if got.Streak != 30 {
		t.Errorf("streak = %d, want cap of 30", got.Streak)
	}
}

func TestStreakMultipleReadsSameDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	events := []models.ReadEvent{
		event("tech", "BBC News", now),
		event("science", "Reuters", now.Add(-2*time.Hour)),
		event("tech", "BBC News", now.AddDate(0, 0, -1)),
	}

	got := Aggregate(events, now)
	if got.Streak != 2 {
		t.Errorf("streak = %d, want 2 (same-day reads collapse)", got.Streak)
	}
}

func TestAggregateIgnoresUnparseableReadAt(t *testing.T) {
	now := time.Now()
	broken := event("tech", "BBC News", now)
	broken.ReadAt = "not-a-timestamp"

	got := Aggregate([]models.ReadEvent{broken}, now)

	if got.TotalRead != 1 {
		t.Errorf("totalRead = %d", got.TotalRead)
	}
	if got.Streak != 0 {
		t.Errorf("unparseable readAt must not count toward streak, got %d", got.Streak)
	}
}
