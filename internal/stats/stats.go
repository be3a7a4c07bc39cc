// Package stats derives reading statistics from a user's reading history.
// Everything here is a pure computation over a snapshot of the history;
// nothing is persisted.
package stats

import (
	"time"

	"github.com/tarang07q/NewsPlus/internal/models"
)

// NoneYet is returned for the top category/source when the history is
// empty.
const NoneYet = "None yet"

// maxStreakLookback caps the consecutive-day walk; the streak never
// exceeds this many days even if the true run is longer.
const maxStreakLookback = 30

const dateKeyLayout = "2006-01-02"

// ReadingStats is derived from the full reading history on every request.
type ReadingStats struct {
	TotalRead   int            `json:"totalRead"`
	Categories  map[string]int `json:"categories"`
	Sources     map[string]int `json:"sources"`
	Streak      int            `json:"streak"`
	TopCategory string         `json:"topCategory"`
	TopSource   string         `json:"topSource"`
}

// counter is a frequency map that remembers first-occurrence order so that
// ties for the top key resolve to whichever key appeared first in the
// input, not to map iteration order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top() string {
	best := ""
	for _, key := range c.order {
		if best == "" || c.counts[key] > c.counts[best] {
			best = key
		}
	}
	if best == "" {
		return NoneYet
	}
	return best
}

// Aggregate computes ReadingStats from the reading history in a single
// pass, plus a bounded look-back for the streak. Events are expected
// most-recent-first but the result does not depend on order except for
// tie-breaks, which go to the first occurrence.
//
// The streak counts consecutive calendar days ending today, in now's
// location, with at least one read. No read today means streak 0.
func Aggregate(events []models.ReadEvent, now time.Time) ReadingStats {
	categories := newCounter()
	sources := newCounter()
	readDates := map[string]bool{}

	for _, event := range events {
		category := event.Category
		if category == "" {
			category = "general"
		}
		categories.add(category)

		source := event.Source.Name
		if source == "" {
			source = "Unknown"
		}
		sources.add(source)

		if event.ReadAt != "" {
			if t, err := time.Parse(time.RFC3339, event.ReadAt); err == nil {
				readDates[t.In(now.Location()).Format(dateKeyLayout)] = true
			}
		}
	}

	streak := 0
	if readDates[now.Format(dateKeyLayout)] {
		streak = 1
		for daysBack := 1; daysBack < maxStreakLookback; daysBack++ {
			if !readDates[now.AddDate(0, 0, -daysBack).Format(dateKeyLayout)] {
				break
			}
			streak++
		}
	}

	return ReadingStats{
		TotalRead:   len(events),
		Categories:  categories.counts,
		Sources:     sources.counts,
		Streak:      streak,
		TopCategory: categories.top(),
		TopSource:   sources.top(),
	}
}
