package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tarang07q/NewsPlus/internal/localstore"
	"github.com/tarang07q/NewsPlus/internal/models"
	"github.com/tarang07q/NewsPlus/internal/stats"
)

// HistoryService keeps per-user reading history in the local store,
// most-recent-first, capped at models.MaxHistoryEntries. Reading the same
// article twice records two events; only the cap bounds growth.
type HistoryService struct {
	store localstore.Store
	now   func() time.Time
}

func NewHistoryService(store localstore.Store) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

func historyKey(email string) string {
	return localstore.Key("history", email)
}

// List returns the history, newest first. A corrupted document is logged
// and treated as empty state; reads never fail closed.
func (s *HistoryService) List(ctx context.Context, email string) ([]models.ReadEvent, error) {
	var events []models.ReadEvent
	_, err := localstore.GetJSON(ctx, s.store, historyKey(email), &events)
	if errors.Is(err, localstore.ErrCorrupted) {
		log.Printf("Discarding corrupted reading history for %s: %v", email, err)
		return []models.ReadEvent{}, nil
	}
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.ReadEvent{}
	}
	return events, nil
}

// Record prepends a read event for the article, evicting the oldest
// entries past the cap.
func (s *HistoryService) Record(ctx context.Context, email string, article models.Article) (models.ReadEvent, error) {
	events, err := s.List(ctx, email)
	if err != nil {
		return models.ReadEvent{}, err
	}

	event := models.ReadEvent{
		Article: article,
		ReadAt:  s.now().Format(time.RFC3339),
	}

	events = append([]models.ReadEvent{event}, events...)
	if len(events) > models.MaxHistoryEntries {
		events = events[:models.MaxHistoryEntries]
	}

	return event, localstore.SetJSON(ctx, s.store, historyKey(email), events)
}

// Remove drops every history entry for the given article URL.
func (s *HistoryService) Remove(ctx context.Context, email, articleURL string) error {
	events, err := s.List(ctx, email)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, event := range events {
		if event.URL != articleURL {
			kept = append(kept, event)
		}
	}

	return localstore.SetJSON(ctx, s.store, historyKey(email), kept)
}

func (s *HistoryService) Clear(ctx context.Context, email string) error {
	return s.store.Delete(ctx, historyKey(email))
}

// Stats recomputes reading statistics from the full history snapshot.
func (s *HistoryService) Stats(ctx context.Context, email string) (stats.ReadingStats, error) {
	events, err := s.List(ctx, email)
	if err != nil {
		return stats.ReadingStats{}, err
	}
	return stats.Aggregate(events, s.now()), nil
}
