package services

import (
	"context"
	"errors"
	"log"

	"github.com/tarang07q/NewsPlus/internal/localstore"
	"github.com/tarang07q/NewsPlus/internal/models"
)

// PreferenceService stores each user's news preferences as one document
// in the local store.
type PreferenceService struct {
	store localstore.Store
}

func NewPreferenceService(store localstore.Store) *PreferenceService {
	return &PreferenceService{store: store}
}

func preferencesKey(email string) string {
	return localstore.Key("preferences", email)
}

// Get returns the saved preferences, or the defaults when none exist or
// the stored document is corrupted.
func (s *PreferenceService) Get(ctx context.Context, email string) (models.Preferences, error) {
	prefs := models.DefaultPreferences()
	found, err := localstore.GetJSON(ctx, s.store, preferencesKey(email), &prefs)
	if errors.Is(err, localstore.ErrCorrupted) {
		log.Printf("Discarding corrupted preferences for %s: %v", email, err)
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return prefs, err
	}
	if !found {
		return models.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Update replaces the stored preferences wholesale.
func (s *PreferenceService) Update(ctx context.Context, email string, prefs models.Preferences) error {
	return localstore.SetJSON(ctx, s.store, preferencesKey(email), prefs)
}
