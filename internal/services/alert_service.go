package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tarang07q/NewsPlus/internal/localstore"
	"github.com/tarang07q/NewsPlus/internal/models"
)

// ErrAlertNotFound maps to 404 at the handler layer.
var ErrAlertNotFound = errors.New("alert not found")

// AlertService keeps each user's alert list plus the global enabled flag
// as a single document in the local store.
type AlertService struct {
	store localstore.Store
	now   func() time.Time
}

func NewAlertService(store localstore.Store) *AlertService {
	return &AlertService{store: store, now: time.Now}
}

func alertsKey(email string) string {
	return localstore.Key("alerts", email)
}

// Settings loads the user's alert settings; a missing or corrupted
// document yields the empty, enabled default.
func (s *AlertService) Settings(ctx context.Context, email string) (models.AlertSettings, error) {
	settings := models.AlertSettings{Enabled: true}
	found, err := localstore.GetJSON(ctx, s.store, alertsKey(email), &settings)
	if errors.Is(err, localstore.ErrCorrupted) {
		log.Printf("Discarding corrupted alerts for %s: %v", email, err)
		return models.AlertSettings{Alerts: []models.Alert{}, Enabled: true}, nil
	}
	if err != nil {
		return settings, err
	}
	if !found || settings.Alerts == nil {
		settings.Alerts = []models.Alert{}
	}
	return settings, nil
}

func (s *AlertService) save(ctx context.Context, email string, settings models.AlertSettings) error {
	return localstore.SetJSON(ctx, s.store, alertsKey(email), settings)
}

// Add creates an active alert with a fresh id.
func (s *AlertService) Add(ctx context.Context, email, keyword, alertType string) (models.Alert, error) {
	settings, err := s.Settings(ctx, email)
	if err != nil {
		return models.Alert{}, err
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		Keyword:   keyword,
		Type:      alertType,
		Active:    true,
		CreatedAt: s.now().Format(time.RFC3339),
	}

	settings.Alerts = append(settings.Alerts, alert)
	return alert, s.save(ctx, email, settings)
}

// Toggle flips an alert's active flag.
func (s *AlertService) Toggle(ctx context.Context, email, id string) (models.Alert, error) {
	settings, err := s.Settings(ctx, email)
	if err != nil {
		return models.Alert{}, err
	}

	for i := range settings.Alerts {
		if settings.Alerts[i].ID == id {
			settings.Alerts[i].Active = !settings.Alerts[i].Active
			return settings.Alerts[i], s.save(ctx, email, settings)
		}
	}
	return models.Alert{}, ErrAlertNotFound
}

// Remove deletes an alert by id.
func (s *AlertService) Remove(ctx context.Context, email, id string) error {
	settings, err := s.Settings(ctx, email)
	if err != nil {
		return err
	}

	kept := settings.Alerts[:0]
	found := false
	for _, alert := range settings.Alerts {
		if alert.ID == id {
			found = true
			continue
		}
		kept = append(kept, alert)
	}
	if !found {
		return ErrAlertNotFound
	}

	settings.Alerts = kept
	return s.save(ctx, email, settings)
}

// SetEnabled switches all alerts on or off without touching the list.
func (s *AlertService) SetEnabled(ctx context.Context, email string, enabled bool) error {
	settings, err := s.Settings(ctx, email)
	if err != nil {
		return err
	}
	settings.Enabled = enabled
	return s.save(ctx, email, settings)
}
