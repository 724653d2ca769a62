package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cruisy/internal/models/db_models"
	"cruisy/internal/models/trip_models"
)

const (
	itineraryKey  = "itinerary"
	essentialsKey = "essentials"
)

// TripStateRepository persists the two planner collections as independent
// keyed blobs. Load never fails: a missing or corrupt blob yields an empty
// collection so the store can always start. Save reports errors but the
// caller treats them as fire-and-forget.
type TripStateRepository interface {
	LoadItinerary(ctx context.Context) []trip_models.ItineraryItem
	SaveItinerary(ctx context.Context, items []trip_models.ItineraryItem) error
	LoadEssentials(ctx context.Context) []trip_models.EssentialItem
	SaveEssentials(ctx context.Context, items []trip_models.EssentialItem) error
}

// decodeCollection deserializes one stored blob. Any failure yields nil so
// a blob of the wrong shape can never leak partially decoded entries.
func decodeCollection[T any](key, payload string) []T {
	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("Corrupt %s blob, starting empty: %v", key, err)
		return nil
	}
	return items
}

type gormTripStateRepository struct {
	db *gorm.DB
}

func NewGormTripStateRepository(db *gorm.DB) TripStateRepository {
	return &gormTripStateRepository{db: db}
}

func (r *gormTripStateRepository) LoadItinerary(ctx context.Context) []trip_models.ItineraryItem {
	payload, ok := r.loadPayload(ctx, itineraryKey)
	if !ok {
		return nil
	}
	return decodeCollection[trip_models.ItineraryItem](itineraryKey, payload)
}

func (r *gormTripStateRepository) SaveItinerary(ctx context.Context, items []trip_models.ItineraryItem) error {
	return r.saveBlob(ctx, itineraryKey, items)
}

func (r *gormTripStateRepository) LoadEssentials(ctx context.Context) []trip_models.EssentialItem {
	payload, ok := r.loadPayload(ctx, essentialsKey)
	if !ok {
		return nil
	}
	return decodeCollection[trip_models.EssentialItem](essentialsKey, payload)
}

func (r *gormTripStateRepository) SaveEssentials(ctx context.Context, items []trip_models.EssentialItem) error {
	return r.saveBlob(ctx, essentialsKey, items)
}

// loadPayload fetches the stored payload for a key. A missing row is the
// normal first-run case and stays silent; other read errors are logged.
func (r *gormTripStateRepository) loadPayload(ctx context.Context, key string) (string, bool) {
	var blob db_models.TripBlob
	err := r.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error loading %s blob: %v", key, err)
		}
		return "", false
	}
	return blob.Payload, true
}

func (r *gormTripStateRepository) saveBlob(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	blob := db_models.TripBlob{Key: key, Payload: string(payload)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&blob).Error
}
