package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"cruisy/internal/models/trip_models"
)

// memoryTripStateRepository keeps the blobs in a map. It backs tests and
// standalone runs without a database. Values round-trip through JSON so it
// exercises the same serialization path as the gorm implementation.
type memoryTripStateRepository struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryTripStateRepository() TripStateRepository {
	return &memoryTripStateRepository{blobs: make(map[string]string)}
}

func (r *memoryTripStateRepository) LoadItinerary(_ context.Context) []trip_models.ItineraryItem {
	payload, ok := r.loadPayload(itineraryKey)
	if !ok {
		return nil
	}
	return decodeCollection[trip_models.ItineraryItem](itineraryKey, payload)
}

func (r *memoryTripStateRepository) SaveItinerary(_ context.Context, items []trip_models.ItineraryItem) error {
	return r.save(itineraryKey, items)
}

func (r *memoryTripStateRepository) LoadEssentials(_ context.Context) []trip_models.EssentialItem {
	payload, ok := r.loadPayload(essentialsKey)
	if !ok {
		return nil
	}
	return decodeCollection[trip_models.EssentialItem](essentialsKey, payload)
}

func (r *memoryTripStateRepository) SaveEssentials(_ context.Context, items []trip_models.EssentialItem) error {
	return r.save(essentialsKey, items)
}

func (r *memoryTripStateRepository) loadPayload(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.blobs[key]
	return payload, ok
}

func (r *memoryTripStateRepository) save(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.blobs[key] = string(payload)
	r.mu.Unlock()
	return nil
}

// Corrupt replaces a stored blob with the given payload. Test hook for the
// silent-recovery path; pass anything that is not a valid collection.
func (r *memoryTripStateRepository) Corrupt(key, payload string) {
	r.mu.Lock()
	r.blobs[key] = payload
	r.mu.Unlock()
}
