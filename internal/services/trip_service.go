package services

import (
	"context"
	"log"
	"sync"

	"cruisy/internal/models/trip_models"
	"cruisy/internal/repositories"
)

// TripServiceInterface is the trip state store: it owns the itinerary and
// essentials collections and is the only writer. Mutations are silent
// no-ops when they target an absent or duplicate id, and every mutation
// writes the affected collection through to durable storage.
type TripServiceInterface interface {
	Snapshot() trip_models.TripState
	Summary() trip_models.TripSummary
	IsInItinerary(activityID string) bool

	AddToItinerary(ctx context.Context, activity trip_models.Activity)
	RemoveFromItinerary(ctx context.Context, activityID string)
	ToggleBooked(ctx context.Context, id string, kind trip_models.ToggleKind)
	SetEssentials(ctx context.Context, essentials []trip_models.EssentialItem)
	Clear(ctx context.Context)
}

type TripService struct {
	mu    sync.Mutex
	state trip_models.TripState
	repo  repositories.TripStateRepository
}

// NewTripService loads both collections from the repository. Load never
// fails, so the store always starts; a corrupt blob simply comes back empty.
func NewTripService(repo repositories.TripStateRepository) TripServiceInterface {
	s := &TripService{repo: repo}
	s.state.Itinerary = repo.LoadItinerary(context.Background())
	s.state.Essentials = repo.LoadEssentials(context.Background())
	return s
}

func (s *TripService) Snapshot() trip_models.TripState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *TripService) Summary() trip_models.TripSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return trip_models.Summarize(s.state)
}

func (s *TripService) IsInItinerary(activityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsInItinerary(activityID)
}

// AddToItinerary inserts the activity unless its id is already present.
func (s *TripService) AddToItinerary(ctx context.Context, activity trip_models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsInItinerary(activity.ID) {
		return
	}
	s.state.Itinerary = append(s.state.Itinerary, trip_models.ItineraryItem{Activity: activity})
	s.persistItinerary(ctx)
}

func (s *TripService) RemoveFromItinerary(ctx context.Context, activityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Itinerary[:0]
	removed := false
	for _, item := range s.state.Itinerary {
		if item.ID == activityID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	s.state.Itinerary = kept
	s.persistItinerary(ctx)
}

// ToggleBooked flips IsBooked on the single matching entry in the targeted
// collection. Other entries are untouched; an absent id is a no-op.
func (s *TripService) ToggleBooked(ctx context.Context, id string, kind trip_models.ToggleKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case trip_models.ToggleActivity:
		for i := range s.state.Itinerary {
			if s.state.Itinerary[i].ID == id {
				s.state.Itinerary[i].IsBooked = !s.state.Itinerary[i].IsBooked
				s.persistItinerary(ctx)
				return
			}
		}
	case trip_models.ToggleEssential:
		for i := range s.state.Essentials {
			if s.state.Essentials[i].ID == id {
				s.state.Essentials[i].IsBooked = !s.state.Essentials[i].IsBooked
				s.persistEssentials(ctx)
				return
			}
		}
	}
}

// SetEssentials replaces the essentials collection wholesale. Invoked once
// per completed search; never merged incrementally.
func (s *TripService) SetEssentials(ctx context.Context, essentials []trip_models.EssentialItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Essentials = essentials
	s.persistEssentials(ctx)
}

// Clear resets both collections.
func (s *TripService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = trip_models.TripState{}
	s.persistItinerary(ctx)
	s.persistEssentials(ctx)
}

// Persistence is write-through and fire-and-forget: a failed save is logged
// and swallowed, never surfaced to the user.

func (s *TripService) persistItinerary(ctx context.Context) {
	if err := s.repo.SaveItinerary(ctx, s.state.Itinerary); err != nil {
		log.Printf("Error saving itinerary: %v", err)
	}
}

func (s *TripService) persistEssentials(ctx context.Context) {
	if err := s.repo.SaveEssentials(ctx, s.state.Essentials); err != nil {
		log.Printf("Error saving essentials: %v", err)
	}
}
