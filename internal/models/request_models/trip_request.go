package request_models

import "cruisy/internal/models/trip_models"

// AddActivityRequest adds one activity from the current search result to
// the itinerary. The full entity travels with the request because the
// store, not the search cache, is the system of record for added items.
type AddActivityRequest struct {
	Activity trip_models.Activity `json:"activity" binding:"required"`
}

// ToggleBookedRequest flips the booked flag on one checklist entry.
// Kind is "activity" or "essential".
type ToggleBookedRequest struct {
	ID   string `json:"id" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}
