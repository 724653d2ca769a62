package response_models

import "cruisy/internal/models/trip_models"

// TripResponse is the trip screen payload: the current state plus the
// derived aggregation, recomputed on every read.
type TripResponse struct {
	Itinerary  []trip_models.ItineraryItem `json:"itinerary"`
	Essentials []trip_models.EssentialItem `json:"essentials"`
	Summary    trip_models.TripSummary     `json:"summary"`
}

// ChecklistResponse carries the exporter output.
type ChecklistResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto,omitempty"`
}
