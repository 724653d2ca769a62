package trip_models

// TripSummary is the derived view state computed from a TripState snapshot.
// It is recomputed on every read; nothing here is cached or persisted.
type TripSummary struct {
	TotalCost   float64 `json:"total_cost"`
	BookedCount int     `json:"booked_count"`
	TotalItems  int     `json:"total_items"`
	Progress    float64 `json:"progress"`
}

// Summarize computes cost and booking progress for a snapshot.
// Only itinerary entries contribute to TotalCost; essentials count toward
// progress but carry no price. Progress of an empty trip is 0, not NaN.
func Summarize(s TripState) TripSummary {
	var sum TripSummary
	for _, item := range s.Itinerary {
		sum.TotalCost += item.Price
		if item.IsBooked {
			sum.BookedCount++
		}
	}
	for _, e := range s.Essentials {
		if e.IsBooked {
			sum.BookedCount++
		}
	}
	sum.TotalItems = len(s.Itinerary) + len(s.Essentials)
	if sum.TotalItems > 0 {
		sum.Progress = float64(sum.BookedCount) / float64(sum.TotalItems) * 100
	}
	return sum
}

// IsInItinerary reports whether an activity id is already on the itinerary.
func (s TripState) IsInItinerary(activityID string) bool {
	for _, item := range s.Itinerary {
		if item.ID == activityID {
			return true
		}
	}
	return false
}
