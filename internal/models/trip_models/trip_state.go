package trip_models

// ToggleKind selects which collection a booked-toggle targets.
type ToggleKind string

const (
	ToggleActivity  ToggleKind = "activity"
	ToggleEssential ToggleKind = "essential"
)

// TripState is the combined persisted state of the planner: the
// user-curated itinerary plus the derived essentials checklist. It is the
// only durable entity in the system, stored as two independent blobs.
type TripState struct {
	Itinerary  []ItineraryItem `json:"itinerary"`
	Essentials []EssentialItem `json:"essentials"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's backing slices.
func (s TripState) Clone() TripState {
	out := TripState{
		Itinerary:  make([]ItineraryItem, len(s.Itinerary)),
		Essentials: make([]EssentialItem, len(s.Essentials)),
	}
	copy(out.Itinerary, s.Itinerary)
	copy(out.Essentials, s.Essentials)
	for i, e := range s.Essentials {
		if len(e.SubLinks) > 0 {
			links := make([]SubLink, len(e.SubLinks))
			copy(links, e.SubLinks)
			out.Essentials[i].SubLinks = links
		}
	}
	for i, it := range s.Itinerary {
		if it.BookingURL != nil {
			u := *it.BookingURL
			out.Itinerary[i].BookingURL = &u
		}
	}
	return out
}
