package trip_models

// Activity is a bookable experience produced by the activity mapper.
// Instances are created fresh on every search and never mutated afterwards.
type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Excerpt     string  `json:"excerpt"`
	Description string  `json:"description"`

	// BookingURL is nil when the provider supplied nothing or the "#"
	// placeholder. Nil is the single source of truth for "not yet bookable".
	BookingURL *string `json:"booking_url"`
}

// ItineraryItem is an Activity the user added to their trip checklist.
type ItineraryItem struct {
	Activity
	IsBooked bool `json:"is_booked"`
}
