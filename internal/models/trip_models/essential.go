package trip_models

// EssentialKind tags the two shapes an essential can take. A single
// essential carries one link with a call-to-action label; a grouped
// essential carries one sub-link per partner.
type EssentialKind string

const (
	EssentialSingle  EssentialKind = "single"
	EssentialGrouped EssentialKind = "grouped"
)

// Well-known essential ids. The essentials collection is rebuilt wholesale
// on every search and each id appears at most once.
const (
	EssentialFlight    = "flight"
	EssentialHotel     = "hotel"
	EssentialCar       = "car"
	EssentialDining    = "dining"
	EssentialInsurance = "insurance"
)

// SubLink is one partner link inside a grouped essential.
type SubLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EssentialItem is a trip-logistics checklist entry (flight, hotel, car,
// dining, insurance). Link/CTA are set for EssentialSingle, SubLinks for
// EssentialGrouped; callers dispatch on Kind rather than probing fields.
type EssentialItem struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	IsBooked bool          `json:"is_booked"`
	Kind     EssentialKind `json:"kind"`

	Link string `json:"link,omitempty"`
	CTA  string `json:"cta,omitempty"`

	SubLinks []SubLink `json:"sub_links,omitempty"`
}
