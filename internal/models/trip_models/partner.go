package trip_models

// Partner is a single affiliate booking offer for one logistics class
// (stay, flight or car). Partners are derived on every search and are
// never persisted.
type Partner struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	Icon      string `json:"icon"`
}

// PartnerSet is the full output of the partner resolver for one search.
type PartnerSet struct {
	StayPartners       []Partner `json:"stay_partners"`
	FlightPartners     []Partner `json:"flight_partners"`
	CarPartners        []Partner `json:"car_partners"`
	DestinationPageURL string    `json:"destination_page_url"`
	DiningLink         string    `json:"dining_link"`
}
