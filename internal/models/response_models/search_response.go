package response_models

import "cruisy/internal/models/trip_models"

// Weather is a fixed forecast stub shown on the list view; there is no
// weather provider behind it.
type Weather struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// SearchResponse is the full result of one destination search: normalized
// activities plus the derived partner offers.
type SearchResponse struct {
	DestinationName    string                 `json:"destination_name"`
	DestinationPageURL string                 `json:"destination_page_url"`
	StayPartners       []trip_models.Partner  `json:"stay_partners"`
	FlightPartners     []trip_models.Partner  `json:"flight_partners"`
	CarPartners        []trip_models.Partner  `json:"car_partners"`
	DiningLink         string                 `json:"dining_link"`
	Activities         []trip_models.Activity `json:"activities"`
	Weather            Weather                `json:"weather"`
}
