package trip_models

// GearItem is a packing-list affiliate product shown alongside every trip.
type GearItem struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	AffiliateLink string  `json:"affiliate_link"`
}
