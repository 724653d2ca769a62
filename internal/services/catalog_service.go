package services

import "cruisy/internal/models/trip_models"

// The curated storefront catalogue: destinations offered in the search
// dropdown and the global packing-gear affiliate items. Both are fixed
// editorial lists, not provider data.

var availableDestinations = []string{
	"Key West, Florida",
	"Nassau, Bahamas",
	"St Thomas, US Virgin Islands",
	"Honolulu, Hawaii",
	"Cozumel, Mexico",
	"Sydney, Australia",
	"Barcelona, Spain",
	"Chania, Crete (Greece)",
	"Orlando, Florida",
	"Miami, Florida",
}

var globalGear = []trip_models.GearItem{
	{
		Name:          "Vacation Classic Sunscreen SPF 30 (3-Pack)",
		Price:         38,
		Image:         "https://cruisytravel.com/wp-content/uploads/2025/12/71WTuq9sQxL._SL1500_.jpg",
		AffiliateLink: "https://amzn.to/3KmfiQ2",
	},
	{
		Name:          "UGREEN MagFlow Power Bank 10000mAh",
		Price:         49,
		Image:         "https://cruisytravel.com/wp-content/uploads/2025/12/51Motba1XL._AC_SY741_.jpg",
		AffiliateLink: "https://amzn.to/49X8gvo",
	},
}

func AvailableDestinations() []string {
	out := make([]string, len(availableDestinations))
	copy(out, availableDestinations)
	return out
}

func GlobalGear() []trip_models.GearItem {
	out := make([]trip_models.GearItem, len(globalGear))
	copy(out, globalGear)
	return out
}
