package services

import (
	"net/url"
	"strings"

	"cruisy/internal/models/trip_models"
)

// InsuranceAffiliateURL is the fixed World Nomads partner link attached to
// every trip regardless of destination.
const InsuranceAffiliateURL = "https://www.anrdoezrs.net/click-101439364-15417474?url=https%3A%2F%2Fwww.worldnomads.com%2F"

// partnerCandidate is one row of the hard-coded partner tables. Order in
// the table is a priority order and is preserved in the output.
type partnerCandidate struct {
	Name      string
	Key       string
	Icon      string
	Color     string
	TextColor string
}

var stayCandidates = []partnerCandidate{
	{Name: "Booking.com", Key: "booking_link", Icon: "hotel", Color: "#003580"},
	{Name: "Vrbo", Key: "vrbo_link", Icon: "home", Color: "#1e3a8a"},
	{Name: "Hotels.com", Key: "hotels_link", Icon: "hotel", Color: "#d32f2f"},
	{Name: "Expedia", Key: "expedia_link", Icon: "plane", Color: "#FFD700", TextColor: "#000"},
	{Name: "Orbitz", Key: "orbitz_link", Icon: "globe", Color: "#005e83"},
	{Name: "Travelocity", Key: "travelocity_link", Icon: "star", Color: "#003a70"},
	{Name: "Trivago", Key: "trivago_link", Icon: "search", Color: "#f48f00"},
}

var flightCandidates = []partnerCandidate{
	{Name: "Kiwi.com", Key: "kiwi_flight_link", Icon: "plane", Color: "#00a991"},
	{Name: "Booking.com Flights", Key: "booking_flight_link", Icon: "plane", Color: "#003580"},
	{Name: "Expedia Flights", Key: "expedia_flight_link", Icon: "plane", Color: "#FFD700", TextColor: "#000"},
}

var carCandidates = []partnerCandidate{
	{Name: "Carla Car Rentals", Key: "carl_rental_link", Icon: "car", Color: "#ff5a00"},
	{Name: "Holiday Autos", Key: "holiday_autos_link", Icon: "car", Color: "#0073ce"},
}

// PartnerResolver derives ranked partner lists and destination links from a
// provider attribute mapping. It never errors: a class with no configured
// partner gets exactly one synthesized site-search fallback, so callers
// never special-case "no partner".
type PartnerResolver struct {
	SiteBaseURL string
	// Overrides maps a lowercased short-form search term (text before the
	// first comma) to a manually curated destination page URL. Checked
	// before the provider-supplied canonical link.
	Overrides map[string]string
}

func NewPartnerResolver(siteBaseURL string, overrides map[string]string) *PartnerResolver {
	return &PartnerResolver{SiteBaseURL: strings.TrimRight(siteBaseURL, "/"), Overrides: overrides}
}

// ShortTerm reduces a human-entered destination ("Key West, Florida") to the
// keyword actually sent to the content API ("Key West").
func ShortTerm(destination string) string {
	term, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(term)
}

// Resolve builds the full partner set for one search. acf may be nil when
// no location hub matched; everything then comes from fallbacks.
func (r *PartnerResolver) Resolve(acf map[string]interface{}, hubLink, term string) trip_models.PartnerSet {
	return trip_models.PartnerSet{
		StayPartners:       r.resolveClass(stayCandidates, acf, r.fallbackPartner("Browse Stays", "hotel", "#34a4b8", term+" hotels")),
		FlightPartners:     r.resolveClass(flightCandidates, acf, r.fallbackPartner("Check Flights", "plane", "#0ea5e9", term+" flights")),
		CarPartners:        r.resolveClass(carCandidates, acf, r.fallbackPartner("Find Rental Cars", "car", "#f97316", term+" car rental")),
		DestinationPageURL: r.destinationURL(hubLink, term),
		DiningLink:         r.diningLink(acf, term),
	}
}

// resolveClass filters the candidate table against the attribute mapping,
// preserving table order. Empty classes get the single fallback.
func (r *PartnerResolver) resolveClass(candidates []partnerCandidate, acf map[string]interface{}, fallback trip_models.Partner) []trip_models.Partner {
	var partners []trip_models.Partner
	for _, cand := range candidates {
		link := acfString(acf, cand.Key)
		if link == "" {
			continue
		}
		textColor := cand.TextColor
		if textColor == "" {
			textColor = "white"
		}
		partners = append(partners, trip_models.Partner{
			Name:      cand.Name,
			URL:       link,
			Color:     cand.Color,
			TextColor: textColor,
			Icon:      cand.Icon,
		})
	}
	if len(partners) == 0 {
		return []trip_models.Partner{fallback}
	}
	return partners
}

func (r *PartnerResolver) fallbackPartner(name, icon, color, query string) trip_models.Partner {
	return trip_models.Partner{
		Name:      name,
		URL:       r.siteSearchURL(query),
		Color:     color,
		TextColor: "white",
		Icon:      icon,
	}
}

// destinationURL evaluates the resolution chain in priority order: manual
// override, provider canonical link, synthesized site search. First
// non-empty wins.
func (r *PartnerResolver) destinationURL(hubLink, term string) string {
	strategies := []func() string{
		func() string { return r.Overrides[strings.ToLower(term)] },
		func() string { return hubLink },
		func() string { return r.siteSearchURL(term) },
	}
	for _, resolve := range strategies {
		if u := resolve(); u != "" {
			return u
		}
	}
	return ""
}

func (r *PartnerResolver) diningLink(acf map[string]interface{}, term string) string {
	if link := acfString(acf, "dining_link"); link != "" {
		return link
	}
	return r.siteSearchURL(term + " dining")
}

func (r *PartnerResolver) siteSearchURL(query string) string {
	return r.SiteBaseURL + "/?s=" + url.QueryEscape(query)
}

// acfString extracts a truthy string attribute. ACF encodes unset link
// fields as false, so anything but a non-empty string counts as absent.
func acfString(acf map[string]interface{}, key string) string {
	if acf == nil {
		return ""
	}
	s, _ := acf[key].(string)
	return strings.TrimSpace(s)
}
