package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cruisy/internal/models/response_models"
	"cruisy/internal/models/trip_models"
	mem "cruisy/pkg/memcache"
	"cruisy/pkg/utils"
)

const searchResultTTL = 15 * time.Minute

// SearchServiceInterface runs the one asynchronous operation in the system:
// a destination search against the content API. Exactly one search may be
// in flight; a completed search repopulates the essentials checklist and
// moves the session to the list view.
type SearchServiceInterface interface {
	Search(ctx context.Context, destination string) (*response_models.SearchResponse, error)
	LastResult() (*response_models.SearchResponse, bool)
}

type SearchService struct {
	content  ContentAPIClient
	resolver *PartnerResolver
	trips    TripServiceInterface
	session  *mem.PlannerSession
	cache    mem.SearchResultCache
}

func NewSearchService(
	content ContentAPIClient,
	resolver *PartnerResolver,
	trips TripServiceInterface,
	session *mem.PlannerSession,
	cache mem.SearchResultCache,
) SearchServiceInterface {
	return &SearchService{
		content:  content,
		resolver: resolver,
		trips:    trips,
		session:  session,
		cache:    cache,
	}
}

// Search dispatches one search and applies its outcome to the session.
// Outcomes are three-way: a result, an empty result (distinct, names the
// exact term searched), or a transport failure. Failure and empty both
// revert the session to the search view and commit no partial state.
func (s *SearchService) Search(ctx context.Context, destination string) (*response_models.SearchResponse, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	term := ShortTerm(destination)

	generation, ok := s.session.BeginSearch(destination)
	if !ok {
		return nil, utils.ErrSearchInFlight
	}

	result, err := s.lookup(ctx, destination, term)
	if err != nil {
		s.session.CompleteSearch(generation, false)
		return nil, err
	}

	// A newer search owns the session now; this result is discarded.
	if !s.session.CompleteSearch(generation, true) {
		return nil, utils.ErrStaleSearch
	}

	s.trips.SetEssentials(ctx, buildEssentials(result))
	return result, nil
}

// LastResult returns the most recently completed search, if still fresh.
func (s *SearchService) LastResult() (*response_models.SearchResponse, bool) {
	v, ok := s.cache.Last()
	if !ok {
		return nil, false
	}
	result, ok := v.(*response_models.SearchResponse)
	return result, ok
}

func (s *SearchService) lookup(ctx context.Context, destination, term string) (*response_models.SearchResponse, error) {
	if v, ok := s.cache.Get(term); ok {
		if cached, ok := v.(*response_models.SearchResponse); ok {
			return cached, nil
		}
	}

	hub, err := s.content.FetchLocationHub(ctx, term)
	if err != nil {
		log.Printf("Location hub fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}

	posts, err := s.content.FetchActivities(ctx, term)
	if err != nil {
		log.Printf("Activities fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}

	activities := MapActivities(posts)
	if len(activities) == 0 {
		return nil, fmt.Errorf("%w for %q (search term %q)", utils.ErrNoActivitiesFound, destination, term)
	}

	var acf map[string]interface{}
	hubLink := ""
	destinationName := term
	if hub != nil {
		acf = hub.ACF
		hubLink = hub.Link
		if hub.Title.Rendered != "" {
			destinationName = hub.Title.Rendered
		}
	}
	partners := s.resolver.Resolve(acf, hubLink, term)

	result := &response_models.SearchResponse{
		DestinationName:    destinationName,
		DestinationPageURL: partners.DestinationPageURL,
		StayPartners:       partners.StayPartners,
		FlightPartners:     partners.FlightPartners,
		CarPartners:        partners.CarPartners,
		DiningLink:         partners.DiningLink,
		Activities:         activities,
		Weather:            response_models.Weather{Temp: 82, Condition: "Sunny", Icon: "sun"},
	}
	s.cache.Set(term, result, searchResultTTL)
	return result, nil
}

// buildEssentials derives the wholesale-replaced essentials checklist from
// a search result. With the always-fallback partner policy every class is
// non-empty, so all five entries are always present and ids stay unique:
// flights are grouped (one sub-link per partner), the rest take the first
// partner of their class.
func buildEssentials(result *response_models.SearchResponse) []trip_models.EssentialItem {
	subLinks := make([]trip_models.SubLink, 0, len(result.FlightPartners))
	for _, p := range result.FlightPartners {
		subLinks = append(subLinks, trip_models.SubLink{Name: p.Name, URL: p.URL})
	}

	return []trip_models.EssentialItem{
		{
			ID:       trip_models.EssentialFlight,
			Title:    "Flights to " + result.DestinationName,
			Kind:     trip_models.EssentialGrouped,
			SubLinks: subLinks,
		},
		{
			ID:    trip_models.EssentialHotel,
			Title: "Stay in " + result.DestinationName,
			Kind:  trip_models.EssentialSingle,
			Link:  result.StayPartners[0].URL,
			CTA:   "Find Hotel",
		},
		{
			ID:    trip_models.EssentialCar,
			Title: "Rental Car",
			Kind:  trip_models.EssentialSingle,
			Link:  result.CarPartners[0].URL,
			CTA:   "Search Cars",
		},
		{
			ID:    trip_models.EssentialDining,
			Title: "Dining Guide: Best of " + result.DestinationName,
			Kind:  trip_models.EssentialSingle,
			Link:  result.DiningLink,
			CTA:   "View List",
		},
		{
			ID:    trip_models.EssentialInsurance,
			Title: "Travel Insurance (World Nomads)",
			Kind:  trip_models.EssentialSingle,
			Link:  InsuranceAffiliateURL,
			CTA:   "Get Quote",
		},
	}
}
