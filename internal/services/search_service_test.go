package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruisy/internal/models/trip_models"
	"cruisy/internal/repositories"
	mem "cruisy/pkg/memcache"
	"cruisy/pkg/utils"
)

const keyWestHub = `[{
	"title": {"rendered": "Key West"},
	"link": "https://cruisytravel.com/locations/key-west",
	"acf": {
		"booking_link": "https://booking.example/kw",
		"vrbo_link": false,
		"kiwi_flight_link": false
	}
}]`

const keyWestActivities = `[
	{"id": 101, "title": {"rendered": "Snorkel Tour"}, "excerpt": {"rendered": "<p>Reef trip</p>"},
	 "acf": {"price": 75, "booking_url": "https://book.example/snorkel"}},
	{"id": 102, "title": {"rendered": "Sunset Sail"}, "acf": {"price": "49.50", "booking_url": false}},
	{"id": 103, "title": {"rendered": "Duval Crawl"}, "acf": {"price": 0, "booking_url": "#"}}
]`

type searchFixture struct {
	svc     SearchServiceInterface
	trips   TripServiceInterface
	session *mem.PlannerSession
	server  *httptest.Server
}

func newSearchFixture(t *testing.T, handler http.HandlerFunc) *searchFixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	trips := NewTripService(repositories.NewMemoryTripStateRepository())
	session := mem.NewPlannerSession()
	svc := NewSearchService(
		NewWPContentClient(server.URL),
		NewPartnerResolver("https://cruisytravel.com", nil),
		trips,
		session,
		mem.NewSearchResultCache(),
	)
	return &searchFixture{svc: svc, trips: trips, session: session, server: server}
}

func keyWestHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/wp-json/wp/v2/locations":
			w.Write([]byte(keyWestHub))
		case "/wp-json/wp/v2/itineraries":
			w.Write([]byte(keyWestActivities))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestSearchKeyWestEndToEnd(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))

	result, err := f.svc.Search(context.Background(), "Key West, Florida")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Key West", result.DestinationName)
	assert.Equal(t, "https://cruisytravel.com/locations/key-west", result.DestinationPageURL)

	require.Len(t, result.Activities, 3)
	assert.Equal(t, "101", result.Activities[0].ID)
	assert.Equal(t, 75.0, result.Activities[0].Price)
	require.NotNil(t, result.Activities[0].BookingURL)
	assert.Equal(t, "Reef trip", result.Activities[0].Excerpt)
	assert.Equal(t, 49.5, result.Activities[1].Price)
	assert.Nil(t, result.Activities[1].BookingURL)
	assert.Nil(t, result.Activities[2].BookingURL, "# placeholder is not a booking link")

	// Only booking_link is configured; false entries are skipped.
	require.Len(t, result.StayPartners, 1)
	assert.Equal(t, "Booking.com", result.StayPartners[0].Name)

	// No flight partner configured, so a single synthesized fallback.
	require.Len(t, result.FlightPartners, 1)
	assert.Equal(t, "Check Flights", result.FlightPartners[0].Name)

	require.Len(t, result.CarPartners, 1)
	assert.Equal(t, "Find Rental Cars", result.CarPartners[0].Name)

	assert.Equal(t, 82, result.Weather.Temp)
	assert.Equal(t, "Sunny", result.Weather.Condition)

	// Session landed on the list view.
	assert.Equal(t, trip_models.ViewList, f.session.View())
	assert.Equal(t, "Key West, Florida", f.session.Destination())
}

func TestSearchRebuildsEssentials(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))

	_, err := f.svc.Search(context.Background(), "Key West, Florida")
	require.NoError(t, err)

	essentials := f.trips.Snapshot().Essentials
	require.Len(t, essentials, 5)

	assert.Equal(t, trip_models.EssentialFlight, essentials[0].ID)
	assert.Equal(t, "Flights to Key West", essentials[0].Title)
	assert.Equal(t, trip_models.EssentialGrouped, essentials[0].Kind)
	require.Len(t, essentials[0].SubLinks, 1)
	assert.Equal(t, "Check Flights", essentials[0].SubLinks[0].Name)

	assert.Equal(t, trip_models.EssentialHotel, essentials[1].ID)
	assert.Equal(t, "Stay in Key West", essentials[1].Title)
	assert.Equal(t, "https://booking.example/kw", essentials[1].Link)
	assert.Equal(t, "Find Hotel", essentials[1].CTA)

	assert.Equal(t, trip_models.EssentialCar, essentials[2].ID)
	assert.Equal(t, "Rental Car", essentials[2].Title)

	assert.Equal(t, trip_models.EssentialDining, essentials[3].ID)
	assert.Equal(t, "Dining Guide: Best of Key West", essentials[3].Title)

	assert.Equal(t, trip_models.EssentialInsurance, essentials[4].ID)
	assert.Equal(t, InsuranceAffiliateURL, essentials[4].Link)

	// Ids are unique.
	seen := map[string]bool{}
	for _, e := range essentials {
		assert.False(t, seen[e.ID], "duplicate essential id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestSearchKeepsItineraryIntact(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))
	ctx := context.Background()

	f.trips.AddToItinerary(ctx, trip_models.Activity{ID: "existing", Title: "Old Plan"})

	_, err := f.svc.Search(ctx, "Key West")
	require.NoError(t, err)

	state := f.trips.Snapshot()
	require.Len(t, state.Itinerary, 1)
	assert.Equal(t, "Old Plan", state.Itinerary[0].Title)
	assert.Len(t, state.Essentials, 5)
}

func TestSearchEmptyResultRevertsSession(t *testing.T) {
	f := newSearchFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := f.svc.Search(context.Background(), "Atlantis, Ocean")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNoActivitiesFound))
	assert.Contains(t, err.Error(), `"Atlantis, Ocean"`)
	assert.Contains(t, err.Error(), `"Atlantis"`, "error names the short term actually searched")

	assert.Equal(t, trip_models.ViewSearch, f.session.View())
	assert.Empty(t, f.trips.Snapshot().Essentials, "failed search commits no partial state")
}

func TestSearchUpstreamFailureRevertsSession(t *testing.T) {
	f := newSearchFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := f.svc.Search(context.Background(), "Key West")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnavailable))
	assert.Equal(t, trip_models.ViewSearch, f.session.View())
}

func TestSearchBlankDestination(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))

	_, err := f.svc.Search(context.Background(), "   ")
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestSearchRefusedWhileInFlight(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))

	_, ok := f.session.BeginSearch("Key West")
	require.True(t, ok)

	_, err := f.svc.Search(context.Background(), "Sedona")
	assert.True(t, errors.Is(err, utils.ErrSearchInFlight))
}

func TestSearchSecondHitServedFromCache(t *testing.T) {
	calls := 0
	f := newSearchFixture(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		keyWestHandler(t)(w, r)
	})

	_, err := f.svc.Search(context.Background(), "Key West")
	require.NoError(t, err)
	upstreamCalls := calls

	_, err = f.svc.Search(context.Background(), "Key West, Florida")
	require.NoError(t, err)

	assert.Equal(t, upstreamCalls, calls, "repeat search for the same term skips the content api")
}

func TestLastResult(t *testing.T) {
	f := newSearchFixture(t, keyWestHandler(t))

	_, ok := f.svc.LastResult()
	assert.False(t, ok)

	want, err := f.svc.Search(context.Background(), "Key West")
	require.NoError(t, err)

	got, ok := f.svc.LastResult()
	require.True(t, ok)
	assert.Equal(t, want, got)
}
