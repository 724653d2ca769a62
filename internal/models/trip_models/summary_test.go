package trip_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyTrip(t *testing.T) {
	sum := Summarize(TripState{})

	assert.Zero(t, sum.TotalCost)
	assert.Zero(t, sum.TotalItems)
	assert.Zero(t, sum.Progress, "empty trip must report 0 progress, not NaN")
}

func TestSummarizeCountsOnlyItineraryCost(t *testing.T) {
	state := TripState{
		Itinerary: []ItineraryItem{
			{Activity: Activity{ID: "1", Price: 75}, IsBooked: true},
			{Activity: Activity{ID: "2", Price: 29.99}},
		},
		Essentials: []EssentialItem{
			{ID: EssentialHotel, IsBooked: true},
			{ID: EssentialInsurance},
		},
	}

	sum := Summarize(state)

	assert.InDelta(t, 104.99, sum.TotalCost, 0.001)
	assert.Equal(t, 2, sum.BookedCount)
	assert.Equal(t, 4, sum.TotalItems)
	assert.InDelta(t, 50, sum.Progress, 0.001)
}

func TestSummarizeProgressBounds(t *testing.T) {
	allBooked := TripState{
		Itinerary:  []ItineraryItem{{Activity: Activity{ID: "1"}, IsBooked: true}},
		Essentials: []EssentialItem{{ID: EssentialCar, IsBooked: true}},
	}
	assert.InDelta(t, 100, Summarize(allBooked).Progress, 0.001)

	noneBooked := TripState{
		Itinerary: []ItineraryItem{{Activity: Activity{ID: "1"}}},
	}
	assert.Zero(t, Summarize(noneBooked).Progress)
}

func TestCloneIsDeep(t *testing.T) {
	url := "https://example.com/book"
	state := TripState{
		Itinerary: []ItineraryItem{{Activity: Activity{ID: "1", BookingURL: &url}}},
		Essentials: []EssentialItem{{
			ID:       EssentialFlight,
			Kind:     EssentialGrouped,
			SubLinks: []SubLink{{Name: "Kiwi.com", URL: "https://kiwi.com"}},
		}},
	}

	clone := state.Clone()
	require.Len(t, clone.Itinerary, 1)
	require.Len(t, clone.Essentials, 1)

	*clone.Itinerary[0].BookingURL = "mutated"
	clone.Essentials[0].SubLinks[0].Name = "mutated"

	assert.Equal(t, "https://example.com/book", *state.Itinerary[0].BookingURL)
	assert.Equal(t, "Kiwi.com", state.Essentials[0].SubLinks[0].Name)
}

func TestParseViewState(t *testing.T) {
	v, ok := ParseViewState("itinerary")
	require.True(t, ok)
	assert.Equal(t, ViewItinerary, v)

	_, ok = ParseViewState("dashboard")
	assert.False(t, ok)
}
