package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruisy/internal/models/trip_models"
	"cruisy/internal/repositories"
	mem "cruisy/pkg/memcache"
	"cruisy/pkg/utils"
)

type recordingMail struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *recordingMail) SendChecklist(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

func newExportFixture(t *testing.T) (ExportServiceInterface, TripServiceInterface, *mem.PlannerSession, *recordingMail) {
	t.Helper()
	trips := NewTripService(repositories.NewMemoryTripStateRepository())
	session := mem.NewPlannerSession()
	mail := &recordingMail{}
	return NewExportService(trips, session, mail), trips, session, mail
}

func TestChecklistBodyFormat(t *testing.T) {
	svc, trips, session, _ := newExportFixture(t)
	ctx := context.Background()

	gen, ok := session.BeginSearch("Key West, Florida")
	require.True(t, ok)
	require.True(t, session.CompleteSearch(gen, true))

	url := "https://book.example/snorkel"
	trips.AddToItinerary(ctx, trip_models.Activity{ID: "1", Title: "Snorkel Tour", Price: 75, BookingURL: &url})
	trips.AddToItinerary(ctx, trip_models.Activity{ID: "2", Title: "Sunset Sail", Price: 49.5})
	trips.SetEssentials(ctx, []trip_models.EssentialItem{
		{
			ID:    trip_models.EssentialFlight,
			Title: "Flights to Key West",
			Kind:  trip_models.EssentialGrouped,
			SubLinks: []trip_models.SubLink{
				{Name: "Kiwi.com", URL: "https://kiwi.example"},
				{Name: "Expedia Flights", URL: "https://expedia.example"},
			},
		},
		{
			ID:    trip_models.EssentialHotel,
			Title: "Stay in Key West",
			Kind:  trip_models.EssentialSingle,
			Link:  "https://booking.example",
			CTA:   "Find Hotel",
		},
	})

	checklist := svc.Checklist()

	assert.Equal(t, "Your Key West, Florida Adventure with Cruisy Travel", checklist.Subject)

	body := checklist.Body
	assert.Contains(t, body, "upcoming trip to Key West, Florida!")
	assert.Contains(t, body, "1. Snorkel Tour ($75)")
	assert.Contains(t, body, "   👉 Book Here: https://book.example/snorkel")
	assert.Contains(t, body, "2. Sunset Sail ($49.5)")
	assert.Contains(t, body, "- Flights to Key West")
	assert.Contains(t, body, "  - Kiwi.com: https://kiwi.example")
	assert.Contains(t, body, "  - Expedia Flights: https://expedia.example")
	assert.Contains(t, body, "- Stay in Key West")
	assert.Contains(t, body, "  Link: https://booking.example")
	assert.True(t, strings.HasSuffix(body, "Warmly,\nThe Cruisy Travel Team\n"))
	assert.NotContains(t, body, "null")

	// The unbookable activity gets no booking line at all.
	sunset := body[strings.Index(body, "2. Sunset Sail"):]
	assert.NotContains(t, strings.SplitN(sunset, "\n\n", 2)[0], "Book Here")

	assert.True(t, strings.HasPrefix(checklist.Mailto, "mailto:?subject="))
	assert.Contains(t, checklist.Mailto, "Key%20West")
}

func TestChecklistWithoutDestinationFallsBack(t *testing.T) {
	svc, _, _, _ := newExportFixture(t)

	checklist := svc.Checklist()

	assert.Equal(t, "Your Your Trip Adventure with Cruisy Travel", checklist.Subject)
	assert.Contains(t, checklist.Body, "upcoming trip to Your Trip!")
}

func TestEmailChecklistDelivers(t *testing.T) {
	svc, trips, session, mail := newExportFixture(t)
	ctx := context.Background()

	gen, _ := session.BeginSearch("Sedona")
	session.CompleteSearch(gen, true)
	trips.AddToItinerary(ctx, trip_models.Activity{ID: "1", Title: "Vortex Hike", Price: 0})

	require.NoError(t, svc.EmailChecklist("visitor@example.com"))

	assert.Equal(t, "visitor@example.com", mail.to)
	assert.Equal(t, "Your Sedona Adventure with Cruisy Travel", mail.subject)
	assert.Contains(t, mail.body, "1. Vortex Hike ($0)")
}

func TestEmailChecklistPropagatesMailError(t *testing.T) {
	trips := NewTripService(repositories.NewMemoryTripStateRepository())
	session := mem.NewPlannerSession()
	svc := NewExportService(trips, session, NewNoopMailService())

	err := svc.EmailChecklist("visitor@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrMailNotConfigured))
}
