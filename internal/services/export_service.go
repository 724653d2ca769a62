package services

import (
	"strconv"
	"strings"

	"cruisy/internal/models/response_models"
	"cruisy/internal/models/trip_models"
	mem "cruisy/pkg/memcache"
	"cruisy/pkg/utils"
)

const checklistDivider = "========================================"

// ExportServiceInterface serializes the current trip state into the
// plain-text checklist handed off by e-mail. The export is deterministic
// and deliberately carries no cost totals; aggregation stays on screen.
type ExportServiceInterface interface {
	Checklist() response_models.ChecklistResponse
	EmailChecklist(to string) error
}

type ExportService struct {
	trips   TripServiceInterface
	session *mem.PlannerSession
	mail    IMailService
}

func NewExportService(trips TripServiceInterface, session *mem.PlannerSession, mail IMailService) ExportServiceInterface {
	return &ExportService{trips: trips, session: session, mail: mail}
}

func (s *ExportService) Checklist() response_models.ChecklistResponse {
	destination := displayDestination(s.session.Destination())
	subject := ChecklistSubject(destination)
	body := BuildChecklistBody(s.trips.Snapshot(), destination)
	return response_models.ChecklistResponse{
		Subject: subject,
		Body:    body,
		Mailto:  utils.MailtoURL(subject, body),
	}
}

func (s *ExportService) EmailChecklist(to string) error {
	destination := displayDestination(s.session.Destination())
	body := BuildChecklistBody(s.trips.Snapshot(), destination)
	return s.mail.SendChecklist(to, ChecklistSubject(destination), body)
}

func ChecklistSubject(destination string) string {
	return "Your " + destination + " Adventure with Cruisy Travel"
}

func displayDestination(destination string) string {
	if destination == "" {
		return "Your Trip"
	}
	return destination
}

// BuildChecklistBody renders the fixed two-section document: numbered
// activities with an optional booking line (omitted entirely when the
// activity has no booking URL), then essentials in insertion order with
// one line per link.
func BuildChecklistBody(state trip_models.TripState, destination string) string {
	var b strings.Builder

	b.WriteString("Hi there,\n\n")
	b.WriteString("We are so excited for your upcoming trip to " + destination + "! Here is the custom itinerary plan you built with us.\n\n")

	b.WriteString(checklistDivider + "\nYOUR ACTIVITY CHECKLIST\n" + checklistDivider + "\n\n")
	for i, item := range state.Itinerary {
		b.WriteString(strconv.Itoa(i+1) + ". " + item.Title + " ($" + utils.FormatPrice(item.Price) + ")\n")
		if item.BookingURL != nil {
			b.WriteString("   👉 Book Here: " + *item.BookingURL + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(checklistDivider + "\nTRIP ESSENTIALS\n" + checklistDivider + "\n\n")
	for _, e := range state.Essentials {
		b.WriteString("- " + e.Title + "\n")
		switch e.Kind {
		case trip_models.EssentialGrouped:
			for _, link := range e.SubLinks {
				b.WriteString("  - " + link.Name + ": " + link.URL + "\n")
			}
		default:
			b.WriteString("  Link: " + e.Link + "\n")
		}
	}

	b.WriteString("\nWarmly,\nThe Cruisy Travel Team\n")
	return b.String()
}
