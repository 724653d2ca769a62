package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"cruisy/internal/models/trip_models"
	"cruisy/pkg/utils"
)

const (
	PlaceholderImage = "https://via.placeholder.com/600x400?text=No+Image"

	defaultDuration = "Varies"
	defaultCategory = "Activity"
)

// MapActivities normalizes raw provider posts into Activity entities, one
// per post, same order, no filtering. Missing or malformed optional fields
// resolve to documented defaults and never error.
func MapActivities(posts []RawPost) []trip_models.Activity {
	activities := make([]trip_models.Activity, 0, len(posts))
	for _, post := range posts {
		activities = append(activities, mapActivity(post))
	}
	return activities
}

func mapActivity(post RawPost) trip_models.Activity {
	image := PlaceholderImage
	if len(post.Embedded.FeaturedMedia) > 0 && post.Embedded.FeaturedMedia[0].SourceURL != "" {
		image = post.Embedded.FeaturedMedia[0].SourceURL
	}

	duration := post.ACF.Duration
	if duration == "" {
		duration = defaultDuration
	}
	category := post.ACF.Category
	if category == "" {
		category = defaultCategory
	}

	return trip_models.Activity{
		ID:          strconv.Itoa(post.ID),
		Title:       post.Title.Rendered,
		Image:       image,
		Price:       coercePrice(post.ACF.Price),
		Duration:    duration,
		Category:    category,
		Excerpt:     utils.StripTags(post.Excerpt.Rendered),
		Description: post.Content.Rendered,
		BookingURL:  normalizeBookingURL(post.ACF.BookingURL),
	}
}

// coercePrice accepts a JSON number or numeric string and clamps the result
// to a non-negative value. Anything unparsable is 0.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		n = parsed
	}
	if n < 0 {
		return 0
	}
	return n
}

// normalizeBookingURL maps absent, empty, false and the "#" placeholder all
// to nil. Downstream code branches on nil alone to decide bookability.
func normalizeBookingURL(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// ACF yields `false` for an unset link field.
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "#" {
		return nil
	}
	return &s
}
