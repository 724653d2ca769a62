package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Raw shapes of the WordPress content API. Only the fields the resolver and
// mapper consume are decoded; everything else is dropped.

type RawRendered struct {
	Rendered string `json:"rendered"`
}

type RawMedia struct {
	SourceURL string `json:"source_url"`
}

type RawEmbedded struct {
	FeaturedMedia []RawMedia `json:"wp:featuredmedia"`
}

// RawACF keeps loosely typed fields as RawMessage: ACF returns numbers or
// strings for price and `false` for empty links.
type RawACF struct {
	Price      json.RawMessage `json:"price"`
	Duration   string          `json:"duration"`
	Category   string          `json:"category"`
	BookingURL json.RawMessage `json:"booking_url"`
}

type RawPost struct {
	ID       int         `json:"id"`
	Title    RawRendered `json:"title"`
	Excerpt  RawRendered `json:"excerpt"`
	Content  RawRendered `json:"content"`
	Embedded RawEmbedded `json:"_embedded"`
	ACF      RawACF      `json:"acf"`
}

// RawLocationHub is the destination record whose acf mapping feeds the
// partner resolver.
type RawLocationHub struct {
	Title RawRendered            `json:"title"`
	Link  string                 `json:"link"`
	ACF   map[string]interface{} `json:"acf"`
}

// ContentAPIClient is the read-only contract against the content provider:
// two keyword lookups, no auth, no pagination beyond a fixed page size.
type ContentAPIClient interface {
	FetchLocationHub(ctx context.Context, term string) (*RawLocationHub, error)
	FetchActivities(ctx context.Context, term string) ([]RawPost, error)
}

type WPContentClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewWPContentClient(baseURL string) *WPContentClient {
	return &WPContentClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: baseURL,
	}
}

// FetchLocationHub returns the first matching destination hub, or nil when
// the search matches nothing. Nil is not an error; the resolver falls back
// to synthesized links.
func (c *WPContentClient) FetchLocationHub(ctx context.Context, term string) (*RawLocationHub, error) {
	q := url.Values{}
	q.Set("search", term)
	q.Set("acf_format", "standard")

	var hubs []RawLocationHub
	if err := c.getJSON(ctx, "/wp-json/wp/v2/locations", q, &hubs); err != nil {
		return nil, err
	}
	if len(hubs) == 0 {
		return nil, nil
	}
	return &hubs[0], nil
}

// FetchActivities returns the raw itinerary posts for a search term, in
// provider order. An empty slice is a valid outcome distinct from an error.
func (c *WPContentClient) FetchActivities(ctx context.Context, term string) ([]RawPost, error) {
	q := url.Values{}
	q.Set("search", term)
	q.Set("_embed", "")
	q.Set("per_page", "20")
	q.Set("acf_format", "standard")

	var posts []RawPost
	if err := c.getJSON(ctx, "/wp-json/wp/v2/itineraries", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *WPContentClient) getJSON(ctx context.Context, path string, q url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("content api http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("content api bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("content api decode: %w", err)
	}
	return nil
}
