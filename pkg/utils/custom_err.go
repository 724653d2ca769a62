package utils

import "errors"

var (
	ErrSearchInFlight      = errors.New("search already in flight")
	ErrUpstreamUnavailable = errors.New("content api unavailable")
	ErrNoActivitiesFound   = errors.New("no activities found")
	ErrStaleSearch         = errors.New("search superseded")
	ErrInvalidView         = errors.New("invalid view state")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMailNotConfigured   = errors.New("mail service not configured")
)
