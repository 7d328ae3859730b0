package adapter

import "errors"

// Sentinel transport errors. mapHTTPError translates RSpace API status codes
// into these values so callers can branch with errors.Is without knowing
// about HTTP.
var (
	// ErrUnauthorized indicates a missing, invalid, or regenerated api key.
	ErrUnauthorized = errors.New("rspace: api key rejected")
	// ErrForbidden indicates the key is valid but the resource belongs to
	// someone who has not shared it.
	ErrForbidden = errors.New("rspace: access denied")
	// ErrNotFound indicates the requested document, folder, or file does not
	// exist (or was deleted).
	ErrNotFound = errors.New("rspace: resource not found")
	// ErrTooManyRequests indicates the API rate limit was hit. The adapter
	// never retries; callers decide whether to give up or slow down.
	ErrTooManyRequests = errors.New("rspace: rate limit reached")
	// ErrInternalServerError indicates a 5xx response.
	ErrInternalServerError = errors.New("rspace: internal server error")
)
