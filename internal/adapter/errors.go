package adapter

import "errors"

var (
	// ErrInvalidItem is returned when the server rejects a request with
	// HTTP 400, i.e. the payload failed shape validation.
	ErrInvalidItem = errors.New("invalid item data")
)
