// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with
// the item service server.
//
// The primary abstraction is [ServerAdapter], which decouples the
// client services from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-service/models"
)

// ServerAdapter defines transport-agnostic communication with the item
// service server. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// Greet requests the fixed greeting from the root route.
	Greet(ctx context.Context) (models.Greeting, error)

	// CreateItem submits item to the creation route and returns the
	// confirmation message together with the echoed item. Returns
	// [ErrInvalidItem] (wrapped) when the server rejects the payload.
	CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error)

	// GetItemByID fetches the id/square pair for itemID. q is attached
	// as a query parameter when non-empty; the server accepts it but
	// does not use it.
	GetItemByID(ctx context.Context, itemID int64, q string) (models.ItemDetails, error)
}
