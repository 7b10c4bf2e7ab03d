// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lists manages a user's saved shopping and inventory lists.

It owns the List record, the search filter, the mapping from a list to the
client screen that opens it, and the storage capability the lists screen and
the HTTP API both depend on.

# Architecture

  - Entities: List, Type, Session.
  - Storage: [Repository] with PostgreSQL and Redis-cached implementations.
  - Delivery: [Handler] exposes the service under /api/v1/lists.

Every operation is scoped to an explicit [Session]; nothing here looks up a
current user on its own.
*/
package lists

import (
	"encoding/json"
	"time"

	"github.com/taibuivan/shopventory/internal/platform/apperr"
)

// # Domain Entities

// Type discriminates what a list holds and which detail screen opens it.
type Type string

const (
	// TypeShopping lists things to buy.
	TypeShopping Type = "shopping"

	// TypeInventory lists things already at hand.
	TypeInventory Type = "inventory"
)

// Types returns every recognised list type, in display order.
func Types() []string {
	return []string{string(TypeShopping), string(TypeInventory)}
}

// Valid reports whether t is a recognised list type.
func (t Type) Valid() bool {
	return t == TypeShopping || t == TypeInventory
}

// Icon names the row icon shown for a list of this type.
func (t Type) Icon() string {
	if t == TypeShopping {
		return "cart"
	}
	return "cube"
}

// List is a named shopping or inventory collection owned by one user.
//
// Attributes carries any additional fields the client stored with the list.
// They are persisted and returned unchanged but never interpreted here.
type List struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       Type            `json:"type"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Session identifies the authenticated user a request acts for.
type Session struct {
	UserID string
}

// Valid reports whether the session names a user.
func (s Session) Valid() bool {
	return s.UserID != ""
}

// ErrUnauthenticated is returned by every operation invoked without a session.
var ErrUnauthenticated = apperr.Unauthorized("User not logged in!")

// # Field Identifiers

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldType       = "type"
	FieldAttributes = "attributes"
)

// MaxNameLength bounds a list's display name.
const MaxNameLength = 120
