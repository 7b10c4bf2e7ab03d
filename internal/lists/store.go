// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import "context"

// # List Data Access

// Repository defines the data access contract for a user's lists.
//
// Every method is scoped to the session's user; an id belonging to another
// user behaves exactly like an id that does not exist.
type Repository interface {

	/*
		FetchAll returns every list owned by the session's user.

		Returns:
		  - []List: All lists, oldest first
		  - error: Storage failures
	*/
	FetchAll(ctx context.Context, session Session) ([]List, error)

	/*
		Get returns a single list.

		Returns:
		  - *List: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	Get(ctx context.Context, session Session, id string) (*List, error)

	/*
		Create persists a new list. ID must already be assigned; timestamps are
		filled in from the store.

		Returns:
		  - error: Persistence failures
	*/
	Create(ctx context.Context, session Session, list *List) error

	/*
		Delete removes a single list.

		Returns:
		  - error: apperr.NotFound if no such list, or storage failures
	*/
	Delete(ctx context.Context, session Session, id string) error
}

// # Snapshot Cache

// ListCache stores a user's complete list set between reads.
//
// Each user has a write version that [ListCache.Invalidate] advances. A
// snapshot is only stored against the version read before the store was
// queried, so a read that raced a write never caches what it saw.
type ListCache interface {
	// Get returns the cached lists and whether an entry existed.
	Get(ctx context.Context, userID string) ([]List, bool, error)

	// Version returns the user's current write version.
	Version(ctx context.Context, userID string) (int64, error)

	// Set stores the lists if the user's version still equals version.
	// It reports whether the snapshot was stored.
	Set(ctx context.Context, userID string, version int64, lists []List) (bool, error)

	// Invalidate advances the user's version and drops any cached lists.
	Invalidate(ctx context.Context, userID string) error
}
