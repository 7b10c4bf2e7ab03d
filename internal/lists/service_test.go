// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/internal/platform/apperr"
)

const (
	groceriesID = "0192f5e0-0000-7000-8000-000000000001"
	garageID    = "0192f5e0-0000-7000-8000-000000000002"
)

var alice = lists.Session{UserID: "alice"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSeededService() (*lists.Service, *memoryRepository) {
	repository := newMemoryRepository()
	repository.seed("alice",
		lists.List{ID: groceriesID, Name: "Groceries", Type: lists.TypeShopping},
		lists.List{ID: garageID, Name: "Garage", Type: lists.TypeInventory},
	)
	repository.seed("bob", lists.List{ID: "0192f5e0-0000-7000-8000-0000000000b0", Name: "Bob's", Type: lists.TypeShopping})
	return lists.NewService(repository, discardLogger()), repository
}

func TestService_RequiresSession(t *testing.T) {
	service, repository := newSeededService()
	ctx := context.Background()
	anonymous := lists.Session{}

	_, err := service.List(ctx, anonymous, "")
	assert.ErrorIs(t, err, lists.ErrUnauthenticated)

	_, err = service.Create(ctx, anonymous, lists.CreateInput{Name: "x", Type: lists.TypeShopping})
	assert.ErrorIs(t, err, lists.ErrUnauthenticated)

	assert.ErrorIs(t, service.Delete(ctx, anonymous, groceriesID), lists.ErrUnauthenticated)

	_, err = service.Route(ctx, anonymous, groceriesID)
	assert.ErrorIs(t, err, lists.ErrUnauthenticated)

	assert.Zero(t, repository.fetches)
}

func TestService_List(t *testing.T) {
	service, _ := newSeededService()

	all, err := service.List(context.Background(), alice, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.List(context.Background(), alice, "  gro ")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Groceries", filtered[0].Name)

	none, err := service.List(context.Background(), alice, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestService_ListBackendFailure(t *testing.T) {
	service, repository := newSeededService()
	repository.failAll = errBackend

	_, err := service.List(context.Background(), alice, "")
	assert.ErrorIs(t, err, errBackend)
}

func TestService_Create(t *testing.T) {
	service, repository := newSeededService()

	created, err := service.Create(context.Background(), alice, lists.CreateInput{
		Name:       "  Weekend  ",
		Type:       lists.TypeShopping,
		Attributes: json.RawMessage(`{"color":"green"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "Weekend", created.Name)
	parsed, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := repository.FetchAll(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestService_CreateKeepsClientID(t *testing.T) {
	service, _ := newSeededService()
	clientID := "0192F5E0-0000-7000-8000-0000000000C1"

	created, err := service.Create(context.Background(), alice, lists.CreateInput{
		ID:   clientID,
		Name: "Offline",
		Type: lists.TypeInventory,
	})
	require.NoError(t, err)
	assert.Equal(t, "0192f5e0-0000-7000-8000-0000000000c1", created.ID)
}

func TestService_CreateValidation(t *testing.T) {
	service, _ := newSeededService()
	long := make([]byte, lists.MaxNameLength+1)
	for index := range long {
		long[index] = 'a'
	}

	tests := []struct {
		name  string
		input lists.CreateInput
		field string
	}{
		{"missing_name", lists.CreateInput{Type: lists.TypeShopping}, lists.FieldName},
		{"long_name", lists.CreateInput{Name: string(long), Type: lists.TypeShopping}, lists.FieldName},
		{"unknown_type", lists.CreateInput{Name: "x", Type: "wishlist"}, lists.FieldType},
		{"bad_id", lists.CreateInput{ID: "nope", Name: "x", Type: lists.TypeShopping}, lists.FieldID},
		{"array_attributes", lists.CreateInput{Name: "x", Type: lists.TypeShopping, Attributes: json.RawMessage(`[1]`)}, lists.FieldAttributes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), alice, tt.input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

func TestService_Delete(t *testing.T) {
	service, repository := newSeededService()
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, alice, groceriesID))

	remaining, err := repository.FetchAll(ctx, alice)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, garageID, remaining[0].ID)

	err = service.Delete(ctx, alice, groceriesID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.Delete(ctx, alice, "not-a-uuid")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestService_DeleteIsScopedToUser(t *testing.T) {
	service, _ := newSeededService()

	err := service.Delete(context.Background(), lists.Session{UserID: "bob"}, groceriesID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestService_Route(t *testing.T) {
	service, repository := newSeededService()
	ctx := context.Background()

	path, err := service.Route(ctx, alice, groceriesID)
	require.NoError(t, err)
	assert.Equal(t, "/list/"+groceriesID, path)

	path, err = service.Route(ctx, alice, garageID)
	require.NoError(t, err)
	assert.Equal(t, "/invlist/"+garageID, path)

	legacyID := "0192f5e0-0000-7000-8000-0000000000d1"
	repository.seed("alice", lists.List{ID: legacyID, Name: "Old", Type: "wishlist"})
	_, err = service.Route(ctx, alice, legacyID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
