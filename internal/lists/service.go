// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/shopventory/internal/platform/apperr"
	"github.com/taibuivan/shopventory/internal/platform/validate"
	"github.com/taibuivan/shopventory/pkg/uuid"
)

// # Service Layer

// Service implements the list use cases shared by the API and the lists screen.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
List returns the session's lists whose name or type contains query.

Parameters:
  - ctx: context.Context
  - session: Session
  - query: string (case-insensitive; empty matches all)

Returns:
  - []List: Matching lists, oldest first
  - error: ErrUnauthenticated or storage failures
*/
func (service *Service) List(ctx context.Context, session Session, query string) ([]List, error) {
	if !session.Valid() {
		return nil, ErrUnauthenticated
	}

	all, err := service.repository.FetchAll(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("lists_service_fetch_failed: %w", err)
	}

	matched := Filter(all, strings.TrimSpace(query))
	if matched == nil {
		matched = []List{}
	}
	return matched, nil
}

// Get returns one of the session's lists.
func (service *Service) Get(ctx context.Context, session Session, id string) (*List, error) {
	if !session.Valid() {
		return nil, ErrUnauthenticated
	}

	if err := (&validate.Validator{}).UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	list, err := service.repository.Get(ctx, session, id)
	if err != nil {
		return nil, fmt.Errorf("lists_service_get_failed: %w", err)
	}
	return list, nil
}

// CreateInput holds the data for a new list.
type CreateInput struct {
	// ID is optional; clients that create lists offline may supply their own UUID.
	ID         string
	Name       string
	Type       Type
	Attributes json.RawMessage
}

/*
Create validates and persists a new list for the session's user.

Returns:
  - *List: The stored list with its id and timestamps
  - error: ErrUnauthenticated, VALIDATION_ERROR, or storage failures
*/
func (service *Service) Create(ctx context.Context, session Session, input CreateInput) (*List, error) {
	if !session.Valid() {
		return nil, ErrUnauthenticated
	}

	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength).
		OneOf(FieldType, string(input.Type), Types()...)

	if input.ID != "" {
		validator.UUID(FieldID, input.ID)
	}

	if len(input.Attributes) > 0 {
		validator.Custom(FieldAttributes, !isJSONObject(input.Attributes), "Must be a JSON object")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	list := &List{
		ID:         strings.ToLower(input.ID),
		Name:       name,
		Type:       input.Type,
		Attributes: input.Attributes,
	}
	if list.ID == "" {
		list.ID = uuid.New()
	}

	if err := service.repository.Create(ctx, session, list); err != nil {
		return nil, fmt.Errorf("lists_service_create_failed: %w", err)
	}

	service.logger.InfoContext(ctx, "list_created",
		slog.String("user_id", session.UserID),
		slog.String("list_id", list.ID),
		slog.String("type", string(list.Type)),
	)

	return list, nil
}

/*
Delete removes one of the session's lists.

Returns:
  - error: ErrUnauthenticated, VALIDATION_ERROR, NOT_FOUND, or storage failures
*/
func (service *Service) Delete(ctx context.Context, session Session, id string) error {
	if !session.Valid() {
		return ErrUnauthenticated
	}

	if err := (&validate.Validator{}).UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, session, id); err != nil {
		return fmt.Errorf("lists_service_delete_failed: %w", err)
	}

	service.logger.InfoContext(ctx, "list_deleted",
		slog.String("user_id", session.UserID),
		slog.String("list_id", id),
	)
	return nil
}

/*
Route resolves the client path that opens one of the session's lists.

Returns:
  - string: /list/{id} or /invlist/{id}
  - error: NOT_FOUND if the list is missing or its type opens no screen
*/
func (service *Service) Route(ctx context.Context, session Session, id string) (string, error) {
	list, err := service.Get(ctx, session, id)
	if err != nil {
		return "", err
	}

	path, ok := Route(list.ID, list.Type)
	if !ok {
		return "", apperr.NotFound("Route")
	}
	return path, nil
}

func isJSONObject(raw json.RawMessage) bool {
	var object map[string]json.RawMessage
	return json.Unmarshal(raw, &object) == nil && object != nil
}
