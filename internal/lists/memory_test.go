// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/internal/platform/apperr"
)

// memoryRepository is an in-memory [lists.Repository] keyed by user id.
type memoryRepository struct {
	mu      sync.Mutex
	byUser  map[string][]lists.List
	fetches int
	failAll error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byUser: map[string][]lists.List{}}
}

func (repository *memoryRepository) seed(userID string, entries ...lists.List) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.byUser[userID] = append(repository.byUser[userID], entries...)
}

func (repository *memoryRepository) FetchAll(_ context.Context, session lists.Session) ([]lists.List, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.fetches++
	if repository.failAll != nil {
		return nil, repository.failAll
	}
	return append([]lists.List(nil), repository.byUser[session.UserID]...), nil
}

func (repository *memoryRepository) Get(_ context.Context, session lists.Session, id string) (*lists.List, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, list := range repository.byUser[session.UserID] {
		if list.ID == id {
			found := list
			return &found, nil
		}
	}
	return nil, apperr.NotFound("List")
}

func (repository *memoryRepository) Create(_ context.Context, session lists.Session, list *lists.List) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failAll != nil {
		return repository.failAll
	}
	for _, existing := range repository.byUser[session.UserID] {
		if existing.ID == list.ID {
			return apperr.Conflict("List already exists")
		}
	}
	now := time.Now().UTC()
	list.CreatedAt, list.UpdatedAt = now, now
	repository.byUser[session.UserID] = append(repository.byUser[session.UserID], *list)
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, session lists.Session, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.failAll != nil {
		return repository.failAll
	}
	owned := repository.byUser[session.UserID]
	for index, list := range owned {
		if list.ID == id {
			repository.byUser[session.UserID] = append(owned[:index:index], owned[index+1:]...)
			return nil
		}
	}
	return apperr.NotFound("List")
}

var errBackend = errors.New("backend unavailable")
