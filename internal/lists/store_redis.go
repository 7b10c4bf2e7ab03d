// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/shopventory/internal/platform/constants"
)

// # Redis Snapshot Cache

// errVersionMoved aborts a snapshot write whose version is out of date.
var errVersionMoved = errors.New("list version moved")

// RedisListCache implements [ListCache] as one JSON value per user with a TTL,
// guarded by a per-user write counter.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache creates a Redis-backed list snapshot cache.
func NewRedisListCache(client *redis.Client, ttl time.Duration) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

func cacheKey(userID string) string {
	return constants.RedisPrefixUserLists + userID
}

func versionKey(userID string) string {
	return constants.RedisPrefixUserListsVersion + userID
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// readVersion treats a missing counter as version 0.
func readVersion(ctx context.Context, reader stringGetter, userID string) (int64, error) {
	version, err := reader.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Get returns the cached lists for a user; a missing or expired key is a miss.
func (cache *RedisListCache) Get(ctx context.Context, userID string) ([]List, bool, error) {
	payload, err := cache.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_list_cache_get_failed: %w", err)
	}

	var cached []List
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("redis_list_cache_decode_failed: %w", err)
	}

	return cached, true, nil
}

// Version returns the user's write counter.
func (cache *RedisListCache) Version(ctx context.Context, userID string) (int64, error) {
	version, err := readVersion(ctx, cache.client, userID)
	if err != nil {
		return 0, fmt.Errorf("redis_list_cache_version_failed: %w", err)
	}
	return version, nil
}

/*
Set stores the full list set for a user unless a write happened since version
was read.

The check and the write run in one WATCH transaction on the version key, so an
[RedisListCache.Invalidate] landing in between aborts the write.
*/
func (cache *RedisListCache) Set(ctx context.Context, userID string, version int64, lists []List) (bool, error) {
	payload, err := json.Marshal(lists)
	if err != nil {
		return false, fmt.Errorf("redis_list_cache_encode_failed: %w", err)
	}

	err = cache.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != version {
			return errVersionMoved
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(userID), payload, cache.ttl)
			return nil
		})
		return err
	}, versionKey(userID))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errVersionMoved), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("redis_list_cache_set_failed: %w", err)
	}
}

// Invalidate advances the user's version and removes the cached lists.
func (cache *RedisListCache) Invalidate(ctx context.Context, userID string) error {
	_, err := cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(userID))
		pipe.Del(ctx, cacheKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_list_cache_invalidate_failed: %w", err)
	}
	return nil
}

// # Read-Through Repository

// CachedRepository serves FetchAll from a [ListCache] and invalidates it on writes.
//
// The wrapped repository stays authoritative: cache failures are logged and
// the call falls through to the store.
type CachedRepository struct {
	next   Repository
	cache  ListCache
	logger *slog.Logger
}

// NewCachedRepository wraps next with a snapshot cache.
func NewCachedRepository(next Repository, cache ListCache, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, logger: logger}
}

/*
FetchAll returns the cached snapshot when present, otherwise reads the store
and caches the result.

The version is read before the store. If a write lands while the store is
being read, the result is returned but not cached.
*/
func (repository *CachedRepository) FetchAll(ctx context.Context, session Session) ([]List, error) {
	cached, found, err := repository.cache.Get(ctx, session.UserID)
	if err != nil {
		repository.logger.WarnContext(ctx, "list_cache_read_failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	version, versionErr := repository.cache.Version(ctx, session.UserID)
	if versionErr != nil {
		repository.logger.WarnContext(ctx, "list_cache_version_failed", slog.Any("error", versionErr))
	}

	fetched, err := repository.next.FetchAll(ctx, session)
	if err != nil {
		return nil, err
	}

	if versionErr != nil {
		return fetched, nil
	}

	stored, err := repository.cache.Set(ctx, session.UserID, version, fetched)
	switch {
	case err != nil:
		repository.logger.WarnContext(ctx, "list_cache_write_failed", slog.Any("error", err))
	case !stored:
		repository.logger.DebugContext(ctx, "list_cache_write_skipped", slog.String("user_id", session.UserID))
	}

	return fetched, nil
}

// Get always reads the store.
func (repository *CachedRepository) Get(ctx context.Context, session Session, id string) (*List, error) {
	return repository.next.Get(ctx, session, id)
}

// Create writes through and drops the user's snapshot.
func (repository *CachedRepository) Create(ctx context.Context, session Session, list *List) error {
	err := repository.next.Create(ctx, session, list)
	repository.invalidate(ctx, session)
	return err
}

// Delete writes through and drops the user's snapshot, whatever the outcome.
func (repository *CachedRepository) Delete(ctx context.Context, session Session, id string) error {
	err := repository.next.Delete(ctx, session, id)
	repository.invalidate(ctx, session)
	return err
}

func (repository *CachedRepository) invalidate(ctx context.Context, session Session) {
	if err := repository.cache.Invalidate(ctx, session.UserID); err != nil {
		repository.logger.WarnContext(ctx, "list_cache_invalidate_failed", slog.Any("error", err))
	}
}
