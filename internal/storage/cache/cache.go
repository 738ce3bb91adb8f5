// Package cache puts a Redis read-through cache in front of the id lookups of
// a storage.Store. Entry resolution looks up the same account and period once
// per entry, so these are the hot reads.
//
// Redis failures never fail a call: the cache logs and serves from the
// backing store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "ledger"

// Store decorates a storage.Store. Methods it does not override go straight
// to the backing store.
type Store struct {
	storage.Store
	redis *redis.Client
	ttl   time.Duration
}

// New wraps store with rdb. A nil client disables caching.
func New(store storage.Store, rdb *redis.Client, ttl time.Duration) storage.Store {
	if rdb == nil {
		return store
	}
	return &Store{Store: store, redis: rdb, ttl: ttl}
}

func accountKey(id string) string { return fmt.Sprintf("%s:account:%s", keyPrefix, id) }
func periodKey(id string) string  { return fmt.Sprintf("%s:period:%s", keyPrefix, id) }

func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	key := accountKey(id)

	var cached models.Account
	hit, ok := s.get(ctx, key, &cached)
	if hit {
		return &cached, nil
	}

	acc, err := s.Store.GetAccountByID(ctx, id)
	if err != nil || acc == nil {
		return acc, err
	}
	if ok {
		s.set(ctx, key, acc)
	}
	return acc, nil
}

func (s *Store) UpdateAccountName(ctx context.Context, id, name string) (*models.Account, error) {
	acc, err := s.Store.UpdateAccountName(ctx, id, name)
	if err == nil {
		s.invalidate(ctx, accountKey(id))
	}
	return acc, err
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	err := s.Store.DeleteAccount(ctx, id)
	if err == nil {
		s.invalidate(ctx, accountKey(id))
	}
	return err
}

func (s *Store) GetPeriodByID(ctx context.Context, id string) (*models.Period, error) {
	key := periodKey(id)

	var cached models.Period
	hit, ok := s.get(ctx, key, &cached)
	if hit {
		return &cached, nil
	}

	p, err := s.Store.GetPeriodByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	if ok {
		s.set(ctx, key, p)
	}
	return p, nil
}

func (s *Store) UpdatePeriod(ctx context.Context, id string, month models.Month, year int) (*models.Period, error) {
	p, err := s.Store.UpdatePeriod(ctx, id, month, year)
	if err == nil {
		s.invalidate(ctx, periodKey(id))
	}
	return p, err
}

func (s *Store) DeletePeriod(ctx context.Context, id string) error {
	err := s.Store.DeletePeriod(ctx, id)
	if err == nil {
		s.invalidate(ctx, periodKey(id))
	}
	return err
}

// get decodes key into dst. hit reports a usable cached value; healthy is
// false when Redis itself failed, in which case the caller skips the write-back.
func (s *Store) get(ctx context.Context, key string, dst interface{}) (hit, healthy bool) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, true
	}
	if err != nil {
		log.Printf("cache: get %s failed, reading through: %v", key, err)
		return false, false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("cache: dropping undecodable value at %s: %v", key, err)
		s.invalidate(ctx, key)
		return false, true
	}
	return true, true
}

func (s *Store) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: encode %s failed: %v", key, err)
		return
	}
	if err := s.redis.Set(ctx, key, string(data), s.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}

func (s *Store) invalidate(ctx context.Context, key string) {
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		log.Printf("cache: invalidate %s failed: %v", key, err)
	}
}

// Compile-time check: ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)
