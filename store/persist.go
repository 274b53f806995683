package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Persister saves the allow-listed slice of a store's state under a
// fixed per-store key so it survives a process restart. Only the fields
// a store explicitly serializes are ever written; everything else is
// rebuilt from the backend.
type Persister interface {
	Load(key string) ([]byte, bool)
	Save(key string, value []byte) error
	Delete(key string) error
}

// RedisPersister backs store persistence with redis.
type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(addr, password string, db int) *RedisPersister {
	return &RedisPersister{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RedisPersister) Load(key string) ([]byte, bool) {
	value, err := r.client.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (r *RedisPersister) Save(key string, value []byte) error {
	return r.client.Set(context.Background(), key, value, 0).Err()
}

func (r *RedisPersister) Delete(key string) error {
	return r.client.Del(context.Background(), key).Err()
}

func (r *RedisPersister) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisPersister) Close() error {
	return r.client.Close()
}

// MemoryPersister keeps persisted slices in memory. Used when redis is
// disabled and by tests.
type MemoryPersister struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{items: map[string][]byte{}}
}

func (m *MemoryPersister) Load(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	return value, ok
}

func (m *MemoryPersister) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryPersister) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// saveJSON marshals the allow-listed slice and writes it under the
// store's key. Persistence failures never fail the action that
// triggered them.
func saveJSON(p Persister, key string, slice interface{}) {
	if p == nil {
		return
	}
	encoded, err := json.Marshal(slice)
	if err != nil {
		return
	}
	_ = p.Save(key, encoded)
}

// loadJSON rehydrates the allow-listed slice if a persisted copy exists.
func loadJSON(p Persister, key string, into interface{}) bool {
	if p == nil {
		return false
	}
	raw, ok := p.Load(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, into) == nil
}
