// Package session keeps authorization sessions between the checkout request
// that created them and a later redirect.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"paystack-client/pkg/paystack"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

type Store interface {
	Save(ctx context.Context, s *paystack.AuthorizationSession) error
	Get(ctx context.Context, reference string) (*paystack.AuthorizationSession, error)
}

type memoryEntry struct {
	session   paystack.AuthorizationSession
	expiresAt time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Save(_ context.Context, s *paystack.AuthorizationSession) error {
	if s == nil || s.Reference == "" {
		return errors.New("session without reference")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.entries[s.Reference] = memoryEntry{session: *s, expiresAt: now.Add(m.ttl)}
	return nil
}

// sweep drops expired entries. Callers hold m.mu.
func (m *MemoryStore) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for ref, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, ref)
		}
	}
}

func (m *MemoryStore) Get(_ context.Context, reference string) (*paystack.AuthorizationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[reference]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.ttl > 0 && m.now().After(e.expiresAt) {
		delete(m.entries, reference)
		return nil, ErrSessionNotFound
	}
	s := e.session
	return &s, nil
}

// RedisStore keeps sessions as JSON values under paystack:session:<reference>.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(reference string) string {
	return fmt.Sprintf("paystack:session:%s", reference)
}

func (r *RedisStore) Save(ctx context.Context, s *paystack.AuthorizationSession) error {
	if s == nil || s.Reference == "" {
		return errors.New("session without reference")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key(s.Reference), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, reference string) (*paystack.AuthorizationSession, error) {
	b, err := r.client.Get(ctx, key(reference)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}
	var s paystack.AuthorizationSession
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ConnectRedis opens a client and pings it.
func ConnectRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0, // use default DB
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
