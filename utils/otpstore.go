package utils

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPEntry is a stored OTP with its verification state
type OTPEntry struct {
	OTP      string `json:"otp"`
	Verified bool   `json:"verified"`
}

// OTPStore is a keyed TTL store for OTP entries. Keys are opaque; callers
// prefix them by purpose (e.g. "reset_<phone>").
type OTPStore interface {
	Put(ctx context.Context, key string, entry OTPEntry, ttl time.Duration) error
	Get(ctx context.Context, key string) (OTPEntry, bool, error)
	Delete(ctx context.Context, key string) error
}

// RedisOTPStore keeps entries in Redis so OTPs survive restarts and are
// shared across instances.
type RedisOTPStore struct {
	client *redis.Client
}

// NewRedisOTPStore creates a Redis-backed OTP store
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func (s *RedisOTPStore) Put(ctx context.Context, key string, entry OTPEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, "otp:"+key, data, ttl).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, key string) (OTPEntry, bool, error) {
	data, err := s.client.Get(ctx, "otp:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return OTPEntry{}, false, nil
	}
	if err != nil {
		return OTPEntry{}, false, err
	}
	var entry OTPEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return OTPEntry{}, false, err
	}
	return entry, true, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, "otp:"+key).Err()
}

type memoryOTPEntry struct {
	entry     OTPEntry
	expiresAt time.Time
}

// MemoryOTPStore is the in-process fallback used when Redis is not
// configured. Expired entries are dropped on read.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryOTPEntry
}

// NewMemoryOTPStore creates an in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]memoryOTPEntry)}
}

func (s *MemoryOTPStore) Put(_ context.Context, key string, entry OTPEntry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryOTPEntry{entry: entry, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(_ context.Context, key string) (OTPEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return OTPEntry{}, false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return OTPEntry{}, false, nil
	}
	return e.entry, true, nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
