package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gradehub/resultportal-backend/internal/config"
)

// ErrSessionNotFound signals an unknown or expired pending OTP session.
var ErrSessionNotFound = errors.New("otp session not found or expired")

// OTPSession is the state held between the credential check and the code
// check. One session exists per login attempt, keyed by a generated id.
type OTPSession struct {
	Username string `json:"username"`
}

// SessionStore holds pending OTP sessions for the duration of the code
// validity window. Expired entries behave exactly like missing ones.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, sess OTPSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*OTPSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// ────────────────────────────────────────────────────────────────────────────
// Redis-backed store
// ────────────────────────────────────────────────────────────────────────────

// RedisSessionStore keeps pending sessions in Redis with a native TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore creates a SessionStore over a Redis client.
func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID string, sess OTPSession, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal otp session: %w", err)
	}
	key := config.SessionKey.OTPSessionKey(sessionID)
	if err := s.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store otp session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*OTPSession, error) {
	key := config.SessionKey.OTPSessionKey(sessionID)
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load otp session: %w", err)
	}
	sess := &OTPSession{}
	if err := json.Unmarshal([]byte(raw), sess); err != nil {
		return nil, fmt.Errorf("unmarshal otp session: %w", err)
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, config.SessionKey.OTPSessionKey(sessionID)).Err()
}

// ────────────────────────────────────────────────────────────────────────────
// In-memory store
// ────────────────────────────────────────────────────────────────────────────

type memoryEntry struct {
	sess      OTPSession
	expiresAt time.Time
}

// MemorySessionStore keeps pending sessions in process memory. Used when no
// REDIS_URL is configured; sessions do not survive a restart, which is
// acceptable for the short OTP validity window.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemorySessionStore creates an in-memory SessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{entries: make(map[string]memoryEntry)}
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID string, sess OTPSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{sess: sess, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*OTPSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return nil, ErrSessionNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
