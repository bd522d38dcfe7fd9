package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:" // session:{sid} -> JSON session data

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state behind the HTTP-only cookie.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// SessionStore keeps sessions in Redis with a sliding TTL. Deleting the key
// logs the session out for every tab that carries the cookie.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores the session and returns the new session id.
func (s *SessionStore) Create(ctx context.Context, sess Session) (string, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	sid := uuid.New().String()
	if err := s.client.Set(ctx, s.key(sid), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Get loads a session and refreshes its TTL.
func (s *SessionStore) Get(ctx context.Context, sid string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// Sliding expiry: active sessions stay alive.
	s.client.Expire(ctx, s.key(sid), s.ttl)

	return &sess, nil
}

// Delete removes the session. Deleting an unknown sid is not an error.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return sessionKeyPrefix + sid
}
