package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"fed-sentiment/internal/domain"
)

// SurveyStateStore guarda los valores de los controles por sesion, con TTL.
type SurveyStateStore interface {
	Load(ctx context.Context, sessionID string) (domain.SurveyState, bool, error)
	Save(ctx context.Context, sessionID string, state domain.SurveyState, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

const defaultSurveyStateTTL = 12 * time.Hour

type memoryEntry struct {
	state     domain.SurveyState
	expiresAt time.Time
}

type memorySurveyStateStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
}

func NewMemorySurveyStateStore() SurveyStateStore {
	return &memorySurveyStateStore{
		items: make(map[string]memoryEntry),
	}
}

func (s *memorySurveyStateStore) Load(_ context.Context, sessionID string) (domain.SurveyState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[sessionID]
	if !ok {
		return domain.SurveyState{}, false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, sessionID)
		return domain.SurveyState{}, false, nil
	}
	return entry.state.Clone(), true, nil
}

func (s *memorySurveyStateStore) Save(_ context.Context, sessionID string, state domain.SurveyState, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultSurveyStateTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sessionID] = memoryEntry{
		state:     state.Clone(),
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memorySurveyStateStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSurveyStateStore struct {
	client redisKVClient
	prefix string
}

func NewRedisSurveyStateStore(client *redis.Client) SurveyStateStore {
	if client == nil {
		return nil
	}
	return &redisSurveyStateStore{
		client: client,
		prefix: "survey:state:",
	}
}

func (s *redisSurveyStateStore) Load(ctx context.Context, sessionID string) (domain.SurveyState, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.SurveyState{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+strings.TrimSpace(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.SurveyState{}, false, nil
		}
		return domain.SurveyState{}, false, err
	}
	var state domain.SurveyState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.SurveyState{}, false, fmt.Errorf("decode survey state: %w", err)
	}
	return state, true, nil
}

func (s *redisSurveyStateStore) Save(ctx context.Context, sessionID string, state domain.SurveyState, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultSurveyStateTTL
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode survey state: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+strings.TrimSpace(sessionID), payload, ttl).Err()
}

func (s *redisSurveyStateStore) Delete(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+strings.TrimSpace(sessionID)).Err()
}
