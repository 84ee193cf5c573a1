package agent

import (
	"context"
	"errors"
	"sync"
)

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey sets a routing key for session storage in the context.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

// SessionKeyFromContext gets the routing key from the context.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(sessionKeyContext{})
	if value == nil {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}

func sessionKeyOrDefault(ctx context.Context) (string, bool) {
	key, ok := SessionKeyFromContext(ctx)
	if ok && key != "" {
		return key, true
	}
	return defaultSessionKey, true
}

type Cache[S any] interface {
	Set(ctx context.Context, key string, val S) error
	Get(ctx context.Context, key string) (S, bool, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type MemoryCache[S any] struct {
	mu sync.RWMutex
	m  map[string]S
}

func NewMemoryCache[S any]() *MemoryCache[S] {
	return &MemoryCache[S]{m: map[string]S{}}
}

func (m *MemoryCache[S]) Set(ctx context.Context, key string, val S) error {
	m.mu.Lock()
	m.m[key] = val
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	m.mu.RLock()
	val, ok := m.m[key]
	m.mu.RUnlock()
	return val, ok, nil
}

func (m *MemoryCache[S]) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	_, ok := m.m[key]
	m.mu.RUnlock()
	return ok, nil
}

// Store namespaces a Cache and routes keys through the context.
type Store[S any] struct {
	core      Cache[S]
	namespace string
	keyFn     func(ctx context.Context) (string, bool)
}

func NewStore[S any](core Cache[S], namespace string, keyFn func(ctx context.Context) (string, bool)) Store[S] {
	return Store[S]{
		core:      core,
		namespace: namespace,
		keyFn:     keyFn,
	}
}

func (s Store[S]) key(ctx context.Context) (string, bool) {
	key, exist := s.keyFn(ctx)
	if !exist {
		return "", false
	}
	return s.namespace + ":" + key, true
}

func (s Store[S]) Set(ctx context.Context, val S) error {
	key, ok := s.key(ctx)
	if !ok {
		return errors.New("session key not found")
	}
	return s.core.Set(ctx, key, val)
}

func (s Store[S]) Get(ctx context.Context) (S, bool, error) {
	key, ok := s.key(ctx)
	if !ok {
		var zero S
		return zero, false, errors.New("session key not found")
	}
	return s.core.Get(ctx, key)
}

func (s Store[S]) Del(ctx context.Context) error {
	key, ok := s.key(ctx)
	if !ok {
		return errors.New("session key not found")
	}
	return s.core.Del(ctx, key)
}

// SessionStore keeps one Interview per session key. A hosting application
// serving several candidates routes each of them through its own key; the
// interviews themselves are never shared between sessions.
type SessionStore struct {
	store        Store[*Interview]
	newInterview func(ctx context.Context) *Interview
}

func NewSessionStore(core Cache[*Interview], newInterview func(ctx context.Context) *Interview) *SessionStore {
	return &SessionStore{
		store:        NewStore(core, "agent:interview", sessionKeyOrDefault),
		newInterview: newInterview,
	}
}

func NewMemorySessionStore(newInterview func(ctx context.Context) *Interview) *SessionStore {
	return NewSessionStore(NewMemoryCache[*Interview](), newInterview)
}

// Load returns the session's interview, creating and starting a fresh one on
// first access.
func (s *SessionStore) Load(ctx context.Context) (*Interview, error) {
	interview, ok, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return interview, nil
	}
	interview = s.newInterview(ctx)
	interview.Start()
	if err := s.store.Set(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *SessionStore) Save(ctx context.Context, interview *Interview) error {
	return s.store.Set(ctx, interview)
}

// Remove discards the session's interview; the next Load starts a new one.
func (s *SessionStore) Remove(ctx context.Context) error {
	return s.store.Del(ctx)
}
