package navigation

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Clock == nil {
		return errors.InvalidArgument(errClockMissing)
	}
	if c.TTL < 0 {
		return errors.InvalidArgument(errNegativeTTL)
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	return nil
}

// InMemoryRepository implements Repository using in-memory storage.
// Expired sessions are dropped lazily when touched.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &InMemoryRepository{
		store: make(map[string]*Session),
		clock: cfg.Clock,
		ttl:   cfg.TTL,
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	session := &Session{
		ID:        input.ID,
		Frames:    append([]Frame(nil), input.Frames...),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(r.ttlFor(input.TTL)),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.ID] = session.Clone()

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a live session by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(input.ID)
	if err != nil {
		return nil, err
	}

	// Return a copy to prevent external modification
	return &GetOutput{Session: session.Clone()}, nil
}

// Update replaces an existing session and extends its expiry.
// The version check and the write happen under one lock.
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.live(input.Session.ID)
	if err != nil {
		return nil, err
	}
	if stored.Version != input.Session.Version {
		return nil, staleError(stored.ID, input.Session.Version, stored.Version)
	}

	now := r.clock.Now()
	session := input.Session.Clone()
	session.Version++
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(r.ttlFor(input.TTL))
	r.store[session.ID] = session.Clone()

	return &UpdateOutput{Session: session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.store[input.ID]
	delete(r.store, input.ID)

	return &DeleteOutput{Deleted: existed}, nil
}

// live returns the stored session, evicting it if expired. Callers hold mu.
func (r *InMemoryRepository) live(id string) (*Session, error) {
	session, ok := r.store[id]
	if !ok {
		return nil, errors.NotFound(errNotFound).WithMeta("session_id", id)
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.store, id)
		return nil, errors.NotFound("navigation session has expired").WithMeta("session_id", id)
	}
	return session, nil
}

func (r *InMemoryRepository) ttlFor(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return r.ttl
}
