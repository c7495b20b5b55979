// Package navigation provides storage for browsing sessions
package navigation

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=navigationmock github.com/KirkDiggler/pokedex-api/internal/repositories/navigation Repository

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 30 * time.Minute

// FrameKind names the screen a frame represents
type FrameKind string

// Screens a session can show
const (
	FrameRegions FrameKind = "regions"
	FrameRegion  FrameKind = "region"
	FramePokemon FrameKind = "pokemon"
)

// Frame is one entry of the navigation stack
type Frame struct {
	Kind FrameKind `json:"kind"`

	// Region is set for region frames
	Region string `json:"region,omitempty"`

	// PokemonID and PokemonName are set for pokemon frames
	PokemonID   int    `json:"pokemon_id,omitempty"`
	PokemonName string `json:"pokemon_name,omitempty"`
}

// Session is a user's navigation history; the last frame is the current screen.
// Version increases with every stored write.
type Session struct {
	ID        string
	Frames    []Frame
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Current returns the top frame
func (s *Session) Current() Frame {
	if len(s.Frames) == 0 {
		return Frame{Kind: FrameRegions}
	}
	return s.Frames[len(s.Frames)-1]
}

// staleError reports a write based on an outdated version
func staleError(id string, expected, actual int64) error {
	return errors.Aborted(errStale).
		WithMeta("session_id", id).
		WithMeta("expected_version", expected).
		WithMeta("stored_version", actual)
}

// Clone returns a deep copy
func (s *Session) Clone() *Session {
	out := *s
	out.Frames = append([]Frame(nil), s.Frames...)
	return &out
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	ID     string
	Frames []Frame
	TTL    time.Duration // falls back to the repository TTL
}

// CreateOutput contains the result of creating a session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// UpdateInput replaces a session's frames and extends its expiry.
// Session.Version must match the stored version.
type UpdateInput struct {
	Session *Session
	TTL     time.Duration // falls back to the repository TTL
}

// UpdateOutput contains the stored session
type UpdateOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether a session was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for session storage operations
type Repository interface {
	// Create stores a new session
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a live session by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session; missing or expired sessions are NotFound.
	// A Version older than the stored one is rejected as Aborted.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errIDEmpty      = "session ID cannot be empty"
	errSessionNil   = "session cannot be nil"
	errNotFound     = "navigation session not found"
	errNegativeTTL  = "TTL cannot be negative"
	errClockMissing = "clock is required"
	errStale        = "navigation session was modified concurrently"
)
