// Package navigation drives a browsing session as a bounded stack of screens
package navigation

//go:generate mockgen -destination=mock/mock_service.go -package=navigationmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	navrepo "github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
)

// DefaultMaxDepth bounds the stack, root frame included
const DefaultMaxDepth = 32

// minimum depth keeps the root plus one screen
const minMaxDepth = 2

// maxSaveAttempts bounds how often a write is replayed after losing a version race
const maxSaveAttempts = 8

// Service defines the navigation operations
type Service interface {
	StartSession(ctx context.Context) (*StartSessionOutput, error)

	// OpenRegion fetches the region and pushes it. A failed fetch leaves the stack as it was.
	OpenRegion(ctx context.Context, input *OpenRegionInput) (*OpenRegionOutput, error)

	// OpenPokemon fetches the detail view and pushes it. A failed fetch leaves the stack as it was.
	OpenPokemon(ctx context.Context, input *OpenPokemonInput) (*OpenPokemonOutput, error)

	// Back pops one frame; the root frame is never popped
	Back(ctx context.Context, input *BackInput) (*BackOutput, error)

	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}

// Config holds the dependencies for the navigation orchestrator
type Config struct {
	Repository  navrepo.Repository
	Regions     region.Service
	Evolution   evolution.Service
	IDGenerator idgen.Generator

	// MaxDepth bounds the stack; defaults to DefaultMaxDepth
	MaxDepth int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Regions == nil {
		vb.RequiredField("Regions")
	}
	if c.Evolution == nil {
		vb.RequiredField("Evolution")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MaxDepth != 0 && c.MaxDepth < minMaxDepth {
		vb.Fieldf("MaxDepth", "must be at least %d", minMaxDepth)
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return nil
}

type orchestrator struct {
	repo      navrepo.Repository
	regions   region.Service
	evolution evolution.Service
	idGen     idgen.Generator
	maxDepth  int
}

// NewOrchestrator creates a new navigation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:      cfg.Repository,
		regions:   cfg.Regions,
		evolution: cfg.Evolution,
		idGen:     cfg.IDGenerator,
		maxDepth:  cfg.MaxDepth,
	}, nil
}

func (o *orchestrator) StartSession(ctx context.Context) (*StartSessionOutput, error) {
	listed, err := o.regions.ListRegions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	created, err := o.repo.Create(ctx, navrepo.CreateInput{
		ID:     o.idGen.Generate(),
		Frames: []navrepo.Frame{{Kind: navrepo.FrameRegions}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Navigation session started", "session_id", created.Session.ID)

	return &StartSessionOutput{
		Session: created.Session,
		Regions: listed.Regions,
	}, nil
}

func (o *orchestrator) OpenRegion(ctx context.Context, input *OpenRegionInput) (*OpenRegionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SessionID", input.SessionID, vb)
	errors.ValidateRequired("Region", input.Region, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	out := &OpenRegionOutput{}
	if input.Settled {
		settled, err := o.regions.FetchRegionSettled(ctx, &region.FetchRegionInput{Region: input.Region})
		if err != nil {
			return nil, err
		}
		out.Region = settled.Region
		out.Results = settled.Results
	} else {
		fetched, err := o.regions.FetchRegion(ctx, &region.FetchRegionInput{Region: input.Region})
		if err != nil {
			return nil, err
		}
		out.Region = fetched.Region
		out.Pokemon = fetched.Pokemon
	}

	out.Session, err = o.push(ctx, session, navrepo.Frame{
		Kind:   navrepo.FrameRegion,
		Region: out.Region.Name,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) OpenPokemon(ctx context.Context, input *OpenPokemonInput) (*OpenPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SessionID", input.SessionID, vb)
	if input.ID < 0 {
		vb.Field("ID", "must not be negative")
	}
	if input.ID == 0 {
		errors.ValidateRequired("Name", input.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	detail, err := o.evolution.OpenDetail(ctx, &evolution.OpenDetailInput{ID: input.ID, Name: input.Name})
	if err != nil {
		return nil, err
	}

	updated, err := o.push(ctx, session, navrepo.Frame{
		Kind:        navrepo.FramePokemon,
		PokemonID:   detail.Pokemon.ID,
		PokemonName: detail.Pokemon.Name,
	})
	if err != nil {
		return nil, err
	}

	return &OpenPokemonOutput{
		Session:  updated,
		Pokemon:  detail.Pokemon,
		Sequence: detail.Sequence,
	}, nil
}

func (o *orchestrator) Back(ctx context.Context, input *BackInput) (*BackOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	popped := false
	updated, err := o.apply(ctx, session, func(s *navrepo.Session) bool {
		popped = len(s.Frames) > 1
		if popped {
			s.Frames = s.Frames[:len(s.Frames)-1]
		}
		return popped
	})
	if err != nil {
		return nil, err
	}

	return &BackOutput{
		Session: updated,
		Current: updated.Current(),
		Popped:  popped,
	}, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.Delete(ctx, navrepo.DeleteInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to end session %s", input.SessionID)
	}
	return &EndSessionOutput{Ended: out.Deleted}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*navrepo.Session, error) {
	got, err := o.repo.Get(ctx, navrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load session %s", id)
	}
	return got.Session, nil
}

// push appends frame, dropping the oldest non-root frame once the stack is full
func (o *orchestrator) push(ctx context.Context, session *navrepo.Session, frame navrepo.Frame) (*navrepo.Session, error) {
	return o.apply(ctx, session, func(s *navrepo.Session) bool {
		frames := append(s.Frames, frame)
		if len(frames) > o.maxDepth {
			dropped := len(frames) - o.maxDepth
			frames = append(frames[:1], frames[1+dropped:]...)
			slog.Debug("Navigation stack full, dropped oldest frames",
				"session_id", s.ID,
				"dropped", dropped)
		}
		s.Frames = frames
		return true
	})
}

// apply runs change on session and saves it. When another request saved the
// session first, change is replayed on a fresh copy. A change returning false
// leaves the session unsaved.
func (o *orchestrator) apply(ctx context.Context, session *navrepo.Session, change func(*navrepo.Session) bool) (*navrepo.Session, error) {
	for attempt := 1; ; attempt++ {
		if !change(session) {
			return session, nil
		}

		updated, err := o.repo.Update(ctx, navrepo.UpdateInput{Session: session})
		if err == nil {
			return updated.Session, nil
		}
		if !errors.IsAborted(err) || attempt == maxSaveAttempts {
			return nil, errors.Wrapf(err, "failed to save session %s", session.ID)
		}

		slog.Debug("Navigation session changed underneath, replaying",
			"session_id", session.ID,
			"attempt", attempt)

		if session, err = o.load(ctx, session.ID); err != nil {
			return nil, err
		}
	}
}
