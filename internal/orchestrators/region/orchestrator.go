// Package region implements the region batch fetcher
package region

//go:generate mockgen -destination=mock/mock_service.go -package=regionmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/region Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
)

// rangeRegionName labels results of FetchRange, which has no catalog entry
const rangeRegionName = "custom"

// Service defines the region browsing operations
type Service interface {
	// ListRegions returns the catalog in declaration order
	ListRegions(ctx context.Context) (*ListRegionsOutput, error)

	// FetchRegion looks up every ID in the region concurrently.
	// Any single failure fails the whole batch.
	FetchRegion(ctx context.Context, input *FetchRegionInput) (*FetchRegionOutput, error)

	// FetchRange is FetchRegion over an explicit ID range
	FetchRange(ctx context.Context, input *FetchRangeInput) (*FetchRegionOutput, error)

	// FetchRegionSettled looks up every ID and reports each outcome in place
	// instead of failing on the first error
	FetchRegionSettled(ctx context.Context, input *FetchRegionInput) (*FetchRegionSettledOutput, error)
}

// Config holds the dependencies for the region orchestrator
type Config struct {
	Client  pokeapi.Client
	Catalog *regions.Catalog

	// MaxConcurrency bounds in-flight lookups; zero means one goroutine per ID
	MaxConcurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.MaxConcurrency < 0 {
		vb.Field("MaxConcurrency", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	client         pokeapi.Client
	catalog        *regions.Catalog
	maxConcurrency int
}

// NewOrchestrator creates a new region orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:         cfg.Client,
		catalog:        cfg.Catalog,
		maxConcurrency: cfg.MaxConcurrency,
	}, nil
}

func (o *orchestrator) ListRegions(_ context.Context) (*ListRegionsOutput, error) {
	return &ListRegionsOutput{
		Regions: o.catalog.List(),
	}, nil
}

func (o *orchestrator) FetchRegion(ctx context.Context, input *FetchRegionInput) (*FetchRegionOutput, error) {
	r, err := o.lookup(input)
	if err != nil {
		return nil, err
	}
	return o.fetchAll(ctx, r)
}

func (o *orchestrator) FetchRange(ctx context.Context, input *FetchRangeInput) (*FetchRegionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := regions.ValidateRange(input.MinID, input.MaxID); err != nil {
		return nil, err
	}
	return o.fetchAll(ctx, regions.Region{Name: rangeRegionName, MinID: input.MinID, MaxID: input.MaxID})
}

func (o *orchestrator) FetchRegionSettled(ctx context.Context, input *FetchRegionInput) (*FetchRegionSettledOutput, error) {
	r, err := o.lookup(input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Outcome, r.Size())

	var g errgroup.Group
	if o.maxConcurrency > 0 {
		g.SetLimit(o.maxConcurrency)
	}
	for i := range results {
		id := r.MinID + i
		g.Go(func() error {
			p, err := o.client.GetPokemonByID(ctx, id)
			results[i] = Outcome{ID: id, Pokemon: p, Err: err}
			if err != nil {
				results[i].Pokemon = nil
			}
			return nil
		})
	}
	_ = g.Wait() // nolint:errcheck // lookups never return an error to the group

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "fetch of region %s was interrupted", r.Name).
			WithFailure(errors.FailureBatch).
			WithMeta("region", r.Name)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	slog.Info("Region fetch settled",
		"region", r.Name,
		"count", len(results),
		"failed", failed,
		"duration", time.Since(start),
	)

	return &FetchRegionSettledOutput{
		Region:  r,
		Results: results,
		Failed:  failed,
	}, nil
}

func (o *orchestrator) lookup(input *FetchRegionInput) (regions.Region, error) {
	if input == nil {
		return regions.Region{}, errors.InvalidArgument("input is required")
	}
	if input.Region == "" {
		return regions.Region{}, errors.InvalidArgument("region is required").WithFailure(errors.FailureConfig)
	}

	r, err := o.catalog.Lookup(input.Region)
	if err != nil {
		return regions.Region{}, err
	}
	if err := r.Validate(); err != nil {
		return regions.Region{}, errors.Wrapf(err, "region %s has an invalid range", r.Name)
	}
	return r, nil
}

// fetchAll fans out one lookup per ID and joins them. The first failure
// cancels the sibling lookups and the whole batch is discarded.
func (o *orchestrator) fetchAll(ctx context.Context, r regions.Region) (*FetchRegionOutput, error) {
	start := time.Now()
	results := make([]*pokemon.Pokemon, r.Size())

	g, gctx := errgroup.WithContext(ctx)
	if o.maxConcurrency > 0 {
		g.SetLimit(o.maxConcurrency)
	}
	for i := range results {
		id := r.MinID + i
		g.Go(func() error {
			p, err := o.client.GetPokemonByID(gctx, id)
			if err != nil {
				return errors.Wrapf(err, "failed to get pokemon %d", id)
			}
			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Region fetch failed",
			"region", r.Name,
			"min_id", r.MinID,
			"max_id", r.MaxID,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to fetch region %s", r.Name).
			WithFailure(errors.FailureBatch).
			WithMeta("region", r.Name)
	}

	slog.Info("Region fetched",
		"region", r.Name,
		"count", len(results),
		"duration", time.Since(start),
	)

	return &FetchRegionOutput{
		Region:  r,
		Pokemon: results,
	}, nil
}
