// Package pokeapi is the read-only client for the PokeAPI REST service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pokedex-api"

	// upper bound on how much of an error body we drain before closing
	maxDrainBytes = 64 << 10

	tracerName = "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
)

// Client defines the lookups the app makes against PokeAPI
type Client interface {
	// GetPokemonByID fetches /pokemon/{id}
	GetPokemonByID(ctx context.Context, id int) (*pokemon.Pokemon, error)

	// GetPokemonByName fetches /pokemon/{name}; used when following an evolution entry
	GetPokemonByName(ctx context.Context, name string) (*pokemon.Pokemon, error)

	// GetSpecies dereferences a species URL taken from a Pokemon
	GetSpecies(ctx context.Context, ref string) (*pokemon.Species, error)

	// GetEvolutionChain dereferences an evolution chain URL and returns its root
	GetEvolutionChain(ctx context.Context, ref string) (*pokemon.EvolutionNode, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent with every request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid base URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.InvalidArgumentf("base URL must be http or https, got %q", cfg.BaseURL)
	}
	return nil
}

type client struct {
	base       *url.URL
	httpClient *http.Client
	userAgent  string
	tracer     trace.Tracer
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	base, _ := url.Parse(cfg.BaseURL) // validated above

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		base:       base,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

func (c *client) GetPokemonByID(ctx context.Context, id int) (*pokemon.Pokemon, error) {
	var resp pokemonResponse
	if err := c.getJSON(ctx, c.endpoint("pokemon", strconv.Itoa(id)), &resp); err != nil {
		return nil, err.WithMeta("pokemon_id", id)
	}
	return resp.toPokemon(), nil
}

func (c *client) GetPokemonByName(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, errors.InvalidArgument("pokemon name is required").WithFailure(errors.FailureLookup)
	}

	var resp pokemonResponse
	if err := c.getJSON(ctx, c.endpoint("pokemon", key), &resp); err != nil {
		return nil, err.WithMeta("pokemon_name", key)
	}
	return resp.toPokemon(), nil
}

func (c *client) GetSpecies(ctx context.Context, ref string) (*pokemon.Species, error) {
	target, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}

	var resp speciesResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}
	return resp.toSpecies(), nil
}

func (c *client) GetEvolutionChain(ctx context.Context, ref string) (*pokemon.EvolutionNode, error) {
	target, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}

	var resp evolutionChainResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}
	if resp.Chain == nil {
		return nil, errors.Internalf("evolution chain %s has no root", target).
			WithFailure(errors.FailureLookup).
			WithMeta("url", target)
	}
	return resp.Chain.toNode(), nil
}

// endpoint builds {base}{resource}/{key}/
func (c *client) endpoint(resource, key string) string {
	return c.base.JoinPath(resource, key).String() + "/"
}

// resolve turns a resource reference into an absolute URL.
// Relative references are resolved against the base URL.
func (c *client) resolve(ref string) (string, *errors.Error) {
	if strings.TrimSpace(ref) == "" {
		return "", errors.InvalidArgument("resource reference is required").WithFailure(errors.FailureLookup)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid resource reference %q", ref).
			WithFailure(errors.FailureLookup)
	}
	return c.base.ResolveReference(u).String(), nil
}

// getJSON performs one GET and decodes the body into out.
// Every failure is tagged as a lookup failure carrying the URL.
func (c *client) getJSON(ctx context.Context, target string, out any) *errors.Error {
	ctx, span := c.tracer.Start(ctx, "pokeapi.get", trace.WithAttributes(
		attribute.String("http.url", target),
	))
	defer span.End()

	start := time.Now()
	err := c.doGet(ctx, target, out, span)
	if err != nil {
		err = err.WithFailure(errors.FailureLookup).WithMeta("url", target)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Message)
		slog.Debug("PokeAPI request failed", "url", target, "error", err, "duration", time.Since(start))
		return err
	}

	slog.Debug("PokeAPI request completed", "url", target, "duration", time.Since(start))
	return nil
}

func (c *client) doGet(ctx context.Context, target string, out any, span trace.Span) *errors.Error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		code := errors.CodeUnavailable
		if ctxErr := ctx.Err(); ctxErr != nil {
			code = errors.GetCode(ctxErr)
		}
		return errors.WrapWithCode(err, code, "request to PokeAPI failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes)) // nolint:errcheck // best effort drain
		_ = resp.Body.Close()                                                // nolint:errcheck // safe to ignore
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if code := errors.CodeFromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		return errors.Newf(code, "PokeAPI returned %d", resp.StatusCode).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode PokeAPI response")
	}
	return nil
}
