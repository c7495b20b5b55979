package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

var browseSettled bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Walk regions, pokemon and evolutions interactively",
	Long: `Open a navigation session and walk it from the terminal.
Type the number of an entry to open it, b to go back, r to retry a failed
action and q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseSettled, "settled", false, "Open regions with per-pokemon failures shown in place")
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	b := &browser{
		client:  client,
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		timeout: timeout,
		settled: browseSettled,
	}
	return b.run(cmd.Context())
}

// action is one request the browser can make, kept so a failure can be retried
type action func(ctx context.Context) error

// browser renders the current frame of a server session and reads commands
type browser struct {
	client  pokedexv1alpha1.PokedexServiceClient
	in      *bufio.Scanner
	out     io.Writer
	timeout time.Duration
	settled bool

	sessionID string
	entries   []action
	failed    action
}

func (b *browser) run(ctx context.Context) error {
	if err := b.call(ctx, b.start); err != nil {
		return err
	}
	defer b.end(ctx)

	for {
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			fmt.Fprintln(b.out)
			return b.in.Err()
		}

		cmd := strings.TrimSpace(b.in.Text())
		switch cmd {
		case "":
			continue
		case "q":
			return nil
		case "b":
			b.do(ctx, b.back)
		case "r":
			if b.failed == nil {
				fmt.Fprintln(b.out, "Nothing to retry")
				continue
			}
			b.do(ctx, b.failed)
		default:
			if len(b.entries) == 0 {
				fmt.Fprintln(b.out, "Nothing to open, enter b, r or q")
				continue
			}
			n, err := strconv.Atoi(cmd)
			if err != nil || n < 1 || n > len(b.entries) {
				fmt.Fprintf(b.out, "Enter 1-%d, b, r or q\n", len(b.entries))
				continue
			}
			b.do(ctx, b.entries[n-1])
		}
	}
}

// do runs act; on failure act becomes retryable unless act already
// registered a narrower retry itself
func (b *browser) do(ctx context.Context, act action) {
	b.failed = nil
	if err := b.call(ctx, act); err != nil {
		renderError(b.out, err)
		if b.failed == nil {
			b.failed = act
		}
	}
}

func (b *browser) call(ctx context.Context, act action) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return act(ctx)
}

func (b *browser) start(ctx context.Context) error {
	resp, err := b.client.StartSession(ctx, &pokedexv1alpha1.StartSessionRequest{})
	if err != nil {
		return describeError("failed to start session", err)
	}
	b.sessionID = resp.Session.GetId()
	b.showRegions(resp.Regions)
	return nil
}

func (b *browser) end(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	_, _ = b.client.EndSession(ctx, &pokedexv1alpha1.EndSessionRequest{SessionId: b.sessionID}) // nolint:errcheck // session expires anyway
}

func (b *browser) openRegion(name string) action {
	return func(ctx context.Context) error {
		resp, err := b.client.Navigate(ctx, &pokedexv1alpha1.NavigateRequest{
			SessionId: b.sessionID,
			Action:    pokedexv1alpha1.NavigateActionOpenRegion,
			Region:    name,
			Settled:   b.settled,
		})
		if err != nil {
			return describeError("failed to open "+name, err)
		}
		if b.settled {
			b.showSettled(&pokedexv1alpha1.GetRegionSettledResponse{Region: resp.Region, Results: resp.Results, Failed: countFailed(resp.Results)})
			return nil
		}
		b.showRegion(resp.Region, resp.Pokemon)
		return nil
	}
}

func (b *browser) openPokemon(id int32, name string) action {
	return func(ctx context.Context) error {
		resp, err := b.client.Navigate(ctx, &pokedexv1alpha1.NavigateRequest{
			SessionId:   b.sessionID,
			Action:      pokedexv1alpha1.NavigateActionOpenPokemon,
			PokemonId:   id,
			PokemonName: name,
		})
		if err != nil {
			return describeError("failed to open pokemon", err)
		}
		b.showDetail(resp.Detail, resp.EvolutionChain)
		return nil
	}
}

func (b *browser) back(ctx context.Context) error {
	resp, err := b.client.Navigate(ctx, &pokedexv1alpha1.NavigateRequest{
		SessionId: b.sessionID,
		Action:    pokedexv1alpha1.NavigateActionBack,
	})
	if err != nil {
		return describeError("failed to go back", err)
	}
	if !resp.Popped {
		fmt.Fprintln(b.out, "Already at the region list")
	}

	frames := resp.Session.GetFrames()
	if len(frames) == 0 {
		return errors.Internal("session has no frames")
	}
	top := frames[len(frames)-1]

	// the server already moved back; a retry must only redraw, never pop again
	reload := func(ctx context.Context) error { return b.reload(ctx, top) }
	if err := reload(ctx); err != nil {
		b.entries = nil
		b.failed = reload
		return err
	}
	return nil
}

// reload renders frame again from live data
func (b *browser) reload(ctx context.Context, frame *pokedexv1alpha1.Frame) error {
	switch frame.Kind {
	case "region":
		if b.settled {
			resp, err := b.client.GetRegionSettled(ctx, &pokedexv1alpha1.GetRegionRequest{Name: frame.Region})
			if err != nil {
				return describeError("failed to reload "+frame.Region, err)
			}
			b.showSettled(resp)
			return nil
		}
		resp, err := b.client.GetRegion(ctx, &pokedexv1alpha1.GetRegionRequest{Name: frame.Region})
		if err != nil {
			return describeError("failed to reload "+frame.Region, err)
		}
		b.showRegion(resp.Region, resp.Pokemon)
	case "pokemon":
		resp, err := b.client.GetPokemon(ctx, &pokedexv1alpha1.GetPokemonRequest{Id: frame.PokemonId, Name: frame.PokemonName})
		if err != nil {
			return describeError("failed to reload pokemon", err)
		}
		b.showDetail(resp.Pokemon, resp.EvolutionChain)
	default:
		resp, err := b.client.ListRegions(ctx, &pokedexv1alpha1.ListRegionsRequest{})
		if err != nil {
			return describeError("failed to reload regions", err)
		}
		b.showRegions(resp.Regions)
	}
	return nil
}

func (b *browser) showRegions(regions []*pokedexv1alpha1.Region) {
	renderRegions(b.out, regions)
	b.entries = b.entries[:0]
	for _, r := range regions {
		b.entries = append(b.entries, b.openRegion(r.Name))
	}
}

func (b *browser) showRegion(region *pokedexv1alpha1.Region, list []*pokedexv1alpha1.Pokemon) {
	renderRegion(b.out, region, list)
	b.entries = b.entries[:0]
	for _, p := range list {
		b.entries = append(b.entries, b.openPokemon(p.Id, ""))
	}
}

func (b *browser) showSettled(resp *pokedexv1alpha1.GetRegionSettledResponse) {
	renderSettled(b.out, resp)
	b.entries = b.entries[:0]
	for _, r := range resp.Results {
		// failed rows stay selectable so the detail lookup can be tried on its own
		b.entries = append(b.entries, b.openPokemon(r.Id, ""))
	}
}

func (b *browser) showDetail(p *pokedexv1alpha1.Pokemon, chain []string) {
	renderDetail(b.out, p, chain)
	b.entries = b.entries[:0]
	for _, name := range chain {
		b.entries = append(b.entries, b.openPokemon(0, name))
	}
}

func countFailed(results []*pokedexv1alpha1.LookupResult) int32 {
	var n int32
	for _, r := range results {
		if r.Error != nil {
			n++
		}
	}
	return n
}
