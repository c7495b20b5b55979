package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	titleCaser = cases.Title(language.English)
)

// displayName turns an API name such as "mr-mime" into "Mr Mime"
func displayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderRegions(w io.Writer, regions []*pokedexv1alpha1.Region) {
	fmt.Fprintln(w, titleStyle.Render("Regions"))
	for i, r := range regions {
		fmt.Fprintf(w, "%s %-8s #%d-#%d\n", indexStyle.Render(fmt.Sprintf("%2d.", i+1)), r.Name, r.MinId, r.MaxId)
	}
}

func renderRegion(w io.Writer, region *pokedexv1alpha1.Region, list []*pokedexv1alpha1.Pokemon) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d)", region.GetName(), len(list))))
	for i, p := range list {
		fmt.Fprintf(w, "%s #%04d %s\n", indexStyle.Render(fmt.Sprintf("%3d.", i+1)), p.Id, displayName(p.Name))
	}
}

func renderSettled(w io.Writer, resp *pokedexv1alpha1.GetRegionSettledResponse) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d, %d failed)", resp.Region.GetName(), len(resp.Results), resp.Failed)))
	for i, r := range resp.Results {
		index := indexStyle.Render(fmt.Sprintf("%3d.", i+1))
		if r.Error != nil {
			fmt.Fprintf(w, "%s #%04d %s\n", index, r.Id, errorStyle.Render(r.Error.Code+": "+r.Error.Message))
			continue
		}
		fmt.Fprintf(w, "%s #%04d %s\n", index, r.Id, displayName(r.Pokemon.GetName()))
	}
}

func renderDetail(w io.Writer, p *pokedexv1alpha1.Pokemon, chain []string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("#%04d %s", p.GetId(), displayName(p.GetName()))))
	if p.SpriteUrl != "" {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Sprite:"), p.SpriteUrl)
	}
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Height:"), p.Height)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Weight:"), p.Weight)

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, displayName(t))
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Types:"), strings.Join(types, ", "))

	fmt.Fprintln(w, labelStyle.Render("Evolution:"))
	for i, name := range chain {
		fmt.Fprintf(w, "%s %s\n", indexStyle.Render(fmt.Sprintf("%2d.", i+1)), displayName(name))
	}
}

func renderPaths(w io.Writer, resp *pokedexv1alpha1.GetEvolutionChainResponse) {
	fmt.Fprintln(w, titleStyle.Render("Evolution of "+displayName(resp.Pokemon.GetName())))
	fmt.Fprintln(w, strings.Join(displayNames(resp.Sequence), " -> "))
	if len(resp.Paths) <= 1 {
		return
	}
	fmt.Fprintln(w, labelStyle.Render("All branches:"))
	for _, path := range resp.Paths {
		fmt.Fprintln(w, "  "+strings.Join(displayNames(path.Species), " -> "))
	}
}

func renderError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}

func displayNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = displayName(n)
	}
	return out
}
