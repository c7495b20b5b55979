// Package regions is the static table of regions and their pokedex ID ranges
package regions

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// maxSuggestDistance bounds how far a typo can be from a region name and
// still be offered as a suggestion
const maxSuggestDistance = 3

// Region is a named, inclusive range of national pokedex IDs
type Region struct {
	Name  string `yaml:"name"`
	MinID int    `yaml:"min_id"`
	MaxID int    `yaml:"max_id"`
}

// Size returns the number of IDs in the range
func (r Region) Size() int {
	return r.MaxID - r.MinID + 1
}

// Contains reports whether id falls in the range
func (r Region) Contains(id int) bool {
	return id >= r.MinID && id <= r.MaxID
}

// Validate checks the range is positive and ordered
func (r Region) Validate() error {
	return ValidateRange(r.MinID, r.MaxID)
}

// ValidateRange rejects non-positive or inverted ID ranges
func ValidateRange(minID, maxID int) error {
	if minID < 1 {
		return errors.InvalidArgumentf("range start must be positive, got %d", minID).
			WithFailure(errors.FailureConfig)
	}
	if minID > maxID {
		return errors.InvalidArgumentf("range start %d is after range end %d", minID, maxID).
			WithFailure(errors.FailureConfig)
	}
	return nil
}

var defaultRegions = []Region{
	{Name: "Kanto", MinID: 1, MaxID: 151},
	{Name: "Johto", MinID: 152, MaxID: 251},
	{Name: "Hoenn", MinID: 252, MaxID: 386},
	{Name: "Sinnoh", MinID: 387, MaxID: 493},
	{Name: "Unova", MinID: 494, MaxID: 649},
	{Name: "Kalos", MinID: 650, MaxID: 721},
	{Name: "Alola", MinID: 722, MaxID: 809},
	{Name: "Galar", MinID: 810, MaxID: 898},
	{Name: "Paldea", MinID: 899, MaxID: 1010},
}

// Catalog is an immutable, ordered set of regions keyed by case-insensitive name
type Catalog struct {
	regions []Region
	byKey   map[string]int
}

// New builds a catalog, rejecting empty names, duplicates and invalid ranges
func New(regions []Region) (*Catalog, error) {
	if len(regions) == 0 {
		return nil, errors.InvalidArgument("at least one region is required").
			WithFailure(errors.FailureConfig)
	}

	c := &Catalog{
		regions: make([]Region, 0, len(regions)),
		byKey:   make(map[string]int, len(regions)),
	}
	for i, r := range regions {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			return nil, errors.InvalidArgumentf("region %d has no name", i).
				WithFailure(errors.FailureConfig)
		}
		if err := r.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid region %s", r.Name)
		}
		key := normalize(r.Name)
		if _, exists := c.byKey[key]; exists {
			return nil, errors.InvalidArgumentf("duplicate region %s", r.Name).
				WithFailure(errors.FailureConfig)
		}
		c.byKey[key] = len(c.regions)
		c.regions = append(c.regions, r)
	}

	return c, nil
}

// Default returns the built-in nine-region table, Kanto through Paldea
func Default() *Catalog {
	c, err := New(defaultRegions)
	if err != nil {
		panic(fmt.Sprintf("default region table is invalid: %v", err))
	}
	return c
}

// fileFormat is the YAML layout accepted by LoadFile
type fileFormat struct {
	Regions []Region `yaml:"regions"`
}

// Parse builds a catalog from YAML of the form:
//
//	regions:
//	  - name: Kanto
//	    min_id: 1
//	    max_id: 151
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse region file").
			WithFailure(errors.FailureConfig)
	}
	return New(f.Regions)
}

// LoadFile reads a YAML region table from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // nolint:gosec // path comes from operator config
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read region file %s", path).
			WithFailure(errors.FailureConfig)
	}
	return Parse(data)
}

// List returns the regions in declaration order
func (c *Catalog) List() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Lookup finds a region by name, ignoring case and surrounding space
func (c *Catalog) Lookup(name string) (Region, error) {
	if idx, ok := c.byKey[normalize(name)]; ok {
		return c.regions[idx], nil
	}

	err := errors.InvalidArgumentf("unknown region %q", name).
		WithFailure(errors.FailureConfig).
		WithMeta("region", name)
	if suggestion := c.suggest(name); suggestion != "" {
		err = err.WithMeta("suggestion", suggestion)
	}
	return Region{}, err
}

// RegionFor returns the region containing id
func (c *Catalog) RegionFor(id int) (Region, bool) {
	for _, r := range c.regions {
		if r.Contains(id) {
			return r, true
		}
	}
	return Region{}, false
}

func (c *Catalog) suggest(name string) string {
	target := normalize(name)
	if target == "" {
		return ""
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, r := range c.regions {
		if dist := levenshtein.ComputeDistance(target, normalize(r.Name)); dist < bestDist {
			best, bestDist = r.Name, dist
		}
	}
	return best
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
