// Package pokemon holds the creature records read from PokeAPI
package pokemon

// Pokemon is a single creature record looked up by ID or name.
// Only the fields the screens read are decoded.
type Pokemon struct {
	ID     int
	Name   string
	Height int
	Weight int

	// SpriteURL is the front_default sprite, empty when PokeAPI has none
	SpriteURL string

	// Types are ordered by slot
	Types []string

	// SpeciesRef is the species resource URL
	SpeciesRef string
}

// Species is the taxonomic record that points at the evolution chain
type Species struct {
	Name              string
	EvolutionChainRef string
}

// EvolutionNode is one link of an evolution chain tree
type EvolutionNode struct {
	SpeciesName string
	EvolvesTo   []*EvolutionNode
}

// EvolutionSequence is the ordered list of species names along one chain path
type EvolutionSequence []string

// FirstChildPath walks from n taking only the first child at each level.
// It stops after maxDepth names and reports whether the walk reached a leaf.
func (n *EvolutionNode) FirstChildPath(maxDepth int) (EvolutionSequence, bool) {
	var seq EvolutionSequence
	for cur := n; cur != nil; {
		if len(seq) == maxDepth {
			return seq, false
		}
		seq = append(seq, cur.SpeciesName)
		if len(cur.EvolvesTo) == 0 {
			return seq, true
		}
		cur = cur.EvolvesTo[0]
	}
	return seq, true
}

// Paths returns every root-to-leaf path in child order, so the first entry
// is always the first-child path. Paths reaching maxDepth are cut there and
// reported through the second return value.
func (n *EvolutionNode) Paths(maxDepth int) ([]EvolutionSequence, bool) {
	if n == nil {
		return nil, true
	}

	var (
		paths    []EvolutionSequence
		complete = true
		walk     func(node *EvolutionNode, prefix EvolutionSequence)
	)
	walk = func(node *EvolutionNode, prefix EvolutionSequence) {
		path := append(append(EvolutionSequence{}, prefix...), node.SpeciesName)

		// nil links are skipped; a node left with none is a leaf
		children := make([]*EvolutionNode, 0, len(node.EvolvesTo))
		for _, child := range node.EvolvesTo {
			if child != nil {
				children = append(children, child)
			}
		}
		if len(children) == 0 {
			paths = append(paths, path)
			return
		}
		if len(path) == maxDepth {
			complete = false
			paths = append(paths, path)
			return
		}
		for _, child := range children {
			walk(child, path)
		}
	}
	walk(n, nil)

	return paths, complete
}
