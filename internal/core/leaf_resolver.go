package core

import (
	"context"
	"math"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"chebi-leaves/internal/ports"
	"chebi-leaves/internal/shared"
	"chebi-leaves/internal/types"
)

// DefaultMaxDepth resolves the direct children of the root only.
const DefaultMaxDepth = 1

// UnboundedDepth expands every container until no children remain.
const UnboundedDepth = -1

type LeafResolver struct {
	Ontology ports.OntologyPort
	MaxDepth int
	Workers  int
}

func NewLeafResolver(ontology ports.OntologyPort) LeafResolver {
	return LeafResolver{
		Ontology: ontology,
		MaxDepth: DefaultMaxDepth,
		Workers:  1,
	}
}

func (r LeafResolver) WithMaxDepth(depth int) LeafResolver {
	r.MaxDepth = depth
	return r
}

func (r LeafResolver) WithWorkers(workers int) LeafResolver {
	r.Workers = workers
	return r
}

// ResolveLeaves flattens the ontology below rootID into molecule-level
// leaves with structures attached. A root without children is its own leaf.
func (r LeafResolver) ResolveLeaves(ctx context.Context, rootID string) (types.LeafReport, error) {
	if r.Ontology == nil {
		return types.LeafReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("leaf resolver requires an ontology port")
	}
	root, err := shared.NormalizeChEBIID(rootID)
	if err != nil {
		return types.LeafReport{}, err
	}

	report := types.LeafReport{RootID: root}
	requireCanonicalID(ctx, root)
	children, err := r.Ontology.FetchChildren(ctx, root)
	if err != nil {
		return types.LeafReport{}, err
	}
	report.Dropped = append(report.Dropped, children.Dropped...)

	if children.Empty() {
		entity, err := r.Ontology.FetchEntity(ctx, root)
		if err != nil {
			return types.LeafReport{}, err
		}
		entity.ID = root
		report.Leaves = []types.OntologyEntity{entity}
		log.Ctx(ctx).Debug().Str("root", root).Msg("root is a leaf")
		return report, nil
	}

	walk := traversal{
		ontology: r.Ontology,
		maxDepth: normalizeDepth(r.MaxDepth),
		expanded: map[string]struct{}{root: {}},
	}
	candidates, err := walk.expand(ctx, children.Entities, 1)
	if err != nil {
		return types.LeafReport{}, err
	}
	report.Dropped = append(report.Dropped, walk.dropped...)

	leaves, err := r.resolveStructures(ctx, candidates)
	if err != nil {
		return types.LeafReport{}, err
	}
	report.Leaves = leaves
	log.Ctx(ctx).Debug().
		Str("root", root).
		Int("leaves", len(leaves)).
		Int("dropped", len(report.Dropped)).
		Msg("leaf resolution completed")
	return report, nil
}

type traversal struct {
	ontology ports.OntologyPort
	maxDepth int
	expanded map[string]struct{}
	dropped  []types.DroppedEntity
}

// expand keeps entities at the depth limit as leaves and replaces every
// shallower entity that has children with its own expansion. A container
// reached twice is expanded once, which also breaks cycles.
func (t *traversal) expand(ctx context.Context, entities []types.OntologyEntity, level int) ([]types.OntologyEntity, error) {
	if level >= t.maxDepth {
		return entities, nil
	}
	var leaves []types.OntologyEntity
	for _, entity := range entities {
		if _, seen := t.expanded[entity.ID]; seen {
			continue
		}
		requireCanonicalID(ctx, entity.ID)
		children, err := t.ontology.FetchChildren(ctx, entity.ID)
		if err != nil {
			return nil, err
		}
		t.dropped = append(t.dropped, children.Dropped...)
		if children.Empty() {
			leaves = append(leaves, entity)
			continue
		}
		t.expanded[entity.ID] = struct{}{}
		nested, err := t.expand(ctx, children.Entities, level+1)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, nested...)
	}
	return leaves, nil
}

func (r LeafResolver) resolveStructures(ctx context.Context, entities []types.OntologyEntity) ([]types.OntologyEntity, error) {
	resolved := make([]types.OntologyEntity, len(entities))
	for _, entity := range entities {
		requireCanonicalID(ctx, entity.ID)
	}
	if r.Workers <= 1 {
		for i, entity := range entities {
			leaf, err := r.Ontology.ResolveStructureFor(ctx, entity)
			if err != nil {
				return nil, err
			}
			resolved[i] = leaf
		}
		return resolved, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for i, entity := range entities {
		g.Go(func() error {
			leaf, err := r.Ontology.ResolveStructureFor(gctx, entity)
			if err != nil {
				return err
			}
			resolved[i] = leaf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// requireCanonicalID asserts that id is in "CHEBI:<digits>" form before it
// reaches a lookup. Ports drop malformed ids, so a failure here is a bug in
// the port implementation.
func requireCanonicalID(ctx context.Context, id string) {
	canonical := id
	if !shared.IsCanonicalChEBIID(id) {
		canonical = ""
	}
	assert.NotEmpty(ctx, canonical, "chebi id must be canonical before lookup: "+id)
}

func normalizeDepth(depth int) int {
	if depth < 0 {
		return math.MaxInt
	}
	if depth == 0 {
		return DefaultMaxDepth
	}
	return depth
}
