package ports

import (
	"context"

	"chebi-leaves/internal/types"
)

type OntologyPort interface {
	FetchChildren(ctx context.Context, id string) (types.Children, error)
	FetchStructure(ctx context.Context, id string) (string, bool, error)
	FetchEntity(ctx context.Context, id string) (types.OntologyEntity, error)
	ResolveStructureFor(ctx context.Context, entity types.OntologyEntity) (types.OntologyEntity, error)
}
