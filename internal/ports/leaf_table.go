package ports

import "chebi-leaves/internal/types"

type LeafTablePort interface {
	WriteLeaves(path string, leaves []types.OntologyEntity) error
}

type LeafTableReaderPort interface {
	ReadLeaves(path string) ([]types.OntologyEntity, error)
}
