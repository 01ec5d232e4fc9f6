package app

import (
	"chebi-leaves/internal/adapters"
	"chebi-leaves/internal/ports"
)

type Service struct {
	Ontology    ports.OntologyPort
	TableReader ports.LeafTableReaderPort
	TableWriter func(format string) (ports.LeafTablePort, error)
}

func NewService(endpoint string, timeoutSec int) Service {
	return Service{
		Ontology:    adapters.NewChEBIClientAdapter(endpoint, timeoutSec),
		TableReader: adapters.NewLeafTableReaderAdapter(),
		TableWriter: newLeafTableWriter,
	}
}

func newLeafTableWriter(format string) (ports.LeafTablePort, error) {
	return adapters.NewLeafTableFileAdapter(format)
}
