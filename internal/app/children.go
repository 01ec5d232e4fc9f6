package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"chebi-leaves/internal/shared"
)

func (s Service) Children(ctx context.Context, req ChildrenRequest) (ChildrenResult, error) {
	id, err := shared.NormalizeChEBIID(req.ChEBIID)
	if err != nil {
		return ChildrenResult{}, err
	}
	if s.Ontology == nil {
		return ChildrenResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ontology client is not configured")
	}
	children, err := s.Ontology.FetchChildren(ctx, id)
	if err != nil {
		return ChildrenResult{}, err
	}
	return ChildrenResult{
		ID:       id,
		Children: children.Entities,
		Dropped:  children.Dropped,
	}, nil
}
