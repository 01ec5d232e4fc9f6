package app

import "chebi-leaves/internal/types"

type LeavesRequest struct {
	ChEBIID    string
	OutputPath string
	Format     string
	MaxDepth   int
	Workers    int
}

type LeavesResult struct {
	RootID            string
	OutputPath        string
	LeafCount         int
	MissingStructures int
	Dropped           []types.DroppedEntity
}

type ChildrenRequest struct {
	ChEBIID string
}

type ChildrenResult struct {
	ID       string
	Children []types.OntologyEntity
	Dropped  []types.DroppedEntity
}

type InspectRequest struct {
	InputPath string
}

type InspectRelationSummary struct {
	Relation types.RelationKind
	Count    int
}

type InspectResult struct {
	LeafCount         int
	MissingStructures int
	Relations         []InspectRelationSummary
	MissingIDs        []string
}
