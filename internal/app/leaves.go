package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"chebi-leaves/internal/core"
	"chebi-leaves/internal/shared"
)

// Leaves resolves the leaf molecules below the requested node and writes
// them as a table. Nothing is written when resolution fails.
func (s Service) Leaves(ctx context.Context, req LeavesRequest) (LeavesResult, error) {
	rootID, err := shared.NormalizeChEBIID(req.ChEBIID)
	if err != nil {
		return LeavesResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return LeavesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	if s.TableWriter == nil {
		return LeavesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("leaf table writer is not configured")
	}
	writer, err := s.TableWriter(req.Format)
	if err != nil {
		return LeavesResult{}, err
	}

	resolver := core.NewLeafResolver(s.Ontology)
	if req.MaxDepth != 0 {
		resolver = resolver.WithMaxDepth(req.MaxDepth)
	}
	if req.Workers > 0 {
		resolver = resolver.WithWorkers(req.Workers)
	}
	report, err := resolver.ResolveLeaves(ctx, rootID)
	if err != nil {
		return LeavesResult{}, err
	}
	if err := writer.WriteLeaves(outputPath, report.Leaves); err != nil {
		return LeavesResult{}, err
	}

	missing := 0
	for _, leaf := range report.Leaves {
		if !leaf.HasStructure() {
			missing++
		}
	}
	return LeavesResult{
		RootID:            report.RootID,
		OutputPath:        outputPath,
		LeafCount:         len(report.Leaves),
		MissingStructures: missing,
		Dropped:           report.Dropped,
	}, nil
}
