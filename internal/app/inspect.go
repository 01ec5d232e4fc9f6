package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"chebi-leaves/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input path is required")
	}
	if s.TableReader == nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("leaf table reader is not configured")
	}
	leaves, err := s.TableReader.ReadLeaves(inputPath)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{LeafCount: len(leaves)}
	counts := map[types.RelationKind]int{}
	for _, leaf := range leaves {
		counts[leaf.Relation]++
		if !leaf.HasStructure() {
			result.MissingStructures++
			result.MissingIDs = append(result.MissingIDs, leaf.ID)
		}
	}
	for relation, count := range counts {
		result.Relations = append(result.Relations, InspectRelationSummary{Relation: relation, Count: count})
	}
	sort.Slice(result.Relations, func(i, j int) bool {
		return result.Relations[i].Relation < result.Relations[j].Relation
	})
	return result, nil
}
