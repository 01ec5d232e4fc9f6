package adapters

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"chebi-leaves/internal/ports"
	"chebi-leaves/internal/types"
)

type LeafTableReaderAdapter struct{}

func NewLeafTableReaderAdapter() LeafTableReaderAdapter {
	return LeafTableReaderAdapter{}
}

// ReadLeaves loads a table written by LeafTableFileAdapter. Files ending in
// .yaml or .yml are read as YAML, everything else as TSV.
func (a LeafTableReaderAdapter) ReadLeaves(path string) ([]types.OntologyEntity, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("leaf table not found").
			WithCause(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeLeavesYAML(content)
	default:
		return decodeLeavesTSV(content)
	}
}

func decodeLeavesTSV(content []byte) ([]types.OntologyEntity, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = '\t'
	reader.FieldsPerRecord = len(types.LeafTableHeader)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("leaf table is empty")
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid leaf table format").
			WithCause(err)
	}
	for i, column := range types.LeafTableHeader {
		if strings.TrimSpace(header[i]) != column {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid leaf table header")
		}
	}
	var leaves []types.OntologyEntity
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid leaf table format").
				WithCause(err)
		}
		leaves = append(leaves, types.OntologyEntity{
			ID:        strings.TrimSpace(record[0]),
			Relation:  types.RelationKind(strings.TrimSpace(record[1])),
			Name:      record[2],
			Structure: strings.TrimSpace(record[3]),
		})
	}
	return leaves, nil
}

func decodeLeavesYAML(content []byte) ([]types.OntologyEntity, error) {
	var rows []leafRow
	if err := yaml.Unmarshal(content, &rows); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse leaf table yaml").
			WithCause(err)
	}
	leaves := make([]types.OntologyEntity, 0, len(rows))
	for _, row := range rows {
		leaves = append(leaves, types.OntologyEntity{
			ID:        row.ID,
			Relation:  types.RelationKind(row.Type),
			Name:      row.Name,
			Structure: row.SMILES,
		})
	}
	return leaves, nil
}

var _ ports.LeafTableReaderPort = LeafTableReaderAdapter{}
