package adapters

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"chebi-leaves/internal/ports"
	"chebi-leaves/internal/types"
)

type LeafTableFileAdapter struct {
	Format types.TableFormat
}

func NewLeafTableFileAdapter(format string) (LeafTableFileAdapter, error) {
	parsed, err := ParseTableFormat(format)
	if err != nil {
		return LeafTableFileAdapter{}, err
	}
	return LeafTableFileAdapter{Format: parsed}, nil
}

func ParseTableFormat(value string) (types.TableFormat, error) {
	switch types.TableFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.TableFormatTSV:
		return types.TableFormatTSV, nil
	case types.TableFormatYAML, "yml":
		return types.TableFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported table format: %s", value))
	}
}

// WriteLeaves writes one row per leaf in the given order.
func (a LeafTableFileAdapter) WriteLeaves(path string, leaves []types.OntologyEntity) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	var content []byte
	var err error
	switch a.Format {
	case types.TableFormatYAML:
		content, err = encodeLeavesYAML(leaves)
	default:
		content, err = encodeLeavesTSV(leaves)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode leaf table").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write leaf table").
			WithCause(err)
	}
	return nil
}

func encodeLeavesTSV(leaves []types.OntologyEntity) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = '\t'
	if err := writer.Write(types.LeafTableHeader); err != nil {
		return nil, err
	}
	for _, leaf := range leaves {
		if err := writer.Write([]string{leaf.ID, string(leaf.Relation), leaf.Name, leaf.Structure}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeLeavesYAML(leaves []types.OntologyEntity) ([]byte, error) {
	rows := make([]leafRow, 0, len(leaves))
	for _, leaf := range leaves {
		rows = append(rows, leafRow{
			ID:     leaf.ID,
			Type:   string(leaf.Relation),
			Name:   leaf.Name,
			SMILES: leaf.Structure,
		})
	}
	return yaml.Marshal(rows)
}

type leafRow struct {
	ID     string `yaml:"chebi_id"`
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	SMILES string `yaml:"smiles"`
}

var _ ports.LeafTablePort = LeafTableFileAdapter{}
