package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chebi-leaves/internal/types"
)

var testLeaves = []types.OntologyEntity{
	{ID: "CHEBI:16236", Relation: types.RelationIsA, Name: "ethanol", Structure: "CCO"},
	{ID: "CHEBI:27732", Relation: types.RelationHasRole, Name: "caffeine", Structure: "Cn1cnc2n(C)c(=O)n(C)c(=O)c12"},
	{ID: "CHEBI:33811", Relation: types.RelationIsA, Name: "group, without structure"},
}

func TestLeafTableFileAdapterWritesTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.tsv")
	adapter, err := NewLeafTableFileAdapter("tsv")
	require.NoError(t, err)
	require.NoError(t, adapter.WriteLeaves(path, testLeaves))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "ChEBI ID\tType\tName\tSMILES\n" +
		"CHEBI:16236\tis a\tethanol\tCCO\n" +
		"CHEBI:27732\thas role\tcaffeine\tCn1cnc2n(C)c(=O)n(C)c(=O)c12\n" +
		"CHEBI:33811\tis a\tgroup, without structure\t\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("unexpected table content (-want +got):\n%s", diff)
	}
}

func TestLeafTableFileAdapterWritesHeaderForNoLeaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.tsv")
	require.NoError(t, LeafTableFileAdapter{}.WriteLeaves(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ChEBI ID\tType\tName\tSMILES\n", string(data))
}

func TestLeafTableRoundTrip(t *testing.T) {
	for _, format := range []string{"tsv", "yaml"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "results."+format)
			writer, err := NewLeafTableFileAdapter(format)
			require.NoError(t, err)
			require.NoError(t, writer.WriteLeaves(path, testLeaves))

			leaves, err := NewLeafTableReaderAdapter().ReadLeaves(path)
			require.NoError(t, err)
			if diff := cmp.Diff(testLeaves, leaves); diff != "" {
				t.Fatalf("unexpected leaves (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTableFormat(t *testing.T) {
	tests := []struct {
		input string
		want  types.TableFormat
	}{
		{input: "", want: types.TableFormatTSV},
		{input: "TSV", want: types.TableFormatTSV},
		{input: "yml", want: types.TableFormatYAML},
		{input: "yaml", want: types.TableFormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseTableFormat(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseTableFormat("parquet")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLeafTableFileAdapterRequiresPath(t *testing.T) {
	err := LeafTableFileAdapter{}.WriteLeaves(" ", testLeaves)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLeafTableReaderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		content  *string
		wantCode errbuilder.ErrCode
	}{
		{name: "missing", content: nil, wantCode: errbuilder.CodeNotFound},
		{name: "empty", content: ptr(""), wantCode: errbuilder.CodeInvalidArgument},
		{name: "bad header", content: ptr("id\ttype\tname\tsmiles\n"), wantCode: errbuilder.CodeInvalidArgument},
		{name: "short row", content: ptr("ChEBI ID\tType\tName\tSMILES\nCHEBI:1\tis a\n"), wantCode: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".tsv")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}
			_, err := NewLeafTableReaderAdapter().ReadLeaves(path)
			require.Error(t, err)
			if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected error code (-want +got):\n%s", diff)
			}
		})
	}
}

func ptr(value string) *string {
	return &value
}
