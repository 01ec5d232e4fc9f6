package integration

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"chebi-leaves/internal/adapters"
	"chebi-leaves/internal/core"
	"chebi-leaves/internal/types"
	"chebi-leaves/tests/testutil"
)

// TestGoldenLeaves resolves the fixture ontology served by testutil and
// compares the written tables against committed golden files. If a golden
// file does not exist yet (first run), it is written so it can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenLeaves(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	server := httptest.NewServer(testutil.ChEBIHandler())
	defer server.Close()

	resolver := core.NewLeafResolver(adapters.NewChEBIClientAdapter(server.URL, 5))
	report, err := resolver.ResolveLeaves(t.Context(), "33811")
	require.NoError(t, err)

	outDir := t.TempDir()
	goldenFiles := map[string]string{
		"leaves.tsv":  filepath.Join(outDir, "leaves.tsv"),
		"leaves.yaml": filepath.Join(outDir, "leaves.yaml"),
	}
	for name, actualPath := range goldenFiles {
		format := filepath.Ext(name)[1:]
		writer, err := adapters.NewLeafTableFileAdapter(format)
		require.NoError(t, err)
		require.NoError(t, writer.WriteLeaves(actualPath, report.Leaves))
	}

	for name, actualPath := range goldenFiles {
		t.Run(name, func(t *testing.T) {
			actual, err := os.ReadFile(actualPath)
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				// Golden file doesn't exist yet -- write it.
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			if filepath.Ext(name) == ".yaml" {
				assertSameYAMLRows(t, expected, actual)
				return
			}
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// assertSameYAMLRows compares YAML tables by content so scalar quoting and
// indentation choices of the encoder do not matter.
func assertSameYAMLRows(t *testing.T, expected []byte, actual []byte) {
	t.Helper()
	var want, got []map[string]string
	require.NoError(t, yaml.Unmarshal(expected, &want))
	require.NoError(t, yaml.Unmarshal(actual, &got))
	require.NotEmpty(t, want, "golden table is empty")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("golden mismatch for leaves.yaml (-want +got):\n%s", diff)
	}
}

// TestGoldenLeavesStructure checks properties of the fixture resolution that
// do not depend on exact output bytes.
func TestGoldenLeavesStructure(t *testing.T) {
	server := httptest.NewServer(testutil.ChEBIHandler())
	defer server.Close()

	resolver := core.NewLeafResolver(adapters.NewChEBIClientAdapter(server.URL, 5)).WithWorkers(2)
	report, err := resolver.ResolveLeaves(t.Context(), "CHEBI:33811")
	require.NoError(t, err)

	t.Run("only known relations", func(t *testing.T) {
		for _, leaf := range report.Leaves {
			assert.Contains(t, []types.RelationKind{types.RelationIsA, types.RelationHasRole}, leaf.Relation)
		}
	})

	t.Run("children order preserved", func(t *testing.T) {
		require.Len(t, report.Leaves, 2)
		assert.Equal(t, "CHEBI:16236", report.Leaves[0].ID)
		assert.Equal(t, "CHEBI:27732", report.Leaves[1].ID)
	})

	t.Run("structures attached", func(t *testing.T) {
		for _, leaf := range report.Leaves {
			assert.True(t, leaf.HasStructure(), "missing SMILES for %s", leaf.ID)
		}
	})

	t.Run("filtered child reported", func(t *testing.T) {
		require.Len(t, report.Dropped, 1)
		assert.Equal(t, "CHEBI:43176", report.Dropped[0].ID)
		assert.Equal(t, types.DropReasonRelation, report.Dropped[0].Reason)
	})
}
