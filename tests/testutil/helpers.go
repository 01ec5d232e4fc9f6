// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// ChEBIHandler serves a small fixed ontology: CHEBI:33811 has an "is a"
// child, a "has role" child and a "has part" child that must be filtered.
func ChEBIHandler() http.Handler {
	children := map[string]string{
		"CHEBI:33811": listElement("ethanol", "CHEBI:16236", "is a") +
			listElement("caffeine", "CHEBI:27732", "has role") +
			listElement("hydroxy group", "CHEBI:43176", "has part"),
	}
	smiles := map[string]string{
		"CHEBI:16236": "CCO",
		"CHEBI:27732": "Cn1cnc2n(C)c(=O)n(C)c(=O)c12",
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("chebiId")
		w.Header().Set("Content-Type", "text/xml")
		switch {
		case strings.HasSuffix(r.URL.Path, "getOntologyChildren"):
			fmt.Fprintf(w, "<getOntologyChildrenResponse><return>%s</return></getOntologyChildrenResponse>", children[id])
		case strings.HasSuffix(r.URL.Path, "getCompleteEntity"):
			body := ""
			if value, ok := smiles[id]; ok {
				body = fmt.Sprintf("<smiles>%s</smiles>", value)
			}
			fmt.Fprintf(w, "<getCompleteEntityResponse><return>%s</return></getCompleteEntityResponse>", body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func listElement(name string, id string, relation string) string {
	return fmt.Sprintf("<ListElement><chebiName>%s</chebiName><chebiId>%s</chebiId><type>%s</type></ListElement>", name, id, relation)
}
