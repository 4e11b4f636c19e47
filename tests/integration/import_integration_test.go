package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphql-import/internal/app"
	"graphql-import/tests/testutil"
)

// TestGoldenImport resolves the sample fixtures end-to-end and compares
// the rendered schema against a committed golden file. If the golden
// file does not exist yet (first run), it is written so it can be
// committed.
//
// To update the golden file after an intentional change, delete
// testdata/golden/ and re-run the test.
func TestGoldenImport(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenPath := filepath.Join(root, "tests", "integration", "testdata", "golden", "merged.graphql")

	service := app.NewService()
	result, err := service.ImportSchema(t.Context(), app.ImportRequest{
		EntryPath:   filepath.Join(root, "fixtures", "schema", "app.graphql"),
		ModuleRoots: []string{filepath.Join(root, "fixtures", "modules")},
	})
	require.NoError(t, err)

	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(result.SDL), 0o644))
		t.Logf("golden file written: %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	if diff := cmp.Diff(string(want), result.SDL); diff != "" {
		t.Fatalf("rendered schema drifted from golden file (-want +got):\n%s", diff)
	}
}

func TestImportMergesAcrossDocuments(t *testing.T) {
	root := testutil.RepoRoot(t)

	service := app.NewService()
	result, err := service.ImportSchema(t.Context(), app.ImportRequest{
		EntryPath:   filepath.Join(root, "fixtures", "schema", "app.graphql"),
		ModuleRoots: []string{filepath.Join(root, "fixtures", "modules")},
	})
	require.NoError(t, err)

	// Five visits: entry, product, review via product's full import,
	// review again via the entry's Review.rating import, and the shared
	// scalar module.
	assert.Equal(t, 5, result.Documents)

	byName := map[string][]string{}
	for _, def := range result.Merged {
		if !def.Named() {
			continue
		}
		var fields []string
		for _, field := range def.Fields() {
			fields = append(fields, field.Name)
		}
		byName[def.Name] = fields
	}

	require.Contains(t, byName, "Query")
	require.Contains(t, byName, "Product")
	require.Contains(t, byName, "Review")
	require.Contains(t, byName, "DateTime")

	// Product's import pulls the full Review before the entry's
	// narrowed Review.rating projection, so the merged type keeps
	// every field.
	assert.ElementsMatch(t, []string{"rating", "body", "product", "createdAt"}, byName["Review"])
	assert.ElementsMatch(t, []string{"id", "name", "reviews"}, byName["Product"])
}

func TestImportWritesOutputFile(t *testing.T) {
	root := testutil.RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), "merged.graphql")

	service := app.NewService()
	result, err := service.ImportSchema(t.Context(), app.ImportRequest{
		EntryPath:   filepath.Join(root, "fixtures", "schema", "app.graphql"),
		ModuleRoots: []string{filepath.Join(root, "fixtures", "modules")},
		OutputPath:  outPath,
	})
	require.NoError(t, err)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, result.SDL, string(written))
}

func TestGraphReportsEdges(t *testing.T) {
	root := testutil.RepoRoot(t)

	service := app.NewService()
	result, err := service.Graph(t.Context(), app.GraphRequest{
		EntryPath:   filepath.Join(root, "fixtures", "schema", "app.graphql"),
		ModuleRoots: []string{filepath.Join(root, "fixtures", "modules")},
	})
	require.NoError(t, err)

	// app -> product, app -> review, app -> scalars, product -> review.
	// review -> scalars repeats the record already imported by the
	// entry, so it is suppressed.
	assert.Len(t, result.Edges, 4)
	assert.Equal(t, 5, result.Documents)
}

func TestImportMissingEntryFails(t *testing.T) {
	service := app.NewService()
	_, err := service.ImportSchema(t.Context(), app.ImportRequest{
		EntryPath: filepath.Join(t.TempDir(), "absent.graphql"),
	})
	require.Error(t, err)
}
