package testutil

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Update rewrites golden files from the current output when set.
var Update = flag.Bool("update", false, "update .golden.json files")

// RunGoldenTest runs exec against every *.input.json file in dir and compares
// the result with the sibling *.golden.json file.
func RunGoldenTest[In any, Out any](
	t *testing.T,
	dir string,
	exec func(input In) Out,
) {
	t.Helper()

	inputFiles, err := filepath.Glob(filepath.Join(dir, "*.input.json"))
	require.NoError(t, err)

	if len(inputFiles) == 0 {
		t.Fatalf("no input files found in %s", dir)
	}

	for _, inputPath := range inputFiles {
		name := strings.TrimSuffix(filepath.Base(inputPath), ".input.json")

		t.Run(name, func(t *testing.T) {
			var input In
			readJSON(t, inputPath, &input)

			got := exec(input)

			goldenPath := strings.Replace(inputPath, ".input.json", ".golden.json", 1)

			if *Update && os.Getenv("CI") == "true" {
				t.Fatal("golden file updates are not allowed in CI")
			}

			if *Update {
				writeGolden(t, goldenPath, got)

				return
			}

			var want Out
			readJSON(t, goldenPath, &want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf(
					"mismatch (-want +got):\n%s\n\n"+
						"If this change is intentional, run:\n"+
						" go test ./... -args -update\n",
					diff,
				)
			}
		})
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func writeGolden[T any](t *testing.T, path string, result T) {
	t.Helper()

	var old T

	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &old)

		if diff := cmp.Diff(old, result); diff != "" {
			t.Logf("updating golden %s:\n%s", path, diff)
		}
	} else {
		t.Logf("creating golden %s", path)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(out, '\n'), 0o600))
}
