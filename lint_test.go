package tagsoup_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/tagsoup"
	"github.com/stretchr/testify/require"
)

// TestDumpGolden compares the Dumper output for every .html file in
// testdata/ with the .dump file next to it.
//
// Environment variable TAGSOUP_DUMP_TEST_FILES can be set to test only specific files:
//
//	TAGSOUP_DUMP_TEST_FILES=soup.html go test -run TestDumpGolden
func TestDumpGolden(t *testing.T) {
	only := map[string]struct{}{}
	if v := os.Getenv("TAGSOUP_DUMP_TEST_FILES"); v != "" {
		for _, f := range strings.Split(v, ",") {
			only[strings.TrimSpace(f)] = struct{}{}
		}
	}

	dir := "testdata"
	files, err := os.ReadDir(dir)
	require.NoError(t, err, "os.ReadDir should succeed")

	for _, fi := range files {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".html") {
			continue
		}
		if len(only) > 0 {
			if _, ok := only[fi.Name()]; !ok {
				continue
			}
		}

		fn := filepath.Join(dir, fi.Name())
		goldenfn := strings.TrimSuffix(fn, ".html") + ".dump"
		if _, err := os.Stat(goldenfn); err != nil {
			t.Logf("%s does not exist, skipping dump test...", goldenfn)
			continue
		}

		t.Run(fi.Name(), func(t *testing.T) {
			golden, err := os.ReadFile(goldenfn)
			require.NoError(t, err, "os.ReadFile should succeed for golden file")

			input, err := os.ReadFile(fn)
			require.NoError(t, err, "os.ReadFile should succeed for input file")

			r, err := tagsoup.NewReader(context.Background(), bytes.NewReader(input))
			require.NoError(t, err)
			defer r.Close()

			var output bytes.Buffer
			d := tagsoup.Dumper{}
			require.NoError(t, d.Dump(&output, r))

			actual := output.String()
			if actual != string(golden) {
				// Save the actual output to .err file for debugging
				if err := os.WriteFile(fn+".dump.err", output.Bytes(), 0600); err == nil {
					t.Logf("Actual output saved to %s", fn+".dump.err")
				}
			}
			require.Equal(t, string(golden), actual, "dump should match golden file for %s", fn)
		})
	}
}
