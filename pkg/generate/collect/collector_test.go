package collect_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/safe-waters/docker-project/internal/testutils"
	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/kind"
)

func TestPathCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name          string
		DefaultPaths  []string
		ManualPaths   []string
		Globs         []string
		Recursive     bool
		ShouldFail    bool
		Expected      []string
		PathsToCreate []string
	}{
		{
			Name:          "Default Path Exists",
			DefaultPaths:  []string{"app.yml", "app.yaml"},
			PathsToCreate: []string{"app.yaml"},
			Expected:      []string{"app.yaml"},
		},
		{
			Name:         "Default Path Does Not Exist",
			DefaultPaths: []string{"app.yml"},
		},
		{
			Name:          "Do Not Use Default Paths If Other Methods Chosen",
			DefaultPaths:  []string{"app.yml"},
			ManualPaths:   []string{"app-manual.yml"},
			Expected:      []string{"app-manual.yml"},
			PathsToCreate: []string{"app.yml", "app-manual.yml"},
		},
		{
			Name:          "Manual Paths",
			ManualPaths:   []string{"app-manual.yml"},
			Expected:      []string{"app-manual.yml"},
			PathsToCreate: []string{"app-manual.yml"},
		},
		{
			Name:        "Manual Path Does Not Exist",
			ManualPaths: []string{"app-manual.yml"},
			ShouldFail:  true,
		},
		{
			Name:          "Globs",
			Globs:         []string{"app-*.yml"},
			Expected:      []string{"app-glob.yml"},
			PathsToCreate: []string{"app-glob.yml"},
		},
		{
			Name:          "Duplicate Paths",
			ManualPaths:   []string{"app-manual.yml", "app-manual.yml"},
			Globs:         []string{"app-*.yml"},
			Expected:      []string{"app-manual.yml"},
			PathsToCreate: []string{"app-manual.yml"},
		},
		{
			Name:         "Recursive",
			DefaultPaths: []string{"app.yml"},
			Recursive:    true,
			Expected: []string{
				"app.yml",
				filepath.Join("api", "app.yml"),
				filepath.Join("web", "nested", "app.yml"),
			},
			PathsToCreate: []string{
				"app.yml",
				filepath.Join("api", "app.yml"),
				filepath.Join("web", "nested", "app.yml"),
				filepath.Join("web", "other.yml"),
				filepath.Join("node_modules", "pkg", "app.yml"),
				filepath.Join(".git", "app.yml"),
			},
		},
		{
			Name:         "Default Path Outside Of Base Directory",
			DefaultPaths: []string{filepath.Join("..", "..", "app.yml")},
			ShouldFail:   true,
		},
		{
			Name:        "Manual Path Outside Of Base Directory",
			ManualPaths: []string{filepath.Join("..", "..", "app.yml")},
			ShouldFail:  true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			tempDir := testutils.MakeTempDirInCurrentDir(t)
			defer os.RemoveAll(tempDir)

			testutils.MakeParentDirsInTempDirFromFilePaths(
				t, tempDir, test.PathsToCreate,
			)
			testutils.WriteFilesToTempDir(
				t, tempDir, test.PathsToCreate,
				make([][]byte, len(test.PathsToCreate)),
			)

			var expected []string

			for _, path := range test.Expected {
				expected = append(expected, filepath.Join(tempDir, path))
			}

			collector, err := collect.NewPathCollector(
				kind.Configfile, tempDir, test.DefaultPaths,
				test.ManualPaths, test.Globs, test.Recursive,
			)
			if err != nil {
				t.Fatal(err)
			}

			var got []string

			done := make(chan struct{})
			defer close(done)

			for path := range collector.CollectPaths(done) {
				if path.Err != nil {
					err = path.Err
					break
				}

				if path.Kind != kind.Configfile {
					t.Fatalf(
						"expected kind '%s', got '%s'",
						kind.Configfile, path.Kind,
					)
				}

				got = append(got, path.Val)
			}

			if test.ShouldFail {
				if err == nil {
					t.Fatal("expected an error but did not get one")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			sort.Strings(expected)
			sort.Strings(got)

			if diff := cmp.Diff(expected, got); diff != "" {
				t.Fatalf("unexpected paths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPathCollector(t *testing.T) {
	t.Parallel()

	collector, err := collect.NewPathCollector(
		kind.Configfile, ".", []string{"app.yml"}, nil, nil, true,
	)
	if err != nil {
		t.Fatal(err)
	}

	if collector.Kind() != kind.Configfile {
		t.Fatalf(
			"expected kind '%s', got '%s'", kind.Configfile, collector.Kind(),
		)
	}

	if _, err := collect.NewPathCollector(
		kind.Configfile, ".", nil, nil, nil, true,
	); err == nil {
		t.Fatal("expected an error for recursive without default paths")
	}

	if _, err := collect.NewPathCollector(
		kind.Configfile, "..", []string{"app.yml"}, nil, nil, false,
	); err == nil {
		t.Fatal("expected an error for a base dir outside the cwd")
	}
}
