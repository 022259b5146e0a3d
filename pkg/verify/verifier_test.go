package verify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/safe-waters/docker-project/internal/testutils"
	"github.com/safe-waters/docker-project/pkg/generate"
	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/generate/format"
	"github.com/safe-waters/docker-project/pkg/generate/parse"
	"github.com/safe-waters/docker-project/pkg/kind"
	"github.com/safe-waters/docker-project/pkg/verify"
)

func TestVerifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name              string
		PathsToCreate     []string
		Contents          [][]byte
		ShouldFail        bool
		ShouldBeDifferent bool
	}{
		{
			Name:          "Up To Date",
			PathsToCreate: []string{"app.yml", "docker-compose.yml"},
			Contents: [][]byte{
				[]byte(testutils.ExampleAppConfig),
				[]byte(testutils.ExampleComposefile),
			},
		},
		{
			Name:          "Different Formatting",
			PathsToCreate: []string{"app.yml", "docker-compose.yml"},
			Contents: [][]byte{
				[]byte("services:\n  api:\n    image: api\n    deploy: {}\n"),
				[]byte("services: {api: {image: 'api'}}\n"),
			},
		},
		{
			Name:          "Stale Composefile",
			PathsToCreate: []string{"app.yml", "docker-compose.yml"},
			Contents: [][]byte{
				[]byte(testutils.ExampleAppConfig),
				[]byte("version: \"3\"\nservices: {}\n"),
			},
			ShouldFail:        true,
			ShouldBeDifferent: true,
		},
		{
			Name:          "Missing Composefile",
			PathsToCreate: []string{"app.yml"},
			Contents:      [][]byte{[]byte(testutils.ExampleAppConfig)},
			ShouldFail:    true,
		},
		{
			Name:          "Malformed Composefile",
			PathsToCreate: []string{"app.yml", "docker-compose.yml"},
			Contents: [][]byte{
				[]byte(testutils.ExampleAppConfig),
				[]byte("services: ["),
			},
			ShouldFail: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			tempDir := testutils.MakeTempDirInCurrentDir(t)
			defer os.RemoveAll(tempDir)

			testutils.WriteFilesToTempDir(
				t, tempDir, test.PathsToCreate, test.Contents,
			)

			collector, err := collect.NewPathCollector(
				kind.Configfile, tempDir, []string{"app.yml"},
				nil, nil, false,
			)
			if err != nil {
				t.Fatal(err)
			}

			generator, err := generate.NewGenerator(
				collector, parse.NewConfigParser(),
				format.NewComposefileFormatter(), nil,
				"docker-compose.yml", nil,
			)
			if err != nil {
				t.Fatal(err)
			}

			verifier, err := verify.NewVerifier(generator, nil)
			if err != nil {
				t.Fatal(err)
			}

			err = verifier.VerifyComposefiles(context.Background())

			if !test.ShouldFail {
				if err != nil {
					t.Fatal(err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error but did not get one")
			}

			var differentErr *verify.DifferentComposefileError

			if errors.As(err, &differentErr) != test.ShouldBeDifferent {
				t.Fatalf("unexpected error type: %v", err)
			}

			if test.ShouldBeDifferent &&
				differentErr.Path != filepath.Join(
					tempDir, "docker-compose.yml",
				) {
				t.Fatalf("unexpected path '%s'", differentErr.Path)
			}
		})
	}
}

func TestNewVerifier(t *testing.T) {
	t.Parallel()

	if _, err := verify.NewVerifier(nil, nil); err == nil {
		t.Fatal("expected an error but did not get one")
	}
}
