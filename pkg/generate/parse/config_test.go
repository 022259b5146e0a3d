package parse_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/safe-waters/docker-project/internal/testutils"
	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/generate/parse"
	"github.com/safe-waters/docker-project/pkg/kind"
	"github.com/safe-waters/docker-project/pkg/projector"
)

func TestConfigParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name       string
		Contents   []byte
		Expected   *projector.ParsedConfig
		ShouldFail bool
	}{
		{
			Name: "YAML",
			Contents: []byte(`
version: '3'
services:
  svc:
    build:
      context: .
      args:
        FOO: bar
    ports:
      - '80:80'
volumes:
  data:
    driver: local
`),
			Expected: &projector.ParsedConfig{
				Version: "3",
				Services: map[string]projector.ServiceSpec{
					"svc": {
						"build": map[string]interface{}{
							"context": ".",
							"args": map[string]interface{}{
								"FOO": "bar",
							},
						},
						"ports": []interface{}{"80:80"},
					},
				},
				Volumes: map[string]interface{}{
					"data": map[string]interface{}{"driver": "local"},
				},
			},
		},
		{
			Name: "JSON",
			Contents: []byte(`
{
	"version": "3",
	"services": {
		"svc": {
			"image": "busybox",
			"environment": {"PORT": ":8080"}
		}
	}
}
`),
			Expected: &projector.ParsedConfig{
				Version: "3",
				Services: map[string]projector.ServiceSpec{
					"svc": {
						"image": "busybox",
						"environment": map[string]interface{}{
							"PORT": ":8080",
						},
					},
				},
			},
		},
		{
			Name:     "Numeric Version",
			Contents: []byte("version: 3\n"),
			Expected: &projector.ParsedConfig{Version: "3"},
		},
		{
			Name:     "Empty",
			Contents: []byte(""),
			Expected: &projector.ParsedConfig{},
		},
		{
			Name: "Service Is Not A Mapping",
			Contents: []byte(
				"services:\n  api:\n    build: ./api\n  web: oops\n  db:\n",
			),
			Expected: &projector.ParsedConfig{
				Services: map[string]projector.ServiceSpec{
					"api": {"build": "./api"},
					"web": nil,
					"db":  nil,
				},
			},
		},
		{
			Name: "Services And Volumes Are Not Mappings",
			Contents: []byte(
				"version: [3]\nservices: oops\nvolumes:\n  - data\n",
			),
			Expected: &projector.ParsedConfig{},
		},
		{
			Name:     "Decimal Version",
			Contents: []byte("version: 3.0\n"),
			Expected: &projector.ParsedConfig{Version: "3.0"},
		},
		{
			Name:       "Malformed",
			Contents:   []byte("services: [svc"),
			ShouldFail: true,
		},
		{
			Name:       "Not A Mapping",
			Contents:   []byte("oops"),
			ShouldFail: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			tempDir := testutils.MakeTempDirInCurrentDir(t)
			defer os.RemoveAll(tempDir)

			paths := testutils.WriteFilesToTempDir(
				t, tempDir, []string{"app.yml"}, [][]byte{test.Contents},
			)

			pathCh := make(chan *collect.Path, 1)
			pathCh <- &collect.Path{Kind: kind.Configfile, Val: paths[0]}
			close(pathCh)

			done := make(chan struct{})
			defer close(done)

			var got []*parse.Config

			for config := range parse.NewConfigParser().ParseFiles(
				pathCh, done,
			) {
				got = append(got, config)
			}

			if len(got) != 1 {
				t.Fatalf("expected 1 config, got %d", len(got))
			}

			if test.ShouldFail {
				if got[0].Err == nil {
					t.Fatal("expected an error but did not get one")
				}

				return
			}

			if got[0].Err != nil {
				t.Fatal(got[0].Err)
			}

			if got[0].Path != filepath.Join(tempDir, "app.yml") {
				t.Fatalf("unexpected path '%s'", got[0].Path)
			}

			testutils.AssertDeepEqual(t, test.Expected, got[0].Config)
		})
	}
}

func TestConfigParserPathErr(t *testing.T) {
	t.Parallel()

	pathErr := errors.New("collect failed")

	pathCh := make(chan *collect.Path, 1)
	pathCh <- &collect.Path{Kind: kind.Configfile, Err: pathErr}
	close(pathCh)

	done := make(chan struct{})
	defer close(done)

	for config := range parse.NewConfigParser().ParseFiles(pathCh, done) {
		if !errors.Is(config.Err, pathErr) {
			t.Fatalf("expected err '%v', got '%v'", pathErr, config.Err)
		}
	}
}
