package generate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/safe-waters/docker-project/cmd/generate"
	"github.com/safe-waters/docker-project/internal/testutils"
)

// nolint: paralleltest
func TestGenerateCmd(t *testing.T) {
	tempDir := testutils.MakeTempDirInCurrentDir(t)
	defer os.RemoveAll(tempDir)

	testutils.MakeParentDirsInTempDirFromFilePaths(
		t, tempDir, []string{filepath.Join("api", "app.yml")},
	)
	testutils.WriteFilesToTempDir(
		t, tempDir,
		[]string{"app.yml", filepath.Join("api", "app.yml")},
		[][]byte{
			[]byte(testutils.ExampleAppConfig),
			[]byte("services:\n  api:\n    build: .\n    deploy: {}\n"),
		},
	)

	generateCmd, err := generate.NewGenerateCmd()
	if err != nil {
		t.Fatal(err)
	}

	generateCmd.SetArgs([]string{
		"--base-dir", tempDir,
		"--configfile-recursive",
		"--tempdir", tempDir,
	})

	if err := generateCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	testutils.AssertFilesEqual(
		t,
		[][]byte{
			[]byte(testutils.ExampleComposefile),
			[]byte("services:\n  api:\n    build: .\n"),
		},
		[]string{
			filepath.Join(tempDir, "docker-compose.yml"),
			filepath.Join(tempDir, "api", "docker-compose.yml"),
		},
	)
}

func TestGenerateCmdTempDirDefault(t *testing.T) {
	t.Parallel()

	generateCmd, err := generate.NewGenerateCmd()
	if err != nil {
		t.Fatal(err)
	}

	// Temporary files are renamed over their targets, so by default they are
	// written in the current working directory rather than os.TempDir().
	if got := generateCmd.Flags().Lookup("tempdir").DefValue; got != "" {
		t.Fatalf("expected an empty default tempdir, got '%s'", got)
	}
}
