package testutils

import (
	"crypto/rand"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ExampleAppConfig is an app config with two buildable services,
// 'api' and 'db', and two services, 'web' and 'auth', that are not.
const ExampleAppConfig = `
version: '3'
services:
  api:
    build: ./api
    ports:
      - '8081:8080'
    restart: on-failure
    links:
      - auth
      - db
    depends_on:
      - auth
      - db
    environment:
      PORT: ':8080'
      MYSQL_DB: test
      MYSQL_USER: test
      MYSQL_PASSWORD: test
      MYSQL_HOST: test
    deploy: Should not be in config
  web:
    ports:
      - '8080:3000'
    restart: on-failure
    links:
      - auth
    depends_on:
      - auth
    volumes:
      - ./web:/usr/src/app
      - /usr/src/app/node_modules
    command: npm run dev
  auth:
    ports:
      - '8080:8080'
    restart: on-failure
    volumes:
      - ./auth:/usr/src/app
      - /usr/src/app/node_modules
    environment:
      PORT: '8080'
      MYSQL_DB: test
      MYSQL_USER: test
      MYSQL_PASSWORD: test
      MYSQL_HOST: test
      NODE_ENV: production
    links:
      - db
    depends_on:
      - db
  db:
    image: mysql:5.7
    ports:
      - '3306:3306'
    restart: on-failure
    volumes:
      - ./setup/db:/docker-entrypoint-initdb.d
      - mysql-data:/var/lib/mysql
    environment:
      MYSQL_DATABASE: test
      MYSQL_USER: test
      MYSQL_PASSWORD: test
      MYSQL_ROOT_PASSWORD: test
      MYSQL_ALLOW_EMPTY_PASSWORD: 'yes'
      MYSQL_ROOT_HOST: '%'
volumes:
  mysql-data:
`

// ExampleComposefile is the composefile generated from ExampleAppConfig.
const ExampleComposefile = `version: "3"
services:
  api:
    build: ./api
    depends_on:
    - auth
    - db
    environment:
      MYSQL_DB: test
      MYSQL_HOST: test
      MYSQL_PASSWORD: test
      MYSQL_USER: test
      PORT: :8080
    links:
    - auth
    - db
    ports:
    - 8081:8080
    restart: on-failure
  db:
    environment:
      MYSQL_ALLOW_EMPTY_PASSWORD: "yes"
      MYSQL_DATABASE: test
      MYSQL_PASSWORD: test
      MYSQL_ROOT_HOST: '%'
      MYSQL_ROOT_PASSWORD: test
      MYSQL_USER: test
    image: mysql:5.7
    ports:
    - 3306:3306
    restart: on-failure
    volumes:
    - ./setup/db:/docker-entrypoint-initdb.d
    - mysql-data:/var/lib/mysql
volumes:
  mysql-data: null
`

func AssertDeepEqual(t *testing.T, expected interface{}, got interface{}) {
	t.Helper()

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

func AssertFilesEqual(t *testing.T, expected [][]byte, got []string) {
	t.Helper()

	if len(expected) != len(got) {
		t.Fatalf("expected %d contents, got %d", len(expected), len(got))
	}

	for i := range expected {
		gotContents, err := ioutil.ReadFile(got[i])
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(
			string(expected[i]), string(gotContents),
		); diff != "" {
			t.Fatalf("unexpected contents in '%s' (-want +got):\n%s",
				got[i], diff,
			)
		}
	}
}

func MakeDir(t *testing.T, dirPath string) {
	t.Helper()

	err := os.MkdirAll(dirPath, 0777) // nolint: gomnd
	if err != nil {
		t.Fatal(err)
	}
}

// MakeTempDirInCurrentDir creates a randomly named directory in the current
// working directory, as collected paths may not leave it.
func MakeTempDirInCurrentDir(t *testing.T) string {
	t.Helper()

	const tempLen = 16

	b := make([]byte, tempLen)

	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}

	uuid := fmt.Sprintf("%x-%x-%x-%x-%x",
		b[0:4], b[4:6], b[6:8], b[8:10], b[10:],
	)
	MakeDir(t, uuid)

	return uuid
}

func MakeParentDirsInTempDirFromFilePaths(
	t *testing.T,
	tempDir string,
	paths []string,
) {
	t.Helper()

	for _, p := range paths {
		dir, _ := filepath.Split(p)
		MakeDir(t, filepath.Join(tempDir, dir))
	}
}

func WriteFilesToTempDir(
	t *testing.T,
	tempDir string,
	fileNames []string,
	fileContents [][]byte,
) []string {
	t.Helper()

	if len(fileNames) != len(fileContents) {
		t.Fatalf(
			"different number of names and contents: %d names, %d contents",
			len(fileNames), len(fileContents))
	}

	fullPaths := make([]string, len(fileNames))

	for i, name := range fileNames {
		fullPath := filepath.Join(tempDir, name)

		if err := ioutil.WriteFile(
			fullPath, fileContents[i], 0777, // nolint: gomnd
		); err != nil {
			t.Fatal(err)
		}

		fullPaths[i] = fullPath
	}

	return fullPaths
}
