package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFile returns the path of a file under testdata.
func testFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	_, err := os.Stat(path)
	require.NoError(t, err, "test file not found")
	return path
}

// resetFlags puts every flag back to its default between cases.
func resetFlags() {
	configPath = ""
	verbose = false
	sanitize = false
	scripting = false
	treeHTML = false
	queryTag = ""
	queryKind = ""
	queryClass = ""
	queryWithin = ""
}

// run calls fn with a buffer standing in for stdout.
func run(t *testing.T, fn func(w *bytes.Buffer) error) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := fn(&buf)
	return buf.String(), err
}
