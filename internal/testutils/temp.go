package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTempDir creates a temporary directory and makes it the current working
// directory so that files the code reads from the working directory, such as
// .env, come from the test. The previous working directory is restored on cleanup.
func SetupTempDir(t *testing.T) string {
	oldWd, err := os.Getwd()
	require.NoError(t, err)

	tempDir := t.TempDir()
	err = os.Chdir(tempDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldWd))
	})

	return tempDir
}
