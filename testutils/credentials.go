package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/auth"
)

const (
	ClientId     = "2b7e1f04-585c-4bd7-96e4-0c3f166a9a79"
	ClientSecret = "8d5ef0a4c9b14ab29b2e17f5a6d20e27"
)

// SetupCredentialsEnv points the credential environment variables at dummy values.
func SetupCredentialsEnv(t *testing.T) {
	t.Setenv(auth.EnvClientId, ClientId)
	t.Setenv(auth.EnvClientSecret, ClientSecret)
}

// ClearCredentialsEnv blanks the credential environment variables so a test
// can exercise the failure path regardless of the host environment.
func ClearCredentialsEnv(t *testing.T) {
	t.Setenv(auth.EnvClientId, "")
	t.Setenv(auth.EnvClientSecret, "")
}

// WriteCredentialsFile writes a credentials CSV in the dashboard download
// format and returns its path.
func WriteCredentialsFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "credentials.csv")
	content := "clientId,clientSecret\n" + ClientId + "," + ClientSecret + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
