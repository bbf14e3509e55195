package testutils

import (
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

// Endpoint describes one mocked API endpoint backed by a JSON fixture.
type Endpoint struct {
	Method string
	Url    string
	Data   string
	Code   int
}

// SetupMockResponder registers an httpmock responder serving the given
// fixture. The fixture bytes are served untouched so raw passthrough tests
// can compare them byte for byte.
func SetupMockResponder(t *testing.T, method, url, dataFile string, code int) {
	t.Helper()

	if dataFile == "" {
		httpmock.RegisterResponder(method, url, httpmock.NewStringResponder(code, ""))
		return
	}

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)

	responder := httpmock.NewStringResponder(code, string(data)).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder(method, url, responder)
}
