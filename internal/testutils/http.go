package testutils

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// JSONHandler serves an embedded JSON fixture.
func JSONHandler(t *testing.T, mockData embed.FS, filePath string) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		data, err := mockData.ReadFile(filePath)
		require.NoError(t, err)
		rw.Header().Set("Content-Type", "application/json")
		_, err = rw.Write(data)
		require.NoError(t, err)
	}
}

// CreateHTTPTestServer creates a test server routing each pattern to its handler.
func CreateHTTPTestServer(routes map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	return httptest.NewServer(mux)
}
