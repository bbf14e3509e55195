package spark_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
	"github.com/spark-commodities/api-code-samples/internal/testutils"
)

//go:embed testdata
var mockData embed.FS

const ticker = "spark25s"

func setup(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *httpclient.HttpClient) {
	server := testutils.CreateHTTPTestServer(routes)
	t.Cleanup(server.Close)
	return server, httpclient.New(server.URL)
}

// fixtureHandler serves an embedded fixture after running the given request check.
func fixtureHandler(t *testing.T, filePath string, check func(req *http.Request)) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		if check != nil {
			check(req)
		}
		data, err := mockData.ReadFile(filePath)
		require.NoError(t, err)
		rw.Header().Set("Content-Type", "application/json")
		_, err = rw.Write(data)
		require.NoError(t, err)
	}
}

func notFoundHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		http.Error(rw, `{"detail":"not found"}`, http.StatusNotFound)
	}
}
