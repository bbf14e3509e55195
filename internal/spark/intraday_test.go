package spark_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/spark"
)

func TestGetIntradayPrices(t *testing.T) {
	tt := []struct {
		name string
		unit string
	}{
		{name: "default unit", unit: ""},
		{name: "explicit unit", unit: "usdPerDay"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			check := func(req *http.Request) {
				query := req.URL.Query()
				require.Equal(t, ticker, query.Get("contract"))
				if tc.unit == "" {
					require.False(t, query.Has("unit"))
				} else {
					require.Equal(t, tc.unit, query.Get("unit"))
				}
			}

			_, client := setup(t, map[string]http.HandlerFunc{
				spark.IntradayLiveEndpoint: fixtureHandler(t, "testdata/intraday.json", check),
			})

			feed, err := spark.GetIntradayPrices(client, ticker, tc.unit)
			require.NoError(t, err)
			require.Equal(t, "spark25s", feed.ContractId)
			require.Equal(t, "usdPerDay", feed.Unit)
			require.Equal(t, "2024-04-09T14:32:05Z", feed.UpdatedAt)
			require.Len(t, feed.Ticks, 3)
			require.Equal(t, "2024-04-09T13:05:00Z", feed.Ticks[0].At)
			require.Equal(t, "51000", feed.Ticks[0].Price)
		})
	}
}

func TestGetIntradayPricesRejected(t *testing.T) {
	_, client := setup(t, map[string]http.HandlerFunc{
		spark.IntradayLiveEndpoint: func(rw http.ResponseWriter, req *http.Request) {
			http.Error(rw, `{"detail":"contract not available"}`, http.StatusForbidden)
		},
	})

	_, err := spark.GetIntradayPrices(client, "spark999", "")
	require.ErrorContains(t, err, spark.ErrorGettingIntraday)
	require.ErrorContains(t, err, "response status code: 403")
}
