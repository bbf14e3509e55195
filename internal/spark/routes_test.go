package spark_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/spark"
	"github.com/spark-commodities/api-code-samples/internal/testutils"
)

var routeUuid = uuid.MustParse("64a2b8ac-8a50-4df9-9a3e-1e2b03a6e9d5")

func TestGetRoutes(t *testing.T) {
	_, client := setup(t, map[string]http.HandlerFunc{
		spark.RoutesEndpoint: testutils.JSONHandler(t, mockData, "testdata/routes.json"),
	})

	book, err := spark.GetRoutes(client)
	require.NoError(t, err)
	require.Len(t, book.Routes, 2)
	require.Equal(t, []string{"2024-04-09", "2024-04-08", "2024-04-05"}, book.SparkReleaseDates)

	route := book.Routes[0]
	require.Equal(t, routeUuid, route.Uuid)
	require.Equal(t, "suez", route.Via)
	require.Equal(t, "Sabine Pass", route.LoadPort.Name)
	require.Equal(t, "Gulf Coast", route.LoadPort.Region)
	require.Equal(t, "Futtsu", route.DischargePort.Name)
	require.Equal(t, "North East Asia", route.DischargePort.Region)
}

func TestGetRouteCosts(t *testing.T) {
	tt := []struct {
		name         string
		releaseDate  string
		expectAbsent bool
	}{
		{name: "explicit release date", releaseDate: "2024-04-09"},
		{name: "empty release date omitted", releaseDate: "", expectAbsent: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			check := func(req *http.Request) {
				query := req.URL.Query()
				if tc.expectAbsent {
					require.False(t, query.Has("release-date"))
				} else {
					require.Equal(t, tc.releaseDate, query.Get("release-date"))
				}
			}

			_, client := setup(t, map[string]http.HandlerFunc{
				spark.GetRouteEndpoint(routeUuid): fixtureHandler(t, "testdata/route-costs.json", check),
			})

			costs, err := spark.GetRouteCosts(client, routeUuid, tc.releaseDate)
			require.NoError(t, err)
			require.Equal(t, "Sabine Pass to Futtsu via Suez", costs.Name)
			require.Equal(t, "2024-04-09", costs.ReleaseDate)
			require.Len(t, costs.DataPoints, 2)

			point := costs.DataPoints[0]
			require.Equal(t, "M+1", point.DeliveryPeriod.Name)
			require.Equal(t, "2845000", point.CostsInUsd.Total)
			require.Equal(t, "1537500", point.CostsInUsd.Hire)
			require.Equal(t, "0.76", point.CostsInUsdPerMmbtu.Total)
		})
	}
}

func TestGetRouteCostsUnknownRoute(t *testing.T) {
	unknown := uuid.MustParse("1b946f3e-4dc8-4acd-97e9-1b8a1fd3f012")

	_, client := setup(t, map[string]http.HandlerFunc{
		spark.GetRouteEndpoint(unknown): notFoundHandler(),
	})

	_, err := spark.GetRouteCosts(client, unknown, "")
	require.ErrorContains(t, err, spark.ErrorGettingRouteCosts)
	require.ErrorContains(t, err, "response status code: 404")
}
