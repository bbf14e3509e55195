package spark_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/spark"
	"github.com/spark-commodities/api-code-samples/internal/testutils"
)

var fobPortUuid = uuid.MustParse("003d3dfa-9291-4d50-8970-e814b8bb3be1")

func TestGetNetbackReference(t *testing.T) {
	_, client := setup(t, map[string]http.HandlerFunc{
		spark.NetbackReferenceEndpoint: testutils.JSONHandler(t, mockData, "testdata/netbacks-reference.json"),
	})

	reference, err := spark.GetNetbackReference(client)
	require.NoError(t, err)
	require.Len(t, reference.StaticData.FobPorts, 3)
	require.Equal(t, []string{"2024-04-09", "2024-04-08", "2024-04-05"}, reference.StaticData.SparkReleases)

	port := reference.StaticData.FobPorts[0]
	require.Equal(t, fobPortUuid, port.Uuid)
	require.Equal(t, "Sabine Pass", port.Name)
	require.Equal(t, []string{"cogh", "panama", "suez"}, port.AvailableViaPoints)

	require.Empty(t, reference.StaticData.FobPorts[2].AvailableViaPoints)
}

func TestGetNetbacks(t *testing.T) {
	tt := []struct {
		name        string
		releaseDate string
		viaPoint    string
	}{
		{name: "fob port only", releaseDate: "", viaPoint: ""},
		{name: "with release date", releaseDate: "2024-04-09", viaPoint: ""},
		{name: "with via point", releaseDate: "2024-04-09", viaPoint: "panama"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			check := func(req *http.Request) {
				query := req.URL.Query()
				require.Equal(t, fobPortUuid.String(), query.Get("fob-port"))
				if tc.releaseDate == "" {
					require.False(t, query.Has("release-date"))
				} else {
					require.Equal(t, tc.releaseDate, query.Get("release-date"))
				}
				if tc.viaPoint == "" {
					require.False(t, query.Has("via-point"))
				} else {
					require.Equal(t, tc.viaPoint, query.Get("via-point"))
				}
			}

			_, client := setup(t, map[string]http.HandlerFunc{
				spark.NetbacksEndpoint: fixtureHandler(t, "testdata/netbacks.json", check),
			})

			netbacks, err := spark.GetNetbacks(client, fobPortUuid, tc.releaseDate, tc.viaPoint)
			require.NoError(t, err)
			require.Equal(t, "Sabine Pass", netbacks.Name)
			require.Equal(t, "2024-04-09", netbacks.ReleaseDate)
			require.Len(t, netbacks.Netbacks, 2)

			month := netbacks.Netbacks[0]
			require.Equal(t, "2024-05-01", month.Load.Month)
			require.Equal(t, "8.42", month.Nea.Outright.UsdPerMMBtu)
			require.Equal(t, "-0.58", month.Nea.TtfBasis.UsdPerMMBtu)
			require.Equal(t, "8.15", month.Nwe.Outright.UsdPerMMBtu)
			require.Equal(t, "0.27", month.NeaMinusNwe.Outright.UsdPerMMBtu)
		})
	}
}

func TestGetNetbacksRejected(t *testing.T) {
	_, client := setup(t, map[string]http.HandlerFunc{
		spark.NetbacksEndpoint: func(rw http.ResponseWriter, req *http.Request) {
			http.Error(rw, `{"detail":"fob port not found"}`, http.StatusBadRequest)
		},
	})

	_, err := spark.GetNetbacks(client, fobPortUuid, "", "")
	require.ErrorContains(t, err, spark.ErrorGettingNetbacks)
	require.ErrorContains(t, err, "response status code: 400")
}
