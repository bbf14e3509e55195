package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

func TestRouteCostRows(t *testing.T) {
	costs := &spark.RouteCosts{
		Name:        "Sabine Pass to Futtsu via Suez",
		ReleaseDate: "2024-04-09",
		DataPoints: []spark.RouteDataPoint{
			{
				DeliveryPeriod:     spark.DeliveryPeriod{Name: "M+1", StartAt: "2024-05-01", EndAt: "2024-05-31"},
				CostsInUsd:         spark.Costs{Total: "2845000", Hire: "1537500"},
				CostsInUsdPerMmbtu: spark.Costs{Total: "0.76"},
			},
			{
				DeliveryPeriod:     spark.DeliveryPeriod{Name: "M+2", StartAt: "2024-06-01", EndAt: "2024-06-30"},
				CostsInUsd:         spark.Costs{Total: "2910000", Hire: "1612500"},
				CostsInUsdPerMmbtu: spark.Costs{Total: "0.78"},
			},
		},
	}

	rows, err := flatten.RouteCostRows(costs)
	require.NoError(t, err)
	require.Equal(t, []flatten.RouteCostRow{
		{Period: "M+1", PeriodStart: "2024-05-01", PeriodEnd: "2024-05-31", CostUsd: 2845000, HireUsd: 1537500, CostUsdPerMMBtu: 0.76},
		{Period: "M+2", PeriodStart: "2024-06-01", PeriodEnd: "2024-06-30", CostUsd: 2910000, HireUsd: 1612500, CostUsdPerMMBtu: 0.78},
	}, rows)
}

func TestRouteCostRowsWithoutHire(t *testing.T) {
	costs := &spark.RouteCosts{
		DataPoints: []spark.RouteDataPoint{{
			DeliveryPeriod:     spark.DeliveryPeriod{Name: "M+1"},
			CostsInUsd:         spark.Costs{Total: "2845000"},
			CostsInUsdPerMmbtu: spark.Costs{Total: "0.76"},
		}},
	}

	rows, err := flatten.RouteCostRows(costs)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Zero(t, rows[0].HireUsd)
	require.Equal(t, float64(2845000), rows[0].CostUsd)
}

func TestRouteCostRowsMalformedCost(t *testing.T) {
	costs := &spark.RouteCosts{
		DataPoints: []spark.RouteDataPoint{{
			DeliveryPeriod:     spark.DeliveryPeriod{Name: "M+1"},
			CostsInUsd:         spark.Costs{Total: ", 2845000"},
			CostsInUsdPerMmbtu: spark.Costs{Total: "0.76"},
		}},
	}

	_, err := flatten.RouteCostRows(costs)
	require.ErrorContains(t, err, "malformed price")
	require.ErrorContains(t, err, "costsInUsd total")
}

func TestRouteCostRowsEmpty(t *testing.T) {
	rows, err := flatten.RouteCostRows(&spark.RouteCosts{})
	require.NoError(t, err)
	require.Empty(t, rows)
}
