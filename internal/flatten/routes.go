package flatten

import (
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// RouteCostRow is the tabular view of one delivery period of a route cost breakdown.
type RouteCostRow struct {
	Period          string
	PeriodStart     string
	PeriodEnd       string
	CostUsd         float64
	HireUsd         float64
	CostUsdPerMMBtu float64
}

// RouteCostRows flattens a route cost breakdown into one row per data point.
func RouteCostRows(costs *spark.RouteCosts) ([]RouteCostRow, error) {
	rows := make([]RouteCostRow, 0, len(costs.DataPoints))
	for _, point := range costs.DataPoints {
		period := point.DeliveryPeriod.Name

		row := RouteCostRow{
			Period:      period,
			PeriodStart: point.DeliveryPeriod.StartAt,
			PeriodEnd:   point.DeliveryPeriod.EndAt,
		}

		var err error
		if row.CostUsd, err = parsePrice(point.CostsInUsd.Total, period+" costsInUsd total"); err != nil {
			return nil, err
		}
		// Hire is not broken out for every route.
		if point.CostsInUsd.Hire != "" {
			if row.HireUsd, err = parsePrice(point.CostsInUsd.Hire, period+" costsInUsd hire"); err != nil {
				return nil, err
			}
		}
		if row.CostUsdPerMMBtu, err = parsePrice(point.CostsInUsdPerMmbtu.Total, period+" costsInUsdPerMmbtu total"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
