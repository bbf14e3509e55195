package flatten

import (
	"fmt"

	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// NetbackRow is the tabular view of one loading month of a netback curve.
type NetbackRow struct {
	Month          string
	NeaOutright    float64
	NeaTtfBasis    float64
	NweOutright    float64
	NweTtfBasis    float64
	SpreadOutright float64
	SpreadTtfBasis float64
}

// NetbackRows flattens a netback curve into one row per loading month.
func NetbackRows(netbacks *spark.Netbacks) ([]NetbackRow, error) {
	rows := make([]NetbackRow, 0, len(netbacks.Netbacks))
	for _, month := range netbacks.Netbacks {
		row := NetbackRow{Month: month.Load.Month}

		var err error
		if row.NeaOutright, err = parsePrice(month.Nea.Outright.UsdPerMMBtu, row.Month+" nea outright"); err != nil {
			return nil, err
		}
		if row.NeaTtfBasis, err = parsePrice(month.Nea.TtfBasis.UsdPerMMBtu, row.Month+" nea ttfBasis"); err != nil {
			return nil, err
		}
		if row.NweOutright, err = parsePrice(month.Nwe.Outright.UsdPerMMBtu, row.Month+" nwe outright"); err != nil {
			return nil, err
		}
		if row.NweTtfBasis, err = parsePrice(month.Nwe.TtfBasis.UsdPerMMBtu, row.Month+" nwe ttfBasis"); err != nil {
			return nil, err
		}
		if row.SpreadOutright, err = parsePrice(month.NeaMinusNwe.Outright.UsdPerMMBtu, row.Month+" neaMinusNwe outright"); err != nil {
			return nil, err
		}
		if row.SpreadTtfBasis, err = parsePrice(month.NeaMinusNwe.TtfBasis.UsdPerMMBtu, row.Month+" neaMinusNwe ttfBasis"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NetbackComparisonRow lines up the NEA outright netback of every via point
// for one loading month.
type NetbackComparisonRow struct {
	Month    string
	NeaByVia map[string]float64
}

// CompareNetbacks merges per-via netback curves into one comparison table.
// The order slice decides which via points participate; every curve must
// cover the same loading months.
func CompareNetbacks(order []string, byVia map[string]*spark.Netbacks) ([]NetbackComparisonRow, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("no via points to compare")
	}

	first, ok := byVia[order[0]]
	if !ok {
		return nil, fmt.Errorf("missing netbacks for via point %q", order[0])
	}

	rows := make([]NetbackComparisonRow, 0, len(first.Netbacks))
	for i, month := range first.Netbacks {
		row := NetbackComparisonRow{
			Month:    month.Load.Month,
			NeaByVia: make(map[string]float64, len(order)),
		}

		for _, via := range order {
			netbacks, ok := byVia[via]
			if !ok {
				return nil, fmt.Errorf("missing netbacks for via point %q", via)
			}
			if len(netbacks.Netbacks) != len(first.Netbacks) {
				return nil, fmt.Errorf("via point %q covers %d months, expected %d", via, len(netbacks.Netbacks), len(first.Netbacks))
			}

			entry := netbacks.Netbacks[i]
			if entry.Load.Month != row.Month {
				return nil, fmt.Errorf("via point %q month %q does not line up with %q", via, entry.Load.Month, row.Month)
			}

			value, err := parsePrice(entry.Nea.Outright.UsdPerMMBtu, row.Month+" nea outright via "+via)
			if err != nil {
				return nil, err
			}
			row.NeaByVia[via] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
