package flatten

import (
	"fmt"

	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// PriceRow is the tabular view of one delivery period of one price release.
type PriceRow struct {
	ReleaseDate  string
	ContractId   string
	Period       string
	PeriodStart  string
	PeriodEnd    string
	UsdPerDay    float64
	UsdPerDayMin float64
	UsdPerDayMax float64
	UsdPerMMBtu  float64
}

// PriceReleaseRows flattens a price release into one row per data point.
func PriceReleaseRows(release *spark.PriceRelease) ([]PriceRow, error) {
	var rows []PriceRow
	for _, group := range release.Data {
		for _, point := range group.DataPoints {
			row, err := priceRow(release, point)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// PriceHistoryRows flattens several releases into one table, preserving the
// newest-first order the API returns them in.
func PriceHistoryRows(releases []spark.PriceRelease) ([]PriceRow, error) {
	var rows []PriceRow
	for i := range releases {
		releaseRows, err := PriceReleaseRows(&releases[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, releaseRows...)
	}
	return rows, nil
}

func priceRow(release *spark.PriceRelease, point spark.PriceDataPoint) (PriceRow, error) {
	period := point.DeliveryPeriod.Name

	perDay, ok := point.DerivedPrices[spark.UnitUsdPerDay]
	if !ok {
		return PriceRow{}, fmt.Errorf("data point %q has no %s prices", period, spark.UnitUsdPerDay)
	}
	perMMBtu, ok := point.DerivedPrices[spark.UnitUsdPerMMBtu]
	if !ok {
		return PriceRow{}, fmt.Errorf("data point %q has no %s prices", period, spark.UnitUsdPerMMBtu)
	}

	row := PriceRow{
		ReleaseDate: release.ReleaseDate,
		ContractId:  release.ContractId,
		Period:      period,
		PeriodStart: point.DeliveryPeriod.StartAt,
		PeriodEnd:   point.DeliveryPeriod.EndAt,
	}

	var err error
	if row.UsdPerDay, err = parsePrice(perDay.Spark, period+" usdPerDay spark"); err != nil {
		return PriceRow{}, err
	}
	if row.UsdPerDayMin, err = parsePrice(perDay.SparkMin, period+" usdPerDay sparkMin"); err != nil {
		return PriceRow{}, err
	}
	if row.UsdPerDayMax, err = parsePrice(perDay.SparkMax, period+" usdPerDay sparkMax"); err != nil {
		return PriceRow{}, err
	}
	if row.UsdPerMMBtu, err = parsePrice(perMMBtu.Spark, period+" usdPerMMBtu spark"); err != nil {
		return PriceRow{}, err
	}
	return row, nil
}
