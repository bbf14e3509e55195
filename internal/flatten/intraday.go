package flatten

import (
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// TickRow is the tabular view of one intraday price observation.
type TickRow struct {
	At    string
	Price float64
}

// TickRows flattens an intraday feed into one row per tick.
func TickRows(feed *spark.IntradayFeed) ([]TickRow, error) {
	rows := make([]TickRow, 0, len(feed.Ticks))
	for _, tick := range feed.Ticks {
		price, err := parsePrice(tick.Price, "tick at "+tick.At)
		if err != nil {
			return nil, err
		}
		rows = append(rows, TickRow{At: tick.At, Price: price})
	}
	return rows, nil
}
