package flatten

import (
	"fmt"
	"strconv"
)

// parsePrice converts a decimal string from the wire into a float64.
// Malformed values are an error, not a zero.
func parsePrice(value, field string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed price %q for %s", value, field)
	}
	return price, nil
}
