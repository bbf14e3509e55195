package spark

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// GetIntradayPrices fetches the live intraday price feed of a contract.
// The unit is optional; the API defaults it per contract when empty.
func GetIntradayPrices(client *httpclient.HttpClient, contract, unit string) (*IntradayFeed, error) {
	params := map[string]string{"contract": contract}
	if unit != "" {
		params["unit"] = unit
	}

	response, err := client.Get(IntradayLiveEndpoint, params, &intradayResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingIntraday)
	}

	feed := response.Result().(*intradayResponse)
	slog.Debug("Fetched intraday prices", "contract", contract, "ticks", len(feed.Data.Ticks))
	return &feed.Data, nil
}
