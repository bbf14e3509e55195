package spark

import (
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// DefaultHistoryLimit is how many historical releases are fetched when no limit is given.
const DefaultHistoryLimit = 4

// GetLatestPriceRelease fetches the most recent price release of a contract.
func GetLatestPriceRelease(client *httpclient.HttpClient, ticker string) (*PriceRelease, error) {
	response, err := client.Get(GetLatestPriceReleaseEndpoint(ticker), nil, &latestPriceReleaseResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingPriceRelease)
	}

	release := response.Result().(*latestPriceReleaseResponse)
	slog.Debug("Fetched latest price release", "ticker", ticker, "releaseDate", release.Data.ReleaseDate)
	return &release.Data, nil
}

// GetPriceReleases fetches historical price releases of a contract, newest first.
// The limit is always sent; a zero offset is omitted from the query.
func GetPriceReleases(client *httpclient.HttpClient, ticker string, limit, offset int) ([]PriceRelease, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	params := map[string]string{"limit": strconv.Itoa(limit)}
	if offset > 0 {
		params["offset"] = strconv.Itoa(offset)
	}

	response, err := client.Get(GetPriceReleasesEndpoint(ticker), params, &priceReleasesResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingPriceReleases)
	}

	releases := response.Result().(*priceReleasesResponse)
	slog.Debug("Fetched price releases", "ticker", ticker, "count", len(releases.Data))
	return releases.Data, nil
}
