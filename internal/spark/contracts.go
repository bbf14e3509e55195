package spark

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// GetContracts retrieves the contracts available to the current subscription.
func GetContracts(client *httpclient.HttpClient) ([]Contract, error) {
	response, err := client.Get(ContractsEndpoint, nil, &contractsResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingContracts)
	}

	contracts := response.Result().(*contractsResponse)
	slog.Debug("Fetched contracts", "count", len(contracts.Data))
	return contracts.Data, nil
}

// Tickers returns the ticker symbols of the given contracts, in API order.
func Tickers(contracts []Contract) []string {
	tickers := make([]string, 0, len(contracts))
	for _, contract := range contracts {
		tickers = append(tickers, contract.Id)
	}
	return tickers
}
