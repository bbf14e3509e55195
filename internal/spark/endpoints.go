package spark

import (
	"strings"

	"github.com/google/uuid"
)

const (
	ContractsEndpoint          = "/v1.0/contracts/"
	LatestPriceReleaseEndpoint = "/v1.0/contracts/{ticker}/price-releases/latest/"
	PriceReleasesEndpoint      = "/v1.0/contracts/{ticker}/price-releases/"
	RoutesEndpoint             = "/v1.0/routes/"
	RouteEndpoint              = "/v1.0/routes/{uuid}"
	NetbackReferenceEndpoint   = "/v1.0/netbacks/reference-data/"
	NetbacksEndpoint           = "/v1.0/netbacks/"
	IntradayLiveEndpoint       = "/beta/intraday/live"
)

// GetLatestPriceReleaseEndpoint returns the latest price release endpoint for a contract.
func GetLatestPriceReleaseEndpoint(ticker string) string {
	return strings.Replace(LatestPriceReleaseEndpoint, "{ticker}", ticker, 1)
}

// GetPriceReleasesEndpoint returns the historical price releases endpoint for a contract.
func GetPriceReleasesEndpoint(ticker string) string {
	return strings.Replace(PriceReleasesEndpoint, "{ticker}", ticker, 1)
}

// GetRouteEndpoint returns the route detail endpoint for a route UUID.
func GetRouteEndpoint(routeUuid uuid.UUID) string {
	return strings.Replace(RouteEndpoint, "{uuid}", routeUuid.String(), 1)
}
