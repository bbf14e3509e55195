package spark

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// GetRoutes retrieves the route catalog and the release dates priced for it.
func GetRoutes(client *httpclient.HttpClient) (*RouteBook, error) {
	response, err := client.Get(RoutesEndpoint, nil, &routesResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingRoutes)
	}

	book := response.Result().(*routesResponse)
	slog.Debug("Fetched routes", "count", len(book.Data.Routes), "releaseDates", len(book.Data.SparkReleaseDates))
	return &book.Data, nil
}

// GetRouteCosts fetches the cost breakdown of one route. An empty releaseDate
// asks the API for the latest release.
func GetRouteCosts(client *httpclient.HttpClient, routeUuid uuid.UUID, releaseDate string) (*RouteCosts, error) {
	params := map[string]string{}
	if releaseDate != "" {
		params["release-date"] = releaseDate
	}

	response, err := client.Get(GetRouteEndpoint(routeUuid), params, &routeCostsResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingRouteCosts)
	}

	costs := response.Result().(*routeCostsResponse)
	slog.Debug("Fetched route costs", "route", routeUuid, "name", costs.Data.Name)
	return &costs.Data, nil
}
