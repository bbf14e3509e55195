package spark

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// GetNetbackReference retrieves the netbacks reference data: the FoB ports
// netbacks are computed for and the release dates they exist at.
func GetNetbackReference(client *httpclient.HttpClient) (*NetbackReference, error) {
	response, err := client.Get(NetbackReferenceEndpoint, nil, &netbackReferenceResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingNetbackReference)
	}

	reference := response.Result().(*netbackReferenceResponse)
	slog.Debug("Fetched netback reference data",
		"fobPorts", len(reference.Data.StaticData.FobPorts),
		"releases", len(reference.Data.StaticData.SparkReleases))
	return &reference.Data, nil
}

// GetNetbacks fetches the netback curve of one FoB port. releaseDate and
// viaPoint are optional; empty values are omitted and the API falls back to
// the latest release and the default routing.
func GetNetbacks(client *httpclient.HttpClient, fobPort uuid.UUID, releaseDate, viaPoint string) (*Netbacks, error) {
	params := map[string]string{"fob-port": fobPort.String()}
	if releaseDate != "" {
		params["release-date"] = releaseDate
	}
	if viaPoint != "" {
		params["via-point"] = viaPoint
	}

	response, err := client.Get(NetbacksEndpoint, params, &netbacksResponse{})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorGettingNetbacks)
	}

	netbacks := response.Result().(*netbacksResponse)
	slog.Debug("Fetched netbacks", "fobPort", fobPort, "via", viaPoint, "months", len(netbacks.Data.Netbacks))
	return &netbacks.Data, nil
}
