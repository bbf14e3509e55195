package spark

import (
	"encoding/json"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

// GetRaw fetches an endpoint and returns the JSON body exactly as the server
// sent it, with no decoding beyond the status check.
func GetRaw(client *httpclient.HttpClient, path string, params map[string]string) (json.RawMessage, error) {
	response, err := client.Get(path, params, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(response.Body()), nil
}
