package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spark-commodities/api-code-samples/internal/auth"
	"github.com/spark-commodities/api-code-samples/internal/httpclient"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// ContextKey is the type of the keys commands look up in their context
type ContextKey string

// RestyClientKey is the context key tests use to inject a mocked resty client
const RestyClientKey ContextKey = "resty-client"

// CreateRestClient creates a new API client for the given URL. Requests are
// sent once; failed calls are reported, never retried.
func CreateRestClient(ctx context.Context, url string) *httpclient.HttpClient {
	slog.Info("Creating REST client...")
	if client, ok := ctx.Value(RestyClientKey).(*resty.Client); ok && client != nil {
		return httpclient.NewWithClient(client.SetBaseURL(url))
	}
	return httpclient.New(url)
}

// Authenticate resolves the client credentials, exchanges them for a bearer
// token and arms the client with it.
func Authenticate(client *httpclient.HttpClient, config Config) error {
	slog.Info("Authenticating...")
	credentials, err := auth.ResolveCredentials(config.Credentials)
	if err != nil {
		return errors.WithMessage(err, ErrorResolvingCredentials)
	}

	token, err := auth.FetchToken(client, credentials, config.Scopes)
	if err != nil {
		return errors.WithMessage(err, ErrorAuthenticating)
	}

	client.SetAuthToken(token.AccessToken)
	return nil
}

// printTable renders rows as tab-aligned columns.
func printTable(out io.Writer, header []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return w.Flush()
}

// printRaw fetches an endpoint and writes the body through untouched.
func printRaw(command *cobra.Command, client *httpclient.HttpClient, path string, params map[string]string) error {
	raw, err := spark.GetRaw(client, path, params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(command.OutOrStdout(), string(raw))
	return err
}

// formatPrice renders a price without trailing zero noise.
func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
