package cmd_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/spark-commodities/api-code-samples/cmd"
	"github.com/spark-commodities/api-code-samples/testutils"
)

// gorgonUuid matches the FoB port without via points in testdata/netbacks-reference.json.
const gorgonUuid = "2f7c3a64-98d0-4b03-a5c6-8de3f0e9b771"

func TestNetbacksCmd(t *testing.T) {
	testutils.SetupCredentialsEnv(t)

	rawFixture, err := os.ReadFile("testdata/netbacks.json")
	require.NoError(t, err)

	tt := []struct {
		name      string
		args      []string
		err       error
		out       string
		contains  []string
		calls     map[string]int
		endpoints []testutils.Endpoint
	}{
		{name: "list fob ports", args: []string{"--url", testutils.RootUrl}, contains: []string{
			testutils.FobPortUuidStr, "Sabine Pass", "cogh,panama,suez", "Gorgon",
		}, endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbackReferenceUrl, Data: "testdata/netbacks-reference.json", Code: http.StatusOK},
		}},
		{name: "all-via requires a fob port", args: []string{"--url", testutils.RootUrl, "--all-via"}, err: errors.New("all-via requires a FoB port")},
		{name: "invalid fob port", args: []string{"--url", testutils.RootUrl, "--all-via=false", "--fob-port", "not-a-uuid"}, err: errors.New("could not parse FoB port UUID: not-a-uuid")},
		{name: "invalid release date", args: []string{"--url", testutils.RootUrl, "--fob-port", testutils.FobPortUuidStr, "--release-date", "2024-4-9"}, err: errors.New("release date must be YYYY-MM-DD, got 2024-4-9")},
		{name: "curve at pinned release", args: []string{"--url", testutils.RootUrl, "--fob-port", testutils.FobPortUuidStr, "--release-date", testutils.ReleaseDate, "--via-point", "panama"}, contains: []string{
			"FoB port: Sabine Pass",
			"Release date: 2024-04-09",
			"2024-05-01", "8.42", "-0.58", "8.15", "-0.85", "0.27",
		}, calls: map[string]int{
			"GET " + testutils.NetbackReferenceUrl: 0,
			"GET " + testutils.NetbacksUrl:         1,
		}, endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbacksUrl, Data: "testdata/netbacks.json", Code: http.StatusOK},
		}},
		{name: "curve at latest release", args: []string{"--url", testutils.RootUrl, "--fob-port", testutils.FobPortUuidStr, "--release-date", "", "--via-point", ""}, contains: []string{
			"FoB port: Sabine Pass",
		}, calls: map[string]int{
			"GET " + testutils.NetbackReferenceUrl: 1,
			"GET " + testutils.NetbacksUrl:         1,
		}, endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbackReferenceUrl, Data: "testdata/netbacks-reference.json", Code: http.StatusOK},
			{Method: "GET", Url: testutils.NetbacksUrl, Data: "testdata/netbacks.json", Code: http.StatusOK},
		}},
		{name: "no via points to compare", args: []string{"--url", testutils.RootUrl, "--all-via", "--fob-port", gorgonUuid}, err: errors.New("has no via points to compare"), endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbackReferenceUrl, Data: "testdata/netbacks-reference.json", Code: http.StatusOK},
		}},
		{name: "compare all via points", args: []string{"--url", testutils.RootUrl, "--all-via", "--fob-port", testutils.FobPortUuidStr}, contains: []string{
			"NEA VIA COGH", "NEA VIA PANAMA", "NEA VIA SUEZ",
			"2024-05-01", "8.42",
		}, calls: map[string]int{
			"GET " + testutils.NetbackReferenceUrl: 1,
			"GET " + testutils.NetbacksUrl:         3,
		}, endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbackReferenceUrl, Data: "testdata/netbacks-reference.json", Code: http.StatusOK},
			{Method: "GET", Url: testutils.NetbacksUrl, Data: "testdata/netbacks.json", Code: http.StatusOK},
		}},
		{name: "raw", args: []string{"--url", testutils.RootUrl, "--all-via=false", "--fob-port", testutils.FobPortUuidStr, "--release-date", testutils.ReleaseDate, "--via-point", "panama", "--raw"}, out: strings.TrimSpace(string(rawFixture)), endpoints: []testutils.Endpoint{
			{Method: "POST", Url: testutils.TokenUrl, Data: "testdata/auth-token.json", Code: http.StatusCreated},
			{Method: "GET", Url: testutils.NetbacksUrl, Data: "testdata/netbacks.json", Code: http.StatusOK},
		}},
	}

	command := &cobra.Command{Use: "netbacks", PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: cmd.NetbacksCmdRunE}

	// Create a new resty client and inject it into the command context
	client := resty.New()
	ctx := context.WithValue(context.Background(), cmd.RestyClientKey, client)
	command.SetContext(ctx)

	// Enable http mocking on the resty client
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	cmd.SetupRootCmdFlags(command)
	cmd.SetupNetbacksCmdFlags(command)

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			for _, endpoint := range tc.endpoints {
				testutils.SetupMockResponder(t, endpoint.Method, endpoint.Url, endpoint.Data, endpoint.Code)
			}
			httpmock.ZeroCallCounters()

			out, err := testutils.Execute(t, command, tc.args...)

			if tc.err != nil {
				require.ErrorContains(t, err, tc.err.Error())
				return
			}

			require.NoError(t, err)
			if tc.out != "" {
				require.Equal(t, tc.out, out)
			}
			for _, want := range tc.contains {
				require.Contains(t, out, want)
			}

			info := httpmock.GetCallCountInfo()
			for key, count := range tc.calls {
				require.Equal(t, count, info[key], key)
			}
		})
	}
}
