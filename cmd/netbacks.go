package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/httpclient"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// netbacksCmd represents the netbacks command
var netbacksCmd = &cobra.Command{
	Use:   "netbacks",
	Short: "List netback FoB ports or fetch the netback curve of one port.",
	Long: `Without flags the netbacks command lists every FoB port netbacks are
computed for, with its UUID and the canal via points it can be routed through.

With --fob-port it fetches the netback curve of that port: the NEA and NWE
netbacks per loading month, outright and as TTF basis, plus their spread.
The release date defaults to the most recent one; --via-point selects a
specific routing and --all-via compares the NEA outright of every available
via point side by side.`,
	RunE: NetbacksCmdRunE,
}

func NetbacksCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	netbacksConfig := LoadNetbacksConfigFromCLI()
	slog.Debug("args", "netbacks-config", netbacksConfig)
	if err := netbacksConfig.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if netbacksConfig.FobPort == "" {
		return listFobPorts(cmd, client, config.Raw)
	}
	if netbacksConfig.AllVia {
		return compareNetbacks(cmd, client, netbacksConfig)
	}
	return netbackCurve(cmd, client, netbacksConfig, config.Raw)
}

func init() {
	SetupNetbacksCmdFlags(netbacksCmd)
	rootCmd.AddCommand(netbacksCmd)
}

func SetupNetbacksCmdFlags(command *cobra.Command) {
	command.Flags().String("fob-port", "", "UUID of the FoB port to fetch netbacks for")
	if err := viper.BindPFlag("netbacks-fob-port", command.Flags().Lookup("fob-port")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("via-point", "", "Canal via point to route through (e.g. cogh, panama, suez)")
	if err := viper.BindPFlag("netbacks-via-point", command.Flags().Lookup("via-point")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("release-date", "", "Release date to compute netbacks at (YYYY-MM-DD)")
	if err := viper.BindPFlag("netbacks-release-date", command.Flags().Lookup("release-date")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Bool("all-via", false, "Compare the NEA outright netback of every available via point")
	if err := viper.BindPFlag("netbacks-all-via", command.Flags().Lookup("all-via")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

func listFobPorts(cmd *cobra.Command, client *httpclient.HttpClient, raw bool) error {
	if raw {
		return printRaw(cmd, client, spark.NetbackReferenceEndpoint, nil)
	}

	reference, err := spark.GetNetbackReference(client)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(reference.StaticData.FobPorts))
	for _, port := range reference.StaticData.FobPorts {
		rows = append(rows, []string{
			port.Uuid.String(),
			port.Name,
			strings.Join(port.AvailableViaPoints, ","),
		})
	}
	return printTable(cmd.OutOrStdout(), []string{"UUID", "NAME", "VIA POINTS"}, rows)
}

func netbackCurve(cmd *cobra.Command, client *httpclient.HttpClient, netbacksConfig NetbacksConfig, raw bool) error {
	releaseDate, err := netbackReleaseDate(client, netbacksConfig)
	if err != nil {
		return err
	}

	fobPort := uuid.MustParse(netbacksConfig.FobPort)

	if raw {
		params := map[string]string{"fob-port": fobPort.String()}
		if releaseDate != "" {
			params["release-date"] = releaseDate
		}
		if netbacksConfig.ViaPoint != "" {
			params["via-point"] = netbacksConfig.ViaPoint
		}
		return printRaw(cmd, client, spark.NetbacksEndpoint, params)
	}

	netbacks, err := spark.GetNetbacks(client, fobPort, releaseDate, netbacksConfig.ViaPoint)
	if err != nil {
		return err
	}

	rows, err := flatten.NetbackRows(netbacks)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "FoB port: %s\nRelease date: %s\n\n", netbacks.Name, netbacks.ReleaseDate); err != nil {
		return err
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Month,
			formatPrice(row.NeaOutright),
			formatPrice(row.NeaTtfBasis),
			formatPrice(row.NweOutright),
			formatPrice(row.NweTtfBasis),
			formatPrice(row.SpreadOutright),
			formatPrice(row.SpreadTtfBasis),
		})
	}
	header := []string{"MONTH", "NEA", "NEA TTF", "NWE", "NWE TTF", "NEA-NWE", "NEA-NWE TTF"}
	return printTable(cmd.OutOrStdout(), header, cells)
}

// compareNetbacks fetches the netback curve once per available via point and
// lines the NEA outrights up month by month. Requests are sequential.
func compareNetbacks(cmd *cobra.Command, client *httpclient.HttpClient, netbacksConfig NetbacksConfig) error {
	reference, err := spark.GetNetbackReference(client)
	if err != nil {
		return err
	}

	fobPort := uuid.MustParse(netbacksConfig.FobPort)
	viaPoints, err := availableViaPoints(reference, fobPort)
	if err != nil {
		return err
	}

	releaseDate := netbacksConfig.ReleaseDate
	if releaseDate == "" && len(reference.StaticData.SparkReleases) > 0 {
		releaseDate = reference.StaticData.SparkReleases[0]
		slog.Info("Using latest release date", "releaseDate", releaseDate)
	}

	byVia := make(map[string]*spark.Netbacks, len(viaPoints))
	for _, via := range viaPoints {
		netbacks, err := spark.GetNetbacks(client, fobPort, releaseDate, via)
		if err != nil {
			return err
		}
		byVia[via] = netbacks
	}

	rows, err := flatten.CompareNetbacks(viaPoints, byVia)
	if err != nil {
		return err
	}

	header := []string{"MONTH"}
	for _, via := range viaPoints {
		header = append(header, "NEA VIA "+strings.ToUpper(via))
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cell := []string{row.Month}
		for _, via := range viaPoints {
			cell = append(cell, formatPrice(row.NeaByVia[via]))
		}
		cells = append(cells, cell)
	}
	return printTable(cmd.OutOrStdout(), header, cells)
}

// netbackReleaseDate resolves the release date to query at, falling back to
// the latest one the reference data reports.
func netbackReleaseDate(client *httpclient.HttpClient, netbacksConfig NetbacksConfig) (string, error) {
	if netbacksConfig.ReleaseDate != "" {
		return netbacksConfig.ReleaseDate, nil
	}

	reference, err := spark.GetNetbackReference(client)
	if err != nil {
		return "", err
	}

	if len(reference.StaticData.SparkReleases) == 0 {
		return "", nil
	}

	releaseDate := reference.StaticData.SparkReleases[0]
	slog.Info("Using latest release date", "releaseDate", releaseDate)
	return releaseDate, nil
}

// availableViaPoints returns the via points of one FoB port from the
// reference data.
func availableViaPoints(reference *spark.NetbackReference, fobPort uuid.UUID) ([]string, error) {
	for _, port := range reference.StaticData.FobPorts {
		if port.Uuid == fobPort {
			if len(port.AvailableViaPoints) == 0 {
				return nil, fmt.Errorf("FoB port %s has no via points to compare", port.Name)
			}
			return port.AvailableViaPoints, nil
		}
	}
	return nil, fmt.Errorf("FoB port %s not found in reference data", fobPort)
}
