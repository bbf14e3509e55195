package cmd

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/httpclient"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List freight routes or fetch the cost breakdown of one route.",
	Long: `Without flags the routes command lists every route Spark assesses,
with its UUID, load port, discharge port and via point.

With --uuid it fetches the cost breakdown of that route. The release date
defaults to the most recent one the API reports; use --release-date to pin
an older release.`,
	RunE: RoutesCmdRunE,
}

func RoutesCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	routesConfig := LoadRoutesConfigFromCLI()
	slog.Debug("args", "routes-config", routesConfig)
	if err := routesConfig.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if routesConfig.UUID == "" {
		return listRoutes(cmd, client, config.Raw)
	}
	return routeCosts(cmd, client, routesConfig, config.Raw)
}

func init() {
	SetupRoutesCmdFlags(routesCmd)
	rootCmd.AddCommand(routesCmd)
}

func SetupRoutesCmdFlags(command *cobra.Command) {
	command.Flags().String("uuid", "", "UUID of the route to fetch the cost breakdown for")
	if err := viper.BindPFlag("routes-uuid", command.Flags().Lookup("uuid")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("release-date", "", "Release date to price the route at (YYYY-MM-DD)")
	if err := viper.BindPFlag("routes-release-date", command.Flags().Lookup("release-date")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

func listRoutes(cmd *cobra.Command, client *httpclient.HttpClient, raw bool) error {
	if raw {
		return printRaw(cmd, client, spark.RoutesEndpoint, nil)
	}

	book, err := spark.GetRoutes(client)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(book.Routes))
	for _, route := range book.Routes {
		rows = append(rows, []string{
			route.Uuid.String(),
			route.LoadPort.Name,
			route.DischargePort.Name,
			route.Via,
		})
	}
	return printTable(cmd.OutOrStdout(), []string{"UUID", "LOAD", "DISCHARGE", "VIA"}, rows)
}

func routeCosts(cmd *cobra.Command, client *httpclient.HttpClient, routesConfig RoutesConfig, raw bool) error {
	releaseDate := routesConfig.ReleaseDate
	if releaseDate == "" {
		// The route catalog reports the release dates, newest first.
		book, err := spark.GetRoutes(client)
		if err != nil {
			return err
		}
		if len(book.SparkReleaseDates) > 0 {
			releaseDate = book.SparkReleaseDates[0]
			slog.Info("Using latest release date", "releaseDate", releaseDate)
		}
	}

	routeUuid := uuid.MustParse(routesConfig.UUID)

	if raw {
		params := map[string]string{}
		if releaseDate != "" {
			params["release-date"] = releaseDate
		}
		return printRaw(cmd, client, spark.GetRouteEndpoint(routeUuid), params)
	}

	costs, err := spark.GetRouteCosts(client, routeUuid, releaseDate)
	if err != nil {
		return err
	}

	rows, err := flatten.RouteCostRows(costs)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Route: %s\nRelease date: %s\n\n", costs.Name, costs.ReleaseDate); err != nil {
		return err
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Period,
			row.PeriodStart,
			row.PeriodEnd,
			formatPrice(row.CostUsd),
			formatPrice(row.HireUsd),
			formatPrice(row.CostUsdPerMMBtu),
		})
	}
	return printTable(cmd.OutOrStdout(), []string{"PERIOD", "START", "END", "COST USD", "HIRE USD", "USD/MMBTU"}, cells)
}
