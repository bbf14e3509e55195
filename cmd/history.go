package cmd

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch historical price releases of a contract.",
	Long: `The history command fetches past price releases of a contract, newest
first, and prints one line per release and delivery period.

Use --limit to control how many releases are fetched and --offset to skip
the most recent ones.`,
	RunE: HistoryCmdRunE,
}

func HistoryCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	historyConfig := LoadHistoryConfigFromCLI()
	slog.Debug("args", "history-config", historyConfig)
	if err := historyConfig.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if config.Raw {
		params := map[string]string{"limit": strconv.Itoa(historyConfig.Limit)}
		if historyConfig.Offset > 0 {
			params["offset"] = strconv.Itoa(historyConfig.Offset)
		}
		return printRaw(cmd, client, spark.GetPriceReleasesEndpoint(historyConfig.Ticker), params)
	}

	releases, err := spark.GetPriceReleases(client, historyConfig.Ticker, historyConfig.Limit, historyConfig.Offset)
	if err != nil {
		return err
	}

	rows, err := flatten.PriceHistoryRows(releases)
	if err != nil {
		return err
	}

	return printTable(cmd.OutOrStdout(), priceTableHeader(true), priceTableRows(rows, true))
}

func init() {
	SetupHistoryCmdFlags(historyCmd)
	rootCmd.AddCommand(historyCmd)
}

func SetupHistoryCmdFlags(command *cobra.Command) {
	command.Flags().String("ticker", "", "Ticker symbol of the contract, e.g. spark25s")
	if err := viper.BindPFlag("history-ticker", command.Flags().Lookup("ticker")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Int("limit", spark.DefaultHistoryLimit, "Number of releases to fetch")
	if err := viper.BindPFlag("history-limit", command.Flags().Lookup("limit")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Int("offset", 0, "Number of most recent releases to skip")
	if err := viper.BindPFlag("history-offset", command.Flags().Lookup("offset")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
