package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// pricesCmd represents the prices command
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Fetch the latest price release of a contract.",
	Long: `The prices command fetches the most recent price release of a contract
and prints one line per delivery period with the assessed price and its
min/max spread.`,
	RunE: PricesCmdRunE,
}

func PricesCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	pricesConfig := LoadPricesConfigFromCLI()
	slog.Debug("args", "prices-config", pricesConfig)
	if err := pricesConfig.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if config.Raw {
		return printRaw(cmd, client, spark.GetLatestPriceReleaseEndpoint(pricesConfig.Ticker), nil)
	}

	release, err := spark.GetLatestPriceRelease(client, pricesConfig.Ticker)
	if err != nil {
		return err
	}

	rows, err := flatten.PriceReleaseRows(release)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Contract: %s\nRelease date: %s\n\n", release.ContractId, release.ReleaseDate); err != nil {
		return err
	}
	return printTable(cmd.OutOrStdout(), priceTableHeader(false), priceTableRows(rows, false))
}

func init() {
	SetupPricesCmdFlags(pricesCmd)
	rootCmd.AddCommand(pricesCmd)
}

func SetupPricesCmdFlags(command *cobra.Command) {
	command.Flags().String("ticker", "", "Ticker symbol of the contract, e.g. spark25s")
	if err := viper.BindPFlag("prices-ticker", command.Flags().Lookup("ticker")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

func priceTableHeader(withRelease bool) []string {
	header := []string{"PERIOD", "START", "END", "USD/DAY", "MIN", "MAX", "USD/MMBTU"}
	if withRelease {
		return append([]string{"RELEASE"}, header...)
	}
	return header
}

func priceTableRows(rows []flatten.PriceRow, withRelease bool) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{
			row.Period,
			row.PeriodStart,
			row.PeriodEnd,
			formatPrice(row.UsdPerDay),
			formatPrice(row.UsdPerDayMin),
			formatPrice(row.UsdPerDayMax),
			formatPrice(row.UsdPerMMBtu),
		}
		if withRelease {
			cells = append([]string{row.ReleaseDate}, cells...)
		}
		out = append(out, cells)
	}
	return out
}
