package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/flatten"
	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// intradayCmd represents the intraday command
var intradayCmd = &cobra.Command{
	Use:   "intraday",
	Short: "Fetch the live intraday prices of a contract.",
	Long: `The intraday command fetches the live intraday price feed of a contract
from the beta intraday endpoint and prints one line per tick.`,
	RunE: IntradayCmdRunE,
}

func IntradayCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	intradayConfig := LoadIntradayConfigFromCLI()
	slog.Debug("args", "intraday-config", intradayConfig)
	if err := intradayConfig.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if config.Raw {
		params := map[string]string{"contract": intradayConfig.Contract}
		if intradayConfig.Unit != "" {
			params["unit"] = intradayConfig.Unit
		}
		return printRaw(cmd, client, spark.IntradayLiveEndpoint, params)
	}

	feed, err := spark.GetIntradayPrices(client, intradayConfig.Contract, intradayConfig.Unit)
	if err != nil {
		return err
	}

	rows, err := flatten.TickRows(feed)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Contract: %s\nUnit: %s\nUpdated: %s\n\n", feed.ContractId, feed.Unit, feed.UpdatedAt); err != nil {
		return err
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.At, formatPrice(row.Price)})
	}
	return printTable(cmd.OutOrStdout(), []string{"AT", "PRICE"}, cells)
}

func init() {
	SetupIntradayCmdFlags(intradayCmd)
	rootCmd.AddCommand(intradayCmd)
}

func SetupIntradayCmdFlags(command *cobra.Command) {
	command.Flags().String("contract", "", "Ticker symbol of the contract, e.g. spark25s")
	if err := viper.BindPFlag("intraday-contract", command.Flags().Lookup("contract")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("unit", "", "Price unit to quote in (defaults to the contract's native unit)")
	if err := viper.BindPFlag("intraday-unit", command.Flags().Lookup("unit")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
