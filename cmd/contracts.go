package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spark-commodities/api-code-samples/internal/spark"
)

// contractsCmd represents the contracts command
var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List the contracts available to your subscription.",
	Long: `The contracts command lists every price contract the configured
credentials are entitled to, with its ticker symbol and full name.

The ticker symbol is what the prices, history and intraday commands expect.`,
	RunE: ContractsCmdRunE,
}

func ContractsCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client := CreateRestClient(cmd.Context(), config.Url)
	if err := Authenticate(client, config); err != nil {
		return err
	}

	if config.Raw {
		return printRaw(cmd, client, spark.ContractsEndpoint, nil)
	}

	contracts, err := spark.GetContracts(client)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(contracts))
	for _, contract := range contracts {
		rows = append(rows, []string{contract.Id, contract.FullName})
	}
	return printTable(cmd.OutOrStdout(), []string{"TICKER", "NAME"}, rows)
}

func init() {
	rootCmd.AddCommand(contractsCmd)
}
