package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/auth"
	"github.com/spark-commodities/api-code-samples/internal/utils"
)

// DefaultApiUrl is the production Spark API.
const DefaultApiUrl = "https://api.sparkcommodities.com"

var rootCmd = &cobra.Command{
	Use:               "spark",
	Short:             "Query Spark LNG freight and cargo prices from the command line",
	PersistentPreRunE: RootCmdPersistentPreRunE,
}

// RootCmdPersistentPreRunE configures logging and validates the API URL
// before any command runs.
func RootCmdPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logLevelArg := viper.GetString("logLevel")
	urlString := viper.GetString("url")
	if err := setLogLevel(logLevelArg); err != nil {
		return err
	}
	if err := validateURL(urlString); err != nil {
		return err
	}

	slog.Debug("Application initialized", "logLevel", logLevelArg, "url", urlString)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(utils.SortedKeys(validLogLevels), "|")
)

func init() {
	SetupRootCmdFlags(rootCmd)

	viper.AddConfigPath("./")
	viper.SetConfigName("config")

	viper.AutomaticEnv()
}

// SetupRootCmdFlags registers the persistent flags shared by every command.
func SetupRootCmdFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	if err := viper.BindPFlag("logLevel", command.PersistentFlags().Lookup("logLevel")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().StringP("url", "u", DefaultApiUrl, "Root URL of the Spark API")
	if err := viper.BindPFlag("url", command.PersistentFlags().Lookup("url")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().StringP("credentials", "c", "", "Path to a client credentials CSV file (defaults to the SPARK_CLIENT_ID and SPARK_CLIENT_SECRET environment variables)")
	if err := viper.BindPFlag("credentials", command.PersistentFlags().Lookup("credentials")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().String("scopes", auth.DefaultScopes, "Token scopes to request")
	if err := viper.BindPFlag("scopes", command.PersistentFlags().Lookup("scopes")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().Bool("raw", false, "Print the raw JSON response instead of a table")
	if err := viper.BindPFlag("raw", command.PersistentFlags().Lookup("raw")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

// setLogLevel sets the log level
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// validateURL validates a URL is not empty and is a valid URL
func validateURL(urlStr string) error {
	if urlStr == "" {
		return errors.New("URL cannot be empty")
	}

	_, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	return nil
}
