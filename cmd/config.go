package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"

	"github.com/spark-commodities/api-code-samples/internal/utils"
)

// Config represents the configuration shared by every command
type Config struct {
	Url         string
	Credentials string
	Scopes      string
	Raw         bool
}

// Print the Config; credentials are a file path, never a secret
func (c Config) Print() {
	fmt.Printf("Url: %v\n", c.Url)
	fmt.Printf("Credentials: %v\n", c.Credentials)
	fmt.Printf("Scopes: %v\n", c.Scopes)
	fmt.Printf("Raw: %v\n", c.Raw)
}

// Validate the Config making sure all required fields are present and valid
func (c Config) Validate() error {
	if c.Url == "" {
		return errors.New("url is required")
	}

	_, err := url.Parse(c.Url)
	if err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	return nil
}

// LoadConfigFromCLI loads the shared Config from the CLI flags
func LoadConfigFromCLI() Config {
	return Config{
		Url:         viper.GetString("url"),
		Credentials: viper.GetString("credentials"),
		Scopes:      viper.GetString("scopes"),
		Raw:         viper.GetBool("raw"),
	}
}

// PricesConfig is the configuration of the `prices` command
type PricesConfig struct {
	Ticker string
}

func (c PricesConfig) Validate() error {
	if c.Ticker == "" {
		return errors.New("ticker is required")
	}
	return nil
}

func LoadPricesConfigFromCLI() PricesConfig {
	return PricesConfig{
		Ticker: viper.GetString("prices-ticker"),
	}
}

// HistoryConfig is the configuration of the `history` command
type HistoryConfig struct {
	Ticker string
	Limit  int
	Offset int
}

func (c HistoryConfig) Validate() error {
	if c.Ticker == "" {
		return errors.New("ticker is required")
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("offset cannot be negative, got %d", c.Offset)
	}
	return nil
}

func LoadHistoryConfigFromCLI() HistoryConfig {
	return HistoryConfig{
		Ticker: viper.GetString("history-ticker"),
		Limit:  viper.GetInt("history-limit"),
		Offset: viper.GetInt("history-offset"),
	}
}

// RoutesConfig is the configuration of the `routes` command
type RoutesConfig struct {
	UUID        string
	ReleaseDate string
}

func (c RoutesConfig) Validate() error {
	if c.UUID != "" && !utils.IsValidUUID(c.UUID) {
		return fmt.Errorf("could not parse route UUID: %s", c.UUID)
	}
	if c.ReleaseDate != "" && !utils.IsValidDate(c.ReleaseDate) {
		return fmt.Errorf("release date must be YYYY-MM-DD, got %s", c.ReleaseDate)
	}
	return nil
}

func LoadRoutesConfigFromCLI() RoutesConfig {
	return RoutesConfig{
		UUID:        viper.GetString("routes-uuid"),
		ReleaseDate: viper.GetString("routes-release-date"),
	}
}

// NetbacksConfig is the configuration of the `netbacks` command
type NetbacksConfig struct {
	FobPort     string
	ViaPoint    string
	ReleaseDate string
	AllVia      bool
}

func (c NetbacksConfig) Validate() error {
	if c.FobPort != "" && !utils.IsValidUUID(c.FobPort) {
		return fmt.Errorf("could not parse FoB port UUID: %s", c.FobPort)
	}
	if c.ReleaseDate != "" && !utils.IsValidDate(c.ReleaseDate) {
		return fmt.Errorf("release date must be YYYY-MM-DD, got %s", c.ReleaseDate)
	}
	if c.AllVia && c.FobPort == "" {
		return errors.New("all-via requires a FoB port")
	}
	if c.AllVia && c.ViaPoint != "" {
		return errors.New("all-via and via-point are mutually exclusive")
	}
	return nil
}

func LoadNetbacksConfigFromCLI() NetbacksConfig {
	return NetbacksConfig{
		FobPort:     viper.GetString("netbacks-fob-port"),
		ViaPoint:    viper.GetString("netbacks-via-point"),
		ReleaseDate: viper.GetString("netbacks-release-date"),
		AllVia:      viper.GetBool("netbacks-all-via"),
	}
}

// IntradayConfig is the configuration of the `intraday` command
type IntradayConfig struct {
	Contract string
	Unit     string
}

func (c IntradayConfig) Validate() error {
	if c.Contract == "" {
		return errors.New("contract is required")
	}
	return nil
}

func LoadIntradayConfigFromCLI() IntradayConfig {
	return IntradayConfig{
		Contract: viper.GetString("intraday-contract"),
		Unit:     viper.GetString("intraday-unit"),
	}
}
