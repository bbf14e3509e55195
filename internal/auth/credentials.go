package auth

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// EnvClientId and EnvClientSecret are read when no credentials file is given.
	EnvClientId     = "SPARK_CLIENT_ID"
	EnvClientSecret = "SPARK_CLIENT_SECRET"
)

// Credentials is the client identifier and secret pair issued by the Spark dashboard.
type Credentials struct {
	ClientId     string
	ClientSecret string
}

// ResolveCredentials loads credentials from the given CSV file, or from the
// environment when filePath is empty. A .env file in the working directory is
// honored for the environment path.
func ResolveCredentials(filePath string) (*Credentials, error) {
	if filePath == "" {
		return credentialsFromEnv()
	}
	return credentialsFromFile(filePath)
}

func credentialsFromEnv() (*Credentials, error) {
	// Missing .env is fine, the variables may be set by the shell.
	_ = godotenv.Load()

	clientId := os.Getenv(EnvClientId)
	clientSecret := os.Getenv(EnvClientSecret)
	if clientId == "" || clientSecret == "" {
		return nil, fmt.Errorf("%s and %s environment variables are required when no credentials file is given", EnvClientId, EnvClientSecret)
	}

	slog.Debug("Found credentials in environment", "clientId", clientId, "clientSecret", Mask(clientSecret))
	return &Credentials{ClientId: clientId, ClientSecret: clientSecret}, nil
}

func credentialsFromFile(filePath string) (*Credentials, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.WithMessage(err, ErrorOpeningCredentials)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithMessage(err, ErrorParsingCredentials)
	}

	if len(records) != 2 {
		return nil, fmt.Errorf("credentials file must contain a header line and a single credentials line, got %d lines", len(records))
	}

	if !isCredentialsHeader(records[0]) {
		return nil, fmt.Errorf("unexpected credentials header: %q", records[0])
	}

	clientId := records[1][0]
	clientSecret := records[1][1]
	if clientId == "" || clientSecret == "" {
		return nil, fmt.Errorf("credentials file contains an empty client id or secret")
	}

	slog.Debug("Found credentials", "path", filePath, "clientId", clientId, "clientSecret", Mask(clientSecret))
	return &Credentials{ClientId: clientId, ClientSecret: clientSecret}, nil
}

// isCredentialsHeader accepts both header spellings found in the wild.
func isCredentialsHeader(record []string) bool {
	if len(record) != 2 {
		return false
	}
	if record[0] == "clientId" && record[1] == "clientSecret" {
		return true
	}
	return record[0] == "client_id" && record[1] == "client_secret"
}

// Mask hides all but the first few characters of a secret for logging.
func Mask(secret string) string {
	if len(secret) <= 5 {
		return "****"
	}
	return secret[:5] + "****"
}
