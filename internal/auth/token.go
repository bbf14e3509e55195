package auth

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spark-commodities/api-code-samples/internal/httpclient"
)

const (
	TokenEndpoint = "/oauth/token/"

	// GrantType is the only grant the Spark token endpoint supports.
	GrantType = "clientCredentials"

	// DefaultScopes covers every read scope used by the commands in this repository.
	DefaultScopes = "read:lng-freight-prices,read:routes,read:prices,read:netbacks,read:access"
)

// Token is the bearer credential returned by the token endpoint.
type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type tokenRequest struct {
	GrantType string `json:"grantType"`
	Scopes    string `json:"scopes"`
}

// FetchToken exchanges the client credentials for a bearer token.
//
// The token endpoint wants the raw base64 of "clientId:clientSecret" in the
// Authorization header, without a "Basic " prefix, and answers 201 on success.
func FetchToken(client *httpclient.HttpClient, credentials *Credentials, scopes string) (*Token, error) {
	if scopes == "" {
		scopes = DefaultScopes
	}

	pair := base64.StdEncoding.EncodeToString([]byte(credentials.ClientId + ":" + credentials.ClientSecret))

	response, err := client.Do(httpclient.Request{
		Method: http.MethodPost,
		Path:   TokenEndpoint,
		Header: map[string]string{
			"Authorization": pair,
			"Content-Type":  "application/json",
		},
		Body:         &tokenRequest{GrantType: GrantType, Scopes: scopes},
		Result:       &Token{},
		ExpectStatus: http.StatusCreated,
	})
	if err != nil {
		return nil, errors.WithMessage(err, ErrorFetchingToken)
	}

	token := response.Result().(*Token)
	if token == nil || token.AccessToken == "" {
		return nil, fmt.Errorf("empty token returned")
	}

	slog.Info("Fetched access token", "token", Mask(token.AccessToken), "validSeconds", token.ExpiresIn)
	return token, nil
}
