package auth

const (
	ErrorOpeningCredentials = "error opening credentials file"
	ErrorParsingCredentials = "error parsing credentials file"
	ErrorFetchingToken      = "error fetching access token"
)
