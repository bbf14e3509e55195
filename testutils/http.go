package testutils

const (
	Uuidv4Regex = "[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89aAbB][a-f0-9]{3}-[a-f0-9]{12}"
	RootUrl     = "http://fakeurl:3001"

	Ticker         = "spark25s"
	RouteUuidStr   = "64a2b8ac-8a50-4df9-9a3e-1e2b03a6e9d5"
	FobPortUuidStr = "003d3dfa-9291-4d50-8970-e814b8bb3be1"
	ReleaseDate    = "2024-04-09"
)

var (
	TokenUrl = RootUrl + "/oauth/token/"

	ContractsUrl          = RootUrl + "/v1.0/contracts/"
	LatestPriceReleaseUrl = ContractsUrl + Ticker + "/price-releases/latest/"
	PriceReleasesUrl      = ContractsUrl + Ticker + "/price-releases/"

	RoutesUrl = RootUrl + "/v1.0/routes/"
	RouteUrl  = RoutesUrl + RouteUuidStr

	NetbackReferenceUrl = RootUrl + "/v1.0/netbacks/reference-data/"
	NetbacksUrl         = RootUrl + "/v1.0/netbacks/"

	IntradayUrl = RootUrl + "/beta/intraday/live"
)
