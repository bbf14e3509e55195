package spark

const (
	ErrorGettingContracts        = "error getting contracts"
	ErrorGettingPriceRelease     = "error getting latest price release"
	ErrorGettingPriceReleases    = "error getting price releases"
	ErrorGettingRoutes           = "error getting routes"
	ErrorGettingRouteCosts       = "error getting route costs"
	ErrorGettingNetbackReference = "error getting netback reference data"
	ErrorGettingNetbacks         = "error getting netbacks"
	ErrorGettingIntraday         = "error getting intraday prices"
)
