package spark

import "github.com/google/uuid"

// Monetary values are decimal strings on the wire and stay strings here.
// The flatten package converts them when a numeric view is needed.

const (
	UnitUsdPerDay   = "usdPerDay"
	UnitUsdPerMMBtu = "usdPerMMBtu"
)

// Contract identifies a price assessment available to the subscription.
type Contract struct {
	Id       string `json:"id"`
	FullName string `json:"fullName"`
}

type contractsResponse struct {
	Data []Contract `json:"data"`
}

// DeliveryPeriod bounds the delivery window of a data point.
type DeliveryPeriod struct {
	Name    string `json:"name"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// PriceSpread is the assessed price and its min/max spread in one unit.
type PriceSpread struct {
	Spark    string `json:"spark"`
	SparkMin string `json:"sparkMin"`
	SparkMax string `json:"sparkMax"`
}

// PriceDataPoint carries the derived prices of one delivery period, keyed by unit.
type PriceDataPoint struct {
	DeliveryPeriod DeliveryPeriod         `json:"deliveryPeriod"`
	DerivedPrices  map[string]PriceSpread `json:"derivedPrices"`
}

// PriceGroup is one group of data points within a release.
type PriceGroup struct {
	DataPoints []PriceDataPoint `json:"dataPoints"`
}

// PriceRelease is a dated snapshot of assessed prices for one contract.
type PriceRelease struct {
	ReleaseDate string       `json:"releaseDate"`
	ContractId  string       `json:"contractId"`
	Data        []PriceGroup `json:"data"`
}

type latestPriceReleaseResponse struct {
	Data PriceRelease `json:"data"`
}

type priceReleasesResponse struct {
	Data []PriceRelease `json:"data"`
}

// Port is a load or discharge terminal.
type Port struct {
	Uuid   uuid.UUID `json:"uuid"`
	Name   string    `json:"name"`
	Region string    `json:"region"`
}

// Route is a load/discharge port pair, optionally via a canal.
type Route struct {
	Uuid          uuid.UUID `json:"uuid"`
	Via           string    `json:"via"`
	LoadPort      Port      `json:"loadPort"`
	DischargePort Port      `json:"dischargePort"`
}

// RouteBook is the route catalog plus the release dates prices exist for.
type RouteBook struct {
	Routes            []Route  `json:"routes"`
	SparkReleaseDates []string `json:"sparkReleaseDates"`
}

type routesResponse struct {
	Data RouteBook `json:"data"`
}

// Costs is a shipping cost breakdown in one unit.
type Costs struct {
	Total string `json:"total"`
	Hire  string `json:"hire,omitempty"`
}

// RouteDataPoint carries the costs of one delivery period for a route.
type RouteDataPoint struct {
	DeliveryPeriod     DeliveryPeriod `json:"deliveryPeriod"`
	CostsInUsd         Costs          `json:"costsInUsd"`
	CostsInUsdPerMmbtu Costs          `json:"costsInUsdPerMmbtu"`
}

// RouteCosts is the priced view of a single route at one release date.
type RouteCosts struct {
	Name        string           `json:"name"`
	ReleaseDate string           `json:"releaseDate"`
	DataPoints  []RouteDataPoint `json:"dataPoints"`
}

type routeCostsResponse struct {
	Data RouteCosts `json:"data"`
}

// FobPort is a liquefaction terminal netbacks can be computed for.
type FobPort struct {
	Uuid               uuid.UUID `json:"uuid"`
	Name               string    `json:"name"`
	AvailableViaPoints []string  `json:"availableViaPoints"`
}

// NetbackStaticData lists the FoB ports and the available release dates.
type NetbackStaticData struct {
	FobPorts      []FobPort `json:"fobPorts"`
	SparkReleases []string  `json:"sparkReleases"`
}

// NetbackReference is the netbacks reference data envelope.
type NetbackReference struct {
	StaticData NetbackStaticData `json:"staticData"`
}

type netbackReferenceResponse struct {
	Data NetbackReference `json:"data"`
}

// NetbackPrice holds a single price in $/MMBtu.
type NetbackPrice struct {
	UsdPerMMBtu string `json:"usdPerMMBtu"`
}

// NetbackLeg is one destination basin leg, quoted outright and as TTF basis.
type NetbackLeg struct {
	Outright NetbackPrice `json:"outright"`
	TtfBasis NetbackPrice `json:"ttfBasis"`
}

// NetbackLoad identifies the loading month of a netback entry.
type NetbackLoad struct {
	Month string `json:"month"`
}

// NetbackMonth is the netback quote of one loading month.
type NetbackMonth struct {
	Load        NetbackLoad `json:"load"`
	Nea         NetbackLeg  `json:"nea"`
	Nwe         NetbackLeg  `json:"nwe"`
	NeaMinusNwe NetbackLeg  `json:"neaMinusNwe"`
}

// Netbacks is the netback curve of one FoB port at one release date.
type Netbacks struct {
	Name        string         `json:"name"`
	ReleaseDate string         `json:"releaseDate"`
	Netbacks    []NetbackMonth `json:"netbacks"`
}

type netbacksResponse struct {
	Data Netbacks `json:"data"`
}

// IntradayTick is a single intraday price observation.
type IntradayTick struct {
	At    string `json:"at"`
	Price string `json:"price"`
}

// IntradayFeed is the live intraday price state of one contract.
type IntradayFeed struct {
	ContractId string         `json:"contractId"`
	Unit       string         `json:"unit"`
	UpdatedAt  string         `json:"updatedAt"`
	Ticks      []IntradayTick `json:"ticks"`
}

type intradayResponse struct {
	Data IntradayFeed `json:"data"`
}
