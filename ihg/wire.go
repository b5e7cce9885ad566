package ihg

// Upstream JSON shapes. Optional fields are pointers so that an absent field
// never collapses into a present zero value.

type detailsResponse struct {
	HotelInfo hotelInfo `json:"hotelInfo"`
}

type hotelInfo struct {
	HotelCode string       `json:"hotelCode"`
	HotelName string       `json:"hotelName"`
	BrandInfo brandInfo    `json:"brandInfo"`
	Profile   profileInfo  `json:"profile"`
	Address   addressInfo  `json:"address"`
	Location  locationInfo `json:"geoLocation"`
	URL       string       `json:"url"`
}

type brandInfo struct {
	BrandCode string `json:"brandCode"`
}

type profileInfo struct {
	LongDescription  string `json:"longDescription"`
	ShortDescription string `json:"shortDescription"`
	NumberOfRooms    int    `json:"numberOfRooms"`
}

type addressInfo struct {
	Street1 string      `json:"street1"`
	Street2 string      `json:"street2"`
	Zip     string      `json:"zip"`
	City    string      `json:"city"`
	State   *stateInfo  `json:"state"`
	Country countryInfo `json:"country"`
}

type stateInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type countryInfo struct {
	Code string `json:"code"`
}

type locationInfo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// windowsRequest is the body of the lowest-price calendar endpoint.
type windowsRequest struct {
	HotelMnemonic string `json:"hotelMnemonic"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

type windowsResponse struct {
	Currency  string           `json:"currency"`
	RatePlans []ratePlanWindow `json:"ratePlans"`
	Errors    []apiError       `json:"errors"`
}

type ratePlanWindow struct {
	Code    string       `json:"code"`
	Windows []rateWindow `json:"windows"`
}

// rateWindow is one upstream price record for a specific check-in date under
// a specific rate plan. Either figure may be missing independently.
type rateWindow struct {
	StartDate   string   `json:"startDate"`
	TotalAmount *float64 `json:"totalAmount"`
	Points      *float64 `json:"points"`
}

// offersRequest is the body of the stay offers endpoint.
type offersRequest struct {
	HotelMnemonic string      `json:"hotelMnemonic"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	GuestCounts   guestCounts `json:"guestCounts"`
}

type guestCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type offersResponse struct {
	ProductDefinitions  []productDefinition  `json:"productDefinitions"`
	RatePlanDefinitions []ratePlanDefinition `json:"ratePlanDefinitions"`
	Offers              []offerDefinition    `json:"offers"`
	Errors              []apiError           `json:"errors"`
}

type productDefinition struct {
	ProductCode       string  `json:"productCode"`
	InventoryTypeName *string `json:"inventoryTypeName"`
	Description       *string `json:"description"`
	IsPremium         bool    `json:"isPremium"`
	Available         bool    `json:"available"`
}

type ratePlanDefinition struct {
	Code              string             `json:"code"`
	AdditionalDetails *additionalDetails `json:"additionalDetails"`
}

type additionalDetails struct {
	LongName        string `json:"longName"`
	LongDescription string `json:"longDescription"`
}

type offerDefinition struct {
	ProductUses         []productUse       `json:"productUses"`
	RatePlanCode        string             `json:"ratePlanCode"`
	RewardNight         bool               `json:"rewardNight"`
	TotalAmountAfterTax string             `json:"totalAmountAfterTax"`
	PointsCost          *float64           `json:"pointsCost"`
	PointsCashOptions   []pointsCashOption `json:"pointsCashOptions"`
}

type productUse struct {
	ProductCode string `json:"productCode"`
}

type pointsCashOption struct {
	Points     float64 `json:"points"`
	CashAmount float64 `json:"cashAmount"`
}

// areaRequest is the body of the area search endpoint.
type areaRequest struct {
	Location    coordinates `json:"location"`
	Radius      float64     `json:"radius"`
	RadiusUnit  string      `json:"radiusUnit"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	GuestCounts guestCounts `json:"guestCounts"`
}

type coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type areaResponse struct {
	Hotels []areaHotel `json:"hotels"`
	Errors []apiError  `json:"errors"`
}

type areaHotel struct {
	HotelMnemonic      string   `json:"hotelMnemonic"`
	AvailabilityStatus string   `json:"availabilityStatus"`
	LowestCashPrice    string   `json:"lowestCashPrice"`
	LowestPointsPrice  *float64 `json:"lowestPointsPrice"`
	Currency           string   `json:"currency"`
}

type destinationsResponse struct {
	Locations []destinationLocation `json:"locations"`
}

type destinationLocation struct {
	Display  string      `json:"display"`
	Location coordinates `json:"location"`
}
