package ihg

// DistanceUnit selects the radius unit for area searches.
type DistanceUnit string

const (
	// UnitMiles searches within a radius measured in miles
	UnitMiles DistanceUnit = "MI"
	// UnitKilometers searches within a radius measured in kilometers
	UnitKilometers DistanceUnit = "KM"
)

// HotelProfile describes one property.
//
// Optional upstream fields stay pointers so that "not supplied" is
// distinguishable from an empty value.
type HotelProfile struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	BrandCode        string   `json:"brandCode"`
	BrandName        *string  `json:"brandName"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	RoomCount        int      `json:"roomCount"`
	Street           []string `json:"street"`
	PostalCode       string   `json:"postalCode"`
	City             string   `json:"city"`
	State            *string  `json:"state"`
	Country          string   `json:"country"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	URL              *string  `json:"url"`
}

// PriceCalendarEntry is the lowest price for one check-in date. A nil price
// means no availability for that figure on that date; zero is a real price.
type PriceCalendarEntry struct {
	Date      string   `json:"date"`
	CashPrice *float64 `json:"cashPrice"`
	Points    *float64 `json:"points"`
}

// PriceCalendar holds one entry per calendar day of the requested range,
// inclusive on both ends, in ascending date order.
type PriceCalendar struct {
	Currency string               `json:"currency"`
	Days     []PriceCalendarEntry `json:"days"`
}

// Product is a bookable room category.
type Product struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Premium     bool    `json:"premium"`
}

// RatePlan is a pricing policy a product can be booked under.
type RatePlan struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PointsOption is one way to pay for a reward night: pure points
// (CashPrice 0) or a points+cash blend.
type PointsOption struct {
	Points    float64 `json:"points"`
	CashPrice float64 `json:"cashPrice"`
}

// StayPrice pairs a product and rate plan with its price for the stay.
// Exactly one of CashPrice and PointsOptions is set.
type StayPrice struct {
	ProductCode   string         `json:"productCode"`
	RateCode      string         `json:"rateCode"`
	CashPrice     *float64       `json:"cashPrice"`
	PointsOptions []PointsOption `json:"pointsOptions,omitempty"`
}

// StayOffer is the full availability picture for one hotel and stay window.
// A product or rate plan listed here is not guaranteed a Prices entry;
// absence there means it is unavailable for this specific stay.
type StayOffer struct {
	Products  []Product   `json:"products"`
	RatePlans []RatePlan  `json:"ratePlans"`
	Prices    []StayPrice `json:"prices"`
}

// AreaPriceEntry is the lowest one-night price for a hotel near the searched
// coordinates. Only hotels with open availability are represented.
type AreaPriceEntry struct {
	HotelCode string   `json:"hotelCode"`
	Name      string   `json:"name,omitempty"`
	CashPrice *float64 `json:"cashPrice"`
	Points    *float64 `json:"points"`
	Currency  string   `json:"currency"`
}

// DestinationSuggestion is a free text location match.
type DestinationSuggestion struct {
	Label       string     `json:"label"`
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
}

// CalendarQuery selects the date range for GetLowestHotelPrices.
// Empty dates default to today and start+61 days.
type CalendarQuery struct {
	HotelCode string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// StayQuery describes one stay for GetStayPrices. Empty dates default to a
// one night stay starting today; zero Adults defaults to 1.
type StayQuery struct {
	HotelCode string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string // YYYY-MM-DD
	Adults    int
	Children  int
}

// AreaQuery describes a radius search around a coordinate pair.
type AreaQuery struct {
	Coordinates []float64 // [longitude, latitude]
	Radius      float64   // defaults to 100, must not exceed 100
	Unit        string    // "mi" or "km", case-insensitive; defaults to miles
	CheckIn     string    // YYYY-MM-DD, defaults to today
	Adults      int
	Children    int
}

// BookingQuery holds the arguments for BookingPageURL.
type BookingQuery struct {
	HotelCode string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string // YYYY-MM-DD
	Adults    int
	Children  int
}
