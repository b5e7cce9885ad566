package ihg

import (
	"context"
)

// API defines the interface for IHG pricing operations
type API interface {
	// GetHotelDetails fetches the profile of one hotel
	GetHotelDetails(ctx context.Context, hotelCode string) (*HotelProfile, error)

	// GetLowestHotelPrices fetches a lowest-price calendar for a date range
	GetLowestHotelPrices(ctx context.Context, q CalendarQuery) (*PriceCalendar, error)

	// GetStayPrices fetches products, rate plans and prices for one stay
	GetStayPrices(ctx context.Context, q StayQuery) (*StayOffer, error)

	// GetLowestAreaPrices searches hotels around a coordinate pair
	GetLowestAreaPrices(ctx context.Context, q AreaQuery) ([]AreaPriceEntry, error)

	// GetDestinations suggests locations for a free text query
	GetDestinations(ctx context.Context, query string) ([]DestinationSuggestion, error)
}
