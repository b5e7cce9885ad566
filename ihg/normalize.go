package ihg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// normalizeProfile flattens the upstream hotel info block into a HotelProfile.
func normalizeProfile(code string, info hotelInfo) *HotelProfile {
	p := &HotelProfile{
		Code:             code,
		Name:             info.HotelName,
		BrandCode:        info.BrandInfo.BrandCode,
		Description:      info.Profile.LongDescription,
		ShortDescription: info.Profile.ShortDescription,
		RoomCount:        info.Profile.NumberOfRooms,
		PostalCode:       info.Address.Zip,
		City:             info.Address.City,
		Country:          info.Address.Country.Code,
		Latitude:         info.Location.Latitude,
		Longitude:        info.Location.Longitude,
	}

	if name, ok := LookupBrand(info.BrandInfo.BrandCode); ok {
		p.BrandName = &name
	}

	// Street keeps only the non-empty lines, in order.
	for _, line := range []string{info.Address.Street1, info.Address.Street2} {
		if strings.TrimSpace(line) != "" {
			p.Street = append(p.Street, line)
		}
	}

	// Some countries have no state subdivision; the field exists only when
	// upstream sends a code.
	if info.Address.State != nil && info.Address.State.Code != "" {
		state := info.Address.State.Code
		p.State = &state
	}

	// Upstream sends a bare domain/path; only a non-empty value gets a scheme.
	if info.URL != "" {
		u := "https://" + info.URL
		p.URL = &u
	}

	return p
}

// normalizeCalendar reduces the rate windows of all rate plans to one
// lowest-price entry per calendar day of [start, end], inclusive.
//
// A day with no window carrying a figure yields nil for that figure; a
// genuine zero-cost window yields 0. Presence of the field is tested before
// taking the minimum, so the two never collapse.
func normalizeCalendar(start time.Time, days int, resp windowsResponse) (*PriceCalendar, error) {
	if err := mapAPIErrors(resp.Errors); err != nil {
		return nil, err
	}
	if len(resp.RatePlans) == 0 || resp.Currency == "" {
		return nil, ErrInvalidHotelCode
	}

	var windows []rateWindow
	for _, rp := range resp.RatePlans {
		windows = append(windows, rp.Windows...)
	}

	cal := &PriceCalendar{
		Currency: resp.Currency,
		Days:     make([]PriceCalendarEntry, 0, days),
	}
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(dayLayout)
		entry := PriceCalendarEntry{Date: day}
		for _, w := range windows {
			if !strings.HasPrefix(w.StartDate, day) {
				continue
			}
			if w.TotalAmount != nil && (entry.CashPrice == nil || *w.TotalAmount < *entry.CashPrice) {
				amount := *w.TotalAmount
				entry.CashPrice = &amount
			}
			if w.Points != nil && (entry.Points == nil || *w.Points < *entry.Points) {
				points := *w.Points
				entry.Points = &points
			}
		}
		cal.Days = append(cal.Days, entry)
	}
	return cal, nil
}

// normalizeStayOffer maps product, rate plan and offer definitions to a
// StayOffer. Listing in Products/RatePlans does not imply a Prices entry.
func normalizeStayOffer(resp offersResponse) (*StayOffer, error) {
	if err := mapAPIErrors(resp.Errors); err != nil {
		return nil, err
	}

	offer := &StayOffer{}

	for _, pd := range resp.ProductDefinitions {
		// Definitions without an inventory type name are internal placeholders.
		if pd.InventoryTypeName == nil || !pd.Available {
			continue
		}
		p := Product{
			Code:    pd.ProductCode,
			Name:    *pd.InventoryTypeName,
			Premium: pd.IsPremium,
		}
		if pd.Description != nil {
			desc := strings.TrimSpace(*pd.Description)
			p.Description = &desc
		}
		offer.Products = append(offer.Products, p)
	}

	for _, rd := range resp.RatePlanDefinitions {
		if rd.AdditionalDetails == nil {
			continue
		}
		offer.RatePlans = append(offer.RatePlans, RatePlan{
			Code:        rd.Code,
			Name:        rd.AdditionalDetails.LongName,
			Description: rd.AdditionalDetails.LongDescription,
		})
	}

	for _, od := range resp.Offers {
		if len(od.ProductUses) == 0 {
			continue
		}
		price := StayPrice{
			ProductCode: od.ProductUses[0].ProductCode,
			RateCode:    od.RatePlanCode,
		}
		if od.RewardNight {
			if od.PointsCost == nil {
				continue
			}
			price.PointsOptions = append(price.PointsOptions, PointsOption{Points: *od.PointsCost})
			for _, opt := range od.PointsCashOptions {
				price.PointsOptions = append(price.PointsOptions, PointsOption{
					Points:    opt.Points,
					CashPrice: opt.CashAmount,
				})
			}
		} else {
			amount, err := strconv.ParseFloat(od.TotalAmountAfterTax, 64)
			if err != nil {
				return nil, &UpstreamError{Message: fmt.Sprintf("unparseable offer amount %q", od.TotalAmountAfterTax)}
			}
			price.CashPrice = &amount
		}
		offer.Prices = append(offer.Prices, price)
	}

	sortStayPrices(offer.Prices)
	return offer, nil
}

// sortStayPrices orders cash offers ascending by price, then reward-night
// offers ascending by their pure-points cost. Ties fall back to product and
// rate code so the order is stable across calls.
func sortStayPrices(prices []StayPrice) {
	sort.SliceStable(prices, func(i, j int) bool {
		a, b := prices[i], prices[j]
		switch {
		case a.CashPrice != nil && b.CashPrice != nil:
			if *a.CashPrice != *b.CashPrice {
				return *a.CashPrice < *b.CashPrice
			}
		case a.CashPrice != nil:
			return true
		case b.CashPrice != nil:
			return false
		default:
			if a.PointsOptions[0].Points != b.PointsOptions[0].Points {
				return a.PointsOptions[0].Points < b.PointsOptions[0].Points
			}
		}
		if a.ProductCode != b.ProductCode {
			return a.ProductCode < b.ProductCode
		}
		return a.RateCode < b.RateCode
	})
}

// availabilityOpen is the only upstream status that represents bookable rooms.
const availabilityOpen = "OPEN"

// normalizeAreaPrices keeps hotels with open availability and extracts their
// lowest one-night prices. Closed hotels are dropped entirely.
func normalizeAreaPrices(resp areaResponse) ([]AreaPriceEntry, error) {
	if err := mapAPIErrors(resp.Errors); err != nil {
		return nil, err
	}

	entries := make([]AreaPriceEntry, 0, len(resp.Hotels))
	for _, h := range resp.Hotels {
		if h.AvailabilityStatus != availabilityOpen {
			continue
		}
		entry := AreaPriceEntry{
			HotelCode: h.HotelMnemonic,
			Points:    h.LowestPointsPrice,
			Currency:  h.Currency,
		}
		if h.LowestCashPrice != "" {
			amount, err := strconv.ParseFloat(h.LowestCashPrice, 64)
			if err != nil {
				return nil, &UpstreamError{Message: fmt.Sprintf("unparseable price %q for hotel %s", h.LowestCashPrice, h.HotelMnemonic)}
			}
			entry.CashPrice = &amount
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func normalizeDestinations(resp destinationsResponse) []DestinationSuggestion {
	suggestions := make([]DestinationSuggestion, 0, len(resp.Locations))
	for _, loc := range resp.Locations {
		suggestions = append(suggestions, DestinationSuggestion{
			Label:       loc.Display,
			Coordinates: [2]float64{loc.Location.Longitude, loc.Location.Latitude},
		})
	}
	return suggestions
}
