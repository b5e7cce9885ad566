package ihg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 {
	return &v
}

func TestNormalizeProfile(t *testing.T) {
	t.Run("known brand resolves display name", func(t *testing.T) {
		info := hotelInfo{
			HotelName: "Hotel Indigo Antwerp City Centre",
			BrandInfo: brandInfo{BrandCode: "INDG"},
		}

		p := normalizeProfile("ANRAW", info)
		require.NotNil(t, p.BrandName)
		assert.Equal(t, "Hotel Indigo", *p.BrandName)
		assert.Equal(t, "INDG", p.BrandCode)
		assert.Equal(t, "ANRAW", p.Code)
	})

	t.Run("unknown brand passes code through without name", func(t *testing.T) {
		p := normalizeProfile("XXXXX", hotelInfo{BrandInfo: brandInfo{BrandCode: "ZZZZ"}})
		assert.Nil(t, p.BrandName)
		assert.Equal(t, "ZZZZ", p.BrandCode)
	})

	t.Run("street drops blank lines", func(t *testing.T) {
		tests := []struct {
			name     string
			street1  string
			street2  string
			expected []string
		}{
			{"both lines", "Koningin Astridplein 43", "Box 5", []string{"Koningin Astridplein 43", "Box 5"}},
			{"blank second line", "Koningin Astridplein 43", "", []string{"Koningin Astridplein 43"}},
			{"whitespace second line", "Koningin Astridplein 43", "   ", []string{"Koningin Astridplein 43"}},
			{"no lines", "", "", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := normalizeProfile("ANRAW", hotelInfo{
					Address: addressInfo{Street1: tt.street1, Street2: tt.street2},
				})
				assert.Equal(t, tt.expected, p.Street)
			})
		}
	})

	t.Run("state only when upstream carries a code", func(t *testing.T) {
		withState := normalizeProfile("ATLCP", hotelInfo{
			Address: addressInfo{State: &stateInfo{Code: "GA", Name: "Georgia"}},
		})
		require.NotNil(t, withState.State)
		assert.Equal(t, "GA", *withState.State)

		withoutState := normalizeProfile("ANRAW", hotelInfo{
			Address: addressInfo{City: "Antwerp"},
		})
		assert.Nil(t, withoutState.State)

		emptyCode := normalizeProfile("ANRAW", hotelInfo{
			Address: addressInfo{State: &stateInfo{}},
		})
		assert.Nil(t, emptyCode.State)
	})

	t.Run("url gets https scheme only when supplied", func(t *testing.T) {
		withURL := normalizeProfile("ANRAW", hotelInfo{
			URL: "www.ihg.com/hotelindigo/hotels/us/en/antwerp/anraw/hoteldetail",
		})
		require.NotNil(t, withURL.URL)
		assert.Equal(t, "https://www.ihg.com/hotelindigo/hotels/us/en/antwerp/anraw/hoteldetail", *withURL.URL)

		withoutURL := normalizeProfile("ANRAW", hotelInfo{})
		assert.Nil(t, withoutURL.URL)
	})
}

func TestNormalizeCalendar(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero price never collapses to null", func(t *testing.T) {
		resp := windowsResponse{
			Currency: "EUR",
			RatePlans: []ratePlanWindow{
				{Code: "IVANI", Windows: []rateWindow{
					{StartDate: "2024-01-01T00:00:00Z", TotalAmount: fp(0)},
				}},
			},
		}

		cal, err := normalizeCalendar(start, 2, resp)
		require.NoError(t, err)
		require.Len(t, cal.Days, 2)

		// A genuine zero-cost rate stays 0.
		require.NotNil(t, cal.Days[0].CashPrice)
		assert.Equal(t, 0.0, *cal.Days[0].CashPrice)

		// A day with no matching window stays null.
		assert.Nil(t, cal.Days[1].CashPrice)
		assert.Nil(t, cal.Days[1].Points)
	})

	t.Run("minimum across all rate plans per figure", func(t *testing.T) {
		resp := windowsResponse{
			Currency: "EUR",
			RatePlans: []ratePlanWindow{
				{Code: "IVANI", Windows: []rateWindow{
					{StartDate: "2024-01-01T00:00:00Z", TotalAmount: fp(140), Points: fp(40000)},
					{StartDate: "2024-01-02T00:00:00Z", TotalAmount: fp(120)},
				}},
				{Code: "IGCOR", Windows: []rateWindow{
					{StartDate: "2024-01-01T00:00:00Z", TotalAmount: fp(125)},
					{StartDate: "2024-01-02T00:00:00Z", Points: fp(35000)},
				}},
			},
		}

		cal, err := normalizeCalendar(start, 3, resp)
		require.NoError(t, err)
		require.Len(t, cal.Days, 3)
		assert.Equal(t, "EUR", cal.Currency)

		assert.Equal(t, 125.0, *cal.Days[0].CashPrice)
		assert.Equal(t, 40000.0, *cal.Days[0].Points)

		// Cash and points minimums come from different windows.
		assert.Equal(t, 120.0, *cal.Days[1].CashPrice)
		assert.Equal(t, 35000.0, *cal.Days[1].Points)

		assert.Nil(t, cal.Days[2].CashPrice)
		assert.Nil(t, cal.Days[2].Points)
	})

	t.Run("one entry per day in ascending order", func(t *testing.T) {
		cal, err := normalizeCalendar(start, 5, windowsResponse{
			Currency:  "USD",
			RatePlans: []ratePlanWindow{{Code: "IVANI"}},
		})
		require.NoError(t, err)
		require.Len(t, cal.Days, 5)
		for i, day := range cal.Days {
			assert.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		}
	})

	t.Run("error list in a success response maps to domain errors", func(t *testing.T) {
		_, err := normalizeCalendar(start, 1, windowsResponse{
			Currency:  "EUR",
			RatePlans: []ratePlanWindow{{Code: "IVANI"}},
			Errors:    []apiError{{Code: "INVALID_HOTEL_MNEMONIC", Message: "unknown hotel"}},
		})
		assert.ErrorIs(t, err, ErrInvalidHotelCode)

		_, err = normalizeCalendar(start, 1, windowsResponse{
			Currency:  "EUR",
			RatePlans: []ratePlanWindow{{Code: "IVANI"}},
			Errors:    []apiError{{Code: "SYSTEM_UNAVAILABLE", Message: "try again later"}},
		})
		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "try again later", upstreamErr.Message)
	})

	t.Run("no rate plans means unknown hotel", func(t *testing.T) {
		_, err := normalizeCalendar(start, 1, windowsResponse{Currency: "EUR"})
		assert.ErrorIs(t, err, ErrInvalidHotelCode)
	})

	t.Run("empty currency means unknown hotel", func(t *testing.T) {
		_, err := normalizeCalendar(start, 1, windowsResponse{
			RatePlans: []ratePlanWindow{{Code: "IVANI"}},
		})
		assert.ErrorIs(t, err, ErrInvalidHotelCode)
	})
}

func strp(s string) *string {
	return &s
}

func TestNormalizeStayOffer(t *testing.T) {
	t.Run("products keep only named available definitions", func(t *testing.T) {
		resp := offersResponse{
			ProductDefinitions: []productDefinition{
				{ProductCode: "SR", InventoryTypeName: strp("Standard Room"), Description: strp("  City view.  "), Available: true},
				{ProductCode: "ST", InventoryTypeName: strp("Suite"), IsPremium: true, Available: true},
				{ProductCode: "XX", Available: true},                      // no display name
				{ProductCode: "CL", InventoryTypeName: strp("Club Room")}, // not available
			},
		}

		offer, err := normalizeStayOffer(resp)
		require.NoError(t, err)
		require.Len(t, offer.Products, 2)

		assert.Equal(t, "SR", offer.Products[0].Code)
		assert.Equal(t, "Standard Room", offer.Products[0].Name)
		require.NotNil(t, offer.Products[0].Description)
		assert.Equal(t, "City view.", *offer.Products[0].Description)
		assert.False(t, offer.Products[0].Premium)

		assert.Equal(t, "ST", offer.Products[1].Code)
		assert.Nil(t, offer.Products[1].Description)
		assert.True(t, offer.Products[1].Premium)
	})

	t.Run("rate plans require additional descriptions", func(t *testing.T) {
		resp := offersResponse{
			RatePlanDefinitions: []ratePlanDefinition{
				{Code: "IVANI", AdditionalDetails: &additionalDetails{LongName: "Best Flexible Rate", LongDescription: "Fully flexible."}},
				{Code: "OPAQUE"},
			},
		}

		offer, err := normalizeStayOffer(resp)
		require.NoError(t, err)
		require.Len(t, offer.RatePlans, 1)
		assert.Equal(t, "IVANI", offer.RatePlans[0].Code)
		assert.Equal(t, "Best Flexible Rate", offer.RatePlans[0].Name)
		assert.Equal(t, "Fully flexible.", offer.RatePlans[0].Description)
	})

	t.Run("reward night lists pure points option first", func(t *testing.T) {
		resp := offersResponse{
			Offers: []offerDefinition{
				{
					ProductUses:  []productUse{{ProductCode: "SR"}},
					RatePlanCode: "IVARN",
					RewardNight:  true,
					PointsCost:   fp(35000),
					PointsCashOptions: []pointsCashOption{
						{Points: 20000, CashAmount: 70},
						{Points: 10000, CashAmount: 120},
					},
				},
			},
		}

		offer, err := normalizeStayOffer(resp)
		require.NoError(t, err)
		require.Len(t, offer.Prices, 1)

		price := offer.Prices[0]
		assert.Nil(t, price.CashPrice)
		require.Len(t, price.PointsOptions, 3)
		assert.Equal(t, PointsOption{Points: 35000, CashPrice: 0}, price.PointsOptions[0])
		assert.Equal(t, PointsOption{Points: 20000, CashPrice: 70}, price.PointsOptions[1])
		assert.Equal(t, PointsOption{Points: 10000, CashPrice: 120}, price.PointsOptions[2])
	})

	t.Run("cash offers sort ascending before reward nights", func(t *testing.T) {
		resp := offersResponse{
			Offers: []offerDefinition{
				{ProductUses: []productUse{{ProductCode: "SR"}}, RatePlanCode: "IVARN", RewardNight: true, PointsCost: fp(35000)},
				{ProductUses: []productUse{{ProductCode: "ST"}}, RatePlanCode: "IVANI", TotalAmountAfterTax: "199.00"},
				{ProductUses: []productUse{{ProductCode: "ST"}}, RatePlanCode: "IVBRN", RewardNight: true, PointsCost: fp(25000)},
				{ProductUses: []productUse{{ProductCode: "SR"}}, RatePlanCode: "IVANI", TotalAmountAfterTax: "129.95"},
			},
		}

		offer, err := normalizeStayOffer(resp)
		require.NoError(t, err)
		require.Len(t, offer.Prices, 4)

		assert.Equal(t, 129.95, *offer.Prices[0].CashPrice)
		assert.Equal(t, 199.0, *offer.Prices[1].CashPrice)
		assert.Equal(t, 25000.0, offer.Prices[2].PointsOptions[0].Points)
		assert.Equal(t, 35000.0, offer.Prices[3].PointsOptions[0].Points)
	})

	t.Run("tax inclusive total parses as decimal", func(t *testing.T) {
		resp := offersResponse{
			Offers: []offerDefinition{
				{ProductUses: []productUse{{ProductCode: "SR"}}, RatePlanCode: "IVANI", TotalAmountAfterTax: "142.37"},
			},
		}

		offer, err := normalizeStayOffer(resp)
		require.NoError(t, err)
		require.Len(t, offer.Prices, 1)
		assert.Equal(t, 142.37, *offer.Prices[0].CashPrice)
		assert.Empty(t, offer.Prices[0].PointsOptions)
	})

	t.Run("unparseable amount surfaces as upstream error", func(t *testing.T) {
		_, err := normalizeStayOffer(offersResponse{
			Offers: []offerDefinition{
				{ProductUses: []productUse{{ProductCode: "SR"}}, TotalAmountAfterTax: "n/a"},
			},
		})
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("upstream error list maps to domain errors", func(t *testing.T) {
		tests := []struct {
			name     string
			code     string
			expected error
		}{
			{"invalid mnemonic", "INVALID_HOTEL_MNEMONIC", ErrInvalidHotelCode},
			{"rate not available", "RATE_CODE_NOT_AVAILABLE", ErrNoAvailability},
			{"no availability", "NO_AVAILABILITY", ErrNoAvailability},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := normalizeStayOffer(offersResponse{Errors: []apiError{{Code: tt.code}}})
				assert.ErrorIs(t, err, tt.expected)
			})
		}
	})

	t.Run("unmapped error code forwards the first message verbatim", func(t *testing.T) {
		_, err := normalizeStayOffer(offersResponse{Errors: []apiError{
			{Code: "SYSTEM_UNAVAILABLE", Message: "backend offline"},
			{Code: "SECONDARY", Message: "ignored"},
		}})

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "SYSTEM_UNAVAILABLE", upstreamErr.Code)
		assert.Equal(t, "backend offline", upstreamErr.Message)
	})
}

func TestNormalizeAreaPrices(t *testing.T) {
	t.Run("closed hotels are dropped not nulled", func(t *testing.T) {
		resp := areaResponse{
			Hotels: []areaHotel{
				{HotelMnemonic: "ANRAW", AvailabilityStatus: "OPEN", LowestCashPrice: "119.00", LowestPointsPrice: fp(35000), Currency: "EUR"},
				{HotelMnemonic: "BRUBL", AvailabilityStatus: "CLOSED", LowestCashPrice: "99.00", Currency: "EUR"},
				{HotelMnemonic: "GENTB", AvailabilityStatus: "OPEN", LowestCashPrice: "89.50", Currency: "EUR"},
			},
		}

		entries, err := normalizeAreaPrices(resp)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "ANRAW", entries[0].HotelCode)
		assert.Equal(t, 119.0, *entries[0].CashPrice)
		assert.Equal(t, 35000.0, *entries[0].Points)

		assert.Equal(t, "GENTB", entries[1].HotelCode)
		assert.Equal(t, 89.5, *entries[1].CashPrice)
		assert.Nil(t, entries[1].Points)
	})

	t.Run("unparseable price surfaces as upstream error", func(t *testing.T) {
		_, err := normalizeAreaPrices(areaResponse{
			Hotels: []areaHotel{{HotelMnemonic: "ANRAW", AvailabilityStatus: "OPEN", LowestCashPrice: "cheap"}},
		})
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})
}

func TestNormalizeDestinations(t *testing.T) {
	resp := destinationsResponse{
		Locations: []destinationLocation{
			{Display: "Antwerp, Belgium", Location: coordinates{Longitude: 4.39, Latitude: 51.22}},
			{Display: "Antibes, France", Location: coordinates{Longitude: 7.12, Latitude: 43.58}},
		},
	}

	suggestions := normalizeDestinations(resp)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Antwerp, Belgium", suggestions[0].Label)
	assert.Equal(t, [2]float64{4.39, 51.22}, suggestions[0].Coordinates)
}

func TestLookupBrand(t *testing.T) {
	name, ok := LookupBrand("INDG")
	require.True(t, ok)
	assert.Equal(t, "Hotel Indigo", name)

	_, ok = LookupBrand("ZZZZ")
	assert.False(t, ok)
}
