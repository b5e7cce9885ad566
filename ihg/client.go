package ihg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://apis.ihg.com"

// Client talks to the IHG availability and pricing API.
//
// The client is stateless: every operation issues at most one request and
// any number of calls may run concurrently. There are no retries, no backoff
// and no rate limiting; those stay with the caller so the latency and
// failure behavior of each call is transparent.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new IHG API client.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ihg API key is required")
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// doRequest performs one HTTP request with the static auth header and
// returns the response body and status code. Non-2xx responses are returned
// to the caller for endpoint-specific error mapping, not treated as
// transport failures.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, int, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-ihg-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making IHG API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, resp.StatusCode, nil
}

// GetHotelDetails fetches and normalizes the profile of one hotel.
func (c *Client) GetHotelDetails(ctx context.Context, hotelCode string) (*HotelProfile, error) {
	if err := validateHotelCode(hotelCode); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/hotels/v1/profiles/%s/details", url.PathEscape(hotelCode))
	body, status, err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	// The details endpoint signals an unknown mnemonic through the status
	// alone; the body is not a structured error list.
	if status != http.StatusOK {
		return nil, ErrInvalidHotelCode
	}

	var resp detailsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalizeProfile(hotelCode, resp.HotelInfo), nil
}

// GetLowestHotelPrices fetches the lowest cash and points price for every
// check-in date of the requested range. The result carries exactly one entry
// per calendar day, in ascending order, with nil prices on days with no
// availability.
func (c *Client) GetLowestHotelPrices(ctx context.Context, q CalendarQuery) (*PriceCalendar, error) {
	if err := validateHotelCode(q.HotelCode); err != nil {
		return nil, err
	}
	start, end, days, err := resolveCalendarRange(q)
	if err != nil {
		return nil, err
	}

	payload := windowsRequest{
		HotelMnemonic: q.HotelCode,
		StartDate:     upstreamDate(start),
		EndDate:       upstreamDate(end),
	}
	body, status, err := c.doRequest(ctx, http.MethodPost, "/availability/v1/windows", nil, payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		if mapped := mapAPIErrors(decodeAPIErrors(body)); mapped != nil {
			return nil, mapped
		}
		return nil, ErrInvalidHotelCode
	}

	var resp windowsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalizeCalendar(start, days, resp)
}

// GetStayPrices fetches available products, rate plans and their prices for
// one stay window.
func (c *Client) GetStayPrices(ctx context.Context, q StayQuery) (*StayOffer, error) {
	if err := validateHotelCode(q.HotelCode); err != nil {
		return nil, err
	}
	checkIn, checkOut, adults, children, err := resolveStay(q.CheckIn, q.CheckOut, q.Adults, q.Children)
	if err != nil {
		return nil, err
	}

	payload := offersRequest{
		HotelMnemonic: q.HotelCode,
		StartDate:     upstreamDate(checkIn),
		EndDate:       upstreamDate(checkOut),
		GuestCounts:   guestCounts{Adults: adults, Children: children},
	}
	body, status, err := c.doRequest(ctx, http.MethodPost, "/availability/v3/hotels/offers", nil, payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		if mapped := mapAPIErrors(decodeAPIErrors(body)); mapped != nil {
			return nil, mapped
		}
		return nil, &UpstreamError{Message: fmt.Sprintf("unexpected status %d", status)}
	}

	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalizeStayOffer(resp)
}

// GetLowestAreaPrices searches for hotels around a coordinate pair and
// returns the lowest one-night price of every hotel with open availability.
func (c *Client) GetLowestAreaPrices(ctx context.Context, q AreaQuery) ([]AreaPriceEntry, error) {
	if err := validateCoordinates(q.Coordinates); err != nil {
		return nil, err
	}
	unit, err := normalizeUnit(q.Unit)
	if err != nil {
		return nil, err
	}
	radius, err := validateRadius(q.Radius)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, adults, children, err := resolveStay(q.CheckIn, "", q.Adults, q.Children)
	if err != nil {
		return nil, err
	}

	payload := areaRequest{
		Location:    coordinates{Longitude: q.Coordinates[0], Latitude: q.Coordinates[1]},
		Radius:      radius,
		RadiusUnit:  string(unit),
		StartDate:   upstreamDate(checkIn),
		EndDate:     upstreamDate(checkOut),
		GuestCounts: guestCounts{Adults: adults, Children: children},
	}
	body, status, err := c.doRequest(ctx, http.MethodPost, "/locations/v1/hotels/search", nil, payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		if mapped := mapAPIErrors(decodeAPIErrors(body)); mapped != nil {
			return nil, mapped
		}
		return nil, &UpstreamError{Message: fmt.Sprintf("unexpected status %d", status)}
	}

	var resp areaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalizeAreaPrices(resp)
}

// GetDestinations suggests locations matching a free text query of at least
// three characters.
func (c *Client) GetDestinations(ctx context.Context, query string) ([]DestinationSuggestion, error) {
	if err := validateDestinationQuery(query); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	body, status, err := c.doRequest(ctx, http.MethodGet, "/locations/v1/destinations", params, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &UpstreamError{Message: fmt.Sprintf("unexpected status %d", status)}
	}

	var resp destinationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return normalizeDestinations(resp), nil
}
