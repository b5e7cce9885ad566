// Package ihg provides a client for the IHG availability and pricing API.
//
// The package translates the vendor's REST responses into a small set of
// stable result shapes: hotel profiles, lowest-price calendars, stay offers,
// area search results and destination suggestions.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := ihg.NewClient("your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	profile, err := client.GetHotelDetails(ctx, "ANRAW")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Input problems are rejected before any request is made and match
// ErrInvalidInput via errors.Is. Upstream failures are mapped at the
// normalization boundary:
//
//   - ErrInvalidHotelCode: the hotel mnemonic does not resolve
//   - ErrNoAvailability: the search executed but nothing matched
//   - UpstreamError: any other vendor-reported error, message forwarded verbatim
//
// Every operation either returns a fully formed result or exactly one error;
// partially populated results are never returned. The client keeps no state
// between calls, performs no retries and no rate limiting.
package ihg
