package ihg

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// enrichConcurrency bounds the number of in-flight detail lookups.
const enrichConcurrency = 10

// EnrichAreaPrices fills in the hotel name of each area result by fetching
// the hotel profiles concurrently. Entries whose lookup fails keep an empty
// name; the search result itself is not discarded over a failed enrichment.
func (c *Client) EnrichAreaPrices(ctx context.Context, entries []AreaPriceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	var mu sync.Mutex
	for i := range entries {
		i := i
		g.Go(func() error {
			profile, err := c.GetHotelDetails(ctx, entries[i].HotelCode)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("hotel", entries[i].HotelCode).
					Msg("Failed to fetch hotel details for enrichment")
				return nil
			}
			mu.Lock()
			entries[i].Name = profile.Name
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
