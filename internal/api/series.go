package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetSeries fetches one series by ticker.
func (c *Client) GetSeries(ctx context.Context, seriesTicker string) (*APISeries, error) {
	var resp SeriesResponse
	if err := c.get(ctx, "/series/"+url.PathEscape(seriesTicker), nil, &resp); err != nil {
		return nil, fmt.Errorf("get series %s: %w", seriesTicker, err)
	}
	return &resp.Series, nil
}

// GetSeriesList lists series, optionally filtered by category or tags.
func (c *Client) GetSeriesList(ctx context.Context, opts GetSeriesListOptions) ([]APISeries, error) {
	var resp SeriesListResponse
	if err := c.get(ctx, "/series", opts.values(), &resp); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return resp.Series, nil
}
