package api

import (
	"context"
	"fmt"
)

// MaxTradesPageSize is the largest page the trades endpoint accepts.
const MaxTradesPageSize = 1000

// GetTrades fetches one page of trades, newest first.
func (c *Client) GetTrades(ctx context.Context, opts GetTradesOptions) (*TradesResponse, error) {
	var resp TradesResponse
	if err := c.get(ctx, "/markets/trades", opts.values(), &resp); err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	return &resp, nil
}
