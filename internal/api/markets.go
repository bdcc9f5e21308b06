package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// maxMarketsPageSize is the largest page the markets endpoint accepts.
const maxMarketsPageSize = 1000

// GetMarkets fetches one page of markets.
func (c *Client) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	var resp MarketsResponse
	if err := c.get(ctx, "/markets", opts.values(), &resp); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}
	return &resp, nil
}

// GetAllMarkets fetches every market, following cursors.
func (c *Client) GetAllMarkets(ctx context.Context) ([]APIMarket, error) {
	return c.GetAllMarketsWithOptions(ctx, GetMarketsOptions{})
}

// GetAllMarketsWithOptions fetches every market matching opts. opts.Cursor is
// ignored; a zero Limit uses the largest page size.
func (c *Client) GetAllMarketsWithOptions(ctx context.Context, opts GetMarketsOptions) ([]APIMarket, error) {
	if opts.Limit <= 0 {
		opts.Limit = maxMarketsPageSize
	}
	return collectPages(ctx, func(ctx context.Context, cursor string) ([]APIMarket, string, error) {
		opts.Cursor = cursor
		resp, err := c.GetMarkets(ctx, opts)
		if err != nil {
			return nil, "", err
		}
		return resp.Markets, resp.Cursor, nil
	})
}

// GetMarket fetches one market by ticker.
func (c *Client) GetMarket(ctx context.Context, ticker string) (*APIMarket, error) {
	var resp SingleMarketResponse
	if err := c.get(ctx, "/markets/"+url.PathEscape(ticker), nil, &resp); err != nil {
		return nil, fmt.Errorf("get market %s: %w", ticker, err)
	}
	return &resp.Market, nil
}

// GetOrderbook fetches up to depth price levels per side; depth 0 means all.
func (c *Client) GetOrderbook(ctx context.Context, ticker string, depth int) (*OrderbookResponse, error) {
	var q url.Values
	if depth > 0 {
		q = url.Values{"depth": {strconv.Itoa(depth)}}
	}

	var resp OrderbookResponse
	if err := c.get(ctx, "/markets/"+url.PathEscape(ticker)+"/orderbook", q, &resp); err != nil {
		return nil, fmt.Errorf("get orderbook %s: %w", ticker, err)
	}
	return &resp, nil
}
