package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/model"
)

// fetchTrades pages through the ticker's trades in [start, end] and returns
// those that fall in the window. Paging stops at MaxTradePages, at the last
// page, or once EnoughTrades in-window trades have been seen.
func (b *Builder) fetchTrades(ctx context.Context, ticker string, start, end time.Time) ([]model.Trade, error) {
	opts := api.GetTradesOptions{
		Limit:  b.cfg.TradesPageSize,
		Ticker: ticker,
		MinTS:  start.Unix(),
		MaxTS:  end.Unix(),
	}

	var all []model.Trade
	for page := 1; b.cfg.MaxTradePages <= 0 || page <= b.cfg.MaxTradePages; page++ {
		resp, err := b.source.GetTrades(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("trades page %d: %w", page, err)
		}

		all = append(all, api.TradesToModel(resp.Trades)...)

		if b.cfg.EnoughTrades > 0 && len(filterWindow(all, ticker, start, end)) >= b.cfg.EnoughTrades {
			break
		}
		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	return filterWindow(all, ticker, start, end), nil
}

// filterWindow keeps trades for ticker with start <= created <= end.
func filterWindow(trades []model.Trade, ticker string, start, end time.Time) []model.Trade {
	out := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Ticker != ticker {
			continue
		}
		if t.CreatedTime.Before(start) || t.CreatedTime.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}
