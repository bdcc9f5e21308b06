package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// query builds URL parameters, skipping zero values.
type query url.Values

func (q query) str(key, v string) {
	if v != "" {
		url.Values(q).Set(key, v)
	}
}

func (q query) num(key string, v int) {
	if v > 0 {
		url.Values(q).Set(key, strconv.Itoa(v))
	}
}

func (q query) unix(key string, v int64) {
	if v > 0 {
		url.Values(q).Set(key, strconv.FormatInt(v, 10))
	}
}

func (q query) list(key string, vs []string) {
	if len(vs) > 0 {
		url.Values(q).Set(key, strings.Join(vs, ","))
	}
}

func (o GetMarketsOptions) values() url.Values {
	q := query{}
	q.num("limit", o.Limit)
	q.str("cursor", o.Cursor)
	q.str("event_ticker", o.EventTicker)
	q.str("series_ticker", o.SeriesTicker)
	q.list("tickers", o.Tickers)
	q.str("status", o.Status)
	q.unix("min_close_ts", o.MinCloseTS)
	q.unix("max_close_ts", o.MaxCloseTS)
	return url.Values(q)
}

func (o GetTradesOptions) values() url.Values {
	q := query{}
	q.num("limit", o.Limit)
	q.str("cursor", o.Cursor)
	q.str("ticker", o.Ticker)
	q.unix("min_ts", o.MinTS)
	q.unix("max_ts", o.MaxTS)
	return url.Values(q)
}

func (o GetEventsOptions) values() url.Values {
	q := query{}
	q.num("limit", o.Limit)
	q.str("cursor", o.Cursor)
	q.str("series_ticker", o.SeriesTicker)
	q.str("status", o.Status)
	return url.Values(q)
}

func (o GetSeriesListOptions) values() url.Values {
	q := query{}
	q.str("category", o.Category)
	q.list("tags", o.Tags)
	return url.Values(q)
}

func (o GetOrdersOptions) values() url.Values {
	q := query{}
	q.num("limit", o.Limit)
	q.str("cursor", o.Cursor)
	q.str("ticker", o.Ticker)
	q.str("status", o.Status)
	return url.Values(q)
}

// collectPages follows cursors until fetch returns an empty one. Calls without
// a context deadline are bounded by DefaultPaginationTimeout.
func collectPages[T any](ctx context.Context, fetch func(ctx context.Context, cursor string) ([]T, string, error)) ([]T, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPaginationTimeout)
		defer cancel()
	}

	var all []T
	cursor := ""
	for {
		items, next, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		cursor = next
	}
}
