package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/model"
)

// Lister fetches a page of markets. Satisfied by *api.Client.
type Lister interface {
	GetMarkets(ctx context.Context, opts api.GetMarketsOptions) (*api.MarketsResponse, error)
}

// Config holds discovery configuration.
type Config struct {
	Status         string // primary status filter
	FallbackStatus string // tried when a primary page comes back empty; "" disables
	PageSize       int
	Target         int // stop after this many usable markets
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Status:         "settled",
		FallbackStatus: "finalized",
		PageSize:       100,
		Target:         300,
	}
}

// Result is the outcome of a discovery run.
type Result struct {
	Markets        []model.SettledMarket
	Pages          int
	Seen           int
	SkippedNoClose int
	SkippedOutcome int
}

// PartialError reports a page failure after some markets were collected.
type PartialError struct {
	Page int
	Err  error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("market discovery stopped at page %d: %v", e.Page, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Discoverer pages through settled markets.
type Discoverer struct {
	cfg    Config
	lister Lister
	logger *slog.Logger
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(cfg Config, lister Lister, logger *slog.Logger) *Discoverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discoverer{cfg: cfg, lister: lister, logger: logger}
}

// Discover collects up to cfg.Target settled markets. A failure on the first
// page is returned as is; a later failure returns the markets gathered so far
// together with a *PartialError.
func (d *Discoverer) Discover(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{}
	cursor := ""

	for len(res.Markets) < d.cfg.Target {
		resp, err := d.fetchPage(ctx, cursor)
		if err != nil {
			if res.Pages == 0 {
				return nil, err
			}
			return res, &PartialError{Page: res.Pages + 1, Err: err}
		}
		res.Pages++

		if len(resp.Markets) == 0 {
			break
		}

		for i := range resp.Markets {
			if len(res.Markets) >= d.cfg.Target {
				break
			}
			res.Seen++
			d.accept(res, &resp.Markets[i])
		}

		d.logger.Debug("fetched market page",
			"page", res.Pages,
			"markets", len(resp.Markets),
			"collected", len(res.Markets),
		)

		if resp.Cursor == "" {
			break
		}
		cursor = resp.Cursor
	}

	d.logger.Info("market discovery complete",
		"collected", len(res.Markets),
		"seen", res.Seen,
		"skipped_no_close", res.SkippedNoClose,
		"skipped_outcome", res.SkippedOutcome,
		"pages", res.Pages,
		"duration", time.Since(start),
	)

	return res, nil
}

// fetchPage fetches one page with the primary status, retrying with the
// fallback status when the primary page is empty.
func (d *Discoverer) fetchPage(ctx context.Context, cursor string) (*api.MarketsResponse, error) {
	opts := api.GetMarketsOptions{
		Limit:  d.cfg.PageSize,
		Cursor: cursor,
		Status: d.cfg.Status,
	}

	resp, err := d.lister.GetMarkets(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(resp.Markets) > 0 || d.cfg.FallbackStatus == "" {
		return resp, nil
	}

	d.logger.Debug("empty market page, trying fallback status",
		"status", d.cfg.Status,
		"fallback", d.cfg.FallbackStatus,
	)
	opts.Status = d.cfg.FallbackStatus
	return d.lister.GetMarkets(ctx, opts)
}

// accept appends m to res when it has a close time and a binary outcome.
func (d *Discoverer) accept(res *Result, m *api.APIMarket) {
	closeTime := api.ParseTime(m.CloseTime)
	if closeTime.IsZero() {
		res.SkippedNoClose++
		return
	}

	outcome, ok := model.ParseOutcome(m.Settlement())
	if !ok {
		res.SkippedOutcome++
		return
	}

	res.Markets = append(res.Markets, model.SettledMarket{
		Ticker:       m.Ticker,
		CloseTime:    closeTime,
		CloseTimeRaw: m.CloseTime,
		Outcome:      outcome,
	})
}
