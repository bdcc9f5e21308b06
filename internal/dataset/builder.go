package dataset

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/cutoff"
	"github.com/rickgao/kalshi-calibration/internal/model"
)

// Source is the exchange surface the builder needs. Satisfied by *api.Client.
type Source interface {
	GetMarket(ctx context.Context, ticker string) (*api.APIMarket, error)
	GetTrades(ctx context.Context, opts api.GetTradesOptions) (*api.TradesResponse, error)
}

// Recorder observes per-market outcomes.
type Recorder interface {
	RowBuilt(source string)
	MarketSkipped(stage string)
}

// Config holds builder configuration.
type Config struct {
	CutoffBeforeClose time.Duration
	TradesWindow      time.Duration
	TradesPageSize    int
	MaxTradePages     int
	EnoughTrades      int
	Concurrency       int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		CutoffBeforeClose: 6 * time.Hour,
		TradesWindow:      24 * time.Hour,
		TradesPageSize:    api.MaxTradesPageSize,
		MaxTradePages:     10,
		EnoughTrades:      10,
		Concurrency:       1,
	}
}

// Builder turns settled markets into dataset rows.
type Builder struct {
	cfg      Config
	source   Source
	recorder Recorder
	logger   *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRecorder sets a Recorder notified for every market.
func WithRecorder(r Recorder) BuilderOption {
	return func(b *Builder) {
		b.recorder = r
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(cfg Config, source Source, logger *slog.Logger, opts ...BuilderOption) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	b := &Builder{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type marketResult struct {
	row  *Row
	err  *MarketError
	done bool
}

// Build processes markets and returns the rows in input order. Per-market
// failures are collected in the report. When ctx ends early the report holds
// whatever was finished and ctx.Err() is returned alongside it.
func (b *Builder) Build(ctx context.Context, markets []model.SettledMarket) (*Report, error) {
	start := time.Now()
	results := make([]marketResult, len(markets))

	g := new(errgroup.Group)
	g.SetLimit(b.cfg.Concurrency)

	for i := range markets {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			row, err := b.processMarket(ctx, markets[i])
			if err != nil && ctx.Err() != nil && isContextErr(err.Err) {
				return nil
			}
			results[i] = marketResult{row: row, err: err, done: true}
			b.logProgress(i+1, len(markets), markets[i].Ticker, row, err)
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{}
	for _, r := range results {
		switch {
		case !r.done:
			report.Pending++
		case r.row != nil:
			report.Rows = append(report.Rows, *r.row)
			report.Processed++
		default:
			report.Errors = append(report.Errors, r.err)
			report.Processed++
		}
	}
	report.Duration = time.Since(start)

	b.logger.Info("dataset build complete",
		"markets", len(markets),
		"rows", len(report.Rows),
		"skipped_trades", report.Skipped(StageTrades),
		"skipped_price", report.Skipped(StagePrice),
		"pending", report.Pending,
		"duration", report.Duration,
	)

	return report, ctx.Err()
}

// processMarket resolves one market. Exactly one of the results is non-nil.
func (b *Builder) processMarket(ctx context.Context, m model.SettledMarket) (*Row, *MarketError) {
	cutoffTime := m.CloseTime.Add(-b.cfg.CutoffBeforeClose)
	windowStart := cutoffTime.Add(-b.cfg.TradesWindow)

	quote := b.fetchQuote(ctx, m.Ticker)

	trades, err := b.fetchTrades(ctx, m.Ticker, windowStart, m.CloseTime)
	if err != nil {
		if ctx.Err() == nil {
			b.skip(StageTrades)
		}
		return nil, &MarketError{Ticker: m.Ticker, Stage: StageTrades, Err: err}
	}

	res := cutoff.Resolve(trades, cutoffTime, m.CloseTime)
	res = cutoff.ApplyQuoteFallback(res, quote, cutoffTime)
	if !res.Found() {
		b.skip(StagePrice)
		return nil, &MarketError{Ticker: m.Ticker, Stage: StagePrice, Err: ErrNoPrice}
	}

	row := &Row{
		MarketID:      m.Ticker,
		CloseTime:     m.CloseTimeRaw,
		CutoffTime:    cutoffTime.UTC(),
		PriceAtCutoff: *res.Price,
		Outcome:       m.Outcome,
		NumTradesUsed: res.TradesUsed,
		PriceSource:   res.Source,
	}
	if row.CloseTime == "" {
		row.CloseTime = m.CloseTime.UTC().Format(time.RFC3339)
	}
	if gap, ok := cutoff.GapMinutes(res, cutoffTime); ok {
		row.TimeGapMinutes = &gap
	}

	if b.recorder != nil {
		b.recorder.RowBuilt(string(res.Source))
	}
	return row, nil
}

// fetchQuote returns the market's last and previous prices. A failed lookup
// yields an empty quote.
func (b *Builder) fetchQuote(ctx context.Context, ticker string) model.Quote {
	m, err := b.source.GetMarket(ctx, ticker)
	if err != nil {
		if !isContextErr(err) {
			b.logger.Warn("market lookup failed, continuing without quote",
				"ticker", ticker,
				"error", err,
			)
		}
		return model.Quote{}
	}
	return m.ToModel().Quote()
}

func (b *Builder) skip(stage Stage) {
	if b.recorder != nil {
		b.recorder.MarketSkipped(string(stage))
	}
}

func (b *Builder) logProgress(n, total int, ticker string, row *Row, err *MarketError) {
	if err != nil {
		b.logger.Warn("market skipped",
			"n", n,
			"total", total,
			"ticker", ticker,
			"stage", err.Stage,
			"error", err.Err,
		)
		return
	}

	attrs := []any{
		"n", n,
		"total", total,
		"ticker", ticker,
		"price", row.PriceAtCutoff.String(),
		"source", row.PriceSource,
		"trades", row.NumTradesUsed,
	}
	if row.TimeGapMinutes != nil {
		attrs = append(attrs, "gap_minutes", row.TimeGapMinutes.String())
	}
	b.logger.Debug("market resolved", attrs...)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
