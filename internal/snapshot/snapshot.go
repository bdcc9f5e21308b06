package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/model"
	"github.com/rickgao/kalshi-calibration/internal/writer"
)

// Header is the CSV header for snapshot rows.
var Header = []string{"ticker", "title", "snapshot_time", "yes_price"}

// Row is the latest trade price of one market.
type Row struct {
	Ticker       string
	Title        string
	SnapshotTime time.Time
	YesPrice     decimal.Decimal
}

// Record renders r in Header order.
func (r Row) Record() []string {
	price := r.YesPrice
	return []string{r.Ticker, r.Title, writer.TimeCell(r.SnapshotTime), writer.DecimalCell(&price)}
}

// Source is the exchange surface the snapshot needs. Satisfied by *api.Client.
type Source interface {
	GetMarket(ctx context.Context, ticker string) (*api.APIMarket, error)
	GetTrades(ctx context.Context, opts api.GetTradesOptions) (*api.TradesResponse, error)
}

// Recorder observes per-ticker outcomes.
type Recorder interface {
	RowBuilt(source string)
	MarketSkipped(stage string)
}

// Config holds snapshot configuration.
type Config struct {
	TradesLimit int // size of the single trades page
	MaxMarkets  int // tickers looked up, in order of first appearance
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TradesLimit: 500,
		MaxMarkets:  20,
	}
}

// Snapshotter takes latest-trade snapshots.
type Snapshotter struct {
	cfg      Config
	source   Source
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewSnapshotter creates a new Snapshotter. recorder may be nil.
func NewSnapshotter(cfg Config, source Source, recorder Recorder, logger *slog.Logger) *Snapshotter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshotter{
		cfg:      cfg,
		source:   source,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Take fetches recent trades and returns one row per ticker for the first
// MaxMarkets tickers. Tickers whose market lookup fails are left out.
func (s *Snapshotter) Take(ctx context.Context) ([]Row, error) {
	snapshotTime := s.now().UTC()

	resp, err := s.source.GetTrades(ctx, api.GetTradesOptions{Limit: s.cfg.TradesLimit})
	if err != nil {
		return nil, fmt.Errorf("fetch recent trades: %w", err)
	}

	latest := LatestByTicker(api.TradesToModel(resp.Trades))
	s.logger.Info("recent trades fetched",
		"trades", len(resp.Trades),
		"tickers", len(latest),
	)

	var rows []Row
	for i, t := range latest {
		if i >= s.cfg.MaxMarkets {
			break
		}
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		m, err := s.source.GetMarket(ctx, t.Ticker)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return rows, ctxErr
			}
			s.logger.Warn("market lookup failed, skipping",
				"ticker", t.Ticker,
				"error", err,
			)
			if s.recorder != nil {
				s.recorder.MarketSkipped("title")
			}
			continue
		}

		rows = append(rows, Row{
			Ticker:       t.Ticker,
			Title:        m.Title,
			SnapshotTime: snapshotTime,
			YesPrice:     t.Price,
		})
		if s.recorder != nil {
			s.recorder.RowBuilt("trade")
		}
		s.logger.Debug("snapshot row", "ticker", t.Ticker, "price", t.Price.String())
	}

	return rows, nil
}

// LatestByTicker returns the newest trade of every ticker, ordered by each
// ticker's first appearance in trades. On equal timestamps the earlier trade
// in the input is kept.
func LatestByTicker(trades []model.Trade) []model.Trade {
	index := make(map[string]int)
	var out []model.Trade
	for _, t := range trades {
		i, ok := index[t.Ticker]
		if !ok {
			index[t.Ticker] = len(out)
			out = append(out, t)
			continue
		}
		if t.CreatedTime.After(out[i].CreatedTime) {
			out[i] = t
		}
	}
	return out
}
