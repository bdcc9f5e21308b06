package dataset

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-calibration/internal/cutoff"
	"github.com/rickgao/kalshi-calibration/internal/model"
	"github.com/rickgao/kalshi-calibration/internal/writer"
)

// Header is the CSV header for dataset rows.
var Header = []string{
	"market_id",
	"close_time",
	"cutoff_time",
	"price_at_cutoff",
	"outcome",
	"time_gap_minutes",
	"num_trades_used",
	"price_source",
}

// Row is one market in the dataset.
type Row struct {
	MarketID       string
	CloseTime      string // as received from the exchange
	CutoffTime     time.Time
	PriceAtCutoff  decimal.Decimal
	Outcome        model.Outcome
	TimeGapMinutes *decimal.Decimal
	NumTradesUsed  int
	PriceSource    cutoff.PriceSource
}

// Record renders r in Header order.
func (r Row) Record() []string {
	price := r.PriceAtCutoff
	return []string{
		r.MarketID,
		r.CloseTime,
		writer.TimeCell(r.CutoffTime),
		writer.DecimalCell(&price),
		r.Outcome.String(),
		writer.DecimalCell(r.TimeGapMinutes),
		writer.IntCell(r.NumTradesUsed),
		string(r.PriceSource),
	}
}
