package dataset

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-calibration/internal/cutoff"
	"github.com/rickgao/kalshi-calibration/internal/model"
)

// Summary holds aggregate statistics over a set of rows.
type Summary struct {
	Processed int
	Rows      int

	// Percentage of processed markets that produced a row, one decimal.
	SuccessRate decimal.Decimal

	PriceMean decimal.Decimal
	PriceMin  decimal.Decimal
	PriceMax  decimal.Decimal
	PriceStd  decimal.Decimal // sample standard deviation; zero below two rows

	GapMean   decimal.Decimal
	GapMedian decimal.Decimal

	Yes      int
	No       int
	BySource map[cutoff.PriceSource]int
}

var hundred = decimal.NewFromInt(100)

// Summarize computes statistics over rows. processed is the number of markets
// attempted and is the denominator of the success rate.
func Summarize(rows []Row, processed int) Summary {
	s := Summary{
		Processed: processed,
		Rows:      len(rows),
		BySource:  make(map[cutoff.PriceSource]int),
	}
	if processed > 0 {
		s.SuccessRate = decimal.NewFromInt(int64(len(rows))).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(processed))).
			Round(1)
	}
	if len(rows) == 0 {
		return s
	}

	n := decimal.NewFromInt(int64(len(rows)))
	sum := decimal.Zero
	s.PriceMin = rows[0].PriceAtCutoff
	s.PriceMax = rows[0].PriceAtCutoff
	var gaps []decimal.Decimal

	for _, r := range rows {
		sum = sum.Add(r.PriceAtCutoff)
		if r.PriceAtCutoff.LessThan(s.PriceMin) {
			s.PriceMin = r.PriceAtCutoff
		}
		if r.PriceAtCutoff.GreaterThan(s.PriceMax) {
			s.PriceMax = r.PriceAtCutoff
		}
		if r.TimeGapMinutes != nil {
			gaps = append(gaps, *r.TimeGapMinutes)
		}
		if r.Outcome == model.OutcomeYes {
			s.Yes++
		} else {
			s.No++
		}
		s.BySource[r.PriceSource]++
	}

	mean := sum.Div(n)
	s.PriceMean = mean.Round(4)

	if len(rows) > 1 {
		sq := decimal.Zero
		for _, r := range rows {
			d := r.PriceAtCutoff.Sub(mean)
			sq = sq.Add(d.Mul(d))
		}
		variance := sq.Div(decimal.NewFromInt(int64(len(rows) - 1)))
		s.PriceStd = decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64())).Round(4)
	}

	if len(gaps) > 0 {
		s.GapMean = decimal.Sum(decimal.Zero, gaps...).
			Div(decimal.NewFromInt(int64(len(gaps)))).
			Round(2)
		s.GapMedian = median(gaps).Round(2)
	}

	return s
}

// YesRate returns the share of YES outcomes as a percentage, one decimal.
func (s Summary) YesRate() decimal.Decimal {
	if s.Rows == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Yes)).Mul(hundred).Div(decimal.NewFromInt(int64(s.Rows))).Round(1)
}

// LogAttrs returns the summary as slog key/value pairs.
func (s Summary) LogAttrs() []any {
	return []any{
		"processed", s.Processed,
		"rows", s.Rows,
		"success_rate_pct", s.SuccessRate.String(),
		"price_mean", s.PriceMean.String(),
		"price_min", s.PriceMin.String(),
		"price_max", s.PriceMax.String(),
		"price_std", s.PriceStd.String(),
		"gap_mean_minutes", s.GapMean.String(),
		"gap_median_minutes", s.GapMedian.String(),
		"outcome_yes", s.Yes,
		"outcome_no", s.No,
		"yes_pct", s.YesRate().String(),
		"source_trade", s.BySource[cutoff.SourceTrade],
		"source_quote", s.BySource[cutoff.SourceQuote],
	}
}

func median(values []decimal.Decimal) decimal.Decimal {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}
