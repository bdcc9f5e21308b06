package dataset

import (
	"errors"
	"fmt"
	"time"
)

// Stage names the step at which a market was dropped.
type Stage string

const (
	StageTrades Stage = "trades" // trade fetch failed
	StagePrice  Stage = "price"  // no trade or quote price
)

// ErrNoPrice is recorded when neither trades nor quotes give a price.
var ErrNoPrice = errors.New("no price at cutoff")

// MarketError records a market that produced no row.
type MarketError struct {
	Ticker string
	Stage  Stage
	Err    error
}

func (e *MarketError) Error() string {
	return fmt.Sprintf("market %s: %s: %v", e.Ticker, e.Stage, e.Err)
}

func (e *MarketError) Unwrap() error { return e.Err }

// Report is the result of a Build call.
type Report struct {
	Rows      []Row
	Errors    []*MarketError
	Processed int // markets that produced a row or an error
	Pending   int // markets not reached before the context ended
	Duration  time.Duration
}

// Skipped returns the number of markets dropped at stage.
func (r *Report) Skipped(stage Stage) int {
	n := 0
	for _, e := range r.Errors {
		if e.Stage == stage {
			n++
		}
	}
	return n
}
