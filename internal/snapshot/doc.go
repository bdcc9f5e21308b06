// Package snapshot builds a small latest-trade snapshot across recently
// traded markets: one page of recent trades, the newest trade per ticker, and
// the market title for the first few tickers.
package snapshot
