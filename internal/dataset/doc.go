// Package dataset builds the settled-market calibration dataset.
//
// For every discovered market the builder fixes a cutoff some hours before
// close, fetches the trades in a window around it, resolves the price at the
// cutoff and emits one Row. Markets that fail are recorded in the Report with
// the stage they failed at; they never abort the run.
//
// Processing is sequential by default. With Config.Concurrency above one,
// markets are processed by an errgroup with that limit and rows still come
// out in discovery order.
package dataset
