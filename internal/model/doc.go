// Package model defines shared data types used across the calibration tools.
//
// Conventions:
//   - Prices: decimal dollars on the YES side (0.00-1.00)
//   - Timestamps: time.Time in UTC
//   - IDs: string for tickers, uuid.UUID for trade IDs
package model
