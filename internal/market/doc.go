// Package market discovers settled markets for the calibration dataset.
//
// Discovery:
//   - Pages through /markets filtered by a settled status
//   - Retries an empty page with a fallback status (e.g. finalized)
//   - Keeps only markets with a close time and a binary outcome
package market
