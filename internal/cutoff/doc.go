// Package cutoff resolves the price of a settled market at a cutoff instant.
//
// Resolution order:
//   - latest trade at or before the cutoff
//   - latest trade at or before the close
//   - the market's last-known quote (caller-side, via ApplyQuoteFallback)
package cutoff
