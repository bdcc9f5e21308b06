// Package writer writes row sets to CSV files.
//
// Files are replaced atomically: rows are written to a temporary file in the
// destination directory which is then renamed over the target. Readers never
// see a half-written file.
//
// Absent values are written as empty cells. Decimals use their canonical
// string form and times are written as RFC 3339 in UTC.
package writer
