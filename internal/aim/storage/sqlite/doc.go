// Package sqlite persists analysis runs. A run records which trace was
// analysed, at what sensitivity, with which thresholds, and the resulting
// summary and verdict as JSON blobs, so sensitivity settings can be compared
// across sessions without re-analysing the footage.
package sqlite
