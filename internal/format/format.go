// Package format renders values the way the pattern demonstrations print them.
package format

import "strconv"

// Number formats f in its shortest round-trip decimal form, without a
// trailing ".0" for whole values.
//
// Example:
//
//	100   → "100"
//	6.5   → "6.5"
//	78.53981633974483 → "78.53981633974483"
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
