package api

import "github.com/tidwall/gjson"

// NormalizeList converts the two list response shapes the API produces into
// one canonical JSON array:
//
//   - a bare array        [ ... ]                  -> returned as-is
//   - a paged wrapper     { "results": [ ... ] }   -> the results array
//
// Anything else ({}, null, a scalar, malformed input) normalizes to an empty
// array. The function never fails on shape alone; this keeps paging details
// out of every caller.
func NormalizeList(body []byte) []byte {
	empty := []byte("[]")
	if len(body) == 0 {
		return empty
	}

	parsed := gjson.ParseBytes(body)
	if parsed.IsArray() {
		return body
	}
	if results := parsed.Get("results"); results.IsArray() {
		return []byte(results.Raw)
	}
	return empty
}
