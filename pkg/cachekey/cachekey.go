// Package cachekey derives path-safe cache keys from modification
// timestamps. The key is embedded in published URLs, so a record update
// changes the URL and invalidates any downstream HTTP cache.
package cachekey

import (
	"strconv"
	"time"
)

// Key renders t as a decimal Unix timestamp, left-pads it with '0' to at
// least six characters, reverses the digits and splits them into path
// segments of lengths [2, 2, rest]. Reversing puts the fastest-changing
// digits first, which spreads sequential records across directory
// prefixes instead of piling them into one bucket.
func Key(t time.Time) string {
	s := strconv.FormatInt(t.Unix(), 10)
	for len(s) < 6 {
		s = "0" + s
	}

	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b[0:2]) + "/" + string(b[2:4]) + "/" + string(b[4:])
}
