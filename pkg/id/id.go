// Package id generates ULID strings for journal records and order ids.
//
// ULIDs sort lexicographically by generation time, which keeps SQLite
// indexes and CSV exports in chronological order for free.
package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID string. ulid.Make is monotonic within a
// millisecond and safe for concurrent use.
func New() string {
	return ulid.Make().String()
}
