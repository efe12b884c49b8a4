// Package utils contains small helper functions used across the project.
//
// These are generic helpers that don't belong to a specific domain.
package utils

import "time"

// isoLayout renders UTC instants as 2006-01-02T15:04:05.000Z.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTimestamp formats t as an ISO-8601 UTC timestamp with millisecond
// precision, e.g. "2024-05-01T09:30:00.123Z".
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Now returns the current instant as an ISO-8601 timestamp.
func Now() string {
	return ISOTimestamp(time.Now())
}
