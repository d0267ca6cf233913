package models

import "strconv"

// Capsule is a schemaless document identified by the client-supplied "id"
// field (the business key), not the storage-assigned _id. Clients may attach
// arbitrary additional fields.
type Capsule map[string]any

// BusinessID returns the capsule's "id" field, if present and non-empty.
// Clients of the original backend sent both string and numeric ids, so
// numbers are accepted and normalized to their decimal form. Route lookups
// always carry the id as a string.
func (c Capsule) BusinessID() (string, bool) {
	switch v := c["id"].(type) {
	case string:
		return v, v != ""
	case float64: // JSON numbers decode as float64
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
