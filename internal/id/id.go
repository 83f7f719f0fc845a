// Package id generates the opaque identifiers assigned to stored records.
package id

import "crypto/rand"

// GenerateID creates a unique 16-character alphanumeric ID.
// IDs are never reused: each one draws fresh bytes from crypto/rand.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
