// Package security provides secure random generation utilities
package security

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
)

// GenerateSessionID generates a new opaque session identifier.
func GenerateSessionID() string {
	return ulid.Make().String()
}

// GenerateOrderNumber returns a random numeric order identifier with no
// leading zeros. Uniqueness is not guaranteed; acceptable for a demo where
// a real system would use a database ID.
func GenerateOrderNumber() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is unrecoverable for this process
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	n := binary.BigEndian.Uint64(buf[:])
	if n == 0 {
		n = 1
	}
	return strconv.FormatUint(n, 10)
}
