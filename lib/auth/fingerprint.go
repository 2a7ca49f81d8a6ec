package auth

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Short, stable fingerprint of a token for logs.
// Tokens themselves are never logged.
func Fingerprint(token string) string {
	if token == "" {
		return "none"
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(token))
}
