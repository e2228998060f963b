package i

import (
	"time"
)

// Tokenizer signs and verifies the share codes handed out for mazes.
type Tokenizer interface {
	// Generate signs the claims into a code that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a code and returns its claims.
	// Expired, tampered or foreign codes are rejected.
	Decode(token string) (map[string]interface{}, error)
}
