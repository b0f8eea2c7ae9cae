package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// ClientIdentity derives one-way digests of client network addresses and
// user-agent strings. Raw values are never stored; the salted digest is
// enough for rate limiting and bans while bounding privacy exposure.
type ClientIdentity struct {
	salt string
}

func NewClientIdentity(salt string) *ClientIdentity {
	return &ClientIdentity{salt: salt}
}

// HashAddress digests a client network address. An empty address yields an
// empty digest, which callers treat as "identity unavailable": rate limiting
// is skipped for such requests (fail open on identification, fail closed on
// lockout).
func (ci *ClientIdentity) HashAddress(address string) string {
	if address == "" {
		return ""
	}
	return ci.digest(address)
}

// HashUserAgent digests a user-agent string, empty in for empty out.
func (ci *ClientIdentity) HashUserAgent(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	return ci.digest(userAgent)
}

func (ci *ClientIdentity) digest(value string) string {
	sum := sha256.Sum256([]byte(ci.salt + ":" + value))
	return hex.EncodeToString(sum[:])
}
