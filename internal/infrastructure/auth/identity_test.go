package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAddress(t *testing.T) {
	identity := NewClientIdentity("salt")

	digest := identity.HashAddress("203.0.113.7")
	assert.NotEmpty(t, digest)
	assert.NotContains(t, digest, "203.0.113.7")
	assert.Equal(t, digest, identity.HashAddress("203.0.113.7"))
	assert.NotEqual(t, digest, identity.HashAddress("203.0.113.8"))
}

func TestHashAddressEmptyMeansUnavailable(t *testing.T) {
	identity := NewClientIdentity("salt")
	assert.Empty(t, identity.HashAddress(""))
	assert.Empty(t, identity.HashUserAgent(""))
}

func TestDigestsDependOnSalt(t *testing.T) {
	a := NewClientIdentity("salt-a")
	b := NewClientIdentity("salt-b")
	assert.NotEqual(t, a.HashAddress("203.0.113.7"), b.HashAddress("203.0.113.7"))
}

func TestAddressAndUserAgentShareDerivation(t *testing.T) {
	identity := NewClientIdentity("salt")
	assert.Equal(t, identity.HashAddress("value"), identity.HashUserAgent("value"))
}
