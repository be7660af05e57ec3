package shared

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// crockford is the Crockford base32 alphabet; 16 bytes encode to 26 characters.
var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// NewID returns a time-ordered identifier such as "brand_01JD3Z...".
// An empty prefix returns the bare identifier.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	encoded := crockford.EncodeToString(id[:])
	if prefix == "" {
		return encoded
	}
	return prefix + "_" + encoded
}

// ShortID returns the first n characters of id, or id itself when shorter.
func ShortID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// HasPrefix reports whether id carries the given entity prefix
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}
