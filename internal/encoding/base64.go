// Package encoding provides the base64 codec used for key material and
// other binary values at the CLI boundary. Raw binary never crosses a
// terminal well, so the pqkit command exchanges all byte quantities as
// URL-safe base64 without padding (RFC 4648 §5).
package encoding

import "encoding/base64"

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
