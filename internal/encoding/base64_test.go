package encoding

import (
	"bytes"
	"strings"
	"testing"
)

func TestBase64URL_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x00}},
		{"binary", []byte{0xff, 0xfe, 0x00, 0x01, 0x80}},
		{"text", []byte("hello world")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			if strings.ContainsAny(encoded, "+/=") {
				t.Errorf("encoding %q is not raw URL-safe base64", encoded)
			}

			decoded, err := FromBase64URL(encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip = %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestFromBase64URL_Invalid(t *testing.T) {
	if _, err := FromBase64URL("not!valid"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
