package pqkit

import (
	"errors"
	"strings"
	"testing"
)

// All typed errors implement the marker interface.
var (
	_ PQKitError = (*SeedSizeError)(nil)
	_ PQKitError = (*EncodingError)(nil)
	_ PQKitError = (*SignatureDecodeError)(nil)
	_ PQKitError = (*EncapsulationError)(nil)
	_ PQKitError = (*DecapsulationError)(nil)
)

func TestErrorSentinelMatching(t *testing.T) {
	underlying := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		match    []error
		notMatch []error
	}{
		{
			"SeedSizeError",
			&SeedSizeError{Algorithm: "ML-DSA-87", Want: 32, Got: 31},
			[]error{ErrInvalidSeedSize},
			[]error{ErrInvalidEncoding},
		},
		{
			"EncodingError",
			&EncodingError{Field: "verifying key", Err: underlying},
			[]error{ErrInvalidEncoding, underlying},
			[]error{ErrSignatureDecode, ErrInvalidSeedSize},
		},
		{
			"SignatureDecodeError",
			&SignatureDecodeError{Err: underlying},
			[]error{ErrSignatureDecode, ErrInvalidEncoding, underlying},
			[]error{ErrInvalidSeedSize},
		},
		{
			"EncapsulationError",
			&EncapsulationError{Err: underlying},
			[]error{ErrEncapsulation, underlying},
			[]error{ErrDecapsulation, ErrInvalidEncoding},
		},
		{
			"DecapsulationError",
			&DecapsulationError{Err: underlying},
			[]error{ErrDecapsulation, underlying},
			[]error{ErrEncapsulation, ErrInvalidEncoding},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range tt.match {
				if !errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, target)
				}
			}
			for _, target := range tt.notMatch {
				if errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, target)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"seed size names algorithm and lengths",
			&SeedSizeError{Algorithm: "ML-KEM-1024", Want: 64, Got: 63},
			"ML-KEM-1024 seed must be 64 bytes, got 63",
		},
		{
			"encoding names field",
			&EncodingError{Field: "ciphertext", Err: errors.New("ciphertext must be 1568 bytes, got 1567")},
			"invalid ciphertext encoding: ciphertext must be 1568 bytes, got 1567",
		},
		{
			"signature decode",
			&SignatureDecodeError{Err: errors.New("signature must be 4627 bytes, got 12")},
			"malformed signature: signature must be 4627 bytes, got 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsDescribeExpectedAndActual(t *testing.T) {
	_, err := NewSignatureKeyPairFromSeed(make([]byte, 31))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "32") || !strings.Contains(msg, "31") {
		t.Errorf("error %q does not name expected and actual sizes", msg)
	}
}
