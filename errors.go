package pqkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSeedSize is returned when a caller-supplied key generation
	// seed has the wrong length.
	ErrInvalidSeedSize = errors.New("invalid seed size")

	// ErrInvalidEncoding is returned when a key or ciphertext buffer has the
	// wrong length or fails structural decoding.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrSignatureDecode is returned when signature bytes decode to no valid
	// structure. A well-formed signature that merely fails to verify is not
	// an error; Verify reports it as false.
	ErrSignatureDecode = errors.New("malformed signature")

	// ErrContextTooLong is returned when a signing or verification context
	// string exceeds the 255-byte limit of FIPS 204.
	ErrContextTooLong = errors.New("context string exceeds 255 bytes")

	// ErrEncapsulation is returned when a well-sized encapsulation key is
	// rejected by the underlying algorithm.
	ErrEncapsulation = errors.New("encapsulation failed")

	// ErrDecapsulation is returned when a well-sized decapsulation key is
	// rejected by the underlying algorithm.
	ErrDecapsulation = errors.New("decapsulation failed")
)

// PQKitError is implemented by all typed errors of this package.
type PQKitError interface {
	error
	PQKitError() // marker method
}

// SeedSizeError reports a caller-supplied seed of the wrong length.
type SeedSizeError struct {
	// Algorithm is the scheme the seed was meant for, e.g. "ML-DSA-87".
	Algorithm string
	Want      int
	Got       int
}

func (e *SeedSizeError) Error() string {
	return fmt.Sprintf("%s seed must be %d bytes, got %d", e.Algorithm, e.Want, e.Got)
}

// Is implements errors.Is for sentinel error matching.
func (e *SeedSizeError) Is(target error) bool {
	return target == ErrInvalidSeedSize
}

// PQKitError implements the PQKitError interface.
func (e *SeedSizeError) PQKitError() {}

// EncodingError reports a key or ciphertext buffer that could not be decoded.
type EncodingError struct {
	// Field names the quantity that failed, e.g. "decapsulation key".
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid %s encoding: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// PQKitError implements the PQKitError interface.
func (e *EncodingError) PQKitError() {}

// SignatureDecodeError reports signature bytes that decode to no valid
// structure. It matches both ErrSignatureDecode and ErrInvalidEncoding, so
// callers that treat all decode failures uniformly keep working.
type SignatureDecodeError struct {
	Err error
}

func (e *SignatureDecodeError) Error() string {
	return fmt.Sprintf("malformed signature: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SignatureDecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureDecodeError) Is(target error) bool {
	return target == ErrSignatureDecode || target == ErrInvalidEncoding
}

// PQKitError implements the PQKitError interface.
func (e *SignatureDecodeError) PQKitError() {}

// EncapsulationError reports an encapsulation key that passed the length
// check but was rejected by the underlying algorithm.
type EncapsulationError struct {
	Err error
}

func (e *EncapsulationError) Error() string {
	return fmt.Sprintf("encapsulation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncapsulationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncapsulationError) Is(target error) bool {
	return target == ErrEncapsulation
}

// PQKitError implements the PQKitError interface.
func (e *EncapsulationError) PQKitError() {}

// DecapsulationError reports a decapsulation key that passed the length
// check but was rejected by the underlying algorithm. A mismatched ciphertext
// is not an error: implicit rejection yields a pseudorandom shared secret.
type DecapsulationError struct {
	Err error
}

func (e *DecapsulationError) Error() string {
	return fmt.Sprintf("decapsulation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecapsulationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecapsulationError) Is(target error) bool {
	return target == ErrDecapsulation
}

// PQKitError implements the PQKitError interface.
func (e *DecapsulationError) PQKitError() {}
