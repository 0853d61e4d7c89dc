package pqkit

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"

	"github.com/pqkit/pqkit-go/internal/codec"
)

// SignatureKeyPair represents an ML-DSA-87 key pair. The exported fields hold
// the fixed-size encodings (2592 bytes verifying, 4896 bytes signing) and
// must not be mutated; the decoded key material is cached internally so
// repeated Sign and Verify calls skip re-decoding.
type SignatureKeyPair struct {
	// VerifyingKey is the raw ML-DSA-87 public key bytes.
	VerifyingKey []byte
	// SigningKey is the raw ML-DSA-87 private key bytes.
	SigningKey []byte

	verifying *mldsa87.PublicKey
	signing   *mldsa87.PrivateKey
}

func newSignatureKeyPair(pk *mldsa87.PublicKey, sk *mldsa87.PrivateKey) *SignatureKeyPair {
	return &SignatureKeyPair{
		VerifyingKey: pk.Bytes(),
		SigningKey:   sk.Bytes(),
		verifying:    pk,
		signing:      sk,
	}
}

// GenerateSignatureKeyPair creates a new ML-DSA-87 key pair from fresh
// randomness. Two calls yield unrelated key pairs.
func GenerateSignatureKeyPair() (*SignatureKeyPair, error) {
	pk, sk, err := mldsa87.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}
	return newSignatureKeyPair(pk, sk), nil
}

// NewSignatureKeyPairFromSeed derives an ML-DSA-87 key pair deterministically
// from a 32-byte seed. The same seed always produces the same key pair. The
// seed is consumed and never stored.
func NewSignatureKeyPairFromSeed(seed []byte) (*SignatureKeyPair, error) {
	s, err := codec.SignatureSeed(seed)
	if err != nil {
		return nil, &SeedSizeError{Algorithm: "ML-DSA-87", Want: codec.SignatureSeedSize, Got: len(seed)}
	}
	pk, sk := mldsa87.NewKeyFromSeed(s)
	return newSignatureKeyPair(pk, sk), nil
}

// DecodeSignatureKeyPair reconstructs a key pair from encoded verifying and
// signing key bytes.
func DecodeSignatureKeyPair(verifyingKey, signingKey []byte) (*SignatureKeyPair, error) {
	pk, err := codec.VerifyingKey(verifyingKey)
	if err != nil {
		return nil, &EncodingError{Field: "verifying key", Err: err}
	}
	sk, err := codec.SigningKey(signingKey)
	if err != nil {
		return nil, &EncodingError{Field: "signing key", Err: err}
	}
	return newSignatureKeyPair(pk, sk), nil
}

// Sign signs message with the encoded signing key using the hedged variant
// of ML-DSA-87: a fresh 256-bit value is mixed into every signature, so two
// signatures over the same inputs differ while both verify.
//
// context is an optional domain-separation string of at most 255 bytes bound
// into the signature; nil is equivalent to empty. Verification must use the
// same context.
func Sign(signingKey, message, context []byte) ([]byte, error) {
	sk, err := codec.SigningKey(signingKey)
	if err != nil {
		return nil, &EncodingError{Field: "signing key", Err: err}
	}
	return signWith(sk, message, context)
}

// Verify reports whether signature is a valid ML-DSA-87 signature on message
// under the encoded verifying key and context. A well-formed signature that
// does not validate returns (false, nil); only malformed inputs return an
// error.
func Verify(verifyingKey, message, signature, context []byte) (bool, error) {
	pk, err := codec.VerifyingKey(verifyingKey)
	if err != nil {
		return false, &EncodingError{Field: "verifying key", Err: err}
	}
	return verifyWith(pk, message, signature, context)
}

// Sign signs message with the cached signing key. See [Sign].
func (kp *SignatureKeyPair) Sign(message, context []byte) ([]byte, error) {
	return signWith(kp.signing, message, context)
}

// Verify checks signature against the cached verifying key. See [Verify].
func (kp *SignatureKeyPair) Verify(message, signature, context []byte) (bool, error) {
	return verifyWith(kp.verifying, message, signature, context)
}

func signWith(sk *mldsa87.PrivateKey, message, context []byte) ([]byte, error) {
	if len(context) > codec.MaxContextSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrContextTooLong, len(context))
	}

	sig := make([]byte, codec.SignatureSize)
	if err := mldsa87.SignTo(sk, message, context, true, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

func verifyWith(pk *mldsa87.PublicKey, message, signature, context []byte) (bool, error) {
	if len(context) > codec.MaxContextSize {
		return false, fmt.Errorf("%w: got %d bytes", ErrContextTooLong, len(context))
	}

	sig, err := codec.Signature(signature)
	if err != nil {
		return false, &SignatureDecodeError{Err: err}
	}
	return mldsa87.Verify(pk, message, context, sig), nil
}
