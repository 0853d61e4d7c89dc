package pqkit

import (
	"errors"
	"io"

	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"

	"github.com/pqkit/pqkit-go/internal/codec"
)

// KemKeyPair represents an ML-KEM-1024 key pair. The exported fields hold the
// fixed-size encodings (1568 bytes encapsulation, 3168 bytes decapsulation)
// and must not be mutated; the decoded key material is cached internally so
// repeated Encapsulate and Decapsulate calls skip re-decoding.
type KemKeyPair struct {
	// EncapsulationKey is the raw ML-KEM-1024 public key bytes.
	EncapsulationKey []byte
	// DecapsulationKey is the raw ML-KEM-1024 private key bytes.
	DecapsulationKey []byte

	encapsulation *mlkem1024.PublicKey
	decapsulation *mlkem1024.PrivateKey
}

// Encapsulation is the result of a single encapsulation call: a ciphertext
// safe to transmit and the 32-byte shared secret it encapsulates. The shared
// secret is sensitive and must be treated as such by the caller.
type Encapsulation struct {
	// Ciphertext is the raw ML-KEM-1024 ciphertext bytes.
	Ciphertext []byte
	// SharedSecret is the encapsulated 32-byte secret.
	SharedSecret []byte
}

func newKemKeyPair(ek *mlkem1024.PublicKey, dk *mlkem1024.PrivateKey) *KemKeyPair {
	// MarshalBinary never fails for valid keys
	ekBytes, _ := ek.MarshalBinary()
	dkBytes, _ := dk.MarshalBinary()

	return &KemKeyPair{
		EncapsulationKey: ekBytes,
		DecapsulationKey: dkBytes,
		encapsulation:    ek,
		decapsulation:    dk,
	}
}

// GenerateKemKeyPair creates a new ML-KEM-1024 key pair from fresh
// randomness. Two calls yield unrelated key pairs.
func GenerateKemKeyPair() (*KemKeyPair, error) {
	ek, dk, err := mlkem1024.GenerateKeyPair(randReader)
	if err != nil {
		return nil, err
	}
	return newKemKeyPair(ek, dk), nil
}

// NewKemKeyPairFromSeed derives an ML-KEM-1024 key pair deterministically
// from a 64-byte seed: the first 32 bytes are the key derivation randomness
// d, the last 32 the implicit-rejection randomness z of FIPS 203. The same
// seed always produces the same key pair. The seed is consumed and never
// stored.
func NewKemKeyPairFromSeed(seed []byte) (*KemKeyPair, error) {
	s, err := codec.KemSeed(seed)
	if err != nil {
		return nil, &SeedSizeError{Algorithm: "ML-KEM-1024", Want: codec.KemSeedSize, Got: len(seed)}
	}
	ek, dk := mlkem1024.NewKeyFromSeed(s)
	return newKemKeyPair(ek, dk), nil
}

// DecodeKemKeyPair reconstructs a key pair from encoded encapsulation and
// decapsulation key bytes.
func DecodeKemKeyPair(encapsulationKey, decapsulationKey []byte) (*KemKeyPair, error) {
	ek, err := codec.EncapsulationKey(encapsulationKey)
	if err != nil {
		return nil, wrapKemKeyError("encapsulation key", err)
	}
	dk, err := codec.DecapsulationKey(decapsulationKey)
	if err != nil {
		return nil, wrapKemKeyError("decapsulation key", err)
	}
	return newKemKeyPair(ek, dk), nil
}

// Encapsulate generates a ciphertext and shared secret for the encoded
// encapsulation key, drawing fresh randomness on every call. The ciphertext
// can be sent to the holder of the matching decapsulation key.
func Encapsulate(encapsulationKey []byte) (*Encapsulation, error) {
	ek, err := codec.EncapsulationKey(encapsulationKey)
	if err != nil {
		return nil, wrapKemKeyError("encapsulation key", err)
	}
	return encapsulateWith(ek)
}

// Decapsulate recovers the shared secret from a ciphertext using the encoded
// decapsulation key. It is deterministic and consumes no randomness.
//
// A well-formed ciphertext that was not produced for this key still yields a
// 32-byte value: implicit rejection returns a pseudorandom secret rather
// than an error, so a non-nil result is not proof the ciphertext matched.
func Decapsulate(decapsulationKey, ciphertext []byte) ([]byte, error) {
	dk, err := codec.DecapsulationKey(decapsulationKey)
	if err != nil {
		return nil, wrapKemKeyError("decapsulation key", err)
	}
	return decapsulateWith(dk, ciphertext)
}

// Encapsulate generates a ciphertext and shared secret for the cached
// encapsulation key. See [Encapsulate].
func (kp *KemKeyPair) Encapsulate() (*Encapsulation, error) {
	return encapsulateWith(kp.encapsulation)
}

// Decapsulate recovers the shared secret from ciphertext using the cached
// decapsulation key. See [Decapsulate].
func (kp *KemKeyPair) Decapsulate(ciphertext []byte) ([]byte, error) {
	return decapsulateWith(kp.decapsulation, ciphertext)
}

func encapsulateWith(ek *mlkem1024.PublicKey) (*Encapsulation, error) {
	// nil seed makes EncapsulateTo draw from crypto/rand
	var seed []byte
	if randReader != nil {
		seed = make([]byte, codec.EncapsulationSeedSize)
		if _, err := io.ReadFull(randReader, seed); err != nil {
			return nil, &EncapsulationError{Err: err}
		}
	}

	ct := make([]byte, codec.CiphertextSize)
	ss := make([]byte, codec.SharedSecretSize)
	ek.EncapsulateTo(ct, ss, seed)

	return &Encapsulation{Ciphertext: ct, SharedSecret: ss}, nil
}

func decapsulateWith(dk *mlkem1024.PrivateKey, ciphertext []byte) ([]byte, error) {
	ct, err := codec.Ciphertext(ciphertext)
	if err != nil {
		return nil, &EncodingError{Field: "ciphertext", Err: err}
	}

	ss := make([]byte, codec.SharedSecretSize)
	dk.DecapsulateTo(ss, ct)
	return ss, nil
}

func wrapKemKeyError(field string, err error) error {
	var se *codec.SizeError
	if errors.As(err, &se) {
		return &EncodingError{Field: field, Err: err}
	}
	if field == "encapsulation key" {
		return &EncapsulationError{Err: err}
	}
	return &DecapsulationError{Err: err}
}
