package codec

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

const (
	// VerifyingKeySize is the size of an ML-DSA-87 public key in bytes.
	VerifyingKeySize = mldsa87.PublicKeySize
	// SigningKeySize is the size of an ML-DSA-87 private key in bytes.
	SigningKeySize = mldsa87.PrivateKeySize
	// SignatureSize is the size of an ML-DSA-87 signature in bytes.
	SignatureSize = mldsa87.SignatureSize
	// SignatureSeedSize is the size of a deterministic ML-DSA-87 key
	// generation seed in bytes.
	SignatureSeedSize = mldsa87.SeedSize

	// EncapsulationKeySize is the size of an ML-KEM-1024 public key in bytes.
	EncapsulationKeySize = mlkem1024.PublicKeySize
	// DecapsulationKeySize is the size of an ML-KEM-1024 private key in bytes.
	DecapsulationKeySize = mlkem1024.PrivateKeySize
	// CiphertextSize is the size of an ML-KEM-1024 ciphertext in bytes.
	CiphertextSize = mlkem1024.CiphertextSize
	// SharedSecretSize is the size of the shared secret from ML-KEM-1024 in bytes.
	SharedSecretSize = mlkem1024.SharedKeySize
	// KemSeedSize is the size of a deterministic ML-KEM-1024 key generation
	// seed in bytes. The seed is the concatenation d || z of the FIPS 203
	// key-derivation randomness and implicit-rejection randomness.
	KemSeedSize = mlkem1024.KeySeedSize
	// EncapsulationSeedSize is the size of the per-call encapsulation
	// randomness in bytes.
	EncapsulationSeedSize = mlkem1024.EncapsulationSeedSize

	// DigestSize is the size of a SHA3-512 digest in bytes.
	DigestSize = 64

	// MaxContextSize is the largest context string accepted by ML-DSA-87
	// signing and verification, per FIPS 204.
	MaxContextSize = 255
)
