// Package codec validates and decodes the fixed-size byte encodings of every
// key, signature, ciphertext, and seed handled by pqkit. All length checks
// happen here, before any buffer crosses into the primitive library.
package codec

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// VerifyingKey decodes an encoded ML-DSA-87 public key.
func VerifyingKey(buf []byte) (*mldsa87.PublicKey, error) {
	if len(buf) != VerifyingKeySize {
		return nil, &SizeError{Field: "verifying key", Want: VerifyingKeySize, Got: len(buf)}
	}
	pk := new(mldsa87.PublicKey)
	if err := pk.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return pk, nil
}

// SigningKey decodes an encoded ML-DSA-87 private key.
func SigningKey(buf []byte) (*mldsa87.PrivateKey, error) {
	if len(buf) != SigningKeySize {
		return nil, &SizeError{Field: "signing key", Want: SigningKeySize, Got: len(buf)}
	}
	sk := new(mldsa87.PrivateKey)
	if err := sk.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return sk, nil
}

// Signature checks the length of an encoded ML-DSA-87 signature. Structural
// validation beyond the length happens inside verification itself.
func Signature(buf []byte) ([]byte, error) {
	if len(buf) != SignatureSize {
		return nil, &SizeError{Field: "signature", Want: SignatureSize, Got: len(buf)}
	}
	return buf, nil
}

// EncapsulationKey decodes an encoded ML-KEM-1024 public key. A well-sized
// buffer can still be rejected by the FIPS 203 modulus check; that failure is
// returned as the primitive library's own error, not a *SizeError.
func EncapsulationKey(buf []byte) (*mlkem1024.PublicKey, error) {
	if len(buf) != EncapsulationKeySize {
		return nil, &SizeError{Field: "encapsulation key", Want: EncapsulationKeySize, Got: len(buf)}
	}
	ek := new(mlkem1024.PublicKey)
	if err := ek.Unpack(buf); err != nil {
		return nil, err
	}
	return ek, nil
}

// DecapsulationKey decodes an encoded ML-KEM-1024 private key. A well-sized
// buffer can still fail the FIPS 203 hash consistency check; that failure is
// returned as the primitive library's own error, not a *SizeError.
func DecapsulationKey(buf []byte) (*mlkem1024.PrivateKey, error) {
	if len(buf) != DecapsulationKeySize {
		return nil, &SizeError{Field: "decapsulation key", Want: DecapsulationKeySize, Got: len(buf)}
	}
	dk := new(mlkem1024.PrivateKey)
	if err := dk.Unpack(buf); err != nil {
		return nil, err
	}
	return dk, nil
}

// Ciphertext checks the length of an encoded ML-KEM-1024 ciphertext.
func Ciphertext(buf []byte) ([]byte, error) {
	if len(buf) != CiphertextSize {
		return nil, &SizeError{Field: "ciphertext", Want: CiphertextSize, Got: len(buf)}
	}
	return buf, nil
}

// SignatureSeed validates a deterministic ML-DSA-87 key generation seed.
func SignatureSeed(buf []byte) (*[SignatureSeedSize]byte, error) {
	if len(buf) != SignatureSeedSize {
		return nil, &SizeError{Field: "signature seed", Want: SignatureSeedSize, Got: len(buf)}
	}
	return (*[SignatureSeedSize]byte)(buf), nil
}

// KemSeed validates a deterministic ML-KEM-1024 key generation seed. The two
// 32-byte halves d and z are split by the key derivation itself.
func KemSeed(buf []byte) ([]byte, error) {
	if len(buf) != KemSeedSize {
		return nil, &SizeError{Field: "KEM seed", Want: KemSeedSize, Got: len(buf)}
	}
	return buf, nil
}
