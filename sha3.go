package pqkit

import "golang.org/x/crypto/sha3"

// Hash512 computes the SHA3-512 digest of data. It accepts input of any
// length, including empty, is fully deterministic, and always returns a
// 64-byte digest.
func Hash512(data []byte) []byte {
	digest := sha3.Sum512(data)
	return digest[:]
}
