// Package pqkit is a unified facade over three post-quantum cryptographic
// primitives: ML-DSA-87 digital signatures, ML-KEM-1024 key encapsulation,
// and SHA3-512 hashing. Every operation takes and returns raw byte buffers
// with strict size validation and a uniform typed-error model.
//
// # Algorithm Suite
//
//   - ML-DSA-87 (NIST FIPS 204): Lattice-based digital signature algorithm
//     at its highest-security parameter set. Public keys are 2592 bytes,
//     private keys 4896 bytes, signatures 4627 bytes.
//
//   - ML-KEM-1024 (NIST FIPS 203): Lattice-based key encapsulation mechanism
//     at its highest-security parameter set. Encapsulation keys are 1568
//     bytes, decapsulation keys 3168 bytes, ciphertexts 1568 bytes, shared
//     secrets 32 bytes.
//
//   - SHA3-512 (NIST FIPS 202): Fixed-output cryptographic hash producing
//     64-byte digests.
//
// # Key Generation
//
// Each algorithm family offers a random and a deterministic constructor.
// [GenerateSignatureKeyPair] and [GenerateKemKeyPair] draw fresh entropy and
// are non-reproducible. [NewSignatureKeyPairFromSeed] (32-byte seed) and
// [NewKemKeyPairFromSeed] (64-byte seed) are pure functions: the same seed
// always yields the same key pair. Seeds are consumed once and never stored;
// a wrong-length seed fails with [SeedSizeError].
//
// # Signing
//
// [Sign] uses the hedged variant of ML-DSA: fresh randomness is mixed into
// every signature, so two signatures over the same message differ while both
// verify. An optional context string of up to 255 bytes is bound into the
// signature for domain separation; verification must present the identical
// context. [Verify] returns false, not an error, for a well-formed signature
// that does not validate.
//
// # Key Encapsulation
//
// [Encapsulate] produces a ciphertext plus a 32-byte shared secret;
// [Decapsulate] recovers the secret deterministically. Decapsulating a
// ciphertext that was not produced for the key yields a pseudorandom secret
// rather than an error (implicit rejection); this is standard KEM behavior
// and prevents chosen-ciphertext oracles. Use [DeriveKey] to expand a shared
// secret into symmetric key material.
//
// # Error Model
//
// Validation and decoding failures are returned as typed errors that match
// package sentinels under errors.Is: wrong-length seeds are
// [ErrInvalidSeedSize], malformed keys and ciphertexts [ErrInvalidEncoding],
// undecodable signatures [ErrSignatureDecode], and algorithm-level
// rejections [ErrEncapsulation] or [ErrDecapsulation]. No operation panics
// on caller input.
//
// # Concurrency
//
// All operations are synchronous and stateless; key pair values are
// immutable after construction. Everything in this package is safe for
// concurrent use: the only process-wide state is the crypto/rand source,
// which is itself thread-safe. Deterministic operations (seeded key
// generation, Verify, Decapsulate, Hash512) never touch the random source.
package pqkit
