package pqkit

import "io"

// randReader is the random source used for key generation and encapsulation.
// It defaults to nil (which uses crypto/rand) but can be overridden by tests
// in this package. Deterministic operations never read from it.
var randReader io.Reader
