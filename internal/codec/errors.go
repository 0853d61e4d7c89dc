package codec

import "fmt"

// SizeError reports a buffer whose length does not match the fixed encoding
// size of the quantity it claims to be.
type SizeError struct {
	// Field names the quantity that failed validation, e.g. "signing key".
	Field string
	// Want is the exact byte length the encoding requires.
	Want int
	// Got is the length of the rejected buffer.
	Got int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s must be %d bytes, got %d", e.Field, e.Want, e.Got)
}
