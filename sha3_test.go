package pqkit

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pqkit/pqkit-go/internal/codec"
)

func TestHash512_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		hex  string
	}{
		{
			"empty",
			[]byte{},
			"a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
		},
		{
			"abc",
			[]byte("abc"),
			"b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.hex)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}
			got := Hash512(tt.data)
			if !bytes.Equal(got, want) {
				t.Errorf("Hash512() = %x, want %x", got, want)
			}
		})
	}
}

func TestHash512_Properties(t *testing.T) {
	if n := len(Hash512(nil)); n != codec.DigestSize {
		t.Errorf("digest size = %d, want %d", n, codec.DigestSize)
	}

	data := []byte("some input")
	if !bytes.Equal(Hash512(data), Hash512(data)) {
		t.Error("Hash512 is not deterministic")
	}
	if bytes.Equal(Hash512([]byte("a")), Hash512([]byte("b"))) {
		t.Error("distinct inputs produced identical digests")
	}

	// nil and empty inputs hash identically.
	if !bytes.Equal(Hash512(nil), Hash512([]byte{})) {
		t.Error("nil and empty inputs produced different digests")
	}
}
