// Command pqkit exposes the pqkit operations on the command line. Byte
// parameters are passed as URL-safe base64 without padding; messages and
// hash input arrive on stdin; results leave as JSON on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	pqkit "github.com/pqkit/pqkit-go"
	"github.com/pqkit/pqkit-go/internal/encoding"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

const usage = `usage: pqkit <command> [args]

commands:
  sig-keygen [seed]               generate an ML-DSA-87 key pair
  sign <signingKey> [context]     sign stdin
  verify <verifyingKey> <signature> [context]
                                  verify a signature over stdin
  kem-keygen [seed]               generate an ML-KEM-1024 key pair
  encaps <encapsulationKey>       encapsulate a fresh shared secret
  decaps <decapsulationKey> <ciphertext>
                                  recover a shared secret
  hash                            SHA3-512 of stdin

byte arguments are URL-safe base64 without padding`

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%s", usage)
	}

	out := json.NewEncoder(stdout)

	switch args[0] {
	case "sig-keygen":
		kp, err := signatureKeyPair(args[1:])
		if err != nil {
			return err
		}
		return out.Encode(map[string]string{
			"verifyingKey": encoding.ToBase64URL(kp.VerifyingKey),
			"signingKey":   encoding.ToBase64URL(kp.SigningKey),
		})

	case "sign":
		if len(args) < 2 {
			return fmt.Errorf("usage: pqkit sign <signingKey> [context]")
		}
		sk, err := decodeArg("signing key", args[1])
		if err != nil {
			return err
		}
		ctx, err := optionalContext(args[2:])
		if err != nil {
			return err
		}
		message, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		sig, err := pqkit.Sign(sk, message, ctx)
		if err != nil {
			return err
		}
		return out.Encode(map[string]string{"signature": encoding.ToBase64URL(sig)})

	case "verify":
		if len(args) < 3 {
			return fmt.Errorf("usage: pqkit verify <verifyingKey> <signature> [context]")
		}
		pk, err := decodeArg("verifying key", args[1])
		if err != nil {
			return err
		}
		sig, err := decodeArg("signature", args[2])
		if err != nil {
			return err
		}
		ctx, err := optionalContext(args[3:])
		if err != nil {
			return err
		}
		message, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		ok, err := pqkit.Verify(pk, message, sig, ctx)
		if err != nil {
			return err
		}
		return out.Encode(map[string]bool{"valid": ok})

	case "kem-keygen":
		kp, err := kemKeyPair(args[1:])
		if err != nil {
			return err
		}
		return out.Encode(map[string]string{
			"encapsulationKey": encoding.ToBase64URL(kp.EncapsulationKey),
			"decapsulationKey": encoding.ToBase64URL(kp.DecapsulationKey),
		})

	case "encaps":
		if len(args) < 2 {
			return fmt.Errorf("usage: pqkit encaps <encapsulationKey>")
		}
		ek, err := decodeArg("encapsulation key", args[1])
		if err != nil {
			return err
		}
		enc, err := pqkit.Encapsulate(ek)
		if err != nil {
			return err
		}
		return out.Encode(map[string]string{
			"ciphertext":   encoding.ToBase64URL(enc.Ciphertext),
			"sharedSecret": encoding.ToBase64URL(enc.SharedSecret),
		})

	case "decaps":
		if len(args) < 3 {
			return fmt.Errorf("usage: pqkit decaps <decapsulationKey> <ciphertext>")
		}
		dk, err := decodeArg("decapsulation key", args[1])
		if err != nil {
			return err
		}
		ct, err := decodeArg("ciphertext", args[2])
		if err != nil {
			return err
		}
		ss, err := pqkit.Decapsulate(dk, ct)
		if err != nil {
			return err
		}
		return out.Encode(map[string]string{"sharedSecret": encoding.ToBase64URL(ss)})

	case "hash":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return out.Encode(map[string]string{"digest": encoding.ToBase64URL(pqkit.Hash512(data))})

	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage)
	}
}

func signatureKeyPair(args []string) (*pqkit.SignatureKeyPair, error) {
	if len(args) == 0 {
		return pqkit.GenerateSignatureKeyPair()
	}
	seed, err := decodeArg("seed", args[0])
	if err != nil {
		return nil, err
	}
	return pqkit.NewSignatureKeyPairFromSeed(seed)
}

func kemKeyPair(args []string) (*pqkit.KemKeyPair, error) {
	if len(args) == 0 {
		return pqkit.GenerateKemKeyPair()
	}
	seed, err := decodeArg("seed", args[0])
	if err != nil {
		return nil, err
	}
	return pqkit.NewKemKeyPairFromSeed(seed)
}

func optionalContext(args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return decodeArg("context", args[0])
}

func decodeArg(name, s string) ([]byte, error) {
	data, err := encoding.FromBase64URL(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return data, nil
}
