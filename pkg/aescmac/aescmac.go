package aescmac

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/andrei-cloud/go_cmac/internal/blockpool"
	"github.com/andrei-cloud/go_cmac/pkg/blockcipher"
)

// MacFunc computes the AES-CMAC tag of a message under the key it was
// prepared with. It may be called repeatedly and concurrently with different
// messages; the subkeys cached at Prepare time are read-only.
type MacFunc func(ctx context.Context, message []byte) ([]byte, error)

// Prepare validates the key length, derives the CMAC subkeys once through
// prov, and returns a MacFunc bound to the key and subkeys. The key is copied
// so later mutation by the caller cannot affect tags.
func Prepare(ctx context.Context, key []byte, prov blockcipher.Provider) (MacFunc, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	bound := make([]byte, len(key))
	copy(bound, key)

	sk, err := deriveSubkeys(ctx, bound, prov)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, message []byte) ([]byte, error) {
		return computeTag(ctx, bound, sk, prov, message)
	}, nil
}

// computeTag pads message, CBC-encrypts the result under key with a zero IV
// and returns the final ciphertext block as the tag. Earlier ciphertext
// blocks only feed the chain and are discarded.
func computeTag(
	ctx context.Context,
	key []byte,
	sk *subkeys,
	prov blockcipher.Provider,
	message []byte,
) ([]byte, error) {
	padded := pad(message, sk)
	defer blockpool.Put(padded)

	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes after padding", ErrMalformedInput, len(padded))
	}

	ciphertext, err := prov.EncryptCBCZeroIV(ctx, key, padded)
	if err != nil {
		return nil, errors.Join(ErrProviderFailure, err)
	}
	if len(ciphertext) != len(padded) {
		return nil, errors.Join(ErrProviderFailure,
			fmt.Errorf("ciphertext length %d does not match plaintext length %d",
				len(ciphertext), len(padded)))
	}

	tag := make([]byte, BlockSize)
	copy(tag, ciphertext[len(ciphertext)-BlockSize:])

	return tag, nil
}

// Verify compares a computed tag against an expected one in constant time
// over the full block. Tag comparison must never use bytes.Equal or a loop
// that stops at the first mismatch; both leak the mismatch position.
func Verify(got, want []byte) bool {
	if len(got) != BlockSize || len(want) != BlockSize {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

// CheckValue computes the AES key check value: the CMAC of a single block of
// binary zeros under key, truncated to its first 8 bytes.
func CheckValue(ctx context.Context, key []byte, prov blockcipher.Provider) ([]byte, error) {
	mac, err := Prepare(ctx, key, prov)
	if err != nil {
		return nil, err
	}

	tag, err := mac(ctx, make([]byte, BlockSize))
	if err != nil {
		return nil, fmt.Errorf("failed to compute CMAC for check value: %w", err)
	}

	const checkValueLength = 8

	return tag[:checkValueLength], nil
}
