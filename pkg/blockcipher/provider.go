// Package blockcipher defines the block cipher capability consumed by the
// CMAC engine and the providers implementing it.
package blockcipher

import (
	"context"
	"errors"
)

// BlockSize is the cipher block size in bytes. AES uses 16-byte blocks for
// every key length, so block-aligned here always means a multiple of 16.
const BlockSize = 16

var (
	// ErrUnalignedInput is returned when the plaintext length is not a
	// multiple of BlockSize. Providers apply no padding of their own.
	ErrUnalignedInput = errors.New("plaintext length is not a multiple of the block size")

	// ErrProviderUnavailable is returned by a registry when no provider is
	// registered under the requested name.
	ErrProviderUnavailable = errors.New("cipher provider not available")
)

// Provider encrypts block-aligned plaintext in CBC mode with an all-zero
// initialization vector. The transform is length preserving. A provider may
// be backed by an external cryptographic service and complete asynchronously;
// implementations must honor ctx and return its error on cancellation rather
// than producing a partial result.
type Provider interface {
	// Name identifies the provider for registry selection and diagnostics.
	Name() string

	// EncryptCBCZeroIV encrypts plaintext under key using CBC chaining with
	// a zero IV. key must be 16, 24 or 32 bytes; plaintext length must
	// already be a multiple of BlockSize or the call fails with
	// ErrUnalignedInput.
	EncryptCBCZeroIV(ctx context.Context, key, plaintext []byte) ([]byte, error)
}
