package aescmac

import "errors"

// Error kinds surfaced by Prepare and MacFunc. None of them are logged or
// swallowed internally; they always reach the caller.
var (
	// ErrInvalidKeyLength is returned by Prepare when the key is not 16, 24
	// or 32 bytes. It is never raised at tag-computation time.
	ErrInvalidKeyLength = errors.New("key must be 16, 24 or 32 bytes")

	// ErrProviderFailure marks any failure of the cipher provider, including
	// cancellation of an asynchronous backend. The provider's own error is
	// joined in and stays inspectable with errors.Is.
	ErrProviderFailure = errors.New("cipher provider failure")

	// ErrMalformedInput means the engine was about to hand the provider a
	// buffer that is not block aligned. That is an internal invariant
	// violation and indicates a bug, not a recoverable caller error.
	ErrMalformedInput = errors.New("internal buffer not block aligned")
)
