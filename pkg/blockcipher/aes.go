package blockcipher

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// goAES is the in-process provider backed by the standard library AES cipher.
type goAES struct{}

// NewGoAES returns a Provider implemented with crypto/aes and crypto/cipher
// CBC chaining. It completes synchronously but still checks ctx so a caller
// composing it with asynchronous providers sees uniform cancellation.
func NewGoAES() Provider {
	return goAES{}
}

func (goAES) Name() string { return "aes-go" }

func (goAES) EncryptCBCZeroIV(ctx context.Context, key, plaintext []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrUnalignedInput, len(plaintext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher init failed: %w", err)
	}

	iv := make([]byte, BlockSize) // zero IV per the capability contract.
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	return ciphertext, nil
}
