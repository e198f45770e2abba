package aescmac

import "github.com/andrei-cloud/go_cmac/internal/blockpool"

// pad copies message into a block-aligned buffer with the final block masked
// per RFC 4493, Section 2.4:
//   - non-empty message of whole blocks: last block XORed with K1, length
//     unchanged;
//   - anything else, the empty message included: append 0x80, zero-fill to
//     the next block boundary, XOR the last block with K2.
//
// The empty message therefore yields exactly one block, 0x80 followed by
// fifteen zero bytes, masked with K2.
//
// The result is pool scratch owned by the caller, who must hand it back with
// blockpool.Put. Neither message nor the cached subkeys are written through.
func pad(message []byte, sk *subkeys) []byte {
	n := len(message)

	if n > 0 && n%BlockSize == 0 {
		padded := blockpool.Get(n)
		copy(padded, message)
		xorInto(padded[n-BlockSize:], &sk.k1)

		return padded
	}

	whole := n / BlockSize * BlockSize
	padded := blockpool.Get(whole + BlockSize)
	copy(padded, message)
	padded[n] = 0x80
	// blockpool.Get zeroes the buffer, so the fill bytes are already there.
	xorInto(padded[whole:], &sk.k2)

	return padded
}
