package aescmac

// BlockSize is the AES block size in bytes. It is 16 for all key lengths, so
// every intermediate value and the tag itself is one 16-byte block.
const BlockSize = 16

// block is a single cipher block. L, K1, K2 and the tag are all blocks.
type block [BlockSize]byte

// xorInto XORs src into the first BlockSize bytes of dst in place. dst must
// hold at least BlockSize bytes.
func xorInto(dst []byte, src *block) {
	for i := range src {
		dst[i] ^= src[i]
	}
}

// double multiplies src by x in GF(2^128) with the reduction polynomial
// x^128 + x^7 + x^2 + x + 1 and stores the result in dst. The block is
// treated as a 128-bit big-endian integer and shifted left one bit; if the
// shifted-out bit was set, the last byte is XORed with 0x87. The reduction
// constant is selected by a mask computed from the carried-out bit, so the
// operation never branches on secret state.
func double(dst, src *block) {
	var carry byte
	for i := BlockSize - 1; i >= 0; i-- {
		dst[i] = src[i]<<1 | carry
		carry = src[i] >> 7
	}

	dst[BlockSize-1] ^= 0x87 & (0 - carry)
}
