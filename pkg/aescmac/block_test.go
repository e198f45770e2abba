package aescmac

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hexBlock(t *testing.T, s string) block {
	t.Helper()

	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	if len(raw) != BlockSize {
		t.Fatalf("hex %q is %d bytes, want %d", s, len(raw), BlockSize)
	}

	var b block
	copy(b[:], raw)

	return b
}

func TestDouble(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "zero block stays zero",
			in:   "00000000000000000000000000000000",
			want: "00000000000000000000000000000000",
		},
		{
			name: "MSB clear is a plain shift",
			in:   "40000000000000000000000000000001",
			want: "80000000000000000000000000000002",
		},
		{
			name: "MSB set folds 0x87 into the last byte",
			in:   "80000000000000000000000000000000",
			want: "00000000000000000000000000000087",
		},
		{
			name: "carry ripples across byte boundaries",
			in:   "00800080008000800080008000800080",
			want: "01000100010001000100010001000100",
		},
		{
			name: "RFC 4493 L to K1",
			in:   "7df76b0c1ab899b33e42f047b91b546f",
			want: "fbeed618357133667c85e08f7236a8de",
		},
		{
			name: "RFC 4493 K1 to K2",
			in:   "fbeed618357133667c85e08f7236a8de",
			want: "f7ddac306ae266ccf90bc11ee46d513b",
		},
	}

	for _, tc := range testCases {
		tc := tc // capture range variable.
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := hexBlock(t, tc.in)
			want := hexBlock(t, tc.want)

			var dst block
			double(&dst, &src)

			if dst != want {
				t.Errorf("double(%s) = %s, want %s",
					tc.in, hex.EncodeToString(dst[:]), tc.want)
			}

			if src != hexBlock(t, tc.in) {
				t.Errorf("double mutated its source: %s", hex.EncodeToString(src[:]))
			}
		})
	}
}

func TestXorInto(t *testing.T) {
	t.Parallel()

	dst := bytes.Repeat([]byte{0xf0}, BlockSize+4)
	src := hexBlock(t, "0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f")

	xorInto(dst, &src)

	if !bytes.Equal(dst[:BlockSize], bytes.Repeat([]byte{0xff}, BlockSize)) {
		t.Errorf("xorInto produced %x in the first block", dst[:BlockSize])
	}
	if !bytes.Equal(dst[BlockSize:], bytes.Repeat([]byte{0xf0}, 4)) {
		t.Errorf("xorInto wrote past the first block: %x", dst[BlockSize:])
	}
}
