package aescmac

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrei-cloud/go_cmac/pkg/blockcipher"
)

// subkeys holds the two subkeys derived from a key per RFC 4493, Section 2.3.
// They are computed once per prepared MAC and never written afterwards, so
// concurrent tag computations may read them freely.
type subkeys struct {
	k1, k2 block
}

// deriveSubkeys computes L = AES-K(0^128), K1 = double(L), K2 = double(K1).
// The single-block encryption goes through the provider; with one block and
// a zero IV, CBC reduces to the plain block encryption of the zero block.
func deriveSubkeys(ctx context.Context, key []byte, prov blockcipher.Provider) (*subkeys, error) {
	zero := make([]byte, BlockSize)

	enc, err := prov.EncryptCBCZeroIV(ctx, key, zero)
	if err != nil {
		return nil, errors.Join(ErrProviderFailure, err)
	}
	if len(enc) != BlockSize {
		return nil, errors.Join(ErrProviderFailure,
			fmt.Errorf("provider returned %d bytes for a single block", len(enc)))
	}

	var l block
	copy(l[:], enc)

	sk := &subkeys{}
	double(&sk.k1, &l)
	double(&sk.k2, &sk.k1)

	return sk, nil
}
