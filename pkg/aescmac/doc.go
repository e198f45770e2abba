// Package aescmac implements the AES-CMAC message authentication code per
// NIST SP 800-38B and RFC 4493 on top of an injected block cipher provider.
//
// Prepare validates the key and derives the two CMAC subkeys once; the
// returned MacFunc computes 16-byte tags for arbitrary-length messages, the
// empty message included, and is safe for concurrent use. The cipher itself
// is supplied through blockcipher.Provider; this package only consumes CBC
// encryption with a zero IV and never touches key material beyond handing it
// to the provider.
//
// Callers comparing a computed tag against an expected one must do so in
// constant time over the full 16 bytes; Verify implements that contract.
package aescmac
