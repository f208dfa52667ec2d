// Package fastuuid provides fast generation of 192-bit universally unique
// identifiers and simple support for 128-bit RFC-4122 version 4 strings.
//
// # Format
//
// A Generator draws a 24-byte random seed once. The first 8 bytes seed an
// atomic counter; the remaining 16 bytes are copied verbatim into every id:
//
//	[8 bytes counter][16 bytes seed tail]
//
// Next costs a single atomic increment, so ids from one Generator are
// unique for the lifetime of the process (until the 64-bit counter wraps).
//
// # Guessability
//
// Ids are NOT unguessable: every id is adjacent to the previous one. If
// unpredictable values are required, hash the id (SHA-256 for example)
// before passing it to Hex128.
//
// # Hex128
//
// The Hex128 family renders the first 128 bits as a hyphenated RFC-4122 V4
// string such as 11febf98-c108-4383-bb1e-739ffcd44341. Bytes 6 and 9 are
// swapped before the version and variant bits are forced, so the version
// byte still carries varying counter bits.
//
// Each entry point comes in a checked flavour, which validates the output
// as UTF-8 and reports an *EncodingError, and an Unchecked flavour that
// trusts the ASCII output alphabet.
//
// Usage
//
//	g := fastuuid.MustNewGenerator()
//	raw := g.Next()                // [24]byte
//	var buf [36]byte
//	b, _ := g.Hex128Into(&buf)      // no allocation, b is buf[:]
//	s := g.Hex128IntoUnchecked(&buf) // no allocation, s shares buf
//	owned := g.Hex128StringUnchecked()
//	ok := fastuuid.IsValidHex128(owned)
//
// All Generator methods are safe for concurrent use.
package fastuuid
