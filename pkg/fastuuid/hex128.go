package fastuuid

import (
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/google/uuid"
)

// Hex128Size is the length of a Hex128 string.
const Hex128Size = 36

const hexdigits = "0123456789abcdef"

// EncodingError reports that an encoded buffer is not valid UTF-8. The
// encoder only emits ASCII, so seeing one means the encoder is broken.
type EncodingError struct {
	// Offset is the index of the first byte that does not start a valid rune.
	Offset int
}

func (e *EncodingError) Error() string {
	return "fastuuid: hex128 output is not valid UTF-8 at offset " + strconv.Itoa(e.Offset)
}

// Hex128Into writes Hex128(g.Next()) into dst and returns dst[:] after
// checking it is valid UTF-8. It does not allocate. The returned slice is
// dst itself, so copy it (string(b)) before reusing dst if it must be kept.
func (g *Generator) Hex128Into(dst *[Hex128Size]byte) ([]byte, error) {
	return EncodeHex128Checked(dst, g.Next())
}

// Hex128IntoUnchecked writes Hex128(g.Next()) into dst and returns it as a
// string without allocating or validating. The string shares memory with
// dst: the caller must not write to dst again while the string is in use,
// including as a map key. Use Hex128Into or Hex128String when that cannot
// be guaranteed.
func (g *Generator) Hex128IntoUnchecked(dst *[Hex128Size]byte) string {
	return bytesToString(EncodeHex128(dst, g.Next()))
}

// Hex128String returns Hex128(g.Next()) as a newly allocated string.
func (g *Generator) Hex128String() (string, error) {
	var buf [Hex128Size]byte
	b, err := EncodeHex128Checked(&buf, g.Next())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hex128StringUnchecked is like Hex128String but skips UTF-8 validation.
func (g *Generator) Hex128StringUnchecked() string {
	var buf [Hex128Size]byte
	return string(EncodeHex128(&buf, g.Next()))
}

// UUID returns the next id shaped as an RFC-4122 V4 uuid.UUID. Its String
// form equals the Hex128 form of the same id.
func (g *Generator) UUID() uuid.UUID {
	return ToUUID(g.Next())
}

// Hex128 returns an RFC-4122 V4 representation of the first 128 bits of
// id, with hyphens. For example:
//
//	11febf98-c108-4383-bb1e-739ffcd44341
//
// Bytes 16..23 of id do not appear in the result.
func Hex128(id [Size]byte) string {
	var buf [Hex128Size]byte
	return string(EncodeHex128(&buf, id))
}

// EncodeHex128 writes the Hex128 form of id into dst and returns dst[:].
// It does not touch any Generator.
func EncodeHex128(dst *[Hex128Size]byte, id [Size]byte) []byte {
	var b [16]byte
	copy(b[:], id[:16])
	return Encode128(dst, b)
}

// EncodeHex128Checked is EncodeHex128 followed by UTF-8 validation of the
// output. A non-nil error is an *EncodingError.
func EncodeHex128Checked(dst *[Hex128Size]byte, id [Size]byte) ([]byte, error) {
	b := EncodeHex128(dst, id)
	if err := checkUTF8(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Encode128 is EncodeHex128 for a bare 128-bit value.
func Encode128(dst *[Hex128Size]byte, b [16]byte) []byte {
	b = shape(b)
	j := 0
	for i, v := range b {
		// groups are 4-2-2-2-6 bytes
		if i == 4 || i == 6 || i == 8 || i == 10 {
			dst[j] = '-'
			j++
		}
		dst[j] = hexdigits[v>>4]
		dst[j+1] = hexdigits[v&0x0f]
		j += 2
	}
	return dst[:]
}

// ToUUID returns the shaped first 128 bits of id as a uuid.UUID.
func ToUUID(id [Size]byte) uuid.UUID {
	var b [16]byte
	copy(b[:], id[:16])
	return uuid.UUID(shape(b))
}

// shape applies the byte swap and the version and variant bits.
func shape(b [16]byte) [16]byte {
	// Only the counter bytes vary between ids, and byte 6 is one of them.
	// Swap it with a seed byte so the varying bits survive the version nibble.
	b[6], b[9] = b[9], b[6]
	// Version 4.
	b[6] = (b[6] & 0x0f) | 0x40
	// RFC4122 variant.
	b[8] = b[8]&0x3f | 0x80
	return b
}

func checkUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return &EncodingError{Offset: i}
		}
		i += n
	}
	return &EncodingError{Offset: len(b)}
}

func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
