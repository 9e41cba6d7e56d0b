package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16
	// SessionLen is the length of session ids, ~190 bits of entropy.
	SessionLen = 32

	byteRange = 256
	chunkLen  = 64
)

var (
	// StdChars is a set of standard characters allowed in uniuri string.
	StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")
	// DigitChars only contains decimal digits.
	DigitChars = []byte("0123456789")
)

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewDigits returns length random decimal digits. Leading zeros are kept.
func NewDigits(length int) string {
	return NewLenChars(length, DigitChars)
}

// NewSessionID returns a random id suitable as session key.
func NewSessionID() string {
	return NewLenChars(SessionLen, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (2 to 256).
//
// Random bytes at or above the largest multiple of len(chars) are discarded,
// which keeps the distribution uniform.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	limit := byteRange - byteRange%clen
	out := make([]byte, 0, length)
	buf := make([]byte, chunkLen)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
