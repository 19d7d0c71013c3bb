package textseg

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding tags the interpretation of a text buffer handed to a
// Segmenter.
type Encoding int

const (
	EncodingLatin1 Encoding = iota
	EncodingUTF8
	EncodingUTF16 // little-endian byte order
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "Latin-1"
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16LE"
	}
	return "unknown"
}

// codeUnitSource is a decoded view over a caller-owned text buffer.
// Positions and sizes are in the buffer's native units: bytes for
// Latin-1 and UTF-8, 16-bit units for UTF-16. Implementations never
// copy the buffer and never fail: malformed sequences decode to
// utf8.RuneError, which classifies as the default class.
type codeUnitSource interface {
	// len returns the buffer length in native units.
	len() int
	// decode returns the code point starting at pos and its size in
	// native units. pos must be < len().
	decode(pos int) (r rune, size int)
}

// latin1Source views each byte as the identical code point.
type latin1Source []byte

func (s latin1Source) len() int { return len(s) }

func (s latin1Source) decode(pos int) (rune, int) {
	return rune(s[pos]), 1
}

// utf8Source decodes UTF-8 in place. Invalid bytes yield
// utf8.RuneError with size 1, so iteration always makes progress.
type utf8Source []byte

func (s utf8Source) len() int { return len(s) }

func (s utf8Source) decode(pos int) (rune, int) {
	return utf8.DecodeRune(s[pos:])
}

// utf16Source decodes little-endian UTF-16 from a byte buffer of even
// length. Positions are 16-bit unit indexes, not byte offsets.
// Unpaired surrogates yield utf8.RuneError with size 1.
type utf16Source []byte

func (s utf16Source) len() int { return len(s) / 2 }

func (s utf16Source) decode(pos int) (rune, int) {
	u := uint16(s[2*pos]) | uint16(s[2*pos+1])<<8
	if u < surr1 || u >= surr3 {
		return rune(u), 1
	}
	if u < surr2 && pos+1 < s.len() {
		u2 := uint16(s[2*pos+2]) | uint16(s[2*pos+3])<<8
		if u2 >= surr2 && u2 < surr3 {
			return utf16.DecodeRune(rune(u), rune(u2)), 2
		}
	}
	return utf8.RuneError, 1
}

// Surrogate ranges, per unicode/utf16.
const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)
