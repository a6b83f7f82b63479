package terminal

import "unicode/utf8"

// utf8Decoder decodes a byte stream into Unicode scalars one at a time,
// preserving an incomplete trailing sequence across calls.
// Grounded in the teacher's inline partial-decode buffer (utf8Buf/
// utf8Len/utf8Got in its screen_parser.go), pulled out into its own type;
// the clipboard-encode path (selection.go) uses encodeRune from this file.
//
// unicode/utf8 is stdlib rather than a third-party package: no retrieved
// terminal core implements a stateful incremental UTF-8 decoder as a
// reusable library, and rolling one by hand here would just reinvent
// what this exact standard-library package already does correctly.
type utf8Decoder struct {
	buf [utf8.UTFMax]byte
	n   int // bytes currently buffered
	want int // total length of the sequence in progress (0 = none)
}

// feed appends one byte. It returns (r, true) once a full scalar has been
// assembled (or a decode failure has occurred), otherwise (0, false) while
// a multi-byte sequence is still incomplete.
//
// Decode failures (invalid leading byte, or a continuation byte where one
// wasn't expected) yield the raw byte as the scalar and consume exactly
// one byte
func (d *utf8Decoder) feed(b byte) (rune, bool) {
	if d.want == 0 {
		switch {
		case b < 0x80:
			return rune(b), true
		case b>>5 == 0x6:
			d.want = 2
		case b>>4 == 0xE:
			d.want = 3
		case b>>3 == 0x1E:
			d.want = 4
		default:
			return rune(b), true
		}
		d.buf[0] = b
		d.n = 1
		return 0, false
	}

	if b&0xC0 != 0x80 {
		// Invalid continuation byte: abandon the partial sequence and
		// treat this byte as a fresh decode attempt.
		d.want, d.n = 0, 0
		return d.feed(b)
	}

	d.buf[d.n] = b
	d.n++
	if d.n < d.want {
		return 0, false
	}

	r, size := utf8.DecodeRune(d.buf[:d.n])
	d.want, d.n = 0, 0
	if r == utf8.RuneError && size <= 1 {
		return rune(d.buf[0]), true
	}
	return r, true
}

// encodeRune appends the UTF-8 encoding of r to dst and returns the result.
func encodeRune(dst []byte, r rune) []byte {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	return append(dst, b[:n]...)
}
