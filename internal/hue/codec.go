package hue

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Encode serializes m. A nil message encodes as an empty frame.
func Encode(m *Message) ([]byte, error) {
	b, err := AppendEncode(make([]byte, 0, 16), m)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// AppendEncode appends the encoding of m to dst. On error dst is returned
// with its original length.
func AppendEncode(dst []byte, m *Message) ([]byte, error) {
	if m == nil {
		m = &Message{}
	}
	start := len(dst)
	dst = append(dst, 0, 0)

	var flags Flag
	for i := range schema {
		f := &schema[i]
		if !f.present(m) {
			continue
		}
		var err error
		if dst, err = f.encode(dst, m); err != nil {
			return dst[:start], err
		}
		flags |= f.flag
	}
	binary.LittleEndian.PutUint16(dst[start:], uint16(flags))
	return dst, nil
}

// FrameFlags returns the flag word at the start of a frame.
func FrameFlags(data []byte) (Flag, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("hue: flags: need 2 bytes, have %d: %w", len(data), ErrTruncated)
	}
	return Flag(binary.LittleEndian.Uint16(data)), nil
}

// Decode parses a frame. Only the fields whose flag bits are set are
// populated. Bytes after the last announced field are ignored, as are
// unassigned flag bits.
func Decode(data []byte) (*Message, error) {
	flags, err := FrameFlags(data)
	if err != nil {
		return nil, err
	}
	r := &reader{data: data, off: 2}

	m := &Message{}
	for i := range schema {
		f := &schema[i]
		if flags&f.flag == 0 {
			continue
		}
		if err := f.decode(r, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DecodeHex decodes a hex-encoded frame. Whitespace, colons and a leading
// "0x" are ignored.
func DecodeHex(s string) (*Message, error) {
	data, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// ParseHex converts a loosely formatted hex string to bytes.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hue: parse hex: %w", err)
	}
	return data, nil
}

// reader is a cursor over a frame body.
type reader struct {
	data []byte
	off  int
}

func (r *reader) next(n int, what string) ([]byte, error) {
	if rem := len(r.data) - r.off; rem < n {
		return nil, fmt.Errorf("hue: %s: need %d bytes, have %d: %w", what, n, rem, ErrTruncated)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) readByte(what string) (byte, error) {
	b, err := r.next(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readUint16(what string) (uint16, error) {
	b, err := r.next(2, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}
