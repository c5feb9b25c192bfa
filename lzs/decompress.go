package lzs

import (
	"errors"
	"unicode/utf16"
)

// Decode failures reported by the Checked variants. Decompress and
// DecompressRange map all of them to an empty result.
var (
	ErrBadTag    = errors.New("lzs: invalid leading tag")
	ErrBadCode   = errors.New("lzs: code out of range")
	ErrTruncated = errors.New("lzs: truncated stream")
)

// Decompress re-expands a packed stream. A nil input returns nil.
// Malformed or truncated data yields an empty sequence, never a panic;
// use DecompressChecked to tell the two apart.
func Decompress(data []byte) []uint16 {
	if data == nil {
		return nil
	}
	return DecompressRange(data, 0, len(data))
}

// DecompressRange decompresses length bytes of data starting at offset.
// A non-positive length gives an empty sequence, and a range that does
// not fit inside data is treated as a truncated stream.
func DecompressRange(data []byte, offset, length int) []uint16 {
	out, err := DecompressRangeChecked(data, offset, length)
	if err != nil {
		return []uint16{}
	}
	return out
}

// DecompressChecked is Decompress with a distinguishable error result.
func DecompressChecked(data []byte) ([]uint16, error) {
	if data == nil {
		return nil, nil
	}
	return DecompressRangeChecked(data, 0, len(data))
}

// DecompressRangeChecked is DecompressRange with a distinguishable
// error result.
func DecompressRangeChecked(data []byte, offset, length int) ([]uint16, error) {
	if data == nil {
		return nil, nil
	}
	if length <= 0 {
		return []uint16{}, nil
	}
	if offset < 0 || offset+length > len(data) {
		return []uint16{}, ErrTruncated
	}
	out, err := decode(data[offset:offset+length], nil)
	if err != nil {
		return []uint16{}, err
	}
	return out, nil
}

// DecompressString re-expands a packed stream produced by
// CompressString back into a Go string.
func DecompressString(data []byte) string {
	return string(utf16.Decode(Decompress(data)))
}

// Rebuilds the encoder's dictionary by replaying its growth rule and
// expands codes as they arrive. The decoder runs one step behind the
// encoder, which is why a code equal to the next unassigned one is
// legal: it names the entry about to be created from w itself.
func decode(data []byte, tr *dictTrace) ([]uint16, error) {
	r := newBitReader(data)

	// Codes 0-2 are control markers, never looked up.
	dict := make([][]uint16, numReserved, 16)
	numBits := 3
	enlargeIn := 4

	// The first emission is always a literal definition, written with a
	// fixed 2-bit tag before the width schedule starts cycling.
	tag, ok := r.readBits(2)
	if !ok {
		return nil, ErrTruncated
	}
	var litWidth int
	switch tag {
	case codeLiteral8:
		litWidth = 8
	case codeLiteral16:
		litWidth = 16
	default:
		return nil, ErrBadTag
	}
	first, ok := r.readBits(litWidth)
	if !ok {
		return nil, ErrTruncated
	}

	c := uint16(first)
	dict = append(dict, []uint16{c})
	tr.add(numReserved, symKey(c))
	out := []uint16{c}
	w := dict[numReserved]

	for {
		cc, ok := r.readBits(numBits)
		if !ok {
			return nil, ErrTruncated
		}

		switch cc {
		case codeLiteral8, codeLiteral16:
			litWidth = 8
			if cc == codeLiteral16 {
				litWidth = 16
			}
			v, ok := r.readBits(litWidth)
			if !ok {
				return nil, ErrTruncated
			}
			cc = len(dict)
			dict = append(dict, []uint16{uint16(v)})
			tr.add(cc, symKey(uint16(v)))
			enlargeIn--
		case codeEndOfData:
			return out, nil
		}
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		var entry []uint16
		switch {
		case cc < len(dict):
			entry = dict[cc]
		case cc == len(dict):
			// Self-referential case: the encoder assigned this code
			// from w plus its own first symbol.
			entry = append(append(make([]uint16, 0, len(w)+1), w...), w[0])
		default:
			return nil, ErrBadCode
		}
		out = append(out, entry...)

		grown := append(append(make([]uint16, 0, len(w)+1), w...), entry[0])
		tr.add(len(dict), seqKey(grown))
		dict = append(dict, grown)
		enlargeIn--

		w = entry
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
}
