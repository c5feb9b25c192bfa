package main

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

// DecodeText converts file bytes into the 16-bit symbol sequence the
// codec works on. The encoding is detected by byte-order mark:
// FF FE is UTF-16LE, FE FF is UTF-16BE, anything else is read as UTF-8.
// The returned name says which one was found.
func DecodeText(data []byte) ([]uint16, string, error) {
	if len(data) >= 2 {
		switch {
		case data[0] == 0xff && data[1] == 0xfe:
			symbols, err := decodeUTF16(data[2:], binary.LittleEndian)
			return symbols, "utf-16le", err
		case data[0] == 0xfe && data[1] == 0xff:
			symbols, err := decodeUTF16(data[2:], binary.BigEndian)
			return symbols, "utf-16be", err
		}
	}
	symbols := utf16.Encode([]rune(string(data)))
	if symbols == nil {
		symbols = []uint16{}
	}
	return symbols, "utf-8", nil
}

func decodeUTF16(payload []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(payload)%2 != 0 {
		return nil, errors.New("utf-16 payload has an odd byte length")
	}
	symbols := make([]uint16, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		symbols = append(symbols, order.Uint16(payload[i:i+2]))
	}
	return symbols, nil
}

// EncodeText converts a symbol sequence back into file bytes, either
// UTF-8 or UTF-16LE with a byte-order mark.
func EncodeText(symbols []uint16, utf16le bool) []byte {
	if utf16le {
		out := make([]byte, 0, 2+len(symbols)*2)
		out = append(out, 0xff, 0xfe)
		for _, s := range symbols {
			out = binary.LittleEndian.AppendUint16(out, s)
		}
		return out
	}
	return []byte(string(utf16.Decode(symbols)))
}
