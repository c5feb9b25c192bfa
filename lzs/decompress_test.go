package lzs

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestMalformedStreams(t *testing.T) {
	valid := Compress(syms("to be or not to be"))

	// Crafted streams: a literal definition followed by a code the
	// dictionary cannot hold yet, and a literal tag with no payload.
	var outOfRange bitWriter
	outOfRange.writeBits(0, 2)
	outOfRange.writeBits('a', 8)
	outOfRange.writeBits(5, 3)

	var cutLiteral bitWriter
	cutLiteral.writeBits(0, 2)

	var noMarker bitWriter
	noMarker.writeBits(0, 2)
	noMarker.writeBits('a', 8)

	var cases = []struct {
		name string
		data []byte
		want error
	}{
		{"first byte only", valid[:1], ErrTruncated},
		{"half the stream", valid[:len(valid)/2], ErrTruncated},
		{"bad initial tag", []byte{0xc0}, ErrBadTag},
		{"end marker as tag", []byte{0x40}, ErrBadTag},
		{"all ones", []byte{0xff, 0xff, 0xff}, ErrBadTag},
		{"code out of range", outOfRange.flush(), ErrBadCode},
		{"cut literal", cutLiteral.flush(), ErrTruncated},
		{"no end marker", noMarker.flush(), ErrTruncated},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompress(tt.data)
			if got == nil || len(got) != 0 {
				t.Errorf("Decompress: got %d symbols, want empty", len(got))
			}
			_, err := DecompressChecked(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecompressChecked: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecompressCheckedValid(t *testing.T) {
	in := syms("checked path, valid stream")
	out, err := DecompressChecked(Compress(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Error("round trip broke")
	}

	if out, err := DecompressChecked(nil); out != nil || err != nil {
		t.Error("nil input should give nil, nil")
	}
}

// The decoder must rebuild exactly the dictionary the encoder built,
// code for code, sequence for sequence.
func TestDictionaryIsomorphism(t *testing.T) {
	var cases = []string{
		"aaaaaaaa",
		"abcabcabcabc",
		"to be or not to be, that is the question",
		"🙂🙂🙂x",
		strings.Repeat("tag team ", 40),
	}
	for _, text := range cases {
		in := syms(text)

		var enc, dec dictTrace
		packed := compress(in, nil, &enc)
		out, err := decode(packed, &dec)
		if err != nil {
			t.Fatalf("%q: decode failed: %v", text, err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Fatalf("%q: round trip broke", text)
		}

		if !reflect.DeepEqual(enc.codes, dec.codes) {
			t.Errorf("%q: code order diverged:\nenc %v\ndec %v", text, enc.codes, dec.codes)
		}
		if !reflect.DeepEqual(enc.seqs, dec.seqs) {
			t.Errorf("%q: dictionary contents diverged", text)
		}
	}
}

func benchCorpus() []uint16 {
	return syms(strings.Repeat("it was the best of times, it was the worst of times, ", 100))
}

func BenchmarkCompress(b *testing.B) {
	in := benchCorpus()
	b.SetBytes(int64(len(in) * 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(in)
	}
}

func BenchmarkDecompress(b *testing.B) {
	packed := Compress(benchCorpus())
	b.SetBytes(int64(len(packed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decompress(packed)
	}
}
