package main

import (
	"bytes"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// Packed sizes from stock compressors, for the stats report.
type BaselineSizes struct {
	Zstd  int
	Flate int
}

// BaselineCompare runs the raw input bytes through zstd and flate so the
// stats report can put the codec's output size in context.
func BaselineCompare(data []byte) (BaselineSizes, error) {
	var sizes BaselineSizes

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return sizes, err
	}
	sizes.Zstd = len(enc.EncodeAll(data, nil))
	enc.Close()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return sizes, err
	}
	if _, err := fw.Write(data); err != nil {
		return sizes, err
	}
	if err := fw.Close(); err != nil {
		return sizes, err
	}
	sizes.Flate = buf.Len()

	return sizes, nil
}
