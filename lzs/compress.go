package lzs

import "unicode/utf16"

// Reserved codes at the bottom of the dictionary.
const (
	codeLiteral8  = 0 // next 8 bits are a literal symbol
	codeLiteral16 = 1 // next 16 bits are a literal symbol
	codeEndOfData = 2
	numReserved   = 3
)

// Map key for a single symbol: two bytes, high byte first.
func symKey(c uint16) string {
	return string([]byte{byte(c >> 8), byte(c)})
}

func keySym(k string) uint16 {
	return uint16(k[0])<<8 | uint16(k[1])
}

// Map key for a whole symbol sequence.
func seqKey(seq []uint16) string {
	b := make([]byte, 0, len(seq)*2)
	for _, c := range seq {
		b = append(b, byte(c>>8), byte(c))
	}
	return string(b)
}

// PackStats records how one compression pass behaved.
type PackStats struct {
	Symbols      int   // input symbols consumed
	Literals     int   // symbols written through the literal path
	WideLiterals int   // literals that needed the 16-bit form
	Copies       int   // dictionary back-references written
	DictSize     int   // codes assigned, including the reserved ones
	MaxWidth     int   // widest code field written
	OutputBits   int   // stream length in bits, before final padding
	Widths       []int // code width at each emission event
}

// Records dictionary assignment order, for whitebox testing of the
// encoder/decoder isomorphism.
type dictTrace struct {
	codes []int
	seqs  []string
}

func (t *dictTrace) add(code int, seq string) {
	if t == nil {
		return
	}
	t.codes = append(t.codes, code)
	t.seqs = append(t.seqs, seq)
}

type encoder struct {
	out       bitWriter
	dict      map[string]int
	pending   map[string]bool // single-symbol entries not yet written as literals
	w         string
	nextCode  int
	numBits   int
	enlargeIn int
	stats     *PackStats
	trace     *dictTrace
}

func (e *encoder) addEntry(seq string) {
	e.dict[seq] = e.nextCode
	e.trace.add(e.nextCode, seq)
	e.nextCode++
}

// One step of the adaptive width schedule: a code has been consumed,
// so count down towards the next width increase.
func (e *encoder) bumpWidth() {
	e.enlargeIn--
	if e.enlargeIn == 0 {
		e.enlargeIn = 1 << e.numBits
		e.numBits++
	}
}

// Emit the current match w, either as a literal definition (first time a
// single symbol is written) or as a dictionary code.
func (e *encoder) emit() {
	if e.stats != nil {
		e.stats.Widths = append(e.stats.Widths, e.numBits)
		if e.numBits > e.stats.MaxWidth {
			e.stats.MaxWidth = e.numBits
		}
	}
	if e.pending[e.w] {
		c := keySym(e.w)
		if c < 256 {
			e.out.writeBits(codeLiteral8, e.numBits)
			e.out.writeBits(int(c), 8)
		} else {
			e.out.writeBits(codeLiteral16, e.numBits)
			e.out.writeBits(int(c), 16)
			if e.stats != nil {
				e.stats.WideLiterals++
			}
		}
		e.bumpWidth()
		delete(e.pending, e.w)
		if e.stats != nil {
			e.stats.Literals++
		}
	} else {
		e.out.writeBits(e.dict[e.w], e.numBits)
		if e.stats != nil {
			e.stats.Copies++
		}
	}
	e.bumpWidth()
}

// Compress packs a symbol sequence into the bit-packed wire format.
// A nil input returns nil and an empty input returns an empty buffer;
// compression never fails on valid input.
func Compress(symbols []uint16) []byte {
	return compress(symbols, nil, nil)
}

// CompressWithStats is Compress plus instrumentation of the pass.
func CompressWithStats(symbols []uint16) ([]byte, PackStats) {
	var st PackStats
	data := compress(symbols, &st, nil)
	return data, st
}

// CompressString packs a Go string as its UTF-16 code units.
func CompressString(s string) []byte {
	syms := utf16.Encode([]rune(s))
	if syms == nil {
		syms = []uint16{}
	}
	return Compress(syms)
}

func compress(symbols []uint16, st *PackStats, tr *dictTrace) []byte {
	if symbols == nil {
		return nil
	}
	if len(symbols) == 0 {
		return []byte{}
	}

	e := encoder{
		dict:      make(map[string]int),
		pending:   make(map[string]bool),
		nextCode:  numReserved,
		numBits:   2,
		enlargeIn: 2,
		stats:     st,
		trace:     tr,
	}

	for _, c := range symbols {
		ck := symKey(c)
		if _, known := e.dict[ck]; !known {
			e.addEntry(ck)
			e.pending[ck] = true
		}

		// Greedy longest-match extension: stay silent while the
		// dictionary still holds the grown sequence.
		wc := e.w + ck
		if _, known := e.dict[wc]; known {
			e.w = wc
			continue
		}

		e.emit()
		e.addEntry(wc)
		e.w = ck
	}

	// The match in progress still has to be written out.
	if e.w != "" {
		e.emit()
	}
	e.out.writeBits(codeEndOfData, e.numBits)

	if st != nil {
		st.Symbols = len(symbols)
		st.DictSize = e.nextCode
		st.OutputBits = e.out.bitCount()
	}
	return e.out.flush()
}
