package devanagari

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer exposes a Transliterator as a streaming transform.Transformer
// so callers can wrap a reader (transform.NewReader) and convert input of
// any size in bounded memory. It carries the renderer's pending bit between
// calls and asks for more input whenever the bytes on hand cannot rule out
// a longer grapheme match.
type Transformer struct {
	tbl *table
	rd  renderer
}

// Transformer returns a fresh streaming adapter for t. Each adapter has its
// own state; one must not be shared between concurrent streams.
func (t *Transliterator) Transformer() *Transformer {
	return &Transformer{tbl: t.tbl}
}

// Reset implements transform.Transformer.
func (tr *Transformer) Reset() { tr.rd = renderer{} }

// Transform implements transform.Transformer.
func (tr *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	rs := make([]rune, 0, tr.tbl.maxKey)
	sizes := make([]int, 0, tr.tbl.maxKey)

	for nSrc < len(src) {
		// Decode a window of up to maxKey runes at the cursor.
		rs, sizes = rs[:0], sizes[:0]
		i := nSrc
		truncated := false
		for len(rs) < tr.tbl.maxKey && i < len(src) {
			r, size := rune(src[i]), 1
			if r >= utf8.RuneSelf {
				r, size = utf8.DecodeRune(src[i:])
				if size == 1 && !atEOF && !utf8.FullRune(src[i:]) {
					truncated = true
					break
				}
			}
			rs = append(rs, r)
			sizes = append(sizes, size)
			i += size
		}
		if truncated || (!atEOF && len(rs) < tr.tbl.maxKey) {
			// A longer key could still match once more bytes arrive.
			return nDst, nSrc, transform.ErrShortSrc
		}

		n := 0
		var e entry
		for k := len(rs); k >= 1; k-- {
			if cand, ok := tr.tbl.entries[foldRunes(rs[:k])]; ok {
				n, e = k, cand
				break
			}
		}
		var tok Token
		if n == 0 {
			n = 1
			tok = Token{Category: CatLiteral, Text: string(rs[0])}
		} else {
			tok = Token{Category: e.cat, Text: string(rs[:n]), Glyph: e.glyph, Matra: e.matra}
		}

		saved := tr.rd
		out := tr.rd.feed(tok)
		if len(dst)-nDst < len(out) {
			tr.rd = saved
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		for _, s := range sizes[:n] {
			nSrc += s
		}
	}

	if atEOF {
		saved := tr.rd
		out := tr.rd.finish()
		if len(dst)-nDst < len(out) {
			tr.rd = saved
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
	}
	return nDst, nSrc, nil
}
