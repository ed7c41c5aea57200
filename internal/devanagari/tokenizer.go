package devanagari

import (
	"strings"
	"unicode"
)

// Token is one matched Roman grapheme. Text holds the original input runes;
// Glyph and Matra come from the table (Matra only for vowels). Literal
// tokens carry exactly one unmapped code point in Text.
type Token struct {
	Category Category
	Text     string
	Glyph    string
	Matra    string
}

// tokenizer walks a rune slice and yields longest-match tokens. It holds no
// state beyond the cursor, so a fresh one is made per call.
type tokenizer struct {
	tbl *table
	src []rune
	pos int
}

func newTokenizer(tbl *table, text string) *tokenizer {
	return &tokenizer{tbl: tbl, src: []rune(text)}
}

// next returns the token at the cursor and advances past it. The cursor
// moves by at least one rune per call, so tokenization always terminates.
func (tk *tokenizer) next() (Token, bool) {
	if tk.pos >= len(tk.src) {
		return Token{}, false
	}

	window := len(tk.src) - tk.pos
	if window > tk.tbl.maxKey {
		window = tk.tbl.maxKey
	}

	for n := window; n >= 1; n-- {
		candidate := tk.src[tk.pos : tk.pos+n]
		if e, ok := tk.tbl.entries[foldRunes(candidate)]; ok {
			tk.pos += n
			return Token{
				Category: e.cat,
				Text:     string(candidate),
				Glyph:    e.glyph,
				Matra:    e.matra,
			}, true
		}
	}

	r := tk.src[tk.pos]
	tk.pos++
	return Token{Category: CatLiteral, Text: string(r)}, true
}

// foldRunes lowercases a candidate key for lookup. Only the probe is
// folded; unmapped text stays byte-identical on passthrough.
func foldRunes(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
