package devanagari

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Scheme selects the romanization convention the input text follows.
type Scheme int

const (
	// ISO15919 writes anusvara as ṁ and the vocalic liquids as a base
	// letter plus combining ring below (r̥, l̥).
	ISO15919 Scheme = iota
	// IAST writes anusvara as ṃ and the vocalic liquids as single
	// precomposed letters (ṛ, ṝ, ḷ, ḹ).
	IAST
)

func (s Scheme) String() string {
	switch s {
	case IAST:
		return "iast"
	default:
		return "iso15919"
	}
}

// ParseScheme maps a user-supplied scheme name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iso15919", "iso-15919", "iso":
		return ISO15919, nil
	case "iast":
		return IAST, nil
	}
	return ISO15919, fmt.Errorf("unknown scheme %q", name)
}

// Schemes lists the supported convention names, default first.
func Schemes() []string {
	return lo.Map([]Scheme{ISO15919, IAST}, func(s Scheme, _ int) string {
		return s.String()
	})
}

// Category classifies what a matched Roman sequence stands for.
type Category int

const (
	// CatLiteral marks an unmapped code point passed through unchanged.
	CatLiteral Category = iota
	CatConsonant
	CatVowel
	CatModifier
	CatDigit
)

// mapping is one row of a scheme's table: a Roman grapheme (possibly
// several code points) and its Devanagari value. For vowels, glyph is the
// independent letter and matra the dependent sign; the inherent short a
// has an empty matra by construction.
type mapping struct {
	roman string
	glyph string
	matra string
}

// Shared consonants. Velar through glottal rows, then the Dravidian and
// nukta letters. The aspirated digraphs (kh, gh, ...) are longer keys than
// their bases, which is what the longest-match tokenizer exists for.
var consonants = []mapping{
	{"k", "क", ""}, {"kh", "ख", ""}, {"g", "ग", ""}, {"gh", "घ", ""}, {"ṅ", "ङ", ""},
	{"c", "च", ""}, {"ch", "छ", ""}, {"j", "ज", ""}, {"jh", "झ", ""}, {"ñ", "ञ", ""},
	{"ṭ", "ट", ""}, {"ṭh", "ठ", ""}, {"ḍ", "ड", ""}, {"ḍh", "ढ", ""}, {"ṇ", "ण", ""},
	{"t", "त", ""}, {"th", "थ", ""}, {"d", "द", ""}, {"dh", "ध", ""}, {"n", "न", ""},
	{"p", "प", ""}, {"ph", "फ", ""}, {"b", "ब", ""}, {"bh", "भ", ""}, {"m", "म", ""},
	{"y", "य", ""}, {"r", "र", ""}, {"l", "ल", ""}, {"v", "व", ""},
	{"ś", "श", ""}, {"ṣ", "ष", ""}, {"s", "स", ""}, {"h", "ह", ""},
	{"ṉ", "ऩ", ""},              // nnna
	{"ḻ", "ऴ", ""},              // llla
	{"r\u0306", "ऱ", ""},        // r breve, rra
	{"q", "क़", ""},             // qa
	{"k\u200d\u0331", "ख़", ""}, // k + ZWJ + macron below, khha
	{"ġ", "ग़", ""},             // ghha
	{"z", "ज़", ""},             // za
	{"f", "फ़", ""},             // fa
	{"ẏ", "य़", ""},             // yya
}

// Consonants only ISO 15919 can spell: under IAST the underdot r and l
// letters are vocalic vowels instead (see iastVowels).
var isoConsonants = []mapping{
	{"ḷ", "ळ", ""},   // lla
	{"ṛ", "ड़", ""},  // dddha
	{"ṛh", "ढ़", ""}, // rha
}

// Shared vowels: independent letter and dependent sign side by side so the
// two forms cannot drift apart. The tilde rows are nasalized graphemes;
// their values stack a candrabindu or anusvara after the vowel glyph.
var vowels = []mapping{
	{"a", "अ", ""},
	{"ā", "आ", "ा"},
	{"i", "इ", "ि"},
	{"ī", "ई", "ी"},
	{"u", "उ", "ु"},
	{"ū", "ऊ", "ू"},
	{"e", "ए", "े"},
	{"o", "ओ", "ो"},
	{"ai", "ऐ", "ै"},
	{"au", "औ", "ौ"},
	{"ê", "ऍ", "ॅ"}, // candra e
	{"ô", "ऑ", "ॉ"}, // candra o
	{"ã", "अँ", "ँ"},
	{"ẽ", "एँ", "ें"},
	{"ĩ", "इँ", "िं"},
	{"õ", "ओं", "ों"},
	{"ũ", "उँ", "ुँ"},
	{"aĩ", "ऐं", "ैं"},
	{"aũ", "औं", "ौं"},
	{"\u0101\u0303", "आँ", "ाँ"}, // ā tilde
	{"\u012b\u0303", "ईं", "ीं"}, // ī tilde
	{"\u016b\u0303", "ऊँ", "ूँ"}, // ū tilde
}

// Vocalic liquids, ISO 15919 spelling: base letter plus combining ring
// below (plus combining macron for the long forms).
var isoVowels = []mapping{
	{"r\u0325", "ऋ", "ृ"},
	{"r\u0325\u0304", "ॠ", "ॄ"},
	{"l\u0325", "ऌ", "ॢ"},
	{"l\u0325\u0304", "ॡ", "ॣ"},
}

// Vocalic liquids, IAST spelling: precomposed underdot letters.
var iastVowels = []mapping{
	{"ṛ", "ऋ", "ृ"},
	{"ṝ", "ॠ", "ॄ"},
	{"ḷ", "ऌ", "ॢ"},
	{"ḹ", "ॡ", "ॣ"},
}

// Modifiers shared by both conventions. Anusvara diverges and is added per
// scheme in buildTable. Nukta has no ISO 15919 romanization of its own;
// combining dot below is the closest Roman-side convention.
var modifiers = []mapping{
	{"ḥ", "ः", ""},           // visarga
	{"m\u0310", "ँ", ""},     // candrabindu
	{"'", "ऽ", ""},           // avagraha
	{"\u0323", "\u093c", ""}, // nukta
}

var digits = []mapping{
	{"0", "०", ""}, {"1", "१", ""}, {"2", "२", ""}, {"3", "३", ""}, {"4", "४", ""},
	{"5", "५", ""}, {"6", "६", ""}, {"7", "७", ""}, {"8", "८", ""}, {"9", "९", ""},
}

type entry struct {
	cat   Category
	glyph string
	matra string
}

// table is the combined lookup table for one scheme. Built once, read-only
// afterwards; maxKey bounds the tokenizer's lookahead in runes.
type table struct {
	entries map[string]entry
	maxKey  int
}

// add inserts rows of one category. A key that is already present wins:
// callers insert categories in priority order (Consonant > vowel >
// Modifier > Digit), so an equal-length collision resolves to the higher
// priority category no matter how the data slices are arranged.
func (t *table) add(cat Category, rows []mapping) {
	for _, m := range rows {
		if _, taken := t.entries[m.roman]; taken {
			continue
		}
		t.entries[m.roman] = entry{cat: cat, glyph: m.glyph, matra: m.matra}
		if n := utf8.RuneCountInString(m.roman); n > t.maxKey {
			t.maxKey = n
		}
	}
}

func buildTable(scheme Scheme, numerals bool) *table {
	t := &table{entries: make(map[string]entry)}

	t.add(CatConsonant, consonants)
	if scheme == ISO15919 {
		t.add(CatConsonant, isoConsonants)
	}

	t.add(CatVowel, vowels)
	switch scheme {
	case IAST:
		t.add(CatVowel, iastVowels)
	default:
		t.add(CatVowel, isoVowels)
	}

	t.add(CatModifier, modifiers)
	switch scheme {
	case IAST:
		t.add(CatModifier, []mapping{{"ṃ", "ं", ""}})
	default:
		t.add(CatModifier, []mapping{{"ṁ", "ं", ""}})
	}

	if numerals {
		t.add(CatDigit, digits)
	}

	return t
}

type tableKey struct {
	scheme   Scheme
	numerals bool
}

var (
	tableMu sync.Mutex
	tables  = make(map[tableKey]*table)
)

// getTable returns the shared table for a configuration, building it on
// first use. Tables are never mutated after construction, so handing the
// same instance to every Transliterator is safe.
func getTable(k tableKey) *table {
	tableMu.Lock()
	defer tableMu.Unlock()
	t, ok := tables[k]
	if !ok {
		t = buildTable(k.scheme, k.numerals)
		tables[k] = t
	}
	return t
}
