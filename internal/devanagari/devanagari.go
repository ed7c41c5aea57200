// Package devanagari converts romanized Indic text written per ISO 15919
// or IAST into Devanagari. Input it cannot interpret is passed through
// unchanged rather than dropped. The conversion is total: it never fails,
// for any string, and a Transliterator is safe for concurrent use.
package devanagari

import "strings"

// Option configures a Transliterator at construction.
type Option func(*Transliterator)

// WithNumerals makes the decimal digits 0-9 transliterate to Devanagari
// numerals. Off by default: digits then pass through as literals, still
// closing an open consonant with a virama.
func WithNumerals() Option {
	return func(t *Transliterator) { t.numerals = true }
}

// Transliterator converts Roman text to Devanagari under one fixed scheme.
// It is immutable after New and holds no per-call state.
type Transliterator struct {
	scheme   Scheme
	numerals bool
	tbl      *table
}

// New builds a Transliterator for the given scheme.
func New(scheme Scheme, opts ...Option) *Transliterator {
	t := &Transliterator{scheme: scheme}
	for _, opt := range opts {
		opt(t)
	}
	t.tbl = getTable(tableKey{scheme: scheme, numerals: t.numerals})
	return t
}

// Scheme reports the convention this Transliterator reads.
func (t *Transliterator) Scheme() Scheme { return t.scheme }

// Transliterate converts text to Devanagari. It is pure with respect to the
// fixed configuration: no I/O, no retained state, no error for any input.
func (t *Transliterator) Transliterate(text string) string {
	tk := newTokenizer(t.tbl, text)
	var rd renderer

	var b strings.Builder
	b.Grow(len(text))
	for {
		tok, ok := tk.next()
		if !ok {
			break
		}
		b.WriteString(rd.feed(tok))
	}
	b.WriteString(rd.finish())
	return b.String()
}
