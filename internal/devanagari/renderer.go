package devanagari

// virama suppresses the inherent vowel of the preceding consonant.
const virama = "\u094d"

// renderer turns the token stream into Devanagari under abugida rules. Its
// entire state is one bit: whether a consonant's inherent short a is still
// owed. Everything else either confirms that vowel (a itself), overrides it
// (a matra, a following consonant), or sits orthogonally beside it
// (modifiers).
type renderer struct {
	pending bool
}

// feed consumes one token and returns the glyphs it produces. Output for a
// given token depends only on the token and the pending bit, never on
// earlier history.
func (rd *renderer) feed(tok Token) string {
	switch tok.Category {
	case CatConsonant:
		out := tok.Glyph
		if rd.pending {
			out = virama + out
		}
		rd.pending = true
		return out

	case CatVowel:
		if rd.pending {
			rd.pending = false
			// Inherent a has an empty matra: the pending consonant
			// already supplies the sound, so nothing is emitted.
			return tok.Matra
		}
		return tok.Glyph

	case CatModifier:
		// Modifiers neither carry nor discharge the inherent vowel.
		return tok.Glyph

	case CatDigit:
		out := tok.Glyph
		if rd.pending {
			out = virama + out
		}
		rd.pending = false
		return out

	default: // CatLiteral
		out := tok.Text
		if rd.pending {
			out = virama + out
		}
		rd.pending = false
		return out
	}
}

// finish closes the stream: a consonant left open at end of input takes a
// final virama. Safe to call more than once.
func (rd *renderer) finish() string {
	if !rd.pending {
		return ""
	}
	rd.pending = false
	return virama
}
