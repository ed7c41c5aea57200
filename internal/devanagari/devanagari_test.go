package devanagari

import "testing"

func TestTransliterateISO15919(t *testing.T) {
	tr := New(ISO15919)
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"ka", "क"},
		{"ki", "कि"},
		{"k", "क्"},
		{"rāma", "राम"},
		{"k7a", "क्7अ"},
		{"@", "@"},
		{"namaste", "नमस्ते"},
		{"bhārata", "भारत"},
		{"śrī", "श्री"},
		{"saṁskr̥ta", "संस्कृत"},
		{"duḥkha", "दुःख"},
		{"yōga", "य्ōग"}, // ō is not an ISO 15919 key; it falls out as a literal
		{"gaṅgā", "गङ्गा"},
		{"kr̥ṣṇa", "कृष्ण"},
		{"'", "ऽ"},
		{"so'ham", "सोऽहम्"},
	}
	for _, tt := range tests {
		if got := tr.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateIAST(t *testing.T) {
	tr := New(IAST)
	tests := []struct {
		input string
		want  string
	}{
		{"saṃskṛta", "संस्कृत"},
		{"kṛṣṇa", "कृष्ण"},
		{"ṛgveda", "ऋग्वेद"},
		{"rāma", "राम"},
	}
	for _, tt := range tests {
		if got := tr.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Digits pass through as literals unless numerals conversion is on; either
// way they cannot bear a vowel, so an open consonant is closed first.
func TestNumeralsOption(t *testing.T) {
	plain := New(ISO15919)
	if got := plain.Transliterate("108"); got != "108" {
		t.Errorf("default digits: got %q, want %q", got, "108")
	}
	if got := plain.Transliterate("k7"); got != "क्7" {
		t.Errorf("default digit after consonant: got %q, want %q", got, "क्7")
	}

	num := New(ISO15919, WithNumerals())
	if got := num.Transliterate("108"); got != "१०८" {
		t.Errorf("numerals: got %q, want %q", got, "१०८")
	}
	if got := num.Transliterate("k7"); got != "क्७" {
		t.Errorf("numeral after consonant: got %q, want %q", got, "क्७")
	}
}

func TestCaseFolding(t *testing.T) {
	tr := New(ISO15919)
	if got := tr.Transliterate("KA"); got != "क" {
		t.Errorf("Transliterate(KA) = %q, want क", got)
	}
	if got := tr.Transliterate("Rāma"); got != "राम" {
		t.Errorf("Transliterate(Rāma) = %q, want राम", got)
	}
	// Unmapped capitals stay unmapped and unchanged.
	if got := tr.Transliterate("X"); got != "X" {
		t.Errorf("Transliterate(X) = %q, want X", got)
	}
}

func TestPassthroughUnchanged(t *testing.T) {
	tr := New(ISO15919)
	for _, input := range []string{"@", "@ #!", "X_W", "...", "\t\n"} {
		if got := tr.Transliterate(input); got != input {
			t.Errorf("Transliterate(%q) = %q, want it unchanged", input, got)
		}
	}
}

func TestAnusvaraConventionEquivalence(t *testing.T) {
	iso := New(ISO15919).Transliterate("ṁ")
	iast := New(IAST).Transliterate("ṃ")
	if iso != iast || iso != "ं" {
		t.Errorf("anusvara: ISO %q, IAST %q, want both ं", iso, iast)
	}
}

// ṛ is a consonant under ISO 15919 (ड़) but the vocalic r vowel under IAST;
// ISO spells the vowel with a combining ring below instead.
func TestVocalicLiquidDivergence(t *testing.T) {
	iso := New(ISO15919)
	iast := New(IAST)

	if got := iso.Transliterate("r̥"); got != "ऋ" {
		t.Errorf("ISO r̥ = %q, want ऋ", got)
	}
	if got := iso.Transliterate("kr̥"); got != "कृ" {
		t.Errorf("ISO kr̥ = %q, want कृ", got)
	}
	if got := iso.Transliterate("ṛa"); got != "ड़" {
		t.Errorf("ISO ṛa = %q, want ड़", got)
	}
	if got := iast.Transliterate("ṛ"); got != "ऋ" {
		t.Errorf("IAST ṛ = %q, want ऋ", got)
	}
	if got := iast.Transliterate("kṛ"); got != "कृ" {
		t.Errorf("IAST kṛ = %q, want कृ", got)
	}
	if got := iast.Transliterate("kḹ"); got != "कॣ" {
		t.Errorf("IAST kḹ = %q, want कॣ", got)
	}
}

func TestNasalizedVowels(t *testing.T) {
	tr := New(ISO15919)
	tests := []struct {
		input string
		want  string
	}{
		{"hã", "हँ"},
		{"mẽ", "में"},
		{"ã", "अँ"},
		{"hũ", "हुँ"},
		{"ā̃", "आँ"},
	}
	for _, tt := range tests {
		if got := tr.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
