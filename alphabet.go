package tasrif

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
)

// Harakat: the short-vowel marks, the vowel-absence mark and the
// gemination mark written above or below a consonant.
const (
	Fatha  = "َ" // fatha
	Damma  = "ُ" // damma
	Kasra  = "ِ" // kasra
	Shadda = "ّ" // shadda (gemination)
	Sukun  = "ْ" // sukun (vowel absence)
)

// Consonant glyphs used by the affix tables.
const (
	Alef = "ا" // ا
	Taa  = "ت" // ت
	Meem = "م" // م
	Noon = "ن" // ن
	Waw  = "و" // و
	Yaa  = "ي" // ي
)

// arabicBlock covers U+0600–U+06FF, the block holding both the letters
// and the harakat. Everything outside it is presentation noise
// (whitespace, ASCII, directional marks from copy-paste).
var arabicBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06ff, Stride: 1}},
}

var keepArabic = runes.Remove(runes.NotIn(arabicBlock))

// isVowelMark reports whether r is one of the four harakat that can be
// bound to a radical as its vowel. Shadda is a diacritic but never a
// radical vowel.
func isVowelMark(r rune) bool {
	switch r {
	case 'َ', 'ُ', 'ِ', 'ْ':
		return true
	}
	return false
}

// isDiacritic reports whether r is any mark that must be skipped when
// counting consonant glyphs.
func isDiacritic(r rune) bool {
	return isVowelMark(r) || r == 'ّ'
}

// cleanInput normalizes raw surface-captured text for the parser:
// the character order is flipped back to logical reading order
// (first radical first) and everything outside the Arabic block is
// dropped.
func cleanInput(raw string) string {
	return keepArabic.String(Reverse(strings.TrimSpace(raw)))
}

// Reverse flips the rune order of s. The parser uses it to undo the
// surface-capture order of its input; presentation layers use it when
// their display surface cannot render right-to-left text.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
