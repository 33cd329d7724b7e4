package tasrif

// PersonGender is the person/gender class of a conjugation row.
type PersonGender int

const (
	ThirdMasculine PersonGender = iota
	ThirdFeminine
	SecondMasculine
	SecondFeminine
	First
)

func (pg PersonGender) String() string {
	switch pg {
	case ThirdMasculine:
		return "3rd person male"
	case ThirdFeminine:
		return "3rd person female"
	case SecondMasculine:
		return "2nd person male"
	case SecondFeminine:
		return "2nd person female"
	case First:
		return "1st person"
	}
	return "unknown"
}

// Number is the grammatical number of a conjugation row.
type Number int

const (
	Singular Number = iota
	Dual
	Plural
)

func (n Number) String() string {
	switch n {
	case Singular:
		return "Singular"
	case Dual:
		return "Dual"
	case Plural:
		return "Plural"
	}
	return "unknown"
}

// PronounSpec describes one row of the paradigm: the subject pronoun,
// an English gloss and the grammatical category.
type PronounSpec struct {
	Pronoun      string
	Gloss        string
	PersonGender PersonGender
	Number       Number
}

// NumForms is the fixed number of rows in the paradigm.
const NumForms = 14

// Pronouns lists the 14 rows every conjugation is generated for, in
// generation order. The order is the join key between the affix tables
// and the produced forms and must never change.
//
// The 2nd-person masculine and feminine dual rows share the same
// pronoun: Arabic makes no gender distinction in the dual of the 2nd
// person. Both rows are kept so each keeps its own affix-table slot.
var Pronouns = [NumForms]PronounSpec{
	{"هو", "He (M. Sing.)", ThirdMasculine, Singular},
	{"هما (M)", "They (M. Dual)", ThirdMasculine, Dual},
	{"هم", "They (M. Pl.)", ThirdMasculine, Plural},
	{"هي", "She (F. Sing.)", ThirdFeminine, Singular},
	{"هما (F)", "They (F. Dual)", ThirdFeminine, Dual},
	{"هن", "They (F. Pl.)", ThirdFeminine, Plural},
	{"أنت", "You (M. Sing.)", SecondMasculine, Singular},
	{"أنتما (M/F)", "You (M/F. Dual)", SecondMasculine, Dual},
	{"أنتم", "You (M. Pl.)", SecondMasculine, Plural},
	{"أنتِ", "You (F. Sing.)", SecondFeminine, Singular},
	{"أنتما (M/F)", "You (M/F. Dual)", SecondFeminine, Dual},
	{"أنتن", "You (F. Pl.)", SecondFeminine, Plural},
	{"أنا", "I", First, Singular},
	{"نحن", "We", First, Plural},
}

// DisplayOrder is the row order presentation layers use when laying
// the five person/gender classes out as a table.
var DisplayOrder = [5]PersonGender{
	ThirdMasculine,
	ThirdFeminine,
	SecondMasculine,
	SecondFeminine,
	First,
}
