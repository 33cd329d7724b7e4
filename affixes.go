package tasrif

// The tables below are authoritative fixed data, row-aligned with
// Pronouns. They are never derived at runtime; the tests pin them
// against the canonical paradigm of فعل.

// pastAffix is one past-tense row: which stem variant the suffix
// attaches to, and the suffix itself.
//
// Suffixes starting with a consonant (the 2nd/1st-person pronoun
// suffixes and the 3rd-feminine-plural ن) need the cluster stem, whose
// final radical carries sukun; the rest attach to the fully vowelled
// stem.
type pastAffix struct {
	cluster bool
	suffix  string
}

var pastAffixes = [NumForms]pastAffix{
	{false, Fatha},                                   // هو      -a
	{false, Fatha + Alef},                            // هما (M) -aa
	{false, Damma + Waw + Sukun + Alef},              // هم      -uu
	{false, Fatha + Taa + Sukun},                     // هي      -at
	{false, Fatha + Taa + Alef + Fatha},              // هما (F) -ataa
	{true, Noon + Fatha},                             // هن      -na
	{true, Taa + Fatha},                              // أنت     -ta
	{true, Taa + Damma + Meem + Fatha + Alef},        // أنتما   -tumaa
	{true, Taa + Damma + Meem + Sukun},               // أنتم    -tum
	{true, Taa + Kasra},                              // أنتِ    -ti
	{true, Taa + Damma + Meem + Fatha + Alef},        // أنتما   -tumaa
	{true, Taa + Damma + Noon + Shadda + Fatha},      // أنتن    -tunna
	{true, Taa + Damma},                              // أنا     -tu
	{true, Noon + Alef},                              // نحن     -naa
}

// presentPrefixes holds the person prefix per row. Every prefix is
// followed by fatha regardless of person or mood.
var presentPrefixes = [NumForms]string{
	Yaa,  // هو
	Yaa,  // هما (M)
	Yaa,  // هم
	Taa,  // هي
	Taa,  // هما (F)
	Yaa,  // هن
	Taa,  // أنت
	Taa,  // أنتما (M)
	Taa,  // أنتم
	Taa,  // أنتِ
	Taa,  // أنتما (F)
	Taa,  // أنتن
	Alef, // أنا
	Noon, // نحن
}

// moodSuffixes holds the three parallel present-tense ending tables.
var moodSuffixes = map[Mood][NumForms]string{
	Indicative: {
		Damma,                                // هو      -u
		Fatha + Alef + Noon + Kasra,          // هما (M) -aani
		Damma + Waw + Sukun + Noon + Fatha,   // هم      -uuna
		Damma,                                // هي      -u
		Fatha + Alef + Noon + Kasra,          // هما (F) -aani
		Sukun + Noon + Fatha,                 // هن      -na
		Damma,                                // أنت     -u
		Fatha + Alef + Noon + Kasra,          // أنتما   -aani
		Damma + Waw + Sukun + Noon + Fatha,   // أنتم    -uuna
		Kasra + Yaa + Sukun + Noon + Fatha,   // أنتِ    -iina
		Fatha + Alef + Noon + Kasra,          // أنتما   -aani
		Sukun + Noon + Fatha,                 // أنتن    -na
		Damma,                                // أنا     -u
		Damma,                                // نحن     -u
	},
	Subjunctive: {
		Fatha,                       // هو      -a
		Fatha + Alef,                // هما (M) -aa
		Damma + Waw + Sukun + Alef,  // هم      -uu
		Fatha,                       // هي      -a
		Fatha + Alef,                // هما (F) -aa
		Sukun + Noon + Fatha,        // هن      -na
		Fatha,                       // أنت     -a
		Fatha + Alef,                // أنتما   -aa
		Damma + Waw + Sukun + Alef,  // أنتم    -uu
		Kasra + Yaa + Sukun,         // أنتِ    -ii
		Fatha + Alef,                // أنتما   -aa
		Sukun + Noon + Fatha,        // أنتن    -na
		Fatha,                       // أنا     -a
		Fatha,                       // نحن     -a
	},
	Jussive: {
		Sukun,                 // هو      -ø
		Kasra + Alef,          // هما (M) -aa
		Damma + Waw + Alef,    // هم      -uu
		Sukun,                 // هي      -ø
		Kasra + Alef,          // هما (F) -aa
		Fatha + Noon + Fatha,  // هن      -na
		Sukun,                 // أنت     -ø
		Kasra + Alef,          // أنتما   -aa
		Damma + Waw + Alef,    // أنتم    -uu
		Kasra + Yaa,           // أنتِ    -ii
		Kasra + Alef,          // أنتما   -aa
		Fatha + Noon + Fatha,  // أنتن    -na
		Sukun,                 // أنا     -ø
		Sukun,                 // نحن     -ø
	},
}
