// Package tasrif conjugates sound (strong) triliteral Arabic verbs:
// from a single diacritized past-tense base form (the هو form) it
// derives the 14 person/gender/number forms of the past tense, and of
// the present tense under a selectable conjugation class (bab) and
// mood.
//
// The engine is a pure table-lookup-and-concatenate pipeline over
// immutable affix tables: no I/O, no shared state, safe for
// concurrent use. Weak, hollow, doubled and assimilated roots are out
// of scope.
package tasrif

// ExampleVerb pairs a curated model verb with the bab it belongs to,
// for pickers and documentation.
type ExampleVerb struct {
	Verb string
	Bab  Bab
}

// ExampleVerbs lists well-known sound verbs covering all six babs.
var ExampleVerbs = []ExampleVerb{
	{"فَعَلَ", BabFathaFatha},
	{"ذَهَبَ", BabFathaFatha},
	{"كَتَبَ", BabFathaDamma},
	{"جَلَسَ", BabFathaKasra},
	{"شَرِبَ", BabKasraFatha},
	{"كَرُمَ", BabDammaDamma},
	{"حَسِبَ", BabKasraKasra},
	{"قَرَأَ", BabFathaFatha},
	{"أَكَلَ", BabFathaDamma},
	{"دَخَلَ", BabFathaDamma},
}
