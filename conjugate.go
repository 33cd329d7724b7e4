package tasrif

// Form is one generated surface form, tagged with its row in the
// Pronouns table.
type Form struct {
	Index   int
	Surface string
}

// Spec returns the pronoun row this form belongs to.
func (f Form) Spec() PronounSpec {
	return Pronouns[f.Index]
}

// Result is a full 14-form paradigm with its display title.
type Result struct {
	Title string
	Forms [NumForms]Form
}

// Options selects the present-tense paradigm. It is ignored for the
// past tense.
type Options struct {
	Bab  Bab
	Mood Mood
}

// ConjugatePast derives the 14 past-tense forms of root. It is total:
// any Root produced by ParseRoot conjugates.
//
// Two stem variants are built. The vowelled stem keeps the vowel
// parsed on the middle radical and takes the vowel-initial suffixes;
// the cluster stem levels the middle vowel to fatha and closes the
// final radical with sukun so a consonant-initial suffix can attach.
func ConjugatePast(root Root) [NumForms]string {
	vowelStem := root.F + root.VowelF + root.A + root.VowelA + root.L
	clusterStem := root.F + root.VowelF + root.A + Fatha + root.L + Sukun

	var forms [NumForms]string
	for i, a := range pastAffixes {
		stem := vowelStem
		if a.cluster {
			stem = clusterStem
		}
		forms[i] = stem + a.suffix
	}
	return forms
}

// ConjugatePresent derives the 14 present-tense forms of root under
// the given bab and mood. Each row is person prefix + fatha + stem +
// mood ending; the stem closes the first radical with sukun and puts
// the bab's present vowel on the middle radical.
func ConjugatePresent(root Root, bab Bab, mood Mood) ([NumForms]string, error) {
	var forms [NumForms]string
	if !mood.Valid() {
		return forms, &ConfigError{Reason: ReasonUnsupportedMood}
	}
	if !bab.Valid() {
		return forms, &ConfigError{Reason: ReasonUnknownBab}
	}

	stem := root.F + Sukun + root.A + bab.PresentVowel() + root.L
	suffixes := moodSuffixes[mood]
	for i := range forms {
		forms[i] = presentPrefixes[i] + Fatha + stem + suffixes[i]
	}
	return forms, nil
}

// Conjugate produces the titled paradigm for root in the given tense.
// Present tense requires opts.Bab and opts.Mood; the past tense needs
// no options. All 14 forms are produced or none.
func Conjugate(root Root, tense Tense, opts Options) (*Result, error) {
	var (
		title string
		forms [NumForms]string
	)
	switch tense {
	case Past:
		forms = ConjugatePast(root)
		title = tense.Label() + " (" + root.F + root.VowelF + root.A + root.VowelA + root.L + Fatha + ")"
	case Present:
		var err error
		forms, err = ConjugatePresent(root, opts.Bab, opts.Mood)
		if err != nil {
			return nil, err
		}
		title = tense.Label() + " - " + opts.Mood.Label() + " (" + opts.Bab.Label() + ")"
	default:
		return nil, &ConfigError{Reason: ReasonUnknownTense}
	}

	res := &Result{Title: title}
	for i, s := range forms {
		res.Forms[i] = Form{Index: i, Surface: s}
	}
	return res, nil
}
