package tasrif

// Root holds the three radicals of a sound triliteral verb and the
// vowels of the first two. The third radical's vowel is not part of
// the root: the past base form always shows it with fatha, and the
// present tense replaces it with the mood ending.
type Root struct {
	// F, A, L are the radicals in reading order.
	F, A, L string
	// VowelF, VowelA are the harakat on F and A.
	VowelF, VowelA string
}

// ParseRoot extracts a Root from raw annotated text as captured from
// an input surface. Captured right-to-left text arrives with its
// characters in the opposite of reading order, so the input is flipped
// first; callers holding logical-order text (e.g. command-line
// arguments) must Reverse it before calling.
//
// After cleaning, the first three consonant glyphs become F, A and L.
// A harakah immediately following a radical is bound as its vowel.
// F's vowel defaults to fatha when absent; a missing vowel on A is a
// hard error, since the middle radical's vowel cannot be predicted.
func ParseRoot(raw string) (Root, error) {
	clean := []rune(cleanInput(raw))

	var letters []int
	for i, r := range clean {
		if !isDiacritic(r) {
			letters = append(letters, i)
		}
	}
	if len(letters) < 3 {
		return Root{}, &ParseError{Reason: ReasonTooFewLetters}
	}
	// A harakah with no carrier letter in front of the first radical.
	if isDiacritic(clean[0]) {
		return Root{}, &ParseError{Reason: ReasonMalformedDiacritic}
	}

	vowelAfter := func(pos int) (string, bool) {
		if pos+1 < len(clean) && isVowelMark(clean[pos+1]) {
			return string(clean[pos+1]), true
		}
		return "", false
	}

	root := Root{
		F: string(clean[letters[0]]),
		A: string(clean[letters[1]]),
		L: string(clean[letters[2]]),
	}

	if v, ok := vowelAfter(letters[0]); ok {
		root.VowelF = v
	} else {
		root.VowelF = Fatha
	}
	v, ok := vowelAfter(letters[1])
	if !ok {
		return Root{}, &ParseError{Reason: ReasonMissingMedialVowel}
	}
	root.VowelA = v

	return root, nil
}
