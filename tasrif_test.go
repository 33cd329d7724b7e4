package tasrif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoot(t *testing.T, logical string) Root {
	t.Helper()
	root, err := ParseRoot(captured(logical))
	require.NoError(t, err)
	return root
}

func TestConjugatePastFaala(t *testing.T) {
	root := mustRoot(t, "فَعَلَ")
	got := ConjugatePast(root)

	want := [NumForms]string{
		"فَعَلَ",
		"فَعَلَا",
		"فَعَلُوْا",
		"فَعَلَتْ",
		"فَعَلَتاَ",
		"فَعَلْنَ",
		"فَعَلْتَ",
		"فَعَلْتُمَا",
		"فَعَلْتُمْ",
		"فَعَلْتِ",
		"فَعَلْتُمَا",
		"فَعَلْتُنَّ",
		"فَعَلْتُ",
		"فَعَلْنا",
	}
	for i := range want {
		assert.Equalf(t, want[i], got[i], "row %d (%s)", i, Pronouns[i].Gloss)
	}
}

func TestPastFeminineDualSuffixOrder(t *testing.T) {
	// The 3rd-feminine-dual row carries the fatha after the
	// lengthening alef (ـتاَ); classical orthography would write it
	// before (ـتَا). The shipped table pins the first variant; this
	// test exists so any change of position is a conscious one.
	root := mustRoot(t, "فَعَلَ")
	got := ConjugatePast(root)
	assert.Equal(t, "فَعَل"+Fatha+Taa+Alef+Fatha, got[4])
	assert.NotEqual(t, "فَعَل"+Fatha+Taa+Fatha+Alef, got[4])
}

func TestConjugatePastKeepsMedialVowel(t *testing.T) {
	// شَرِبَ: the kasra on the middle radical survives in the
	// vowelled stem and levels to fatha in the cluster stem.
	root := mustRoot(t, "شَرِبَ")
	got := ConjugatePast(root)
	assert.Equal(t, "شَرِبَ", got[0])
	assert.Equal(t, "شَرَبْتُ", got[12])
}

func TestConjugatePresentKataba(t *testing.T) {
	root := mustRoot(t, "كَتَبَ")
	got, err := ConjugatePresent(root, BabFathaDamma, Indicative)
	require.NoError(t, err)

	want := [NumForms]string{
		"يَكْتُبُ",
		"يَكْتُبَانِ",
		"يَكْتُبُوْنَ",
		"تَكْتُبُ",
		"تَكْتُبَانِ",
		"يَكْتُبْنَ",
		"تَكْتُبُ",
		"تَكْتُبَانِ",
		"تَكْتُبُوْنَ",
		"تَكْتُبِيْنَ",
		"تَكْتُبَانِ",
		"تَكْتُبْنَ",
		"اَكْتُبُ",
		"نَكْتُبُ",
	}
	for i := range want {
		assert.Equalf(t, want[i], got[i], "row %d (%s)", i, Pronouns[i].Gloss)
	}
}

func TestConjugatePresentAllBabMoodPairs(t *testing.T) {
	root := mustRoot(t, "كَتَبَ")
	for _, bab := range AllBabs() {
		for _, mood := range AllMoods() {
			t.Run(bab.ID()+"/"+mood.ID(), func(t *testing.T) {
				forms, err := ConjugatePresent(root, bab, mood)
				require.NoError(t, err)

				stem := root.F + Sukun + root.A + bab.PresentVowel() + root.L
				for i, f := range forms {
					require.NotEmptyf(t, f, "row %d", i)
					assert.Truef(t, strings.HasPrefix(f, presentPrefixes[i]+Fatha),
						"row %d: %q lacks prefix %q", i, f, presentPrefixes[i])
					assert.Containsf(t, f, stem, "row %d: %q lacks stem %q", i, f, stem)
				}
			})
		}
	}
}

func TestConjugatePresentRejectsBadSelection(t *testing.T) {
	root := mustRoot(t, "كَتَبَ")

	_, err := ConjugatePresent(root, BabFathaDamma, Mood(99))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonUnsupportedMood, cerr.Reason)

	_, err = ConjugatePresent(root, Bab(-1), Indicative)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonUnknownBab, cerr.Reason)
}

func TestConjugateTitles(t *testing.T) {
	root := mustRoot(t, "فَعَلَ")

	res, err := Conjugate(root, Past, Options{})
	require.NoError(t, err)
	assert.Equal(t, "الماضي (فَعَلَ)", res.Title)

	res, err = Conjugate(root, Present, Options{Bab: BabFathaDamma, Mood: Indicative})
	require.NoError(t, err)
	assert.Equal(t, "المضارع - Indicative (مرفوع) (Fatha/Damma (نَصَرَ / يَنْصُرُ))", res.Title)
}

func TestConjugateIsPure(t *testing.T) {
	root := mustRoot(t, "جَلَسَ")
	opts := Options{Bab: BabFathaKasra, Mood: Jussive}

	first, err := Conjugate(root, Present, opts)
	require.NoError(t, err)
	second, err := Conjugate(root, Present, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConjugateFormsTagged(t *testing.T) {
	root := mustRoot(t, "فَعَلَ")
	res, err := Conjugate(root, Past, Options{})
	require.NoError(t, err)
	for i, f := range res.Forms {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, Pronouns[i], f.Spec())
		assert.NotEmpty(t, f.Surface)
	}
}

func TestExampleVerbsConjugate(t *testing.T) {
	for _, ex := range ExampleVerbs {
		t.Run(ex.Verb, func(t *testing.T) {
			root, err := ParseRoot(captured(ex.Verb))
			require.NoError(t, err)

			past := ConjugatePast(root)
			assert.Equal(t, ex.Verb, past[0])

			for _, mood := range AllMoods() {
				forms, err := ConjugatePresent(root, ex.Bab, mood)
				require.NoError(t, err)
				for _, f := range forms {
					assert.NotEmpty(t, f)
				}
			}
		})
	}
}

func TestParseBab(t *testing.T) {
	for _, bab := range AllBabs() {
		byID, err := ParseBab(bab.ID())
		require.NoError(t, err)
		byLabel, err2 := ParseBab(bab.Label())
		require.NoError(t, err2)
		assert.Equal(t, bab, byID)
		assert.Equal(t, bab, byLabel)
	}

	_, err := ParseBab("x_y")
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonUnknownBab, cerr.Reason)
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
	}{
		{"indicative", Indicative},
		{"i", Indicative},
		{"Indicative (مرفوع)", Indicative},
		{"subjunctive", Subjunctive},
		{"s", Subjunctive},
		{"jussive", Jussive},
		{"j", Jussive},
	}
	for _, tt := range tests {
		got, err := ParseMood(tt.in)
		require.NoErrorf(t, err, "ParseMood(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	// No verified 14-row table exists for the imperative.
	_, err := ParseMood("imperative")
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ReasonUnsupportedMood, cerr.Reason)
}

func TestPronounTableShape(t *testing.T) {
	require.Len(t, Pronouns, NumForms)

	// The 2nd-person dual rows legitimately share a pronoun (Arabic
	// has no gender distinction in the 2nd-person dual).
	assert.Equal(t, Pronouns[7].Pronoun, Pronouns[10].Pronoun)
	assert.NotEqual(t, Pronouns[7].PersonGender, Pronouns[10].PersonGender)

	// Every (class, number) pair appears exactly once.
	seen := map[[2]int]int{}
	for _, p := range Pronouns {
		seen[[2]int{int(p.PersonGender), int(p.Number)}]++
	}
	for key, n := range seen {
		assert.Equalf(t, 1, n, "duplicate paradigm cell %v", key)
	}
	assert.Len(t, seen, NumForms)
}
