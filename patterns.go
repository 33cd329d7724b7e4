package tasrif

import "strings"

// Tense selects which paradigm is generated.
type Tense int

const (
	Past Tense = iota
	Present
)

// Label returns the Arabic tense name used in titles.
func (t Tense) Label() string {
	if t == Present {
		return "المضارع"
	}
	return "الماضي"
}

func (t Tense) String() string {
	if t == Present {
		return "present"
	}
	return "past"
}

// ParseTense resolves a tense identifier ("past" or "present").
func ParseTense(s string) (Tense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "past", "":
		return Past, nil
	case "present":
		return Present, nil
	}
	return Past, &ConfigError{Reason: ReasonUnknownTense}
}

// Bab is one of the six conjugation classes of the sound triliteral
// verb. Each fixes the vowel on the middle radical in the past and in
// the present tense.
type Bab int

const (
	BabFathaFatha Bab = iota
	BabFathaDamma
	BabFathaKasra
	BabKasraFatha
	BabDammaDamma
	BabKasraKasra
)

type babInfo struct {
	id           string
	label        string
	pastVowel    string
	presentVowel string
}

var babs = [...]babInfo{
	BabFathaFatha: {"f_f", "Fatha/Fatha (فَتَحَ / يَفْتَحُ)", Fatha, Fatha},
	BabFathaDamma: {"f_d", "Fatha/Damma (نَصَرَ / يَنْصُرُ)", Fatha, Damma},
	BabFathaKasra: {"f_k", "Fatha/Kasra (ضَرَبَ / يَضْرِبُ)", Fatha, Kasra},
	BabKasraFatha: {"k_f", "Kasra/Fatha (سَمِعَ / يَسْمَعُ)", Kasra, Fatha},
	BabDammaDamma: {"d_d", "Damma/Damma (كَرُمَ / يَكْرُمُ)", Damma, Damma},
	BabKasraKasra: {"k_k", "Kasra/Kasra (حَسِبَ / يَحْسِبُ)", Kasra, Kasra},
}

// Valid reports whether b is one of the six defined classes.
func (b Bab) Valid() bool {
	return b >= 0 && int(b) < len(babs)
}

// ID returns the short wire identifier (e.g. "f_d").
func (b Bab) ID() string {
	if !b.Valid() {
		return ""
	}
	return babs[b].id
}

// Label returns the full display label with the model verbs, used
// verbatim in present-tense titles.
func (b Bab) Label() string {
	if !b.Valid() {
		return ""
	}
	return babs[b].label
}

// PastVowel returns the harakah on the middle radical in the past tense.
func (b Bab) PastVowel() string {
	if !b.Valid() {
		return ""
	}
	return babs[b].pastVowel
}

// PresentVowel returns the harakah on the middle radical in the
// present tense.
func (b Bab) PresentVowel() string {
	if !b.Valid() {
		return ""
	}
	return babs[b].presentVowel
}

func (b Bab) String() string { return b.ID() }

// AllBabs returns the six classes in canonical order.
func AllBabs() []Bab {
	out := make([]Bab, len(babs))
	for i := range babs {
		out[i] = Bab(i)
	}
	return out
}

// ParseBab resolves a bab identifier: either the short form ("f_f",
// "f_d", "f_k", "k_f", "d_d", "k_k") or the full display label.
func ParseBab(s string) (Bab, error) {
	key := strings.TrimSpace(s)
	for i, info := range babs {
		if strings.EqualFold(key, info.id) || key == info.label {
			return Bab(i), nil
		}
	}
	return 0, &ConfigError{Reason: ReasonUnknownBab}
}

// Mood is the present-tense inflection category. The imperative is
// deliberately not part of the supported set: no verified 14-row affix
// table exists for it.
type Mood int

const (
	Indicative Mood = iota
	Subjunctive
	Jussive
)

type moodInfo struct {
	id    string
	short string
	label string
}

var moods = [...]moodInfo{
	Indicative:  {"indicative", "i", "Indicative (مرفوع)"},
	Subjunctive: {"subjunctive", "s", "Subjunctive (منصوب)"},
	Jussive:     {"jussive", "j", "Jussive (مجزوم)"},
}

// Valid reports whether m is a supported mood.
func (m Mood) Valid() bool {
	return m >= 0 && int(m) < len(moods)
}

// ID returns the wire identifier (e.g. "indicative").
func (m Mood) ID() string {
	if !m.Valid() {
		return ""
	}
	return moods[m].id
}

// Label returns the display label used verbatim in present-tense
// titles.
func (m Mood) Label() string {
	if !m.Valid() {
		return ""
	}
	return moods[m].label
}

func (m Mood) String() string { return m.ID() }

// AllMoods returns the supported moods in canonical order.
func AllMoods() []Mood {
	out := make([]Mood, len(moods))
	for i := range moods {
		out[i] = Mood(i)
	}
	return out
}

// ParseMood resolves a mood identifier: full name, one-letter short
// form, or display label.
func ParseMood(s string) (Mood, error) {
	key := strings.TrimSpace(s)
	for i, info := range moods {
		if strings.EqualFold(key, info.id) || strings.EqualFold(key, info.short) || key == info.label {
			return Mood(i), nil
		}
	}
	return 0, &ConfigError{Reason: ReasonUnsupportedMood}
}
