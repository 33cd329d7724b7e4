package tasrif

// Reason codes carried by ParseError and ConfigError. Callers match on
// these rather than on error strings.
const (
	ReasonTooFewLetters      = "too_few_letters"
	ReasonMissingMedialVowel = "missing_medial_vowel"
	ReasonMalformedDiacritic = "malformed_diacritic_sequence"
	ReasonUnsupportedMood    = "unsupported_mood"
	ReasonUnknownBab         = "unknown_bab"
	ReasonUnknownTense       = "unknown_tense"
)

// ParseError reports malformed verb input. Retrying with the same
// input cannot succeed; the caller must obtain different input.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "tasrif: parse: " + e.Reason
}

// ConfigError reports an invalid tense/bab/mood selection. The valid
// options are enumerable, so in normal operation this is a caller bug.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "tasrif: config: " + e.Reason
}
