package lexicon

import "github.com/credlens/credlens/internal/model"

// BuiltinFake returns the built-in fake-leaning lexicon.
// Phrases are matched case-insensitively as substrings, so short entries are
// chosen to be distinctive rather than common word stems.
func BuiltinFake() []model.IndicatorDefinition {
	return []model.IndicatorDefinition{
		{
			Key:         "clickbait",
			DisplayName: "Clickbait language",
			Description: "Attention-grabbing hooks typical of engagement farming",
			Phrases:     []string{"breaking", "shocking", "you won't believe", "unbelievable", "mind-blowing", "jaw-dropping"},
			Weight:      2.0,
		},
		{
			Key:         "conspiracy",
			DisplayName: "Conspiracy framing",
			Description: "Suggestions of suppressed or hidden information",
			Phrases:     []string{"secret", "they don't want you to know", "cover-up", "hidden truth", "exposed", "wake up"},
			Weight:      2.5,
		},
		{
			Key:         "miracle_health",
			DisplayName: "Miracle health claims",
			Description: "Too-good-to-be-true medical promises",
			Phrases:     []string{"cure", "miracle", "doctors hate", "one weird trick", "instant results", "big pharma"},
			Weight:      2.5,
		},
		{
			Key:         "urgency",
			DisplayName: "Manufactured urgency",
			Description: "Pressure to act or share before verification is possible",
			Phrases:     []string{"share before", "deleted", "act now", "before it's too late", "going viral", "share this"},
			Weight:      2.0,
		},
		{
			Key:         "emotional",
			DisplayName: "Emotional manipulation",
			Description: "Loaded words aimed at outrage rather than information",
			Phrases:     []string{"outrageous", "disgusting", "terrifying", "furious", "slams", "destroys"},
			Weight:      1.5,
		},
		{
			Key:         "absolutist",
			DisplayName: "Absolutist claims",
			Description: "Certainty markers that real reporting avoids",
			Phrases:     []string{"everyone knows", "100% proven", "undeniable", "the only truth", "never been wrong"},
			Weight:      1.0,
		},
	}
}

// BuiltinCredible returns the built-in credible-leaning lexicon
func BuiltinCredible() []model.IndicatorDefinition {
	return []model.IndicatorDefinition{
		{
			Key:         "attribution",
			DisplayName: "Source attribution",
			Description: "Statements attributed to named or identifiable sources",
			Phrases:     []string{"according to", "said in a statement", "told reporters", "cited", "quoted"},
			Weight:      2.0,
		},
		{
			Key:         "official_sources",
			DisplayName: "Official sources",
			Description: "References to institutions accountable for their statements",
			Phrases:     []string{"official", "government", "ministry", "authorities", "committee", "spokesperson"},
			Weight:      2.0,
		},
		{
			Key:         "data_reporting",
			DisplayName: "Quantified reporting",
			Description: "Concrete figures rather than vague magnitude words",
			Phrases:     []string{"percent", "data", "statistics", "survey", "figures"},
			Weight:      1.5,
		},
		{
			Key:         "measured_language",
			DisplayName: "Measured language",
			Description: "Hedged, verifiable verbs of reporting",
			Phrases:     []string{"reported", "announced", "confirmed", "estimated", "approximately"},
			Weight:      1.5,
		},
		{
			Key:         "research",
			DisplayName: "Research references",
			Description: "References to studies and academic work",
			Phrases:     []string{"university", "researchers", "journal", "peer-reviewed", "study found", "findings"},
			Weight:      2.0,
		},
	}
}
