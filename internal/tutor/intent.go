package tutor

import "strings"

type ModificationIntent string

const (
	IntentNone      ModificationIntent = ""
	IntentShorten   ModificationIntent = "shorten"
	IntentExpand    ModificationIntent = "expand"
	IntentSimplify  ModificationIntent = "simplify"
	IntentRephrase  ModificationIntent = "rephrase"
	IntentVeryShort ModificationIntent = "veryShort"
)

type keywordGroup struct {
	Intent   ModificationIntent
	Keywords []string
}

// modificationKeywords is scanned in order; the first group with a matching
// trigger wins, so Shorten beats Expand beats Simplify and so on.
var modificationKeywords = []keywordGroup{
	{
		Intent: IntentShorten,
		Keywords: []string{
			"коротше", "скороти", "зменши", "стисни", "резюмуй", "резюме",
			"shorter", "shorten", "summarize", "condense", "brief", "compress",
		},
	},
	{
		Intent: IntentExpand,
		Keywords: []string{
			"розшир", "доповни", "глибше", "більше деталей", "розгорни",
			"expand", "elaborate", "more details", "deepen",
		},
	},
	{
		Intent: IntentSimplify,
		Keywords: []string{
			"спрост", "зроби простіше", "зрозуміліше", "легше",
			"simplify", "easier", "make it simple", "clarify",
		},
	},
	{
		Intent: IntentRephrase,
		Keywords: []string{
			"перефразуй", "по-іншому", "інакше скажи", "інакше сформулюй",
			"rephrase", "reword", "rewrite", "alternative phrasing",
		},
	},
	{
		Intent: IntentVeryShort,
		Keywords: []string{
			"дуже коротко", "зроби дуже коротким",
			"make it very short", "shortest",
		},
	},
}

// DetectModification returns the rewrite intent signalled by a free-text
// modification request, or IntentNone.
func DetectModification(request string) ModificationIntent {
	if request == "" {
		return IntentNone
	}
	lower := strings.ToLower(request)
	for _, group := range modificationKeywords {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				return group.Intent
			}
		}
	}
	return IntentNone
}
