package tutor_test

import (
	"testing"

	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
	"github.com/stretchr/testify/assert"
)

func TestDetectModification(t *testing.T) {
	cases := []struct {
		name    string
		request string
		want    tutor.ModificationIntent
	}{
		{"Empty", "", tutor.IntentNone},
		{"NoMatch", "tell me about volcanoes", tutor.IntentNone},
		{"UkrainianShorten", "скороти, будь ласка", tutor.IntentShorten},
		{"EnglishSummarize", "Can you SUMMARIZE it?", tutor.IntentShorten},
		{"EnglishShorten", "please shorten this", tutor.IntentShorten},
		{"Expand", "elaborate on the second point", tutor.IntentExpand},
		{"UkrainianExpand", "Більше деталей", tutor.IntentExpand},
		{"Simplify", "make it simple", tutor.IntentSimplify},
		{"UkrainianSimplify", "спрости", tutor.IntentSimplify},
		{"Rephrase", "could you reword that", tutor.IntentRephrase},
		{"UkrainianRephrase", "скажи по-іншому", tutor.IntentRephrase},
		{"VeryShort", "make it very short", tutor.IntentVeryShort},
		{"UkrainianVeryShort", "Дуже коротко", tutor.IntentVeryShort},
		{"Shortest", "the shortest version", tutor.IntentVeryShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tutor.DetectModification(tc.request))
		})
	}
}

func TestDetectModificationPrecedence(t *testing.T) {
	t.Run("ShortenBeforeExpand", func(t *testing.T) {
		assert.Equal(t, tutor.IntentShorten, tutor.DetectModification("expand the intro but condense the rest"))
	})

	t.Run("ExpandBeforeSimplify", func(t *testing.T) {
		assert.Equal(t, tutor.IntentExpand, tutor.DetectModification("simplify and add more details"))
	})

	t.Run("SimplifyBeforeRephrase", func(t *testing.T) {
		assert.Equal(t, tutor.IntentSimplify, tutor.DetectModification("rewrite it so it is easier"))
	})

	t.Run("RephraseBeforeVeryShort", func(t *testing.T) {
		assert.Equal(t, tutor.IntentRephrase, tutor.DetectModification("rephrase it, make it very short"))
	})

	t.Run("ShortenBeforeVeryShort", func(t *testing.T) {
		assert.Equal(t, tutor.IntentShorten, tutor.DetectModification("дуже коротко, стисни"))
	})
}

func TestDetectModificationIsPure(t *testing.T) {
	text := "Перефразуй це"
	first := tutor.DetectModification(text)
	second := tutor.DetectModification(text)

	assert.Equal(t, first, second)
	assert.Equal(t, tutor.IntentRephrase, first)
}
