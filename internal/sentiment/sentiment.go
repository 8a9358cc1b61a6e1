// Package sentiment tags journal text with a polarity label, a score in
// [-1, 1] and the emotion words it mentions.
package sentiment

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Label is the polarity bucket of a text.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// neutralBand is the half-width of the score interval labelled Neutral.
const neutralBand = 0.05

// negationWindow is how many following tokens a negator flips.
const negationWindow = 3

// Result is the outcome of analysing one text.
type Result struct {
	Label    Label    `json:"label"`
	Score    float64  `json:"score"`
	Emotions []string `json:"emotions"`
}

// Analyzer scores text against a word lexicon. It is immutable after
// construction and safe for concurrent use.
type Analyzer struct {
	polarity map[string]float64
	emotions map[string]string
	negators map[string]struct{}
}

// NewAnalyzer returns an Analyzer using the built-in lexicons.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		polarity: polarityLexicon,
		emotions: emotionLexicon,
		negators: negators,
	}
}

// Analyze scores text. mood is the user's self-reported mood, if any; it is
// normalised and included in the emotions when it names a known emotion.
func (a *Analyzer) Analyze(text, mood string) Result {
	tokens := tokenize(text)

	var sum float64
	var hits int
	negateFor := 0
	found := make(map[string]struct{})

	for _, tok := range tokens {
		if _, ok := a.negators[tok]; ok {
			negateFor = negationWindow
			continue
		}
		if w, ok := a.polarity[tok]; ok {
			if negateFor > 0 {
				w = -w * 0.5
			}
			sum += w
			hits++
		}
		if e, ok := a.emotions[tok]; ok && negateFor == 0 {
			found[e] = struct{}{}
		}
		if negateFor > 0 {
			negateFor--
		}
	}

	if m := normalizeMood(mood); m != "" {
		if e, ok := a.emotions[m]; ok {
			found[e] = struct{}{}
		}
	}

	score := 0.0
	if hits > 0 {
		// Squash into [-1, 1]; longer texts with many hits approach the bounds.
		score = sum / math.Sqrt(sum*sum+15)
	}
	score = math.Round(score*100) / 100

	emotions := make([]string, 0, len(found))
	for e := range found {
		emotions = append(emotions, e)
	}
	sort.Strings(emotions)

	return Result{
		Label:    labelFor(score),
		Score:    score,
		Emotions: emotions,
	}
}

func labelFor(score float64) Label {
	switch {
	case score > neutralBand:
		return Positive
	case score < -neutralBand:
		return Negative
	default:
		return Neutral
	}
}

func normalizeMood(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "n't", " not")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
