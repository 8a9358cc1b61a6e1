package chakra

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// MaxFocusAreas is how many imbalanced chakras Recommendations surfaces.
const MaxFocusAreas = 3

// GeneralPractices are appended to every recommendation bundle.
var GeneralPractices = [...]string{
	"Daily meditation for 10-15 minutes",
	"Regular journaling to track your emotional patterns",
}

const (
	insightsPreamble   = "Your chakra profile reveals unique patterns in your energy system."
	insightsClosing    = "Focus on the recommended practices to gently restore harmony across your energy centers."
	insightsAllBalance = "All of your chakras are currently within the balanced range."
	insightsEmpty      = "Complete your chakra assessment to receive personalized recommendations."
)

// Picker chooses an index in [0, n). A math/rand/v2 *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Engine produces recommendations and coaching context. The zero value is
// not usable; construct it with New. An Engine is safe for concurrent use as
// long as its Picker is.
type Engine struct {
	picker Picker
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the random source used to choose healing practices.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		if p != nil {
			e.picker = p
		}
	}
}

// New creates an Engine backed by the shared math/rand/v2 source.
func New(opts ...Option) *Engine {
	e := &Engine{picker: globalPicker{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Imbalance is one entry of a ranking produced by Rank.
type Imbalance struct {
	Key      Key    `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Value    int    `json:"value" yaml:"value"`
	Status   Status `json:"status" yaml:"status"`
	Distance int    `json:"distance" yaml:"distance"`
}

// Overactive reports whether the imbalance is above the balanced window.
func (im Imbalance) Overactive() bool {
	return im.Status.Level == LevelOveractive
}

// distance measures how far a rating sits outside the 5-7 window.
func distance(value int) int {
	if value <= 5 {
		return 5 - value
	}
	return value - 7
}

// Rank returns every non-balanced chakra in values ordered by distance from
// the balanced window, largest first. Equal distances keep root-to-crown
// order. Keys outside the chakra set are ignored.
func Rank(values Values) []Imbalance {
	ranked := make([]Imbalance, 0, len(values))
	for _, k := range Keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		status := Classify(v)
		if status.Level == LevelBalanced {
			continue
		}
		ranked = append(ranked, Imbalance{
			Key:      k,
			Name:     MustLookup(k).Name,
			Value:    v,
			Status:   status,
			Distance: distance(v),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance > ranked[j].Distance
	})
	return ranked
}

// Recommendations is the personalized guidance derived from a profile.
type Recommendations struct {
	FocusAreas []string `json:"focus_areas" yaml:"focus_areas"`
	Practices  []string `json:"practices" yaml:"practices"`
	Insights   string   `json:"insights" yaml:"insights"`
}

// Recommendations builds focus areas, practices and an insight paragraph for
// the most imbalanced chakras. Practice wording for underactive chakras is
// drawn at random from the chakra's healing practices, so repeated calls may
// differ in Practices but not in FocusAreas or Insights. A profile without
// any chakra rating gets empty lists and the assessment prompt.
func (e *Engine) Recommendations(values Values) Recommendations {
	if !values.Assessed() {
		return Recommendations{
			FocusAreas: []string{},
			Practices:  []string{},
			Insights:   insightsEmpty,
		}
	}

	ranked := Rank(values)
	top := ranked
	if len(top) > MaxFocusAreas {
		top = top[:MaxFocusAreas]
	}

	rec := Recommendations{
		FocusAreas: make([]string, 0, len(top)),
		Practices:  make([]string, 0, len(top)+len(GeneralPractices)),
	}
	for _, im := range top {
		rec.FocusAreas = append(rec.FocusAreas, fmt.Sprintf("%s (%s)", im.Name, im.Status.Label))
		rec.Practices = append(rec.Practices, e.practiceFor(im))
	}
	rec.Practices = append(rec.Practices, GeneralPractices[:]...)
	rec.Insights = insights(ranked)
	return rec
}

func (e *Engine) practiceFor(im Imbalance) string {
	if im.Overactive() {
		return fmt.Sprintf("Grounding meditation to balance your %s", im.Name)
	}
	practices := MustLookup(im.Key).HealingPractices
	return fmt.Sprintf("%s to activate your %s", practices[e.picker.IntN(len(practices))], im.Name)
}

func insights(ranked []Imbalance) string {
	var b strings.Builder
	b.WriteString(insightsPreamble)
	b.WriteByte(' ')
	if len(ranked) == 0 {
		b.WriteString(insightsAllBalance)
	} else {
		primary := ranked[0]
		info := MustLookup(primary.Key)
		symptoms := info.UnderactiveSymptoms
		if primary.Overactive() {
			symptoms = info.OveractiveSymptoms
		}
		fmt.Fprintf(&b, "Your %s shows the most significant imbalance, which may manifest as %s.",
			primary.Name, joinSymptoms(symptoms, 2))
	}
	b.WriteByte(' ')
	b.WriteString(insightsClosing)
	return b.String()
}

func joinSymptoms(symptoms []string, n int) string {
	if len(symptoms) > n {
		symptoms = symptoms[:n]
	}
	lower := make([]string, len(symptoms))
	for i, s := range symptoms {
		lower[i] = strings.ToLower(s)
	}
	return strings.Join(lower, " and ")
}
