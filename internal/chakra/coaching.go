package chakra

import (
	"fmt"
	"strings"
)

// CoachType selects the coaching persona for a conversation.
type CoachType string

const (
	CoachInnerChild  CoachType = "inner_child"
	CoachShadowSelf  CoachType = "shadow_self"
	CoachHigherSelf  CoachType = "higher_self"
	CoachIntegration CoachType = "integration"
)

var coachTypes = map[Key]CoachType{
	Root:        CoachInnerChild,
	Sacral:      CoachInnerChild,
	SolarPlexus: CoachShadowSelf,
	Heart:       CoachShadowSelf,
	Throat:      CoachHigherSelf,
	ThirdEye:    CoachHigherSelf,
	Crown:       CoachHigherSelf,
}

var coachLabels = map[CoachType]string{
	CoachInnerChild:  "Inner Child Coach",
	CoachShadowSelf:  "Shadow Self Coach",
	CoachHigherSelf:  "Higher Self Coach",
	CoachIntegration: "Integration Coach",
}

// CoachFor returns the coach assigned to a chakra. The table covers every
// chakra; CoachIntegration is returned for anything else.
func CoachFor(k Key) CoachType {
	if c, ok := coachTypes[k]; ok {
		return c
	}
	return CoachIntegration
}

// Label is the display name of the coach.
func (c CoachType) Label() string {
	if l, ok := coachLabels[c]; ok {
		return l
	}
	return coachLabels[CoachIntegration]
}

// Valid reports whether c is a known coach type.
func (c CoachType) Valid() bool {
	_, ok := coachLabels[c]
	return ok
}

// PrimaryFocus returns the most imbalanced chakra, if any.
func PrimaryFocus(values Values) (Imbalance, bool) {
	ranked := Rank(values)
	if len(ranked) == 0 {
		return Imbalance{}, false
	}
	return ranked[0], true
}

// PrimaryCoach picks the coach for the most imbalanced chakra, or
// CoachIntegration when nothing is out of balance.
func PrimaryCoach(values Values) CoachType {
	primary, ok := PrimaryFocus(values)
	if !ok {
		return CoachIntegration
	}
	return CoachFor(primary.Key)
}

const contextPracticeCount = 3

const notAssessedContext = `USER CHAKRA PROFILE: not assessed yet.
The user has not completed a chakra assessment. Offer gentle, general guidance on self-awareness and invite them to take the assessment when they feel ready.`

// CoachingContext renders the user's profile as plain text for inclusion in
// an LLM prompt. recentEmotions may be empty. The output depends only on the
// inputs. A profile without any chakra rating renders as not assessed.
func (e *Engine) CoachingContext(values Values, recentEmotions []string) string {
	if !values.Assessed() {
		return withEmotions(notAssessedContext, recentEmotions)
	}

	var b strings.Builder
	b.WriteString("USER CHAKRA PROFILE:\n")
	for _, r := range Readings(values) {
		fmt.Fprintf(&b, "- %s: %d/10 (%s)\n", r.Name, r.Value, r.Status.Label)
	}

	balance := OverallBalance(values)
	fmt.Fprintf(&b, "\nOVERALL BALANCE: %.1f/10 (%s)\n", balance.Score, balance.Status)

	primary, ok := PrimaryFocus(values)
	if !ok {
		b.WriteString("\nPRIMARY FOCUS: none, all chakras are balanced\n")
		fmt.Fprintf(&b, "RECOMMENDED COACH: %s\n", CoachIntegration.Label())
		b.WriteString("\nCOACHING FOCUS:\n")
		b.WriteString("- Help the user sustain their balance and integrate their insights into daily life\n")
		return withEmotions(strings.TrimRight(b.String(), "\n"), recentEmotions)
	}

	info := MustLookup(primary.Key)
	coach := CoachFor(primary.Key)
	fmt.Fprintf(&b, "\nPRIMARY FOCUS: %s (%s)\n", info.Name, primary.Status.Label)
	b.WriteString(primary.Status.Description)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "RECOMMENDED COACH: %s\n", coach.Label())

	b.WriteString("\nHEALING PRACTICES:\n")
	practices := info.HealingPractices
	if len(practices) > contextPracticeCount {
		practices = practices[:contextPracticeCount]
	}
	for _, p := range practices {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	b.WriteString("\nCOACHING FOCUS:\n")
	fmt.Fprintf(&b, "- Help the user explore themes of %s\n", info.Focus)
	for _, im := range Rank(values)[1:] {
		fmt.Fprintf(&b, "- Also attend to %s (%s)\n", MustLookup(im.Key).Focus, im.Name)
	}

	return withEmotions(strings.TrimRight(b.String(), "\n"), recentEmotions)
}

func withEmotions(ctx string, emotions []string) string {
	if len(emotions) == 0 {
		return ctx
	}
	return ctx + "\n\nRECENT EMOTIONS: " + strings.Join(emotions, ", ")
}
