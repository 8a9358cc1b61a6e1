package chakra

import "math"

// Level is the activity classification of a single chakra rating.
type Level string

const (
	LevelBlocked     Level = "blocked"
	LevelUnderactive Level = "underactive"
	LevelBalanced    Level = "balanced"
	LevelOveractive  Level = "overactive"
)

// Status is the classification of one rating with its display text.
type Status struct {
	Level       Level  `json:"level" yaml:"level"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

var (
	statusBlocked = Status{
		Level:       LevelBlocked,
		Label:       "Blocked",
		Description: "This energy center appears blocked. Gentle, consistent practice can help energy begin to flow again.",
	}
	statusUnderactive = Status{
		Level:       LevelUnderactive,
		Label:       "Underactive",
		Description: "This energy center is underactive. It would benefit from practices that activate and strengthen it.",
	}
	statusBalanced = Status{
		Level:       LevelBalanced,
		Label:       "Balanced",
		Description: "This energy center is balanced. Keep nurturing it with your current practices.",
	}
	statusOveractive = Status{
		Level:       LevelOveractive,
		Label:       "Overactive",
		Description: "This energy center is overactive. Grounding and calming practices can help bring it back into harmony.",
	}
)

// Classify maps a rating onto its Status. Ratings are not range checked:
// anything at or below 3 is blocked and anything above 7 is overactive.
func Classify(value int) Status {
	switch {
	case value <= 3:
		return statusBlocked
	case value <= 5:
		return statusUnderactive
	case value <= 7:
		return statusBalanced
	default:
		return statusOveractive
	}
}

// Balance is the overall score of a profile and its narrative band.
type Balance struct {
	Score       float64 `json:"score" yaml:"score"`
	Status      string  `json:"status" yaml:"status"`
	Description string  `json:"description" yaml:"description"`
}

// Balance band names.
const (
	BalanceNotAssessed              = "Not assessed"
	BalanceSignificantlyUnderactive = "Significantly Underactive"
	BalanceMildlyUnderactive        = "Mildly Underactive"
	BalanceRelativelyBalanced       = "Relatively Balanced"
	BalanceMildlyOveractive         = "Mildly Overactive"
	BalanceSignificantlyOveractive  = "Significantly Overactive"
)

const notAssessedPrompt = "Complete your chakra assessment to discover your energy balance."

// OverallBalance averages the chakra ratings in values, rounded to one
// decimal, and picks the narrative band for that score. Unknown keys are
// ignored; a profile without any chakra rating yields the "Not assessed"
// balance.
func OverallBalance(values Values) Balance {
	if !values.Assessed() {
		return Balance{
			Score:       0,
			Status:      BalanceNotAssessed,
			Description: notAssessedPrompt,
		}
	}

	sum, n := 0, 0
	for _, k := range Keys {
		if v, ok := values[k]; ok {
			sum += v
			n++
		}
	}
	score := math.Round(float64(sum)/float64(n)*10) / 10

	b := Balance{Score: score}
	switch {
	case score < 4:
		b.Status = BalanceSignificantlyUnderactive
		b.Description = "Your energy system is running low overall. Focus on rest, grounding, and gentle activation practices."
	case score < 5.5:
		b.Status = BalanceMildlyUnderactive
		b.Description = "Your energy is slightly below balance. Activating practices can help you feel more vibrant and engaged."
	case score > 8:
		b.Status = BalanceSignificantlyOveractive
		b.Description = "Your energy system is running very high. Prioritize grounding, calming, and restorative practices."
	case score > 6.5:
		b.Status = BalanceMildlyOveractive
		b.Description = "Your energy is slightly elevated. Grounding practices can help you channel it with intention."
	default:
		b.Status = BalanceRelativelyBalanced
		b.Description = "Your energy system is relatively balanced. Keep supporting it with regular mindful practice."
	}
	return b
}

// Reading is one rated chakra with its display name and classification.
type Reading struct {
	Key    Key    `json:"key" yaml:"key" example:"heart"`
	Name   string `json:"name" yaml:"name" example:"Heart Chakra"`
	Value  int    `json:"value" yaml:"value" example:"6"`
	Status Status `json:"status" yaml:"status"`
}

// Readings classifies every chakra present in values, root to crown.
// Unknown keys are skipped. The result is never nil.
func Readings(values Values) []Reading {
	out := make([]Reading, 0, len(Keys))
	for _, k := range Keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		out = append(out, Reading{
			Key:    k,
			Name:   MustLookup(k).Name,
			Value:  v,
			Status: Classify(v),
		})
	}
	return out
}
