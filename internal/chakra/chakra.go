// Package chakra implements the chakra scoring and recommendation engine.
//
// Everything here is a pure function over a seven-entry Values map plus a
// static reference table. Results are derived on every call and never
// persisted. The only non-determinism is the healing-practice draw in
// Recommendations, which goes through an injectable Picker.
package chakra

import (
	"errors"
	"fmt"
)

// Key identifies one of the seven chakras.
type Key string

const (
	Root        Key = "root"
	Sacral      Key = "sacral"
	SolarPlexus Key = "solarPlexus"
	Heart       Key = "heart"
	Throat      Key = "throat"
	ThirdEye    Key = "thirdEye"
	Crown       Key = "crown"
)

// Keys lists every chakra from root to crown. Ranking ties and rendered
// output follow this order.
var Keys = [...]Key{Root, Sacral, SolarPlexus, Heart, Throat, ThirdEye, Crown}

const (
	MinValue = 1
	MaxValue = 10

	// DefaultValue is the mid-scale rating a fresh assessment form starts at.
	DefaultValue = 5
)

// ErrInvalidValues is returned by Values.Validate.
var ErrInvalidValues = errors.New("invalid chakra values")

// Values maps each chakra to an intensity rating in [MinValue, MaxValue].
type Values map[Key]int

// Valid reports whether k is one of the seven chakra keys.
func (k Key) Valid() bool {
	_, ok := Lookup(k)
	return ok
}

// ParseKey converts a string into a Key.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown chakra %q", s)
	}
	return k, nil
}

// DefaultValues returns a profile with every chakra at DefaultValue.
func DefaultValues() Values {
	v := make(Values, len(Keys))
	for _, k := range Keys {
		v[k] = DefaultValue
	}
	return v
}

// Validate checks that exactly the seven chakra keys are present and every
// rating is within range. The scoring functions do not call it; callers
// accepting external input do.
func (v Values) Validate() error {
	for k, val := range v {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown chakra %q", ErrInvalidValues, k)
		}
		if val < MinValue || val > MaxValue {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidValues, k, MinValue, MaxValue, val)
		}
	}
	for _, k := range Keys {
		if _, ok := v[k]; !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidValues, k)
		}
	}
	return nil
}

// Assessed reports whether v rates at least one chakra. Keys outside the
// chakra set do not count, so a map holding only unknown keys is scored like
// an empty profile.
func (v Values) Assessed() bool {
	for _, k := range Keys {
		if _, ok := v[k]; ok {
			return true
		}
	}
	return false
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
