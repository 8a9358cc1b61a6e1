package chakra

// Info is the static reference data for a single chakra. Values returned by
// Lookup and All share their slices with the table; treat them as read-only.
type Info struct {
	Key      Key    `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Sanskrit string `json:"sanskrit" yaml:"sanskrit"`
	Color    string `json:"color" yaml:"color"`
	Element  string `json:"element" yaml:"element"`
	Location string `json:"location" yaml:"location"`
	// Focus is the life theme used in coaching prompts.
	Focus               string   `json:"focus" yaml:"focus"`
	OveractiveSymptoms  []string `json:"overactive_symptoms" yaml:"overactive_symptoms"`
	UnderactiveSymptoms []string `json:"underactive_symptoms" yaml:"underactive_symptoms"`
	HealingPractices    []string `json:"healing_practices" yaml:"healing_practices"`
	Affirmations        []string `json:"affirmations" yaml:"affirmations"`
}

var reference = [len(Keys)]Info{
	{
		Key:      Root,
		Name:     "Root Chakra",
		Sanskrit: "Muladhara",
		Color:    "Red",
		Element:  "Earth",
		Location: "Base of the spine",
		Focus:    "security, stability, and groundedness",
		OveractiveSymptoms: []string{
			"Greed and materialism",
			"Resistance to change",
			"Anger and aggression",
		},
		UnderactiveSymptoms: []string{
			"Anxiety and fear",
			"Feeling disconnected",
			"Financial insecurity",
		},
		HealingPractices: []string{
			"Walking barefoot in nature",
			"Grounding yoga poses",
			"Root vegetable meals",
			"Red jasper meditation",
		},
		Affirmations: []string{
			"I am safe and secure",
			"I am grounded and supported",
			"I trust the process of life",
		},
	},
	{
		Key:      Sacral,
		Name:     "Sacral Chakra",
		Sanskrit: "Svadhisthana",
		Color:    "Orange",
		Element:  "Water",
		Location: "Lower abdomen",
		Focus:    "creativity, pleasure, and emotional flow",
		OveractiveSymptoms: []string{
			"Emotional overwhelm",
			"Addictive tendencies",
			"Dependency in relationships",
		},
		UnderactiveSymptoms: []string{
			"Lack of creativity",
			"Emotional numbness",
			"Low libido",
		},
		HealingPractices: []string{
			"Hip-opening yoga",
			"Creative expression through art",
			"Dancing freely",
			"Spending time near water",
		},
		Affirmations: []string{
			"I embrace pleasure and abundance",
			"My creativity flows freely",
			"I honor my emotions",
		},
	},
	{
		Key:      SolarPlexus,
		Name:     "Solar Plexus Chakra",
		Sanskrit: "Manipura",
		Color:    "Yellow",
		Element:  "Fire",
		Location: "Upper abdomen",
		Focus:    "confidence, personal power, and self-worth",
		OveractiveSymptoms: []string{
			"Need for control",
			"Perfectionism",
			"Domineering behavior",
		},
		UnderactiveSymptoms: []string{
			"Low self-esteem",
			"Indecisiveness",
			"Lack of motivation",
		},
		HealingPractices: []string{
			"Core-strengthening exercises",
			"Sun gazing at dawn",
			"Breath of fire pranayama",
			"Setting and keeping small promises",
		},
		Affirmations: []string{
			"I am confident and capable",
			"I stand in my personal power",
			"I make decisions with ease",
		},
	},
	{
		Key:      Heart,
		Name:     "Heart Chakra",
		Sanskrit: "Anahata",
		Color:    "Green",
		Element:  "Air",
		Location: "Center of the chest",
		Focus:    "love, compassion, and forgiveness",
		OveractiveSymptoms: []string{
			"People-pleasing",
			"Poor boundaries",
			"Jealousy",
		},
		UnderactiveSymptoms: []string{
			"Difficulty trusting others",
			"Isolation and loneliness",
			"Holding grudges",
		},
		HealingPractices: []string{
			"Loving-kindness meditation",
			"Heart-opening backbends",
			"Gratitude journaling",
			"Acts of self-compassion",
		},
		Affirmations: []string{
			"I give and receive love freely",
			"I forgive myself and others",
			"My heart is open",
		},
	},
	{
		Key:      Throat,
		Name:     "Throat Chakra",
		Sanskrit: "Vishuddha",
		Color:    "Blue",
		Element:  "Ether",
		Location: "Throat",
		Focus:    "authentic expression and clear communication",
		OveractiveSymptoms: []string{
			"Talking over others",
			"Harsh or critical speech",
			"Difficulty listening",
		},
		UnderactiveSymptoms: []string{
			"Fear of speaking up",
			"Difficulty expressing feelings",
			"Shyness",
		},
		HealingPractices: []string{
			"Chanting or singing",
			"Expressive journaling",
			"Neck and shoulder stretches",
			"Speaking your truth in small steps",
		},
		Affirmations: []string{
			"I speak my truth with clarity",
			"My voice matters",
			"I listen and express with love",
		},
	},
	{
		Key:      ThirdEye,
		Name:     "Third Eye Chakra",
		Sanskrit: "Ajna",
		Color:    "Indigo",
		Element:  "Light",
		Location: "Between the eyebrows",
		Focus:    "intuition, insight, and inner wisdom",
		OveractiveSymptoms: []string{
			"Overthinking",
			"Living in fantasy",
			"Difficulty concentrating",
		},
		UnderactiveSymptoms: []string{
			"Lack of intuition",
			"Poor memory",
			"Difficulty seeing the bigger picture",
		},
		HealingPractices: []string{
			"Candle gazing meditation",
			"Dream journaling",
			"Visualization exercises",
			"Time in darkness and silence",
		},
		Affirmations: []string{
			"I trust my intuition",
			"I see clearly",
			"I am open to inner wisdom",
		},
	},
	{
		Key:      Crown,
		Name:     "Crown Chakra",
		Sanskrit: "Sahasrara",
		Color:    "Violet",
		Element:  "Thought",
		Location: "Top of the head",
		Focus:    "spiritual connection, purpose, and transcendence",
		OveractiveSymptoms: []string{
			"Spiritual addiction",
			"Disconnection from the body",
			"Feeling superior to others",
		},
		UnderactiveSymptoms: []string{
			"Lack of purpose",
			"Spiritual cynicism",
			"Closed-mindedness",
		},
		HealingPractices: []string{
			"Silent meditation",
			"Prayer or contemplation",
			"Time in natural light",
			"Reading spiritual texts",
		},
		Affirmations: []string{
			"I am connected to something greater",
			"I am guided by purpose",
			"I am open to divine wisdom",
		},
	},
}

var index = func() map[Key]int {
	m := make(map[Key]int, len(reference))
	for i, info := range reference {
		m[info.Key] = i
	}
	return m
}()

// Lookup returns the reference data for k.
func Lookup(k Key) (Info, bool) {
	i, ok := index[k]
	if !ok {
		return Info{}, false
	}
	return reference[i], true
}

// MustLookup is like Lookup but panics on an unknown key. The key set is
// closed, so a miss is a programming error.
func MustLookup(k Key) Info {
	info, ok := Lookup(k)
	if !ok {
		panic("chakra: unknown key " + string(k))
	}
	return info
}

// All returns the reference table in root-to-crown order.
func All() []Info {
	out := make([]Info, len(reference))
	copy(out, reference[:])
	return out
}
