package sentiment

var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"nothing": {},
	"hardly":  {},
	"without": {},
}

var polarityLexicon = map[string]float64{
	// positive
	"love":       3,
	"loved":      3,
	"joy":        3,
	"joyful":     3,
	"happy":      3,
	"grateful":   3,
	"gratitude":  3,
	"peace":      2.5,
	"peaceful":   2.5,
	"calm":       2,
	"content":    2,
	"hopeful":    2,
	"hope":       2,
	"inspired":   2.5,
	"excited":    2.5,
	"proud":      2,
	"confident":  2,
	"safe":       2,
	"relaxed":    2,
	"good":       1.5,
	"great":      2.5,
	"wonderful":  3,
	"amazing":    3,
	"better":     1.5,
	"connected":  2,
	"grounded":   2,
	"balanced":   2,
	"energized":  2,
	"clear":      1,
	"kind":       1.5,
	"thankful":   2.5,
	"blessed":    2.5,
	"healing":    1.5,
	"free":       1.5,
	"strong":     1.5,
	"loving":     2.5,
	"forgive":    1.5,
	"forgave":    1.5,
	"accepted":   1.5,
	"supported":  2,
	"rested":     1.5,
	"beautiful":  2.5,
	"light":      1,
	"laugh":      2,
	"laughed":    2,
	"smile":      2,
	"smiled":     2,
	"enjoy":      2,
	"enjoyed":    2,
	"fine":       0.5,
	"okay":       0.5,
	"open":       1,
	"curious":    1,
	"motivated":  2,
	"fulfilled":  2.5,
	"satisfied":  2,
	"appreciate": 2,

	// negative
	"sad":          -2.5,
	"sadness":      -2.5,
	"angry":        -3,
	"anger":        -3,
	"furious":      -3.5,
	"anxious":      -2.5,
	"anxiety":      -2.5,
	"afraid":       -2.5,
	"fear":         -2.5,
	"scared":       -2.5,
	"worried":      -2,
	"worry":        -2,
	"stressed":     -2.5,
	"stress":       -2,
	"overwhelmed":  -2.5,
	"tired":        -1.5,
	"exhausted":    -2.5,
	"lonely":       -2.5,
	"alone":        -1.5,
	"hurt":         -2.5,
	"pain":         -2.5,
	"bad":          -2,
	"terrible":     -3,
	"awful":        -3,
	"hate":         -3,
	"hated":        -3,
	"guilty":       -2,
	"guilt":        -2,
	"ashamed":      -2.5,
	"shame":        -2.5,
	"jealous":      -2,
	"frustrated":   -2.5,
	"irritated":    -2,
	"numb":         -2,
	"empty":        -2,
	"lost":         -2,
	"stuck":        -1.5,
	"disconnected": -2,
	"insecure":     -2,
	"confused":     -1.5,
	"depressed":    -3,
	"hopeless":     -3,
	"cry":          -2,
	"cried":        -2,
	"crying":       -2,
	"grief":        -3,
	"resentful":    -2.5,
	"nervous":      -1.5,
	"restless":     -1.5,
	"blocked":      -1.5,
	"drained":      -2,
	"worse":        -2,
	"difficult":    -1.5,
	"hard":         -1,
	"struggle":     -2,
	"struggling":   -2,
}

// emotionLexicon maps surface words to a canonical emotion tag.
var emotionLexicon = map[string]string{
	"joy":          "joy",
	"joyful":       "joy",
	"happy":        "joy",
	"excited":      "joy",
	"laugh":        "joy",
	"laughed":      "joy",
	"love":         "love",
	"loved":        "love",
	"loving":       "love",
	"grateful":     "gratitude",
	"gratitude":    "gratitude",
	"thankful":     "gratitude",
	"calm":         "calm",
	"peace":        "calm",
	"peaceful":     "calm",
	"relaxed":      "calm",
	"grounded":     "calm",
	"hope":         "hope",
	"hopeful":      "hope",
	"inspired":     "hope",
	"proud":        "pride",
	"confident":    "pride",
	"sad":          "sadness",
	"sadness":      "sadness",
	"cry":          "sadness",
	"cried":        "sadness",
	"crying":       "sadness",
	"grief":        "sadness",
	"depressed":    "sadness",
	"hopeless":     "sadness",
	"angry":        "anger",
	"anger":        "anger",
	"furious":      "anger",
	"frustrated":   "anger",
	"irritated":    "anger",
	"resentful":    "anger",
	"anxious":      "anxiety",
	"anxiety":      "anxiety",
	"worried":      "anxiety",
	"worry":        "anxiety",
	"nervous":      "anxiety",
	"stressed":     "anxiety",
	"overwhelmed":  "anxiety",
	"restless":     "anxiety",
	"afraid":       "fear",
	"fear":         "fear",
	"scared":       "fear",
	"insecure":     "fear",
	"lonely":       "loneliness",
	"alone":        "loneliness",
	"disconnected": "loneliness",
	"guilty":       "guilt",
	"guilt":        "guilt",
	"ashamed":      "shame",
	"shame":        "shame",
	"jealous":      "jealousy",
	"tired":        "fatigue",
	"exhausted":    "fatigue",
	"drained":      "fatigue",
	"numb":         "numbness",
	"empty":        "numbness",
	"confused":     "confusion",
	"lost":         "confusion",
}
