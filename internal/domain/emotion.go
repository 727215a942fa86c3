package domain

// Intensity grades how strongly an emotion is expressed.
type Intensity string

const (
	IntensityMild     Intensity = "mild"
	IntensityModerate Intensity = "moderate"
	IntensityStrong   Intensity = "strong"
)

// ResponseIntent groups canned response fragments by therapeutic purpose.
type ResponseIntent string

const (
	IntentValidation  ResponseIntent = "validation"
	IntentExploration ResponseIntent = "exploration"
	IntentSupport     ResponseIntent = "support"
	IntentReframing   ResponseIntent = "reframing"
	IntentCoping      ResponseIntent = "coping"
)

// MixedEmotions is the sentinel returned when no emotion pattern matches.
const MixedEmotions = "mixed emotions"

// GeneralCategory is the sentinel category for unmatched text.
const GeneralCategory = "general"

// EmotionPattern describes one named emotion and how to recognize it in text.
// Patterns are evaluated in declaration order; the first match wins.
type EmotionPattern struct {
	Name               string
	Category           string
	MatchRules         []string
	IntensityMarkers   map[Intensity][]string
	SomaticExperiences []string
	ResponseFragments  map[ResponseIntent][]string
}

// EmotionAnalysis is the classifier's verdict for a single message.
type EmotionAnalysis struct {
	Emotion            string         `json:"emotion"`
	Intensity          Intensity      `json:"intensity"`
	Category           string         `json:"category"`
	SomaticExperiences []string       `json:"somatic_experiences,omitempty"`
	Scores             map[string]int `json:"scores,omitempty"`
}

// IsSentinel reports whether no pattern matched.
func (a EmotionAnalysis) IsSentinel() bool {
	return a.Emotion == MixedEmotions
}
