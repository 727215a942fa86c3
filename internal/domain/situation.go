package domain

// Severity grades how serious a classified situation is.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// GeneralSituation is the sentinel returned when no situation pattern matches.
const GeneralSituation = "general life situation"

// SituationPattern describes one named life situation and how to recognize it.
// Like emotions, patterns are evaluated in declaration order, first match wins.
type SituationPattern struct {
	Name              string
	Category          string
	MatchRules        []string
	SeverityMarkers   map[Severity][]string
	RelatedEmotions   []string
	ResponseFragments map[ResponseIntent][]string
}

// SituationAnalysis is the situation classifier's verdict for a message.
type SituationAnalysis struct {
	Situation       string         `json:"situation"`
	Severity        Severity       `json:"severity"`
	Category        string         `json:"category"`
	RelatedEmotions []string       `json:"related_emotions"`
	Scores          map[string]int `json:"scores,omitempty"`
}

// IsSentinel reports whether no pattern matched.
func (a SituationAnalysis) IsSentinel() bool {
	return a.Situation == GeneralSituation
}
