package domain

import "time"

// Stage is a coarse conversational phase derived from turn position.
type Stage string

const (
	StageOpening      Stage = "opening"
	StageAssessment   Stage = "assessment"
	StageIntervention Stage = "intervention"
	StageClosing      Stage = "closing"
)

// MaxRecentTopics caps the per-session topic list.
const MaxRecentTopics = 10

// ConversationContext accumulates classification history and extracted facts
// for one session. It is the only mutable entity in the engine; everything
// else is a pure function of its inputs.
type ConversationContext struct {
	SessionID          string            `json:"session_id"`
	RecentTopics       []string          `json:"recent_topics,omitempty"`
	EmotionFrequency   map[string]int    `json:"emotion_frequency,omitempty"`
	SituationFrequency map[string]int    `json:"situation_frequency,omitempty"`
	StatedConcerns     []string          `json:"stated_concerns,omitempty"`
	PersonalDetails    map[string]string `json:"personal_details,omitempty"`
	Stage              Stage             `json:"stage"`
	TurnCount          int               `json:"turn_count"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewConversationContext creates an empty context at the opening stage.
func NewConversationContext(sessionID string) *ConversationContext {
	now := time.Now().UTC()
	return &ConversationContext{
		SessionID:          sessionID,
		EmotionFrequency:   make(map[string]int),
		SituationFrequency: make(map[string]int),
		PersonalDetails:    make(map[string]string),
		Stage:              StageOpening,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Clone returns a deep copy so callers never alias a stored snapshot.
func (c *ConversationContext) Clone() *ConversationContext {
	cp := *c
	cp.RecentTopics = append([]string(nil), c.RecentTopics...)
	cp.StatedConcerns = append([]string(nil), c.StatedConcerns...)
	cp.EmotionFrequency = make(map[string]int, len(c.EmotionFrequency))
	for k, v := range c.EmotionFrequency {
		cp.EmotionFrequency[k] = v
	}
	cp.SituationFrequency = make(map[string]int, len(c.SituationFrequency))
	for k, v := range c.SituationFrequency {
		cp.SituationFrequency[k] = v
	}
	cp.PersonalDetails = make(map[string]string, len(c.PersonalDetails))
	for k, v := range c.PersonalDetails {
		cp.PersonalDetails[k] = v
	}
	return &cp
}
