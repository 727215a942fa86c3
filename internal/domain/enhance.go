package domain

// TurnInput is one validated conversational turn handed to the pipeline.
type TurnInput struct {
	SessionID      string
	UserMessage    string
	DraftReply     string
	History        []string
	SessionContext map[string]any
}

// EnhancedResponse is the immutable output of the enhancement pipeline.
type EnhancedResponse struct {
	OriginalMessage   string
	EnhancedMessage   string
	EmotionAnalysis   EmotionAnalysis
	SituationAnalysis SituationAnalysis
	Stage             Stage
	SkillsUsed        []MicroSkill
	SessionContext    map[string]any
}
