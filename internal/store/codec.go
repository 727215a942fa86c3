package store

import "github.com/attune-health/attune/internal/domain"

// normalizeContext re-initializes nil maps on a freshly decoded context.
// Empty maps are dropped on encode, so a round-tripped context would
// otherwise hand callers nil EmotionFrequency/SituationFrequency/
// PersonalDetails, unlike the in-memory store.
func normalizeContext(cc *domain.ConversationContext) {
	if cc.EmotionFrequency == nil {
		cc.EmotionFrequency = make(map[string]int)
	}
	if cc.SituationFrequency == nil {
		cc.SituationFrequency = make(map[string]int)
	}
	if cc.PersonalDetails == nil {
		cc.PersonalDetails = make(map[string]string)
	}
}
