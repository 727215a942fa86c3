package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/attune-health/attune/internal/domain"
	"go.uber.org/zap"
)

// EnhancerService runs the full enhancement pipeline for one turn:
// classification, context tracking, stage determination, skill selection,
// and synthesis. Everything except the context store write is pure.
type EnhancerService struct {
	classifier  *Classifier
	tracker     *Tracker
	selector    *SkillSelector
	synthesizer *Synthesizer
	contexts    domain.ContextStore
	logger      *zap.Logger
	newRand     func() *rand.Rand
}

// NewEnhancerService creates an enhancer backed by the given context store.
func NewEnhancerService(contexts domain.ContextStore, logger *zap.Logger) *EnhancerService {
	classifier := NewClassifier()
	return &EnhancerService{
		classifier:  classifier,
		tracker:     NewTracker(classifier),
		selector:    NewSkillSelector(),
		synthesizer: NewSynthesizer(),
		contexts:    contexts,
		logger:      logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRandFactory replaces the per-turn randomness source. Tests inject a
// seeded factory to make selection and synthesis reproducible.
func (s *EnhancerService) SetRandFactory(fn func() *rand.Rand) {
	s.newRand = fn
}

// Enhance processes one validated turn and returns the response envelope.
func (s *EnhancerService) Enhance(ctx context.Context, input domain.TurnInput) (*domain.EnhancedResponse, error) {
	emotion := s.classifier.ClassifyEmotion(input.UserMessage)
	situation := s.classifier.ClassifySituation(input.UserMessage)
	stage := StageForTurn(len(input.History))

	rng := s.newRand()
	skills := s.selector.Select(stage, emotion.Emotion, situation.Situation, defaultSkillCount, rng)

	fragments := s.classifier.SituationFragments(situation.Situation, domain.IntentValidation)
	fragment := ""
	if len(fragments) > 0 {
		fragment = fragments[rng.Intn(len(fragments))]
	}

	enhanced := s.synthesizer.Synthesize(input.DraftReply, skills, emotion.Emotion, situation.Situation, fragment, stage, rng)

	// Best effort: a failed context write must not fail the turn.
	if _, err := s.contexts.Update(ctx, input.SessionID, func(cc *domain.ConversationContext) {
		updated := s.tracker.UpdateContext(cc, input.UserMessage, input.History)
		*cc = *updated
	}); err != nil {
		s.logger.Warn("context update failed",
			zap.String("session_id", input.SessionID),
			zap.Error(err))
	}

	return &domain.EnhancedResponse{
		OriginalMessage:   input.DraftReply,
		EnhancedMessage:   enhanced,
		EmotionAnalysis:   emotion,
		SituationAnalysis: situation,
		Stage:             stage,
		SkillsUsed:        skills,
		SessionContext:    input.SessionContext,
	}, nil
}

// Context returns the stored context snapshot for a session.
func (s *EnhancerService) Context(ctx context.Context, sessionID string) (*domain.ConversationContext, error) {
	return s.contexts.Get(ctx, sessionID)
}
