package service

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEnhancer() (*EnhancerService, *store.MemoryStore) {
	contexts := store.NewMemoryStore(0, 0)
	svc := NewEnhancerService(contexts, zap.NewNop())
	svc.SetRandFactory(func() *rand.Rand {
		return rand.New(rand.NewSource(7))
	})
	return svc, contexts
}

func TestEnhanceFirstTurnScenario(t *testing.T) {
	svc, _ := newTestEnhancer()

	result, err := svc.Enhance(context.Background(), domain.TurnInput{
		SessionID:   "session-1",
		UserMessage: "I'm anxious about my upcoming performance review at work",
		DraftReply:  "That makes sense.",
		History:     nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "anxiety", result.EmotionAnalysis.Emotion)
	assert.Equal(t, domain.IntensityModerate, result.EmotionAnalysis.Intensity)
	assert.Equal(t, "work_stress", result.SituationAnalysis.Situation)
	assert.Equal(t, domain.SeverityModerate, result.SituationAnalysis.Severity)
	assert.Equal(t, domain.StageOpening, result.Stage)
	assert.Len(t, result.SkillsUsed, 2)
	assert.Equal(t, "That makes sense.", result.OriginalMessage)

	// Opening interleaving: therapeutic material leads, the draft reply
	// closes the message.
	assert.NotEmpty(t, result.EnhancedMessage)
	assert.Contains(t, result.EnhancedMessage, "That makes sense.")
	assert.False(t, strings.HasPrefix(result.EnhancedMessage, "That makes sense."))
	assert.True(t, strings.HasSuffix(result.EnhancedMessage, "That makes sense."))
}

func TestEnhanceAccumulatesContextAcrossTurns(t *testing.T) {
	svc, contexts := newTestEnhancer()
	ctx := context.Background()

	msg := "I'm anxious about my upcoming performance review at work"
	var history []string
	for i := 0; i < 7; i++ {
		_, err := svc.Enhance(ctx, domain.TurnInput{
			SessionID:   "session-acc",
			UserMessage: msg,
			DraftReply:  "That makes sense.",
			History:     history,
		})
		require.NoError(t, err)
		history = append(history, msg)
	}

	cc, err := contexts.Get(ctx, "session-acc")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cc.EmotionFrequency["anxiety"], 6)
	assert.Equal(t, 7, cc.TurnCount)
}

func TestEnhanceColdCacheStillAccumulates(t *testing.T) {
	// The seventh turn arrives with six prior turns in history but no
	// cached context; the tracker replays the missed turns.
	svc, contexts := newTestEnhancer()
	ctx := context.Background()

	msg := "I'm anxious about my upcoming performance review at work"
	history := []string{msg, msg, msg, msg, msg, msg}

	_, err := svc.Enhance(ctx, domain.TurnInput{
		SessionID:   "session-cold",
		UserMessage: msg,
		DraftReply:  "That makes sense.",
		History:     history,
	})
	require.NoError(t, err)

	cc, err := contexts.Get(ctx, "session-cold")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cc.EmotionFrequency["anxiety"], 6)
	assert.Equal(t, domain.StageIntervention, cc.Stage)
}

func TestEnhanceSentinelInputs(t *testing.T) {
	svc, _ := newTestEnhancer()

	result, err := svc.Enhance(context.Background(), domain.TurnInput{
		SessionID:   "session-2",
		UserMessage: "the weather has been quite pleasant",
		DraftReply:  "Glad to hear it.",
		History:     nil,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MixedEmotions, result.EmotionAnalysis.Emotion)
	assert.Equal(t, domain.GeneralSituation, result.SituationAnalysis.Situation)
	assert.Contains(t, result.EnhancedMessage, "Glad to hear it.")
}

func TestEnhanceEchoesSessionContext(t *testing.T) {
	svc, _ := newTestEnhancer()

	passthrough := map[string]any{"sessionId": "abc", "client": "mobile"}
	result, err := svc.Enhance(context.Background(), domain.TurnInput{
		SessionID:      "abc",
		UserMessage:    "I'm anxious today",
		DraftReply:     "Thanks for sharing that.",
		History:        nil,
		SessionContext: passthrough,
	})
	require.NoError(t, err)
	assert.Equal(t, passthrough, result.SessionContext)
}

func TestEnhanceSeededRandomnessIsReproducible(t *testing.T) {
	input := domain.TurnInput{
		SessionID:   "session-3",
		UserMessage: "I'm anxious about work",
		DraftReply:  "Let's unpack that. It could help. One step at a time.",
		History:     []string{"a", "b", "c", "d"},
	}

	svcA, _ := newTestEnhancer()
	svcB, _ := newTestEnhancer()

	a, err := svcA.Enhance(context.Background(), input)
	require.NoError(t, err)
	b, err := svcB.Enhance(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, a.EnhancedMessage, b.EnhancedMessage)
	assert.Equal(t, a.SkillsUsed, b.SkillsUsed)
}
