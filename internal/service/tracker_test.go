package service

import (
	"fmt"
	"testing"

	"github.com/attune-health/attune/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() *Tracker {
	return NewTracker(NewClassifier())
}

func TestUpdateContextDoesNotMutateInput(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	next := tr.UpdateContext(cc, "I'm anxious about work", nil)

	assert.Equal(t, 0, cc.TurnCount)
	assert.Empty(t, cc.EmotionFrequency)
	assert.Equal(t, 1, next.TurnCount)
	assert.Equal(t, 1, next.EmotionFrequency["anxiety"])
	assert.Equal(t, 1, next.SituationFrequency["work_stress"])
}

func TestUpdateContextSentinelsNotCounted(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	next := tr.UpdateContext(cc, "the weather has been quite pleasant", nil)

	assert.Empty(t, next.EmotionFrequency)
	assert.Empty(t, next.SituationFrequency)
	assert.Equal(t, 1, next.TurnCount)
}

func TestUpdateContextEmptyMessage(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	next := tr.UpdateContext(cc, "   ", nil)

	assert.Equal(t, 1, next.TurnCount)
	assert.Empty(t, next.RecentTopics)
	assert.Empty(t, next.StatedConcerns)
	assert.Equal(t, domain.StageOpening, next.Stage)
}

func TestRecentTopicsCappedAndDeduplicated(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	history := []string{}
	for i := 0; i < 8; i++ {
		msg := fmt.Sprintf("talking honestly topic%dalpha topic%dbeta subject matters", i, i)
		cc = tr.UpdateContext(cc, msg, history)
		history = append(history, msg)
	}

	assert.LessOrEqual(t, len(cc.RecentTopics), domain.MaxRecentTopics)
	seen := make(map[string]bool)
	for _, topic := range cc.RecentTopics {
		assert.False(t, seen[topic], "duplicate topic %q", topic)
		seen[topic] = true
	}
}

func TestRecentTopicsNewestFirst(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	cc = tr.UpdateContext(cc, "gardening", nil)
	cc = tr.UpdateContext(cc, "cooking", []string{"gardening"})

	require.Len(t, cc.RecentTopics, 2)
	assert.Equal(t, "cooking", cc.RecentTopics[0])
	assert.Equal(t, "gardening", cc.RecentTopics[1])
}

func TestTopicExtractionFiltersShortAndStopWords(t *testing.T) {
	topics := extractTopics("I think about things because they would matter eventually")
	assert.NotContains(t, topics, "think")
	assert.NotContains(t, topics, "about")
	assert.NotContains(t, topics, "things")
	assert.NotContains(t, topics, "would")
	assert.NotContains(t, topics, "they")
	assert.Contains(t, topics, "matter")
	assert.Contains(t, topics, "eventually")
}

func TestStatedConcernsExtracted(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	cc = tr.UpdateContext(cc, "I'm worried about my exam results. I can't stop thinking about failing", nil)

	assert.Contains(t, cc.StatedConcerns, "my exam results")
	assert.Contains(t, cc.StatedConcerns, "failing")
}

func TestPersonalDetailsFirstWriteWins(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	cc = tr.UpdateContext(cc, "Hi, my name is Alice and I am 34 years old", nil)
	cc = tr.UpdateContext(cc, "Actually my name is Bob", []string{"Hi, my name is Alice and I am 34 years old"})

	assert.Equal(t, "Alice", cc.PersonalDetails["name"])
	assert.Equal(t, "34", cc.PersonalDetails["age"])
}

func TestEmotionFrequencyAccumulates(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	var history []string
	msg := "I'm anxious about my upcoming performance review at work"
	for i := 0; i < 7; i++ {
		cc = tr.UpdateContext(cc, msg, history)
		history = append(history, msg)
	}

	assert.GreaterOrEqual(t, cc.EmotionFrequency["anxiety"], 6)
	assert.GreaterOrEqual(t, cc.SituationFrequency["work_stress"], 6)
	assert.Equal(t, 7, cc.TurnCount)
}

func TestColdCacheReplaysHistory(t *testing.T) {
	tr := newTestTracker()
	// Fresh context but six prior turns supplied by the caller, as after an
	// eviction or a process restart.
	cc := domain.NewConversationContext("s1")

	msg := "I'm anxious about my upcoming performance review at work"
	history := []string{msg, msg, msg, msg, msg, msg}

	next := tr.UpdateContext(cc, msg, history)

	assert.Equal(t, 7, next.TurnCount)
	assert.GreaterOrEqual(t, next.EmotionFrequency["anxiety"], 6)
}

func TestStageDerivedFromHistoryLength(t *testing.T) {
	tr := newTestTracker()
	cc := domain.NewConversationContext("s1")

	opening := tr.UpdateContext(cc, "hello there friend", nil)
	assert.Equal(t, domain.StageOpening, opening.Stage)

	history := make([]string, 6)
	for i := range history {
		history[i] = "hello there friend"
	}
	intervention := tr.UpdateContext(cc, "hello there friend", history)
	assert.Equal(t, domain.StageIntervention, intervention.Stage)
}
