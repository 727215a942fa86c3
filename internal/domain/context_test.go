package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversationContext(t *testing.T) {
	cc := NewConversationContext("s1")

	assert.Equal(t, "s1", cc.SessionID)
	assert.Equal(t, StageOpening, cc.Stage)
	assert.Zero(t, cc.TurnCount)
	assert.NotNil(t, cc.EmotionFrequency)
	assert.NotNil(t, cc.SituationFrequency)
	assert.NotNil(t, cc.PersonalDetails)
	assert.False(t, cc.CreatedAt.IsZero())
}

func TestConversationContextClone(t *testing.T) {
	orig := NewConversationContext("s1")
	orig.RecentTopics = []string{"exams", "sleep"}
	orig.StatedConcerns = []string{"failing"}
	orig.EmotionFrequency["anxiety"] = 2
	orig.SituationFrequency["work_stress"] = 1
	orig.PersonalDetails["name"] = "Alice"
	orig.Stage = StageAssessment
	orig.TurnCount = 3

	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.RecentTopics[0] = "mutated"
	cp.StatedConcerns = append(cp.StatedConcerns, "extra")
	cp.EmotionFrequency["anxiety"] = 99
	cp.SituationFrequency["family_issues"] = 5
	cp.PersonalDetails["name"] = "Bob"

	assert.Equal(t, []string{"exams", "sleep"}, orig.RecentTopics)
	assert.Equal(t, []string{"failing"}, orig.StatedConcerns)
	assert.Equal(t, 2, orig.EmotionFrequency["anxiety"])
	assert.Zero(t, orig.SituationFrequency["family_issues"])
	assert.Equal(t, "Alice", orig.PersonalDetails["name"])
}
