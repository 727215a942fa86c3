package service

import (
	"testing"

	"github.com/attune-health/attune/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEmotionFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"anxiety trigger", "I'm so anxious lately", "anxiety"},
		{"sadness trigger", "I feel sad all the time", "sadness"},
		{"anger trigger", "I'm furious with my neighbor", "anger"},
		{"grief trigger", "my grandmother passed away last month", "grief"},
		{"overwhelm trigger", "everything is just too much right now", "overwhelm"},
		{"shame trigger", "I feel so ashamed of what happened", "shame"},
		{"hopelessness trigger", "it all feels so hopeless", "hopelessness"},
		{"anxiety outranks sadness", "I'm anxious and I feel sad", "anxiety"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassifyEmotion(tt.text)
			assert.Equal(t, tt.want, got.Emotion)
		})
	}
}

func TestClassifyEmotionSentinel(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifyEmotion("the weather has been quite pleasant")
	assert.Equal(t, domain.MixedEmotions, got.Emotion)
	assert.Equal(t, domain.IntensityModerate, got.Intensity)
	assert.Equal(t, domain.GeneralCategory, got.Category)
	assert.True(t, got.IsSentinel())

	empty := c.ClassifyEmotion("")
	assert.True(t, empty.IsSentinel())
}

func TestClassifyEmotionIntensity(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want domain.Intensity
	}{
		{"default moderate", "I'm anxious about tomorrow", domain.IntensityModerate},
		{"mild marker", "I'm a little anxious about tomorrow", domain.IntensityMild},
		{"strong marker", "I had a panic attack this morning", domain.IntensityStrong},
		{"negation not handled", "I'm not anxious at all", domain.IntensityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassifyEmotion(tt.text)
			require.Equal(t, "anxiety", got.Emotion)
			assert.Equal(t, tt.want, got.Intensity)
		})
	}
}

func TestClassifyEmotionSomaticSubset(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifyEmotion("I'm anxious, my racing heart won't slow and my tight chest hurts")
	assert.ElementsMatch(t, []string{"racing heart", "tight chest"}, got.SomaticExperiences)

	none := c.ClassifyEmotion("I'm anxious about the meeting")
	assert.Empty(t, none.SomaticExperiences)
}

func TestClassifyEmotionScores(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifyEmotion("I'm anxious and worried, and I feel sad too")
	assert.Equal(t, "anxiety", got.Emotion)
	assert.Equal(t, 2, got.Scores["anxiety"])
	assert.Equal(t, 1, got.Scores["sadness"])
}

func TestClassifyEmotionDeterministic(t *testing.T) {
	c := NewClassifier()
	text := "I'm anxious about my upcoming performance review at work"
	assert.Equal(t, c.ClassifyEmotion(text), c.ClassifyEmotion(text))
}

func TestClassifySituationFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"work", "my boss keeps piling on deadlines", "work_stress"},
		{"relationship", "my partner and I keep fighting", "relationship_conflict"},
		{"family", "my mom won't stop criticizing me", "family_issues"},
		{"health", "I got a diagnosis I don't understand", "health_concerns"},
		{"financial", "I can't afford the bills this month", "financial_stress"},
		{"work outranks money", "my job barely covers the rent", "work_stress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassifySituation(tt.text)
			assert.Equal(t, tt.want, got.Situation)
		})
	}
}

func TestClassifySituationSentinel(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifySituation("the weather has been quite pleasant")
	assert.Equal(t, domain.GeneralSituation, got.Situation)
	assert.Equal(t, domain.SeverityModerate, got.Severity)
	assert.Equal(t, domain.GeneralCategory, got.Category)
	assert.Equal(t, []string{"mixed"}, got.RelatedEmotions)
}

func TestClassifySituationSeverity(t *testing.T) {
	c := NewClassifier()

	mild := c.ClassifySituation("work has been a bit stressful lately")
	assert.Equal(t, domain.SeverityMild, mild.Severity)

	severe := c.ClassifySituation("I think I'm getting fired from my job")
	assert.Equal(t, domain.SeveritySevere, severe.Severity)
}

func TestSituationFragmentsFallback(t *testing.T) {
	c := NewClassifier()

	assert.NotEmpty(t, c.SituationFragments("work_stress", domain.IntentValidation))
	assert.NotEmpty(t, c.SituationFragments(domain.GeneralSituation, domain.IntentValidation))
}
