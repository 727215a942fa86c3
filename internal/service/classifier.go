package service

import (
	"strings"

	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/library"
)

// intensityOrder fixes tie-breaking for intensity markers.
var intensityOrder = []domain.Intensity{
	domain.IntensityMild,
	domain.IntensityModerate,
	domain.IntensityStrong,
}

// severityOrder fixes tie-breaking for severity markers.
var severityOrder = []domain.Severity{
	domain.SeverityMild,
	domain.SeverityModerate,
	domain.SeveritySevere,
}

// Classifier performs keyword-based emotion and situation classification.
// It is stateless and safe for concurrent use.
type Classifier struct {
	emotions   []domain.EmotionPattern
	situations []domain.SituationPattern
}

// NewClassifier creates a classifier over the built-in pattern libraries.
func NewClassifier() *Classifier {
	return &Classifier{
		emotions:   library.Emotions(),
		situations: library.Situations(),
	}
}

// ClassifyEmotion scans text against the emotion library in declaration
// order and returns the first matching pattern's verdict. Unmatched text
// yields the "mixed emotions" sentinel at moderate intensity.
func (c *Classifier) ClassifyEmotion(text string) domain.EmotionAnalysis {
	lowered := strings.ToLower(text)

	scores := make(map[string]int)
	var matched *domain.EmotionPattern
	for i := range c.emotions {
		e := &c.emotions[i]
		hits := countRuleHits(lowered, e.MatchRules)
		if hits > 0 {
			scores[e.Name] = hits
			if matched == nil {
				matched = e
			}
		}
	}

	if matched == nil {
		return domain.EmotionAnalysis{
			Emotion:   domain.MixedEmotions,
			Intensity: domain.IntensityModerate,
			Category:  domain.GeneralCategory,
			Scores:    scores,
		}
	}

	intensity := domain.IntensityModerate
	for _, level := range intensityOrder {
		if containsAny(lowered, matched.IntensityMarkers[level]) {
			intensity = level
			break
		}
	}

	var somatic []string
	for _, s := range matched.SomaticExperiences {
		if strings.Contains(lowered, s) {
			somatic = append(somatic, s)
		}
	}

	return domain.EmotionAnalysis{
		Emotion:            matched.Name,
		Intensity:          intensity,
		Category:           matched.Category,
		SomaticExperiences: somatic,
		Scores:             scores,
	}
}

// ClassifySituation mirrors ClassifyEmotion over the situation library. The
// sentinel is "general life situation" with relatedEmotions ["mixed"].
func (c *Classifier) ClassifySituation(text string) domain.SituationAnalysis {
	lowered := strings.ToLower(text)

	scores := make(map[string]int)
	var matched *domain.SituationPattern
	for i := range c.situations {
		s := &c.situations[i]
		hits := countRuleHits(lowered, s.MatchRules)
		if hits > 0 {
			scores[s.Name] = hits
			if matched == nil {
				matched = s
			}
		}
	}

	if matched == nil {
		return domain.SituationAnalysis{
			Situation:       domain.GeneralSituation,
			Severity:        domain.SeverityModerate,
			Category:        domain.GeneralCategory,
			RelatedEmotions: []string{"mixed"},
			Scores:          scores,
		}
	}

	severity := domain.SeverityModerate
	for _, level := range severityOrder {
		if containsAny(lowered, matched.SeverityMarkers[level]) {
			severity = level
			break
		}
	}

	return domain.SituationAnalysis{
		Situation:       matched.Name,
		Severity:        severity,
		Category:        matched.Category,
		RelatedEmotions: append([]string(nil), matched.RelatedEmotions...),
		Scores:          scores,
	}
}

// SituationFragments returns the named situation's fragments for an intent.
// Unknown situations (including the sentinel) fall back to a small generic
// validation set so synthesis always has material to work with.
func (c *Classifier) SituationFragments(situation string, intent domain.ResponseIntent) []string {
	for i := range c.situations {
		if c.situations[i].Name == situation {
			return c.situations[i].ResponseFragments[intent]
		}
	}
	return genericFragments
}

var genericFragments = []string{
	"Whatever you're carrying right now, it deserves to be taken seriously.",
	"Life situations like this rarely have tidy edges, and that's okay.",
}

func countRuleHits(lowered string, rules []string) int {
	hits := 0
	for _, rule := range rules {
		if strings.Contains(lowered, rule) {
			hits++
		}
	}
	return hits
}

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
