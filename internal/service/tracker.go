package service

import (
	"regexp"
	"strings"

	"github.com/attune-health/attune/internal/domain"
)

// stopWords are excluded from topic extraction even when long enough.
var stopWords = map[string]bool{
	"about": true, "after": true, "again": true, "around": true,
	"because": true, "before": true, "being": true, "could": true,
	"every": true, "going": true, "having": true, "other": true,
	"really": true, "should": true, "their": true, "there": true,
	"these": true, "thing": true, "things": true, "think": true,
	"those": true, "today": true, "where": true, "which": true,
	"while": true, "would": true,
}

// concernPatterns capture free-text worries. The capture group is stored
// verbatim as a stated concern.
var concernPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i'?m worried about ([^.!?]+)`),
	regexp.MustCompile(`(?i)i can'?t stop thinking about ([^.!?]+)`),
	regexp.MustCompile(`(?i)i'?m (?:really )?(?:scared|afraid) (?:of|that) ([^.!?]+)`),
	regexp.MustCompile(`(?i)i keep worrying about ([^.!?]+)`),
	regexp.MustCompile(`(?i)what if ([^.!?]+)`),
}

// Personal-detail extraction templates. Details are first-write-wins.
var (
	namePattern = regexp.MustCompile(`(?i)my name(?:'s| is) ([A-Za-z]+)`)
	agePattern  = regexp.MustCompile(`(?i)i(?:'m| am) (\d{1,3}) years? old`)
)

// Tracker folds per-turn classifier output and extracted facts into a
// session's conversation context.
type Tracker struct {
	classifier *Classifier
}

// NewTracker creates a tracker over the given classifier.
func NewTracker(classifier *Classifier) *Tracker {
	return &Tracker{classifier: classifier}
}

// UpdateContext returns a new context snapshot with the current message
// folded in. The input context is never mutated.
//
// When the stored turn count trails the supplied history (fresh process,
// evicted cache), the uncounted history entries are replayed first so the
// frequency counters reflect the whole conversation.
func (t *Tracker) UpdateContext(cc *domain.ConversationContext, message string, history []string) *domain.ConversationContext {
	next := cc.Clone()

	for i := next.TurnCount; i < len(history); i++ {
		t.applyTurn(next, history[i])
	}
	t.applyTurn(next, message)

	next.Stage = StageForTurn(len(history))
	return next
}

// applyTurn runs the independent per-turn updates for one message.
func (t *Tracker) applyTurn(cc *domain.ConversationContext, message string) {
	cc.TurnCount++

	if strings.TrimSpace(message) == "" {
		return
	}

	if emotion := t.classifier.ClassifyEmotion(message); !emotion.IsSentinel() {
		cc.EmotionFrequency[emotion.Emotion]++
	}
	if situation := t.classifier.ClassifySituation(message); !situation.IsSentinel() {
		cc.SituationFrequency[situation.Situation]++
	}

	cc.RecentTopics = mergeTopics(cc.RecentTopics, extractTopics(message))

	for _, concern := range extractConcerns(message) {
		if !containsString(cc.StatedConcerns, concern) {
			cc.StatedConcerns = append(cc.StatedConcerns, concern)
		}
	}

	if m := namePattern.FindStringSubmatch(message); m != nil {
		if _, ok := cc.PersonalDetails["name"]; !ok {
			cc.PersonalDetails["name"] = m[1]
		}
	}
	if m := agePattern.FindStringSubmatch(message); m != nil {
		if _, ok := cc.PersonalDetails["age"]; !ok {
			cc.PersonalDetails["age"] = m[1]
		}
	}
}

// extractTopics keeps whitespace tokens longer than four characters that
// are not stop words, lowercased and stripped of edge punctuation.
func extractTopics(message string) []string {
	var topics []string
	for _, token := range strings.Fields(strings.ToLower(message)) {
		token = strings.Trim(token, ".,!?;:'\"()")
		if len(token) > 4 && !stopWords[token] {
			topics = append(topics, token)
		}
	}
	return topics
}

// mergeTopics prepends unseen topics, newest first, capped and deduplicated.
func mergeTopics(existing, incoming []string) []string {
	merged := existing
	for _, topic := range incoming {
		if containsString(merged, topic) {
			continue
		}
		merged = append([]string{topic}, merged...)
	}
	if len(merged) > domain.MaxRecentTopics {
		merged = merged[:domain.MaxRecentTopics]
	}
	return merged
}

func extractConcerns(message string) []string {
	var concerns []string
	for _, pattern := range concernPatterns {
		for _, m := range pattern.FindAllStringSubmatch(message, -1) {
			concern := strings.TrimSpace(m[1])
			if concern != "" {
				concerns = append(concerns, concern)
			}
		}
	}
	return concerns
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
